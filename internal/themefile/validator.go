package themefile

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	glazeerrors "github.com/glazekit/glaze/pkg/errors"
	"github.com/glazekit/glaze/pkg/theme/tokens"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNamePattern = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9._-]*[a-z0-9])?$`)
)

// getValidator returns the shared validator instance with the theme rules
// registered.
func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("themename", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("thememode", func(fl validator.FieldLevel) bool {
			switch tokens.Mode(fl.Field().String()) {
			case tokens.ModeLight, tokens.ModeDark:
				return true
			default:
				return false
			}
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the document against the struct rules. The returned error
// points at the first offending field using its YAML-ish path.
func Validate(path string, doc *Document) error {
	if doc == nil {
		return glazeerrors.NewValidationError(path, "document", "document is nil", nil)
	}

	if err := getValidator().Struct(doc); err != nil {
		return convertValidationError(path, err)
	}

	return nil
}

// convertValidationError turns validator's struct-namespace errors into the
// shared ValidationError type so callers see field paths in the same shape
// they wrote them.
func convertValidationError(path string, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fieldError := validationErrors[0]
		field := yamlishFieldName(fieldError.StructNamespace())
		msg := fmt.Sprintf("failed validation for tag '%s'", fieldError.Tag())
		return glazeerrors.NewValidationError(path, field, msg, err)
	}

	return glazeerrors.NewValidationError(path, "document", err.Error(), err)
}

// yamlishFieldName lowercases each segment of a struct namespace so
// "Document.Theme.Palette.Mode" reads as "document.theme.palette.mode".
func yamlishFieldName(namespace string) string {
	parts := strings.Split(namespace, ".")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToLower(part[:1]) + part[1:]
	}
	return strings.Join(parts, ".")
}
