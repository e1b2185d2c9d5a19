package registry

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		prefix string
	}{
		{name: "simple", input: "Ocean Blue", want: "ocean-blue"},
		{name: "mixedCharacters", input: "My_Theme v1.0", want: "my-theme-v1-0"},
		{name: "leadingTrailing", input: "--Nord--", want: "nord"},
		{name: "consecutiveSeparators", input: "A    B!!C", want: "a-b-c"},
		{name: "trimToMaxLength", input: strings.Repeat("abc", 25), prefix: "abcabcabcabcabcabcabcabcabcabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeName(tt.input)

			if tt.want != "" && got != tt.want {
				t.Fatalf("SanitizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}

			if tt.prefix != "" && !strings.HasPrefix(got, tt.prefix) {
				t.Fatalf("SanitizeName(%q) = %q, expected prefix %q", tt.input, got, tt.prefix)
			}

			if len(got) > nameMaxLength {
				t.Fatalf("SanitizeName(%q) length = %d, exceeds max %d", tt.input, len(got), nameMaxLength)
			}

			if got != "" {
				if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
					t.Fatalf("SanitizeName(%q) produced name with leading/trailing hyphen: %q", tt.input, got)
				}
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{
		"x",
		"dark",
		"ocean-blue",
		"nord.frost",
		"abc123",
		strings.Repeat("a", nameMaxLength),
	}

	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Fatalf("ValidateName(%q) returned error: %v", name, err)
		}
	}

	invalid := []struct {
		name string
	}{
		{""},
		{"Dark"},
		{"-leading"},
		{"trailing-"},
		{"has space"},
		{strings.Repeat("a", nameMaxLength+1)},
	}

	for _, tt := range invalid {
		if err := ValidateName(tt.name); err == nil {
			t.Fatalf("ValidateName(%q) expected error, got nil", tt.name)
		}
	}
}

func TestNameFromPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		want   string
		prefix string
	}{
		{name: "simple", path: "/themes/ocean-blue.yaml", want: "ocean-blue"},
		{name: "uppercaseAndSpaces", path: "/themes/Nord Frost.yml", want: "nord-frost"},
		{name: "noExtension", path: "/themes/ember", want: "ember"},
		{name: "repositoryURL", path: "https://github.com/acme/solar-themes.git", want: "solar-themes"},
		{name: "trailingSlash", path: "https://github.com/acme/solar-themes/", want: "solar-themes"},
		{name: "longName", path: "/themes/" + strings.Repeat("abc", 30) + ".yaml", prefix: "abcabcabcabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NameFromPath(tt.path)
			if tt.want != "" && got != tt.want {
				t.Fatalf("NameFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}

			if tt.prefix != "" && !strings.HasPrefix(got, tt.prefix) {
				t.Fatalf("NameFromPath(%q) = %q, expected prefix %q", tt.path, got, tt.prefix)
			}

			if err := ValidateName(got); err != nil {
				t.Fatalf("derived name %q is invalid: %v", got, err)
			}
		})
	}

	t.Run("nonAlphanumericOnly", func(t *testing.T) {
		path := filepath.Join("/themes", "!!!.yaml")
		got := NameFromPath(path)
		if !strings.HasPrefix(got, "theme-") {
			t.Fatalf("expected fallback prefix for %q, got %q", path, got)
		}
		if err := ValidateName(got); err != nil {
			t.Fatalf("fallback name %q failed validation: %v", got, err)
		}
	})
}
