package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation stripped", "Article test, 2026!", "article-test-2026"},
		{"already slug", "already-a-slug", "already-a-slug"},
		{"surrounding space", "  Padded Title  ", "padded-title"},
		{"consecutive spaces", "Too   many   spaces", "too-many-spaces"},
		{"unicode stripped", "Café con leche", "caf-con-leche"},
		{"only punctuation", "!?!", ""},
		{"empty", "", ""},
		{"hyphens collapsed", "a -- b", "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateMax(t *testing.T) {
	if got := GenerateMax("Hello World", 5); got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}

	// A cut that lands on a hyphen must not leave it dangling.
	if got := GenerateMax("Hello World", 6); got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}

	if got := GenerateMax("Hello World", 64); got != "hello-world" {
		t.Errorf("got %q, want %q", got, "hello-world")
	}

	// Zero max means unbounded.
	if got := GenerateMax("Hello World", 0); got != "hello-world" {
		t.Errorf("got %q, want %q", got, "hello-world")
	}
}
