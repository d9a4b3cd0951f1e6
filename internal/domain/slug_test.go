package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"React Guide", "react-guide"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Go 1.25: What's New?", "go-1-25-what-s-new"},
		{"Café Résumé", "cafe-resume"},
		{"C++ & Rust", "c-rust"},
		{"already-a-slug", "already-a-slug"},
		{"Straße der Pariser Kommune", "strasse-der-pariser-kommune"},
		{"Œuvre complète", "oeuvre-complete"},
		{"Ærø & Go", "aero-go"},
		{"Łódź meetup", "lodz-meetup"},
		{"İstanbul", "istanbul"},
		{"日本語の記事", "日本語の記事"},
		{"Привет, мир", "привет-мир"},
		{"Go と Rust", "go-と-rust"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
