package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "DAO Masters", want: "dao-masters"},
		{name: "collapses whitespace", input: "My   Top\tHat", want: "my-top-hat"},
		{name: "trims edges", input: "  Edge Case  ", want: "edge-case"},
		{name: "folds diacritics", input: "Café Société", want: "cafe-societe"},
		{name: "empty stays empty", input: "", want: ""},
		{name: "single word", input: "Operators", want: "operators"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
