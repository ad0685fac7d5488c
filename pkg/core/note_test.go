package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/notes/pkg/core"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "Simple", input: "home, errands", want: []string{"home", "errands"}},
		{name: "Empty Input", input: "", want: []string{""}},
		{name: "Trailing Comma Kept", input: "a,", want: []string{"a", ""}},
		{name: "Leading Comma Kept", input: ",a", want: []string{"", "a"}},
		{name: "Duplicates Kept", input: "x, x", want: []string{"x", "x"}},
		{name: "Inner Spaces Kept", input: "  to do ,later ", want: []string{"to do", "later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.ParseTags(tt.input))
		})
	}
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "home, errands", core.FormatTags([]string{"home", "errands"}))
	assert.Equal(t, "", core.FormatTags(nil))
	assert.Equal(t, []string{"a", "b"}, core.ParseTags(core.FormatTags([]string{"a", "b"})))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, core.Validate("t", "b"))
	assert.ErrorIs(t, core.Validate("", "b"), core.ErrValidation)
	assert.ErrorIs(t, core.Validate("t", "   "), core.ErrValidation)
	assert.ErrorIs(t, core.Validate("\t\n", "\n"), core.ErrValidation)
}

func TestNote_HasTag(t *testing.T) {
	n := core.Note{Tags: []string{"work", "home"}}
	assert.True(t, n.HasTag("work"))
	assert.False(t, n.HasTag("wor"))
}
