package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestStringValidation_Check(t *testing.T) {
	tests := []struct {
		name string
		v    *StringValidation
		want Kind
	}{
		{"empty required", NewStringValidation(""), KindRequired},
		{"whitespace required", NewStringValidation("   \t"), KindRequired},
		{"empty optional", NewStringValidation("").WithRequired(false), ""},
		{"exactly max", NewStringValidation(strings.Repeat("a", 50)).WithMaxLength(50), ""},
		{"one over max", NewStringValidation(strings.Repeat("a", 51)).WithMaxLength(50), KindTooLong},
		{"multibyte counted as characters", NewStringValidation(strings.Repeat("ç", 50)).WithMaxLength(50), ""},
		{"emoji count twice", NewStringValidation(strings.Repeat("😀", 26)).WithMaxLength(50), KindTooLong},
		{"emoji at the limit", NewStringValidation(strings.Repeat("😀", 25)).WithMaxLength(50), ""},
		{"pattern mismatch", NewStringValidation("nope").WithPattern(CompiledPatterns.Email), KindInvalidFormat},
		{"pattern match", NewStringValidation("a@b.co").WithPattern(CompiledPatterns.Email), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Check())
			assert.Equal(t, tt.want == "", tt.v.Validate())
		})
	}
}

func TestEmailPattern(t *testing.T) {
	valid := []string{"a@b.co", "first.last@example.org", "x@y.z", " pad@host.io "}
	invalid := []string{"plain", "a@b", "@.", "a b@c d", "a@b."}

	for _, email := range valid {
		assert.True(t, CompiledPatterns.Email.MatchString(email), email)
	}
	for _, email := range invalid {
		assert.False(t, CompiledPatterns.Email.MatchString(email), email)
	}
}

func TestFieldErrors(t *testing.T) {
	errs := FieldErrors{}
	require.True(t, errs.Valid())

	errs.Add("name", KindRequired, "first")
	errs.Add("name", KindTooLong, "second")
	require.Len(t, errs, 1)
	assert.Equal(t, FieldError{Kind: KindTooLong, Message: "second"}, errs["name"])
	assert.True(t, errs.Has(KindTooLong))
	assert.False(t, errs.Has(KindRequired))

	errs.Merge(FieldErrors{GeneralField: {Kind: KindDuplicateOffering, Message: "dup"}})
	assert.Len(t, errs, 2)
	assert.True(t, errs.Has(KindDuplicateOffering))
	assert.False(t, errs.Valid())
}

// TestLengthRule checks that the TooLong decision depends only on the
// UTF-16 length of non-blank values.
func TestTextLength(t *testing.T) {
	assert.Equal(t, 0, TextLength(""))
	assert.Equal(t, 5, TextLength("Group"))
	assert.Equal(t, 4, TextLength("Çay "))
	assert.Equal(t, 60, TextLength(strings.Repeat("😀", 30)))
}

func TestLengthRule(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		value := rapid.StringN(1, 80, -1).Draw(r, "value")
		kind := NewStringValidation(value).WithMaxLength(NameMaxLength).Check()

		switch {
		case strings.TrimSpace(value) == "":
			require.Equal(r, KindRequired, kind)
		case TextLength(value) > NameMaxLength:
			require.Equal(r, KindTooLong, kind)
		default:
			require.Equal(r, Kind(""), kind)
		}
	})
}
