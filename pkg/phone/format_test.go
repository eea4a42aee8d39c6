package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "("},
		{"1", "(1"},
		{"11", "(11"},
		{"119", "(11) 9"},
		{"1199999", "(11) 99999"},
		{"11999998", "(11) 99999-8"},
		{"1133334444", "(11) 33334-444"},
		{"11999998888", "(11) 99999-8888"},
		{"(11) 99999-8888", "(11) 99999-8888"},
		{"119999988889999", "(11) 99999-8888"},
		{"abc", "("},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.input))
		})
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "11999998888", Digits("(11) 99999-8888"))
	assert.Equal(t, "", Digits("sem número"))
}

func TestFormatCooldown(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{300, "5:00"},
		{299, "4:59"},
		{61, "1:01"},
		{9, "0:09"},
		{0, "0:00"},
		{-4, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCooldown(tt.seconds))
	}
}
