package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	tests := map[string]struct {
		text string
		want bool
	}{
		"empty":          {text: "", want: true},
		"spaces":         {text: "  ", want: true},
		"tabs-newlines":  {text: "\t\n\r ", want: true},
		"code":           {text: "export const x=1", want: false},
		"padded-content": {text: "  x  ", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlank(tt.text))
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := map[string]struct {
		text string
		max  int
		want string
	}{
		"shorter-than-max": {
			text: "abc",
			max:  10,
			want: "abc",
		},
		"exact-length": {
			text: "abcde",
			max:  5,
			want: "abcde",
		},
		"ascii-truncated": {
			text: "abcdefgh",
			max:  3,
			want: "abc",
		},
		"multi-byte-kept-whole": {
			text: "héllo wörld",
			max:  5,
			want: "héllo",
		},
		"zero-max": {
			text: "abc",
			max:  0,
			want: "",
		},
		"summary-input-limit": {
			text: strings.Repeat("a", MaxSummaryInputChars+50),
			max:  MaxSummaryInputChars,
			want: strings.Repeat("a", MaxSummaryInputChars),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateRunes(tt.text, tt.max))
		})
	}
}

func TestIsTextContent(t *testing.T) {
	tests := map[string]struct {
		raw  []byte
		want bool
	}{
		"plain-text":   {raw: []byte("package main\n"), want: true},
		"utf8-text":    {raw: []byte("// café"), want: true},
		"nul-byte":     {raw: []byte{'a', 0, 'b'}, want: false},
		"invalid-utf8": {raw: []byte{0xff, 0xfe, 0xfd}, want: false},
		"empty":        {raw: []byte{}, want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTextContent(tt.raw))
		})
	}
}
