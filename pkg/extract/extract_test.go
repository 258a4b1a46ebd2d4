package extract

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		want     string
	}{
		{
			name: "collapses whitespace runs",
			text: "The  plan\n\nstarts\tMarch 2024.",
			want: "The plan starts March 2024.",
		},
		{
			name: "strips control characters",
			text: "before\x00\x07after",
			want: "beforeafter",
		},
		{
			name: "trims leading and trailing whitespace",
			text: "  \n padded text \t ",
			want: "padded text",
		},
		{
			name:     "caps at rune boundary not byte boundary",
			text:     "héllo wörld",
			maxChars: 7,
			want:     "héllo w",
		},
		{
			name:     "no cap when maxChars is zero",
			text:     "unbounded text",
			maxChars: 0,
			want:     "unbounded text",
		},
		{
			name: "whitespace only becomes empty",
			text: " \n\t ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.text, tt.maxChars))
		})
	}
}

func TestExtract_GarbageBytes(t *testing.T) {
	_, err := Extract([]byte("this is not a pdf"), 12000)

	var extractErr *Error
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, err.Error(), "could not extract text from document")
}

func TestExtract_EmptyInput(t *testing.T) {
	_, err := Extract(nil, 12000)

	var extractErr *Error
	assert.ErrorAs(t, err, &extractErr)
}

func TestExtract_TruncatedPDFHeader(t *testing.T) {
	// A valid magic number with nothing behind it must fail cleanly, not
	// panic.
	data := append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte{0x20}, 32)...)

	_, err := Extract(data, 12000)

	var extractErr *Error
	assert.ErrorAs(t, err, &extractErr)
}

func TestError_Unwrap(t *testing.T) {
	_, err := Extract([]byte("junk"), 100)

	var extractErr *Error
	require.ErrorAs(t, err, &extractErr)
	assert.Error(t, extractErr.Unwrap())
}
