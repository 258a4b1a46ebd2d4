// Package extract converts uploaded PDF bytes into the normalized plain text
// the evaluation engine consumes.
//
// Extraction failures are the one error class that rejects a request before
// any rule evaluation happens, so the error type here carries enough context
// for the HTTP layer to answer with a 422.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// Document is the immutable extraction output shared read-only across all
// rule evaluations of a request.
type Document struct {
	// Text is the normalized plain text: control characters stripped,
	// whitespace collapsed to single spaces, length-capped.
	Text string

	// PageCount is the number of pages in the PDF.
	PageCount int
}

// Error indicates the document's text could not be extracted.
type Error struct {
	// Cause is the underlying extraction failure (nil when the PDF parsed
	// but yielded no text).
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not extract text from document: %v", e.Cause)
	}
	return "could not extract text from document"
}

// Unwrap returns the underlying error for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Extract parses PDF bytes into normalized plain text capped at maxChars
// characters. It returns an *Error when the bytes are not a readable PDF or
// contain no extractable text.
func Extract(data []byte, maxChars int) (Document, error) {
	text, pages, err := plainText(data)
	if err != nil {
		return Document{}, &Error{Cause: err}
	}

	normalized := NormalizeText(text, maxChars)
	if normalized == "" {
		return Document{}, &Error{}
	}

	return Document{Text: normalized, PageCount: pages}, nil
}

// plainText runs the PDF parser. The library panics on some malformed files
// rather than returning an error, so the panic is converted here.
func plainText(data []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", 0, err
	}

	raw, err := io.ReadAll(plain)
	if err != nil {
		return "", 0, err
	}

	return string(raw), reader.NumPage(), nil
}

// NormalizeText strips control characters, collapses whitespace runs to
// single spaces, trims, and caps the result at maxChars characters. The cap
// bounds the prompt sent to any backend; maxChars <= 0 means no cap.
func NormalizeText(text string, maxChars int) string {
	var sb strings.Builder
	sb.Grow(len(text))

	space := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsControl(r):
			// Dropped entirely; stray control bytes in PDF text streams are
			// never content.
		default:
			if space && sb.Len() > 0 {
				sb.WriteRune(' ')
			}
			space = false
			sb.WriteRune(r)
		}
	}

	out := sb.String()
	if maxChars > 0 {
		if runes := []rune(out); len(runes) > maxChars {
			out = string(runes[:maxChars])
		}
	}
	return out
}
