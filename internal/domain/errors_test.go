package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorMessage(t *testing.T) {
	err := DecodeError("failed to open PDF", errors.New("bad header"))
	assert.Equal(t, "[decode] failed to open PDF: bad header", err.Error())

	bare := InputError("PDF payload is required", nil)
	assert.Equal(t, "[input] PDF payload is required", bare.Error())
}

func TestDomainErrorUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := PackagingError("failed to write archive", inner)

	assert.True(t, errors.Is(err, inner))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ErrorTypeInput, TypeOf(InputError("x", nil)))
	assert.Equal(t, ErrorTypeStorage, TypeOf(StorageError("x", errors.New("y"))))

	// Type survives fmt wrapping.
	wrapped := fmt.Errorf("request failed: %w", DecodeError("bad pdf", nil))
	assert.Equal(t, ErrorTypeDecode, TypeOf(wrapped))

	assert.Equal(t, ErrorType(""), TypeOf(errors.New("plain")))
	assert.Equal(t, ErrorType(""), TypeOf(nil))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "1", Key(1))
	assert.Equal(t, "42", Key(42))
}

func TestHasSearch(t *testing.T) {
	res := &ConversionResult{}
	assert.False(t, res.HasSearch())

	res.SearchData = []byte(`{"pages":{}}`)
	assert.True(t, res.HasSearch())
}
