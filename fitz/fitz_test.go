package fitz_test

import (
	"context"
	"testing"

	"github.com/clauscan/clauscan"
	"github.com/clauscan/clauscan/fitz"
	"github.com/stretchr/testify/assert"
)

// Ensure Backend implements clauscan.Backend at compile time.
var _ clauscan.Backend = (*fitz.Backend)(nil)

func TestBackend_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("rejects data that is not a pdf", func(t *testing.T) {
		t.Parallel()
		_, err := fitz.NewBackend().ExtractText(context.Background(), []byte("not a pdf"))
		assert.Equal(t, clauscan.EEXTRACTION, clauscan.ErrorCode(err))
	})

	t.Run("reports its name", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "fitz", fitz.NewBackend().Name())
	})
}
