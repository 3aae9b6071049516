package etree_test

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/clauscan/clauscan"
	"github.com/clauscan/clauscan/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Backend implements clauscan.Backend at compile time.
var _ clauscan.Backend = (*etree.Backend)(nil)

// buildDocx assembles an in-memory DOCX archive around the given
// document.xml body content.
func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>` + body + `</w:body>
</w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestBackend_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("joins text runs per paragraph", func(t *testing.T) {
		t.Parallel()
		data := buildDocx(t, `<w:p><w:r><w:t>This Agreement is </w:t></w:r><w:r><w:t>confidential.</w:t></w:r></w:p><w:p><w:r><w:t>Either party may terminate.</w:t></w:r></w:p>`)

		text, err := etree.NewBackend().ExtractText(context.Background(), data)
		require.NoError(t, err)
		assert.Equal(t, "This Agreement is confidential.\nEither party may terminate.\n", text)
	})

	t.Run("empty paragraphs become blank lines", func(t *testing.T) {
		t.Parallel()
		data := buildDocx(t, `<w:p><w:r><w:t>First.</w:t></w:r></w:p><w:p/><w:p><w:r><w:t>Second.</w:t></w:r></w:p>`)

		text, err := etree.NewBackend().ExtractText(context.Background(), data)
		require.NoError(t, err)
		assert.Equal(t, "First.\n\nSecond.\n", text)
	})

	t.Run("rejects archives without a document part", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, err := zw.Create("word/styles.xml")
		require.NoError(t, err)
		_, err = w.Write([]byte("<styles/>"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		_, err = etree.NewBackend().ExtractText(context.Background(), buf.Bytes())
		assert.Equal(t, clauscan.EEXTRACTION, clauscan.ErrorCode(err))
	})

	t.Run("rejects data that is not a zip archive", func(t *testing.T) {
		t.Parallel()
		_, err := etree.NewBackend().ExtractText(context.Background(), []byte("plain text"))
		assert.Equal(t, clauscan.EEXTRACTION, clauscan.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := etree.NewBackend().ExtractText(ctx, buildDocx(t, `<w:p/>`))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
