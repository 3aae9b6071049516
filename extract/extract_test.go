package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/clauscan/clauscan"
	"github.com/clauscan/clauscan/extract"
	"github.com/clauscan/clauscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedBackend(name string, fn func(ctx context.Context, data []byte) (string, error)) *mock.Backend {
	return &mock.Backend{
		NameFn:        func() string { return name },
		ExtractTextFn: fn,
	}
}

func testDoc(format clauscan.Format) *clauscan.Document {
	return &clauscan.Document{Name: "contract." + string(format), Format: format, Data: []byte("%PDF-1.4")}
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns first backend's text with backend name recorded", func(t *testing.T) {
		t.Parallel()

		e := extract.NewExtractor()
		e.Register(clauscan.FormatPDF, namedBackend("fitz", func(_ context.Context, _ []byte) (string, error) {
			return "This NDA is governed by the laws of Delaware.", nil
		}))
		e.Register(clauscan.FormatPDF, namedBackend("pdf", func(_ context.Context, _ []byte) (string, error) {
			t.Fatal("second backend must not run after first succeeds")
			return "", nil
		}))

		text, err := e.Extract(context.Background(), testDoc(clauscan.FormatPDF))

		require.NoError(t, err)
		assert.Equal(t, "This NDA is governed by the laws of Delaware.", text.Text)
		assert.Equal(t, "fitz", text.Backend)
		assert.Equal(t, len(text.Text), text.CharCount)
	})

	t.Run("falls back to next backend on error", func(t *testing.T) {
		t.Parallel()

		e := extract.NewExtractor()
		e.Register(clauscan.FormatPDF, namedBackend("fitz", func(_ context.Context, _ []byte) (string, error) {
			return "", errors.New("corrupt stream")
		}))
		e.Register(clauscan.FormatPDF, namedBackend("pdf", func(_ context.Context, _ []byte) (string, error) {
			return "fallback text", nil
		}))

		text, err := e.Extract(context.Background(), testDoc(clauscan.FormatPDF))

		require.NoError(t, err)
		assert.Equal(t, "fallback text", text.Text)
		assert.Equal(t, "pdf", text.Backend)
	})

	t.Run("empty text is a failure and triggers fallback", func(t *testing.T) {
		t.Parallel()

		e := extract.NewExtractor()
		e.Register(clauscan.FormatPDF, namedBackend("fitz", func(_ context.Context, _ []byte) (string, error) {
			return "   \n\t  ", nil
		}))
		e.Register(clauscan.FormatPDF, namedBackend("pdf", func(_ context.Context, _ []byte) (string, error) {
			return "actual content", nil
		}))

		text, err := e.Extract(context.Background(), testDoc(clauscan.FormatPDF))

		require.NoError(t, err)
		assert.Equal(t, "pdf", text.Backend)
	})

	t.Run("fails with EEXTRACTION only after every backend was exercised", func(t *testing.T) {
		t.Parallel()

		var calls []string
		e := extract.NewExtractor()
		for _, name := range []string{"fitz", "pdf", "ocr"} {
			name := name
			e.Register(clauscan.FormatPDF, namedBackend(name, func(_ context.Context, _ []byte) (string, error) {
				calls = append(calls, name)
				return "", errors.New("missing text layer")
			}))
		}

		_, err := e.Extract(context.Background(), testDoc(clauscan.FormatPDF))

		require.Error(t, err)
		assert.Equal(t, clauscan.EEXTRACTION, clauscan.ErrorCode(err))
		assert.Equal(t, []string{"fitz", "pdf", "ocr"}, calls)
		assert.Contains(t, clauscan.ErrorMessage(err), "fitz: missing text layer")
	})

	t.Run("unsupported format fails immediately without fallback", func(t *testing.T) {
		t.Parallel()

		e := extract.NewExtractor()
		e.Register(clauscan.FormatPDF, namedBackend("fitz", func(_ context.Context, _ []byte) (string, error) {
			t.Fatal("backend for another format must not run")
			return "", nil
		}))

		_, err := e.Extract(context.Background(), testDoc(clauscan.FormatDOCX))

		require.Error(t, err)
		assert.Equal(t, clauscan.EUNSUPPORTED, clauscan.ErrorCode(err))
	})

	t.Run("applies normalization to backend output", func(t *testing.T) {
		t.Parallel()

		e := extract.NewExtractor()
		e.Register(clauscan.FormatTXT, namedBackend("charmap", func(_ context.Context, _ []byte) (string, error) {
			return "  notice.Either  party \f may   terminate  ", nil
		}))

		text, err := e.Extract(context.Background(), &clauscan.Document{
			Name: "c.txt", Format: clauscan.FormatTXT, Data: []byte("x"),
		})

		require.NoError(t, err)
		assert.Equal(t, "notice. Either party\nmay terminate", text.Text)
	})

	t.Run("honors context cancellation between backends", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		e := extract.NewExtractor()
		e.Register(clauscan.FormatPDF, namedBackend("fitz", func(_ context.Context, _ []byte) (string, error) {
			cancel()
			return "", errors.New("corrupt stream")
		}))
		e.Register(clauscan.FormatPDF, namedBackend("pdf", func(_ context.Context, _ []byte) (string, error) {
			t.Fatal("must not run after cancellation")
			return "", nil
		}))

		_, err := e.Extract(ctx, testDoc(clauscan.FormatPDF))

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("rejects invalid document", func(t *testing.T) {
		t.Parallel()

		e := extract.NewExtractor()

		_, err := e.Extract(context.Background(), &clauscan.Document{})

		require.Error(t, err)
		assert.Equal(t, clauscan.EINVALID, clauscan.ErrorCode(err))
	})
}
