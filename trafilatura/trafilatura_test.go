package trafilatura_test

import (
	"context"
	"testing"

	"github.com/clauscan/clauscan"
	"github.com/clauscan/clauscan/htmltomarkdown"
	"github.com/clauscan/clauscan/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Backend implements clauscan.Backend at compile time.
var _ clauscan.Backend = (*trafilatura.Backend)(nil)

const contractPage = `<!DOCTYPE html>
<html>
<head><title>Mutual Non-Disclosure Agreement</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/legal">Legal Nav Link</a></nav>
<article>
<h2>1. Confidentiality</h2>
<p>Each party agrees to hold the other party's Confidential Information in strict confidence and not to disclose it to any third party without prior written consent.</p>
<h2>2. Term</h2>
<p>This Agreement remains in effect for a period of three years from the Effective Date and the confidentiality obligations survive its termination.</p>
</article>
<footer><p>Footer copyright text 2026</p></footer>
</body>
</html>`

func TestBackend_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("extracts the contract body without chrome", func(t *testing.T) {
		t.Parallel()

		b := trafilatura.NewBackend(htmltomarkdown.NewConverter())
		text, err := b.ExtractText(context.Background(), []byte(contractPage))

		require.NoError(t, err)
		assert.Contains(t, text, "strict confidence")
		assert.Contains(t, text, "survive its termination")
		assert.NotContains(t, text, "Home Nav Link")
		assert.NotContains(t, text, "Footer copyright text")
	})

	t.Run("prepends the page title as a heading", func(t *testing.T) {
		t.Parallel()

		b := trafilatura.NewBackend(htmltomarkdown.NewConverter())
		text, err := b.ExtractText(context.Background(), []byte(contractPage))

		require.NoError(t, err)
		assert.Contains(t, text, "# Mutual Non-Disclosure Agreement")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		b := trafilatura.NewBackend(htmltomarkdown.NewConverter())
		_, err := b.ExtractText(context.Background(), nil)

		assert.Equal(t, clauscan.EEXTRACTION, clauscan.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		b := trafilatura.NewBackend(htmltomarkdown.NewConverter())
		_, err := b.ExtractText(ctx, []byte(contractPage))

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("reports its name", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "trafilatura", trafilatura.NewBackend(htmltomarkdown.NewConverter()).Name())
	})
}
