package clauscan_test

import (
	"testing"

	"github.com/clauscan/clauscan"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	t.Run("collapses runs of spaces and tabs", func(t *testing.T) {
		t.Parallel()

		got := clauscan.NormalizeText("either  party \t may   terminate")

		assert.Equal(t, "either party may terminate", got)
	})

	t.Run("repairs hyphenation line breaks", func(t *testing.T) {
		t.Parallel()

		got := clauscan.NormalizeText("the receiving party shall main-\ntain confidentiality")

		assert.Equal(t, "the receiving party shall maintain confidentiality", got)
	})

	t.Run("restores space after sentence period", func(t *testing.T) {
		t.Parallel()

		got := clauscan.NormalizeText("30 days notice.Either party may terminate.")

		assert.Equal(t, "30 days notice. Either party may terminate.", got)
	})

	t.Run("restores space between glued case change", func(t *testing.T) {
		t.Parallel()

		got := clauscan.NormalizeText("governed byDelaware law")

		assert.Equal(t, "governed by Delaware law", got)
	})

	t.Run("converts page breaks to newlines", func(t *testing.T) {
		t.Parallel()

		got := clauscan.NormalizeText("page one\fpage two")

		assert.Equal(t, "page one\npage two", got)
	})

	t.Run("squeezes blank line runs to one paragraph break", func(t *testing.T) {
		t.Parallel()

		got := clauscan.NormalizeText("first paragraph\n\n\n\nsecond paragraph")

		assert.Equal(t, "first paragraph\n\nsecond paragraph", got)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "text", clauscan.NormalizeText("  \n text \n "))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, clauscan.NormalizeText(""))
		assert.Empty(t, clauscan.NormalizeText("  \n\t "))
	})
}
