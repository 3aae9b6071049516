package clauscan_test

import (
	"testing"

	"github.com/clauscan/clauscan"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := clauscan.Errorf(clauscan.ENOTFOUND, "report %q not found", "test")

	assert.Equal(t, clauscan.ENOTFOUND, clauscan.ErrorCode(err))
	assert.Equal(t, "report \"test\" not found", clauscan.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, clauscan.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, clauscan.ErrorMessage(nil))
}

func TestErrorRaw(t *testing.T) {
	t.Parallel()

	err := clauscan.Errorf(clauscan.ESCHEMA, "response does not match schema")
	err.Raw = `{"oops": true}`

	assert.Equal(t, `{"oops": true}`, clauscan.ErrorRaw(err))
	assert.Empty(t, clauscan.ErrorRaw(nil))
}
