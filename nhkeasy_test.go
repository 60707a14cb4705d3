package nhkeasy_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/nhkeasy"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := nhkeasy.Errorf(nhkeasy.ENOTFOUND, "article %q not found", "abc")

	assert.Equal(t, nhkeasy.ENOTFOUND, nhkeasy.ErrorCode(err))
	assert.Equal(t, "article \"abc\" not found", nhkeasy.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("saving: %w", nhkeasy.Errorf(nhkeasy.ECONFLICT, "duplicate"))

	assert.Equal(t, nhkeasy.ECONFLICT, nhkeasy.ErrorCode(err))
	assert.Equal(t, "duplicate", nhkeasy.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, nhkeasy.EINTERNAL, nhkeasy.ErrorCode(err))
	assert.Equal(t, "Internal error.", nhkeasy.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, nhkeasy.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, nhkeasy.ErrorMessage(nil))
}
