//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"artshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	cause := errors.New("username must be 3-50 characters")

	t.Run("sees sentinels attached with Mark", func(t *testing.T) {
		err := errs.Mark(cause, errs.ErrDomainValidation)

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		// The cause itself stays reachable too.
		assert.True(t, errs.Is(err, cause))
	})

	t.Run("sees sentinels through an additional wrap", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(cause, errs.ErrBusy), "failed to place order")

		assert.True(t, errs.Is(err, errs.ErrBusy))
	})

	t.Run("does not match unrelated sentinels", func(t *testing.T) {
		err := errs.Mark(cause, errs.ErrDomainValidation)

		assert.False(t, errs.Is(err, errs.ErrBusy))
	})

	t.Run("nil never matches", func(t *testing.T) {
		assert.False(t, errs.Is(nil, errs.ErrDomainValidation))
	})
}

func TestMark(t *testing.T) {
	t.Run("nil error yields the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrDomainValidation)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}
