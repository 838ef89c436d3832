//go:build unit

package catalog_test

import (
	"strings"
	"testing"

	"artshop/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTitle(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain title", input: "Sunset Over Water", want: "Sunset Over Water"},
		{name: "trims whitespace", input: "  Untitled No. 4  ", want: "Untitled No. 4"},
		{name: "maximum length", input: strings.Repeat("x", catalog.MaxTitleLength), want: strings.Repeat("x", catalog.MaxTitleLength)},
		{name: "empty", input: "", errIs: catalog.ErrEmptyTitle},
		{name: "whitespace only", input: "   ", errIs: catalog.ErrEmptyTitle},
		{name: "too long", input: strings.Repeat("x", catalog.MaxTitleLength+1), errIs: catalog.ErrTitleTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			title, err := catalog.NewTitle(tc.input)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, title.Value())
		})
	}
}

func TestNewPriceFromString(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "integer amount", input: "1200", want: "1200.00"},
		{name: "decimal amount", input: "49.99", want: "49.99"},
		{name: "zero", input: "0", want: "0.00"},
		{name: "trims whitespace", input: " 15.50 ", want: "15.50"},
		{name: "negative", input: "-1", errIs: catalog.ErrNegativePrice},
		{name: "not a number", input: "twelve", errIs: catalog.ErrInvalidPrice},
		{name: "empty", input: "", errIs: catalog.ErrInvalidPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := catalog.NewPriceFromString(tc.input)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, price.String())
		})
	}
}
