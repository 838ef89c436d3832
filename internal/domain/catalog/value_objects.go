package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

const MaxTitleLength = 200

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Title{}, ErrEmptyTitle
	}
	if len(t) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: t}, nil
}

func (t Title) Value() string { return t.value }

// Price is a fixed-point amount. Orders capture it into their lines at order
// time; it is never recomputed for historical orders.
type Price struct {
	amount decimal.Decimal
}

func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, ErrNegativePrice
	}
	return Price{amount: amount}, nil
}

func NewPriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{}, ErrInvalidPrice
	}
	return NewPrice(amount)
}

func (p Price) Amount() decimal.Decimal { return p.amount }
func (p Price) String() string          { return p.amount.StringFixed(2) }
