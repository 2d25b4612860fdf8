package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// SystemClock supplies the quote date in production.
type SystemClock struct{}

func (SystemClock) Today() time.Time { return time.Now() }

// FixedRates satisfies RateProvider straight from configuration.
type FixedRates struct {
	Tax      decimal.Decimal
	Shipping decimal.Decimal
}

func (r FixedRates) Rates() (decimal.Decimal, decimal.Decimal) { return r.Tax, r.Shipping }
