package loan

import (
	"math"
	"time"

	"creditledger/pkg/wei"
)

const (
	BasisPoints        = 10_000
	MaxInterestRateBps = 3_000
)

// Interest truncates toward zero; the repayment amount depends on it exactly.
func Interest(principal wei.Amount, rateBps uint64) (wei.Amount, error) {
	return principal.MulDiv(rateBps, BasisPoints)
}

// DueAt returns fundedAt + units*unit, failing if the result does not fit.
func DueAt(fundedAt time.Time, units uint64, unit time.Duration) (time.Time, error) {
	if unit <= 0 {
		return time.Time{}, ErrArithmeticOverflow
	}
	if units > uint64(math.MaxInt64/int64(unit)) {
		return time.Time{}, ErrArithmeticOverflow
	}
	due := fundedAt.Add(time.Duration(units) * unit)
	if due.Before(fundedAt) {
		return time.Time{}, ErrArithmeticOverflow
	}
	return due, nil
}
