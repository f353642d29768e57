// Package pricing holds the pure per-item arithmetic of the model: whole-peso
// rounding, inflation indexation, unit economics, gross-up, and runway. Every
// function is total; rate and table parameters are always injected.
package pricing

import (
	"math"

	"github.com/cimera-fin/cimera/internal/macro"
)

// Round converts a value to whole pesos. This is the canonical rounding used
// by every derived field before it leaves the engine; downstream aggregation
// sums already-rounded values.
func Round(v float64) float64 {
	return math.Round(v)
}

// IndexedPrice applies compounding inflation for each year strictly between
// baseYear and targetYear. A year missing from the table compounds nothing,
// keeping the function total. The result is rounded to whole pesos.
func IndexedPrice(base float64, baseYear, targetYear int, table *macro.Table) float64 {
	if targetYear <= baseYear || table == nil {
		return Round(base)
	}
	price := base
	for year := baseYear + 1; year <= targetYear; year++ {
		p, err := table.ForYear(year)
		if err != nil {
			continue
		}
		price *= 1 + p.Inflacion
	}
	return Round(price)
}
