package pricing

import "math"

// RunwayInfinite is the sentinel returned when the burn rate cannot exhaust
// the available capital. Callers render it as "no aplica".
const RunwayInfinite = math.MaxFloat64

// Runway returns the months of operation left at the given monthly burn.
// Non-positive burn means capital is not being consumed.
func Runway(capital, monthlyBurn float64) float64 {
	if monthlyBurn <= 0 {
		return RunwayInfinite
	}
	return capital / monthlyBurn
}

// GrossUpResult is the pre-withholding base derived from a net value.
type GrossUpResult struct {
	BaseGravable float64 `json:"baseGravable"`
	Retencion    float64 `json:"retencion"`
}

// GrossUp computes the taxable base whose after-withholding value equals the
// given net amount. Out-of-range rates return the net value untouched with no
// withholding, keeping the function total.
func GrossUp(netValue, rate float64) GrossUpResult {
	if rate < 0 || rate >= 1 {
		return GrossUpResult{BaseGravable: netValue}
	}
	base := Round(netValue / (1 - rate))
	return GrossUpResult{BaseGravable: base, Retencion: base - Round(netValue)}
}
