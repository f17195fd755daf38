// Package pricing computes order totals and loyalty points. All amounts are
// whole currency units held in int64; money never touches floating point.
package pricing

// EcoFeePerUnit is the surcharge for eco-friendly packaging, charged per
// unit of an eco-packaged line.
const EcoFeePerUnit int64 = 150

// PointsPerEcoUnit is the loyalty points earned per eco-packaged unit.
const PointsPerEcoUnit = 10

// Line is one order line as seen by the pricing engine.
type Line struct {
	UnitPrice    int64
	Quantity     int
	EcoPackaging bool
}

// Totals are the aggregate amounts for a set of lines.
type Totals struct {
	BaseTotal    int64
	EcoFeeTotal  int64
	PointsEarned int
}

// UnitEcoFee returns the per-unit eco fee snapshot stored on an order item.
func UnitEcoFee(ecoPackaging bool) int64 {
	if ecoPackaging {
		return EcoFeePerUnit
	}
	return 0
}

// Compute folds lines into aggregate totals. The eco fee scales with
// quantity, matching what the order ledger persists.
func Compute(lines []Line) Totals {
	var t Totals
	for _, l := range lines {
		t.BaseTotal += l.UnitPrice * int64(l.Quantity)
		if l.EcoPackaging {
			t.EcoFeeTotal += EcoFeePerUnit * int64(l.Quantity)
			t.PointsEarned += PointsPerEcoUnit * l.Quantity
		}
	}
	return t
}
