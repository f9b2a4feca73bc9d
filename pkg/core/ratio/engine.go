package ratio

import (
	"errors"

	"finsight/pkg/core/statement"
)

// Epsilon replaces a zero denominator in growth and composition formulas.
// Percentages computed against a genuinely-zero baseline come out enormous
// rather than undefined; downstream consumers (display, AI prompt) expect a
// numeric value here, so this must never become a null or a NaN.
const Epsilon = 1e-9

// ErrMissingTotalAssets reports that the statement has no row matching the
// TOTAL ASSETS item. Composition shares cannot be computed without it, so
// the whole analysis aborts with no partial output.
var ErrMissingTotalAssets = errors.New("statement has no TOTAL ASSETS line item")

// Row is a RawRow extended with the derived growth and composition columns.
type Row struct {
	statement.RawRow
	GrowthPct       float64 `json:"growth_pct"`
	PriorSharePct   float64 `json:"prior_share_pct"`
	CurrentSharePct float64 `json:"current_share_pct"`
}

// Annotate computes year-over-year growth and the composition share of total
// assets for every line item. It is a pure function of the input table: row
// order is preserved, no rounding is applied, and re-running it on its own
// input fields reproduces identical derived columns.
func Annotate(rows []statement.RawRow) ([]Row, error) {
	ta, ok := Resolve(rows, TotalAssets)
	if !ok {
		return nil, ErrMissingTotalAssets
	}

	// The zero-guard applies independently to each year's total.
	totalPrior := denom(rows[ta].Prior)
	totalCurrent := denom(rows[ta].Current)

	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = Row{
			RawRow:          r,
			GrowthPct:       (r.Current - r.Prior) / denom(r.Prior) * 100,
			PriorSharePct:   r.Prior / totalPrior * 100,
			CurrentSharePct: r.Current / totalCurrent * 100,
		}
	}
	return out, nil
}

func denom(x float64) float64 {
	if x != 0 {
		return x
	}
	return Epsilon
}
