package ratio

import (
	"encoding/json"
	"math"

	"finsight/pkg/core/statement"
)

// Liquidity is the current ratio (current assets / current liabilities) for
// both reported years. When either required line item is missing, Available
// is false and neither year is computed: the metric fails together so a
// caller can never show one side of it without the other.
type Liquidity struct {
	Available bool    `json:"available"`
	Prior     float64 `json:"prior"`
	Current   float64 `json:"current"`
	Delta     float64 `json:"delta"`
}

// ComputeLiquidity derives the liquidity metric from the coerced statement.
// Absence of a required row is a recoverable condition, reported to the user
// as a warning, unlike the missing TOTAL ASSETS row which aborts the engine.
func ComputeLiquidity(rows []statement.RawRow) Liquidity {
	ca, okAssets := Resolve(rows, CurrentAssets)
	cl, okLiabilities := Resolve(rows, CurrentLiabilities)
	if !okAssets || !okLiabilities {
		return Liquidity{}
	}

	prior := rows[ca].Prior / rows[cl].Prior
	current := rows[ca].Current / rows[cl].Current
	return Liquidity{
		Available: true,
		Prior:     prior,
		Current:   current,
		Delta:     current - prior,
	}
}

// MarshalJSON emits null for non-finite ratios. A zero liabilities row
// divides to ±Inf, which encoding/json refuses to serialize.
func (l Liquidity) MarshalJSON() ([]byte, error) {
	finite := func(v float64) *float64 {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil
		}
		return &v
	}
	return json.Marshal(struct {
		Available bool     `json:"available"`
		Prior     *float64 `json:"prior"`
		Current   *float64 `json:"current"`
		Delta     *float64 `json:"delta"`
	}{l.Available, finite(l.Prior), finite(l.Current), finite(l.Delta)})
}
