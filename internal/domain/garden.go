package domain

// ─── Garden Economy Types ───────────────────────────────────────────────────
// The garden is the app's resource economy: seeds are earned by recording
// transactions and spent to plant challenges; fruits are granted for
// completed challenges. One record exists per installation.

// GardenRecord holds the seed and fruit balances. Both are non-negative;
// every mutation goes through Apply, which clamps at zero.
type GardenRecord struct {
	TotalSeeds  int64 `json:"total_seeds"`
	TotalFruits int64 `json:"total_fruits"`
}

// Apply returns a copy of the record with the signed deltas applied.
// Balances saturate at zero: excess negative delta is absorbed silently,
// never an error.
func (g GardenRecord) Apply(seeds, fruits int64) GardenRecord {
	return GardenRecord{
		TotalSeeds:  ClampAdd(g.TotalSeeds, seeds),
		TotalFruits: ClampAdd(g.TotalFruits, fruits),
	}
}

// CanAfford reports whether the seed balance covers the given cost.
func (g GardenRecord) CanAfford(seeds int) bool {
	return g.TotalSeeds >= int64(seeds)
}

// ClampAdd is the single saturating-add primitive for balance arithmetic:
// current + delta, floored at zero.
func ClampAdd(current, delta int64) int64 {
	if sum := current + delta; sum > 0 {
		return sum
	}
	return 0
}
