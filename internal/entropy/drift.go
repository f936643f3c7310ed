package entropy

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Drift is a smooth year-over-year market trend in [-1, 1]. Neighbouring
// years get similar values, so land prices wander instead of jumping.
type Drift struct {
	noise     opensimplex.Noise
	frequency float64
}

// NewDrift creates a drift curve for seed. frequency controls how fast the
// trend turns; 0 uses 0.35 per year.
func NewDrift(seed int64, frequency float64) *Drift {
	if frequency <= 0 {
		frequency = 0.35
	}
	return &Drift{
		noise:     opensimplex.New(seed + 100),
		frequency: frequency,
	}
}

// At returns the trend for year.
func (d *Drift) At(year int) float64 {
	if d == nil {
		return 0
	}
	v := d.noise.Eval2(float64(year)*d.frequency, 0)
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
