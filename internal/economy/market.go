package economy

import "github.com/talgya/king/internal/tuning"

// Prices are the year's going rates: what industry pays per square mile of
// farm land and what it costs to plant one.
type Prices struct {
	LandValue    int
	PlantingCost int
}

// PriceDraws is the randomness DrawPrices needs.
type PriceDraws interface {
	Next(min, max int) int
}

// Trend shifts land prices smoothly from year to year.
type Trend interface {
	At(year int) float64
}

// DrawPrices draws the land value and planting cost for year. The land value
// is a uniform draw shifted by the trend; it never falls below 1.
func DrawPrices(rng PriceDraws, trend Trend, p tuning.Prices, year int) Prices {
	land := rng.Next(p.LandValueMin, p.LandValueMax)
	if trend != nil {
		land += int(truncate(trend.At(year) * p.DriftSpread))
	}
	if land < 1 {
		land = 1
	}
	return Prices{
		LandValue:    land,
		PlantingCost: rng.Next(p.PlantingCostMin, p.PlantingCostMax),
	}
}
