package engine

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/talgya/king/internal/economy"
	"github.com/talgya/king/internal/report"
)

// Decisions are the ruler's answers for one year. A declined transaction
// leaves its field at zero.
type Decisions struct {
	Sold      float64
	Given     float64
	Planted   float64
	Pollution float64
}

type yearResult struct {
	Decisions

	Starved       int
	Polluted      int
	NewWorkers    int
	Migrants      int
	Harvested     int
	CropIncome    int
	TourismIncome int
}

// PlayYear plays the current year: draw prices, show the status, take the
// ruler's decisions, apply what follows from them and judge the result. The
// year counter advances once the year is complete.
func (r *Reign) PlayYear() (Outcome, error) {
	c := r.Country
	io := r.deps.IO

	r.Prices = economy.DrawPrices(r.deps.Rand, r.deps.Trend, r.deps.Tuning.Prices, r.Year)
	io.WriteLine(report.YearHeading(r.Year))
	io.Write(c.Status(r.deps.Status, r.Prices.LandValue, r.Prices.PlantingCost))

	d, err := r.decide()
	if err != nil {
		return Continue, fmt.Errorf("year %d: %w", r.Year, err)
	}

	y, err := r.consequences(d)
	if err != nil {
		return Continue, fmt.Errorf("year %d: %w", r.Year, err)
	}

	outcome := r.judge(y)
	slog.Info("year complete",
		"year", r.Year,
		"land_value", r.Prices.LandValue,
		"planting_cost", r.Prices.PlantingCost,
		"rallods", c.Rallods(),
		"countrymen", c.Countrymen(),
		"workers", c.Workers(),
		"arable_land", c.ArableLand(),
		"outcome", outcome.String(),
	)
	r.Year++
	return outcome, nil
}

func (r *Reign) decide() (Decisions, error) {
	var (
		d   Decisions
		err error
	)
	c := r.Country
	io := r.deps.IO

	if d.Sold, _, err = c.SellLand(io, r.Prices.LandValue); err != nil {
		return d, err
	}
	if d.Given, _, err = c.DistributeRallods(io); err != nil {
		return d, err
	}
	if c.HasRallods() {
		if d.Planted, _, err = c.PlantLand(io, r.Prices.PlantingCost); err != nil {
			return d, err
		}
	}
	if c.HasRallods() {
		if d.Pollution, _, err = c.ControlPollution(io); err != nil {
			return d, err
		}
	}
	return d, nil
}

// consequences applies the year's deaths, arrivals, harvest and tourism to
// the ledger. Every year draws the same number of random values in the same
// order, whatever the decisions were.
func (r *Reign) consequences(d Decisions) (yearResult, error) {
	c := r.Country
	t := r.deps.Tuning
	rng := r.deps.Rand
	y := yearResult{Decisions: d}
	unit := t.Population.PollutionControlUnit

	// ── Deaths ───────────────────────────────────────────────────────
	fed := d.Given / t.Population.RallodsPerCountryman
	if fed < c.Countrymen() {
		y.Starved = int(math.Trunc(c.Countrymen() - fed))
	}
	y.Polluted = int(math.Trunc(rng.NextFloat(industryLand(c))))
	if d.Pollution >= unit {
		y.Polluted = int(math.Trunc(float64(y.Polluted) / (d.Pollution / unit)))
	}

	if y.Starved > 0 {
		r.say("death", StarvationMessage, y.Starved)
	}
	if y.Polluted > 0 {
		r.say("death", PollutionMessage, y.Polluted)
	}
	if deaths := y.Starved + y.Polluted; deaths > 0 {
		funeral := float64(deaths) * t.Population.FuneralCost
		r.say("economy", FuneralMessage, int(funeral))
		paid, err := c.TrySpend(funeral, float64(r.Prices.LandValue))
		if err != nil {
			return y, fmt.Errorf("funerals: %w", err)
		}
		if !paid {
			r.say("economy", LandSoldMessage)
		}
		c.RemoveTheDead(deaths)
	}

	// ── Foreign workers follow land sold to industry ─────────────────
	arrivals := d.Sold + rng.NextFloat(10) - rng.NextFloat(20)
	if d.Sold > 0 {
		n := int(math.Trunc(arrivals))
		if !c.HasWorkers() {
			n += t.Population.NewWorkersFloor
		}
		if n > 0 {
			y.NewWorkers = n
			c.AddWorkers(n)
			r.say("migration", WorkersMessage, n)
		}
	}

	// ── Migration ────────────────────────────────────────────────────
	// Generosity and pollution control draw people in; industry and
	// pollution deaths drive them away.
	industry := industryLand(c)
	y.Migrants = int(math.Trunc((fed-c.Countrymen())/10 +
		d.Pollution/unit -
		industry/t.Population.IndustryLandPerEmigrant -
		float64(y.Polluted)/2))
	switch {
	case y.Migrants > 0:
		r.say("migration", ImmigrantsMessage, y.Migrants)
	case y.Migrants < 0:
		r.say("migration", EmigrantsMessage, -y.Migrants)
	}
	c.Migration(y.Migrants)

	// ── Harvest ──────────────────────────────────────────────────────
	lossShare := (rng.NextFloat(1) + 1.5) / 2
	if d.Planted > 0 {
		loss := math.Trunc(industry * t.Harvest.PollutionLossFactor * lossShare)
		if loss > d.Planted {
			loss = d.Planted
		}
		harvested := math.Trunc(d.Planted - loss)
		y.Harvested = int(harvested)
		y.CropIncome = int(math.Trunc(harvested * float64(r.Prices.LandValue) * t.Harvest.PriceShare))

		r.say("economy", HarvestMessage, int(d.Planted), y.Harvested)
		if loss > 0 {
			r.say("economy", "%s", CropLossMessage)
		}
		r.say("economy", CropIncomeMessage, y.CropIncome)
		c.SellCrops(y.CropIncome)
	}

	// ── Tourism ──────────────────────────────────────────────────────
	attraction := c.Countrymen()*t.Tourism.IncomePerCountryman + rng.NextFloat(t.Tourism.RandomIncome)
	blight := industry * t.Tourism.LossPerIndustryMile
	y.TourismIncome = int(math.Abs(math.Trunc(attraction - blight)))
	r.say("tourism", TourismMessage, y.TourismIncome)
	if prev := c.PreviousTourismIncome(); prev > 0 && y.TourismIncome < prev {
		reason := tourismDropReasons[r.Year%len(tourismDropReasons)]
		r.say("tourism", "%s%s", TourismDropPrefix, reason)
	}
	c.EntertainTourists(y.TourismIncome)

	return y, nil
}

// industryLand is the industrial land pollution comes from. A restored
// country can hold more farm land than InitialLand; it then has none.
func industryLand(c *economy.Country) float64 {
	return math.Max(c.IndustryLand(), 0)
}
