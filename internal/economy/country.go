// Package economy provides the national ledger: treasury, population and
// land, and the transactions a ruler can make against them each year.
package economy

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/talgya/king/internal/prompt"
)

// InitialLand is the total land of the country in square miles. Whatever is
// not arable belongs to industry.
const InitialLand = 1000

// ErrZeroLandValue is returned when a forced spend is priced against land
// worth nothing.
var ErrZeroLandValue = errors.New("land value must be non-zero")

// Random is the randomness NewCountry draws from.
type Random interface {
	NextFloat(max float64) float64
}

// StatusFormatter renders the ledger for the player.
type StatusFormatter interface {
	Status(rallods, countrymen, foreigners, arableLand float64, landValue, plantingCost int) string
}

// Country is the ruler's ledger. Stocks only change through its methods and
// every stored value is truncated toward zero.
type Country struct {
	rallods    float64
	countrymen float64
	foreigners float64
	arableLand float64

	previousTourismIncome int
}

// NewCountry creates a country with a randomized treasury and population
// around 60000 rallods and 500 countrymen.
func NewCountry(rng Random) *Country {
	rallods := truncate(60000 + rng.NextFloat(1000) - rng.NextFloat(1000))
	countrymen := truncate(500 + rng.NextFloat(10) - rng.NextFloat(10))
	return RestoreCountry(rallods, countrymen, 0, InitialLand)
}

// RestoreCountry creates a country from saved stocks.
func RestoreCountry(rallods, countrymen, foreigners, land float64) *Country {
	return &Country{
		rallods:    rallods,
		countrymen: countrymen,
		foreigners: foreigners,
		arableLand: land,
	}
}

func (c *Country) Rallods() float64    { return c.rallods }
func (c *Country) Countrymen() float64 { return c.countrymen }
func (c *Country) Workers() float64    { return c.foreigners }
func (c *Country) ArableLand() float64 { return c.arableLand }
func (c *Country) HasWorkers() bool    { return c.foreigners > 0 }
func (c *Country) HasRallods() bool    { return c.rallods > 0 }

// IndustryLand is the land not available for farming.
func (c *Country) IndustryLand() float64 { return InitialLand - c.arableLand }

// PreviousTourismIncome is the income recorded by the last EntertainTourists.
func (c *Country) PreviousTourismIncome() int { return c.previousTourismIncome }

// Status renders the current stocks and prices with f.
func (c *Country) Status(f StatusFormatter, landValue, plantingCost int) string {
	return f.Status(c.rallods, c.countrymen, c.foreigners, c.arableLand, landValue, plantingCost)
}

// ── Player transactions ──────────────────────────────────────────────

// nonNegative runs after each transaction's own rules. Zero is a cancel and
// never reaches it.
var nonNegative = prompt.Require(
	func(v float64) bool { return v >= 0 },
	prompt.Text(NegativeAmountError),
)

// SellLand asks how much farm land to sell to industry at landValue per
// square mile.
func (c *Country) SellLand(rw prompt.ReadWriter, landValue int) (float64, bool, error) {
	sold, ok, err := prompt.Validated(rw, SellLandPrompt,
		prompt.Require(
			func(v float64) bool { return v <= c.arableLand },
			func() string { return SellLandError(c.arableLand) },
		),
		nonNegative,
	)
	if err != nil {
		return 0, false, fmt.Errorf("sell land: %w", err)
	}
	if !ok {
		return sold, false, nil
	}

	c.arableLand = truncate(c.arableLand - sold)
	c.rallods = truncate(c.rallods + sold*float64(landValue))
	return sold, true, nil
}

// DistributeRallods asks how much of the treasury to hand to countrymen.
func (c *Country) DistributeRallods(rw prompt.ReadWriter) (float64, bool, error) {
	given, ok, err := prompt.Validated(rw, GiveRallodsPrompt,
		prompt.Require(
			func(v float64) bool { return v <= c.rallods },
			func() string { return GiveRallodsError(c.rallods) },
		),
		nonNegative,
	)
	if err != nil {
		return 0, false, fmt.Errorf("distribute rallods: %w", err)
	}
	if !ok {
		return given, false, nil
	}

	c.rallods = truncate(c.rallods - given)
	return given, true, nil
}

// PlantLand asks how many square miles to plant at plantingCost each. Each
// countryman can work at most two square miles.
func (c *Country) PlantLand(rw prompt.ReadWriter, plantingCost int) (float64, bool, error) {
	cost := float64(plantingCost)
	planted, ok, err := prompt.Validated(rw, PlantLandPrompt,
		prompt.Require(
			func(v float64) bool { return v <= c.countrymen*2 },
			prompt.Text(PlantLandWorkersError),
		),
		prompt.Require(
			func(v float64) bool { return v <= c.arableLand },
			func() string { return PlantLandFarmError(c.arableLand) },
		),
		prompt.Require(
			func(v float64) bool { return v*cost <= c.rallods },
			func() string { return PlantLandFundsError(c.rallods) },
		),
		nonNegative,
	)
	if err != nil {
		return 0, false, fmt.Errorf("plant land: %w", err)
	}
	if !ok {
		return planted, false, nil
	}

	c.rallods = truncate(c.rallods - truncate(planted*cost))
	return planted, true, nil
}

// ControlPollution asks how much to spend on pollution control.
func (c *Country) ControlPollution(rw prompt.ReadWriter) (float64, bool, error) {
	spent, ok, err := prompt.Validated(rw, PollutionPrompt,
		prompt.Require(
			func(v float64) bool { return v <= c.rallods },
			func() string { return PollutionError(c.rallods) },
		),
		nonNegative,
	)
	if err != nil {
		return 0, false, fmt.Errorf("control pollution: %w", err)
	}
	if !ok {
		return spent, false, nil
	}

	c.rallods = truncate(c.rallods - spent)
	return spent, true, nil
}

// ── Forced spending ──────────────────────────────────────────────────

// TrySpend charges amount the ruler cannot refuse. When the treasury falls
// short, the shortfall is covered by seizing farm land at landValue per
// square mile, the treasury is emptied and TrySpend reports false.
func (c *Country) TrySpend(amount, landValue float64) (bool, error) {
	if landValue == 0 {
		return false, ErrZeroLandValue
	}

	if c.rallods >= amount {
		c.rallods = truncate(c.rallods - amount)
		return true, nil
	}

	seized := truncate((amount - c.rallods) / landValue)
	slog.Warn("treasury short, land seized",
		"amount", amount,
		"rallods", c.rallods,
		"land_value", landValue,
		"seized", seized,
	)
	c.arableLand = truncate(c.arableLand - seized)
	c.rallods = 0
	return false, nil
}

// ── Consequences of the year ─────────────────────────────────────────

func (c *Country) RemoveTheDead(deaths int) {
	c.countrymen = truncate(c.countrymen - float64(deaths))
}

// Migration adds delta countrymen; delta is negative when people leave.
func (c *Country) Migration(delta int) {
	c.countrymen = truncate(c.countrymen + float64(delta))
}

func (c *Country) AddWorkers(n int) {
	c.foreigners = truncate(c.foreigners + float64(n))
}

func (c *Country) SellCrops(income int) {
	c.rallods = truncate(c.rallods + float64(income))
}

// EntertainTourists records this year's tourism income and banks it.
func (c *Country) EntertainTourists(income int) {
	c.previousTourismIncome = income
	c.rallods = truncate(c.rallods + float64(income))
}

// truncate drops the fractional part of v toward zero. Every stock goes
// through it after arithmetic.
func truncate(v float64) float64 {
	return math.Trunc(v)
}
