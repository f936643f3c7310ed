package engine

import (
	"log/slog"

	"github.com/talgya/king/internal/economy"
	"github.com/talgya/king/internal/prompt"
)

// LoadReign asks the ruler for the values of an interrupted game and
// continues it with the following year. A negative answer to any question
// abandons the load and reports false.
func LoadReign(d Deps) (*Reign, bool, error) {
	maxTerm := float64(d.Tuning.MaxTerm)

	fields := []struct {
		prompt string
		rules  []prompt.Rule
		value  float64
	}{
		{prompt: SavedYearsPrompt, rules: []prompt.Rule{
			prompt.Require(func(v float64) bool { return v < maxTerm }, prompt.Text(SavedYearsError(d.Tuning.MaxTerm))),
		}},
		{prompt: SavedTreasuryPrompt},
		{prompt: SavedCountrymenPrompt},
		{prompt: SavedWorkersPrompt},
		{prompt: SavedLandPrompt, rules: []prompt.Rule{
			prompt.Require(func(v float64) bool { return v > 1000 && v <= 2000 }, prompt.Text(SavedLandError)),
		}},
	}

	for i := range fields {
		v, ok, err := prompt.Plain(d.IO, fields[i].prompt, fields[i].rules...)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		fields[i].value = v
	}

	years := fields[0].value
	c := economy.RestoreCountry(fields[1].value, fields[2].value, fields[3].value, fields[4].value)
	r := RestoreReign(d, "", c, int(years)+1)

	slog.Info("reign loaded from saved values",
		"id", r.ID,
		"years", years,
		"rallods", c.Rallods(),
		"countrymen", c.Countrymen(),
		"workers", c.Workers(),
		"land", c.ArableLand(),
	)
	return r, true, nil
}
