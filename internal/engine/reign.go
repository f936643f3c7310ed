// Package engine runs a ruler's term of office one year at a time.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/king/internal/economy"
	"github.com/talgya/king/internal/entropy"
	"github.com/talgya/king/internal/prompt"
	"github.com/talgya/king/internal/tuning"
)

// Deps are the collaborators a reign plays through.
type Deps struct {
	IO     prompt.ReadWriter
	Rand   entropy.Source
	Trend  economy.Trend           // optional
	Status economy.StatusFormatter // renders the yearly status block
	Tuning tuning.Tuning
}

// Reign holds one ruler's term: the country, the year being played and
// everything notable that happened so far.
type Reign struct {
	ID      string
	Country *economy.Country
	Year    int // year of the term about to be played, starting at 1
	Events  []Event
	Prices  economy.Prices // prices of the most recent year

	// OnYear runs after every completed year, before the outcome is acted on.
	OnYear func(r *Reign) error

	deps Deps
}

// Event is a notable occurrence during the reign.
type Event struct {
	Year        int    `json:"year" db:"year"`
	Description string `json:"description" db:"description"`
	Category    string `json:"category" db:"category"` // "death", "migration", "economy", "tourism", "end"
}

// NewReign starts a fresh term with a randomized country.
func NewReign(d Deps) *Reign {
	return RestoreReign(d, "", economy.NewCountry(d.Rand), 1)
}

// RestoreReign continues a term at year with an existing country. An empty
// id gets a new one.
func RestoreReign(d Deps, id string, c *economy.Country, year int) *Reign {
	if id == "" {
		id = uuid.NewString()
	}
	return &Reign{
		ID:      id,
		Country: c,
		Year:    year,
		deps:    d,
	}
}

// YearsCompleted is the number of years already behind the ruler.
func (r *Reign) YearsCompleted() int {
	return r.Year - 1
}

// Run plays years until the reign ends. It returns early with the error of
// any failed year or OnYear callback.
func (r *Reign) Run() (Outcome, error) {
	slog.Info("reign started",
		"id", r.ID,
		"year", r.Year,
		"rallods", r.Country.Rallods(),
		"countrymen", r.Country.Countrymen(),
	)

	for {
		outcome, err := r.PlayYear()
		if err != nil {
			return outcome, err
		}
		if r.OnYear != nil {
			if err := r.OnYear(r); err != nil {
				return outcome, fmt.Errorf("after year %d: %w", r.YearsCompleted(), err)
			}
		}
		if outcome.Over() {
			slog.Info("reign ended", "id", r.ID, "outcome", outcome.String(), "years", r.YearsCompleted())
			return outcome, nil
		}
	}
}

func (r *Reign) record(category, format string, args ...any) {
	desc := fmt.Sprintf(format, args...)
	r.Events = append(r.Events, Event{
		Year:        r.Year,
		Description: desc,
		Category:    category,
	})
}

// say writes a line to the ruler and keeps it in the event log.
func (r *Reign) say(category, format string, args ...any) {
	r.record(category, format, args...)
	r.deps.IO.WriteLine(r.Events[len(r.Events)-1].Description)
}
