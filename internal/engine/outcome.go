package engine

// Outcome is how a year left the reign.
type Outcome uint8

const (
	Continue   Outcome = iota // the ruler carries on
	Completed                 // full term served
	Impeached                 // mass starvation
	Despised                  // a third of the population lost
	Resigned                  // treasury hoarded while people starved
	Overthrown                // foreign workers outnumber countrymen
)

// Over reports whether the reign has ended.
func (o Outcome) Over() bool { return o != Continue }

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Completed:
		return "completed"
	case Impeached:
		return "impeached"
	case Despised:
		return "despised"
	case Resigned:
		return "resigned"
	case Overthrown:
		return "overthrown"
	}
	return "unknown"
}

// judge decides whether the year just played ends the reign. Checks run in
// order of severity; completing the term only counts if nothing else ended it.
func (r *Reign) judge(y yearResult) Outcome {
	c := r.Country
	p := r.deps.Tuning.Population

	switch {
	case y.Starved > p.MaxStarvationDeaths:
		r.say("end", ImpeachedMessage, y.Starved)
		return Impeached
	case c.Countrymen() < float64(p.MinCountrymen):
		r.say("end", DespisedMessage)
		return Despised
	case c.Rallods() > p.HoardThreshold && y.Starved >= 2:
		r.say("end", ResignedMessage)
		return Resigned
	case c.Workers() > c.Countrymen():
		r.say("end", OverthrownMessage)
		return Overthrown
	case r.Year >= r.deps.Tuning.MaxTerm:
		r.say("end", CompletedMessage, r.deps.Tuning.MaxTerm)
		return Completed
	}
	return Continue
}
