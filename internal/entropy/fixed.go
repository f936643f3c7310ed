package entropy

// Fixed replays scripted fractions in [0, 1). NextFloat scales the next
// fraction by max and Next maps it onto [min, max). When the script runs out
// every draw uses 0.
type Fixed struct {
	Fractions []float64
	Draws     int
}

// NewFixed returns a Fixed source that replays fractions in order.
func NewFixed(fractions ...float64) *Fixed {
	return &Fixed{Fractions: fractions}
}

func (f *Fixed) next() float64 {
	f.Draws++
	if len(f.Fractions) == 0 {
		return 0
	}
	v := f.Fractions[0]
	f.Fractions = f.Fractions[1:]
	return v
}

func (f *Fixed) NextFloat(max float64) float64 {
	return f.next() * max
}

func (f *Fixed) Next(min, max int) int {
	if max <= min {
		f.next()
		return min
	}
	return min + int(f.next()*float64(max-min))
}
