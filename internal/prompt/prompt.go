// Package prompt reads numbers from the player and checks them against
// ordered rules, retrying until a value passes or the player cancels.
package prompt

import "fmt"

// ReadWriter is the console the game talks through.
type ReadWriter interface {
	// ReadNumber shows prompt and returns the number typed in response.
	// Rejecting non-numeric input is the implementation's job.
	ReadNumber(prompt string) (float64, error)
	Write(text string)
	WriteLine(text string)
}

// Rule pairs a check on a candidate value with the message shown when the
// check fails. Message is called only on failure, so it may read live state.
type Rule struct {
	Valid   func(v float64) bool
	Message func() string
}

// Require builds a Rule.
func Require(valid func(v float64) bool, message func() string) Rule {
	return Rule{Valid: valid, Message: message}
}

// Text returns a message producer for a fixed string.
func Text(s string) func() string {
	return func() string { return s }
}

// Cancel is the value that declines a validated read.
const Cancel = 0

// Validated reads a number under text until it passes every rule or equals
// Cancel. Rules run in order and only the first failure is reported before
// the next read. accepted is false when the player cancelled.
func Validated(rw ReadWriter, text string, rules ...Rule) (value float64, accepted bool, err error) {
	for {
		value, err = rw.ReadNumber(text)
		if err != nil {
			return 0, false, fmt.Errorf("read %q: %w", text, err)
		}
		if value == Cancel {
			return value, false, nil
		}
		if failed, ok := firstFailure(value, rules); ok {
			rw.WriteLine(failed.Message())
			continue
		}
		return value, true, nil
	}
}

// Plain reads a number under text where any negative value cancels. Zero is
// an ordinary answer. Optional rules are checked the same way as Validated.
func Plain(rw ReadWriter, text string, rules ...Rule) (value float64, accepted bool, err error) {
	for {
		value, err = rw.ReadNumber(text)
		if err != nil {
			return 0, false, fmt.Errorf("read %q: %w", text, err)
		}
		if value < 0 {
			return value, false, nil
		}
		if failed, ok := firstFailure(value, rules); ok {
			rw.WriteLine(failed.Message())
			continue
		}
		return value, true, nil
	}
}

func firstFailure(v float64, rules []Rule) (Rule, bool) {
	for _, r := range rules {
		if !r.Valid(v) {
			return r, true
		}
	}
	return Rule{}, false
}
