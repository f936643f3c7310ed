// Package prompttest provides a scripted prompt.ReadWriter for tests.
package prompttest

import (
	"io"
	"strings"
)

// Script answers ReadNumber calls from a fixed list of inputs and records
// everything written. Once the inputs run out ReadNumber returns io.EOF.
type Script struct {
	Inputs  []float64
	Prompts []string

	out strings.Builder
}

// NewScript returns a Script that will answer with inputs in order.
func NewScript(inputs ...float64) *Script {
	return &Script{Inputs: inputs}
}

func (s *Script) ReadNumber(prompt string) (float64, error) {
	s.Prompts = append(s.Prompts, prompt)
	s.out.WriteString(prompt)
	if len(s.Inputs) == 0 {
		return 0, io.EOF
	}
	v := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	return v, nil
}

func (s *Script) Write(text string)     { s.out.WriteString(text) }
func (s *Script) WriteLine(text string) { s.out.WriteString(text + "\n") }

// Output returns everything written so far, prompts included.
func (s *Script) Output() string { return s.out.String() }

// Reads returns how many numbers have been requested.
func (s *Script) Reads() int { return len(s.Prompts) }

// Lines returns the written output split into non-empty lines.
func (s *Script) Lines() []string {
	var lines []string
	for _, l := range strings.Split(s.out.String(), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
