// Package console is the terminal the ruler plays on.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RetryMessage is shown when a line does not hold a number.
const RetryMessage = "!Number expected - retry input line"

// Console reads numbers line by line from in and writes to out.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Console over in and out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// ReadNumber writes prompt and parses the first field of the next line.
// Lines that are not numbers are rejected and the prompt is shown again.
// It returns io.EOF once input is exhausted.
func (c *Console) ReadNumber(prompt string) (float64, error) {
	for {
		c.Write(prompt)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, fmt.Errorf("read input: %w", err)
			}
			return 0, io.EOF
		}
		fields := strings.FieldsFunc(c.in.Text(), func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		if len(fields) > 0 {
			if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
				return v, nil
			}
		}
		c.WriteLine(RetryMessage)
	}
}

func (c *Console) Write(text string) {
	fmt.Fprint(c.out, text)
}

func (c *Console) WriteLine(text string) {
	fmt.Fprintln(c.out, text)
}
