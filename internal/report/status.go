// Package report renders the ledger and the year's events as text for the
// ruler.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Formatter writes the yearly status block.
type Formatter struct{}

func (Formatter) Status(rallods, countrymen, foreigners, arableLand float64, landValue, plantingCost int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You now have %s rallods in the treasury.\n", amount(rallods))
	fmt.Fprintf(&b, "%s countrymen, ", amount(countrymen))
	if foreigners > 0 {
		fmt.Fprintf(&b, "%s foreign workers, ", amount(foreigners))
	}
	fmt.Fprintf(&b, "and %s sq. miles of land.\n", amount(arableLand))
	fmt.Fprintf(&b, "This year industry will buy land for %d rallods per square mile.\n", landValue)
	fmt.Fprintf(&b, "Land currently costs %d rallods per square mile to plant.\n", plantingCost)
	return b.String()
}

// YearHeading announces the start of a year of the term.
func YearHeading(year int) string {
	return fmt.Sprintf("\n── The %s year of your reign ──", humanize.Ordinal(year))
}

func amount(v float64) string {
	return humanize.Comma(int64(v))
}
