package economy

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/king/internal/entropy"
	"github.com/talgya/king/internal/prompt/prompttest"
	"github.com/talgya/king/internal/tuning"
)

type snapshot struct {
	rallods, countrymen, foreigners, arable float64
	tourism                                 int
}

func snap(c *Country) snapshot {
	return snapshot{c.rallods, c.countrymen, c.foreigners, c.arableLand, c.previousTourismIncome}
}

func TestNewCountry_TwoDrawDifference(t *testing.T) {
	rng := entropy.NewFixed(0.9, 0.1, 0.25, 0.75)

	c := NewCountry(rng)
	// 60000 + 900 - 100, 500 + 2.5 - 7.5
	assert.Equal(t, 60800.0, c.Rallods())
	assert.Equal(t, 495.0, c.Countrymen())
	assert.Equal(t, 0.0, c.Workers())
	assert.Equal(t, 1000.0, c.ArableLand())
	assert.Equal(t, 0.0, c.IndustryLand())
	assert.Equal(t, 4, rng.Draws)
}

func TestNewCountry_TruncatesTowardZero(t *testing.T) {
	c := NewCountry(entropy.NewFixed(0.0004, 0.0, 0.0, 0.07))
	// 60000.4 and 499.3 truncate to 60000 and 499.
	assert.Equal(t, 60000.0, c.Rallods())
	assert.Equal(t, 499.0, c.Countrymen())
}

func TestNewCountry_StaysNearBase(t *testing.T) {
	rng := entropy.New(11)
	for i := 0; i < 100; i++ {
		c := NewCountry(rng)
		assert.InDelta(t, 60000, c.Rallods(), 1000)
		assert.InDelta(t, 500, c.Countrymen(), 10)
	}
}

func TestRestoreCountry_RoundTrip(t *testing.T) {
	c := RestoreCountry(1234, 567, 89, 1500)
	assert.Equal(t, 1234.0, c.Rallods())
	assert.Equal(t, 567.0, c.Countrymen())
	assert.Equal(t, 89.0, c.Workers())
	assert.Equal(t, -500.0, c.IndustryLand())
	assert.True(t, c.HasWorkers())
	assert.True(t, c.HasRallods())
}

func TestSellLand(t *testing.T) {
	for _, sold := range []float64{1, 250.5, 999, 1000} {
		t.Run(fmt.Sprint(sold), func(t *testing.T) {
			c := RestoreCountry(500, 500, 0, 1000)
			s := prompttest.NewScript(sold)

			got, ok, err := c.SellLand(s, 97)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, sold, got)
			assert.Equal(t, truncate(500+sold*97), c.Rallods())
			assert.Equal(t, truncate(1000-sold), c.ArableLand())
			assert.Equal(t, 1000-c.ArableLand(), c.IndustryLand())
		})
	}
}

func TestSellLand_RejectsMoreThanFarmLand(t *testing.T) {
	c := RestoreCountry(500, 500, 0, 300)
	s := prompttest.NewScript(301, 1000, 300)

	sold, ok, err := c.SellLand(s, 100)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 300.0, sold)
	assert.Equal(t, 2, countOf(s.Lines(), SellLandError(300)))
	assert.Equal(t, 0.0, c.ArableLand())
	assert.Equal(t, 30500.0, c.Rallods())
}

func TestDistributeRallods(t *testing.T) {
	c := RestoreCountry(1000, 500, 0, 1000)
	s := prompttest.NewScript(400.9)

	given, ok, err := c.DistributeRallods(s)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 400.9, given)
	assert.Equal(t, 599.0, c.Rallods())
}

func TestDistributeRallods_OverdraftKeepsPrompting(t *testing.T) {
	c := RestoreCountry(1000, 500, 0, 1000)
	before := snap(c)
	s := prompttest.NewScript(1001, 5000, 1e9, 0)

	_, ok, err := c.DistributeRallods(s)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 4, s.Reads())
	assert.Equal(t, 3, countOf(s.Lines(), GiveRallodsError(1000)))
	assert.Equal(t, before, snap(c))
}

func TestPlantLand(t *testing.T) {
	c := RestoreCountry(1000, 100, 0, 800)
	s := prompttest.NewScript(50.5)

	planted, ok, err := c.PlantLand(s, 13)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 50.5, planted)
	// 50.5 * 13 = 656.5, truncated to 656.
	assert.Equal(t, 344.0, c.Rallods())
	assert.Equal(t, 800.0, c.ArableLand())
}

func TestPlantLand_RejectsMoreThanTwoPerCountryman(t *testing.T) {
	c := RestoreCountry(1_000_000, 100, 0, 1000)
	s := prompttest.NewScript(201, 0)

	_, ok, err := c.PlantLand(s, 10)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, s.Lines(), PlantLandPrompt+PlantLandWorkersError)
	assert.Equal(t, 1_000_000.0, c.Rallods())
}

func TestPlantLand_RejectsMoreThanFarmLand(t *testing.T) {
	c := RestoreCountry(1_000_000, 1000, 0, 150)
	s := prompttest.NewScript(151, 0)

	_, ok, err := c.PlantLand(s, 10)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, s.Output(), PlantLandFarmError(150))
}

func TestPlantLand_RejectsUnaffordable(t *testing.T) {
	c := RestoreCountry(100, 1000, 0, 1000)
	s := prompttest.NewScript(11, 10)

	planted, ok, err := c.PlantLand(s, 10)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 10.0, planted)
	assert.Equal(t, 1, countOf(s.Lines(), PlantLandPrompt+PlantLandFundsError(100)))
	assert.Equal(t, 0.0, c.Rallods())
}

func TestPlantLand_ReportsFirstBrokenRuleOnly(t *testing.T) {
	c := RestoreCountry(10, 10, 0, 5)
	s := prompttest.NewScript(100, 0)

	_, _, err := c.PlantLand(s, 10)
	require.NoError(t, err)
	out := s.Output()
	assert.Contains(t, out, PlantLandWorkersError)
	assert.NotContains(t, out, PlantLandFarmError(5))
	assert.NotContains(t, out, PlantLandFundsError(10))
}

func TestControlPollution(t *testing.T) {
	c := RestoreCountry(1000, 500, 0, 1000)
	s := prompttest.NewScript(2000, 250)

	spent, ok, err := c.ControlPollution(s)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 250.0, spent)
	assert.Equal(t, 750.0, c.Rallods())
	assert.Contains(t, s.Output(), PollutionError(1000))
}

func TestTransactions_ZeroCancelsWithoutMutation(t *testing.T) {
	tests := map[string]func(c *Country, s *prompttest.Script) (float64, bool, error){
		"sell":       func(c *Country, s *prompttest.Script) (float64, bool, error) { return c.SellLand(s, 100) },
		"distribute": func(c *Country, s *prompttest.Script) (float64, bool, error) { return c.DistributeRallods(s) },
		"plant":      func(c *Country, s *prompttest.Script) (float64, bool, error) { return c.PlantLand(s, 12) },
		"pollution":  func(c *Country, s *prompttest.Script) (float64, bool, error) { return c.ControlPollution(s) },
	}
	for name, run := range tests {
		t.Run(name, func(t *testing.T) {
			// An empty treasury would fail every spending rule; zero still cancels.
			c := RestoreCountry(0, 0, 3, 0)
			before := snap(c)
			s := prompttest.NewScript(0)

			v, ok, err := run(c, s)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Zero(t, v)
			assert.Equal(t, 1, s.Reads())
			assert.Equal(t, before, snap(c))
		})
	}
}

func TestTransactions_NegativeIsRejected(t *testing.T) {
	tests := map[string]func(c *Country, s *prompttest.Script) (float64, bool, error){
		"sell":       func(c *Country, s *prompttest.Script) (float64, bool, error) { return c.SellLand(s, 100) },
		"distribute": func(c *Country, s *prompttest.Script) (float64, bool, error) { return c.DistributeRallods(s) },
		"plant":      func(c *Country, s *prompttest.Script) (float64, bool, error) { return c.PlantLand(s, 12) },
		"pollution":  func(c *Country, s *prompttest.Script) (float64, bool, error) { return c.ControlPollution(s) },
	}
	for name, run := range tests {
		t.Run(name, func(t *testing.T) {
			c := RestoreCountry(500, 500, 0, 1000)
			before := snap(c)
			s := prompttest.NewScript(-100, -1e9, 0)

			_, ok, err := run(c, s)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, 3, s.Reads())
			assert.Equal(t, 2, strings.Count(s.Output(), NegativeAmountError))
			assert.Equal(t, before, snap(c))
			assert.GreaterOrEqual(t, c.Rallods(), 0.0)
		})
	}
}

func TestSellLand_NegativeThenValid(t *testing.T) {
	c := RestoreCountry(500, 500, 0, 1000)
	s := prompttest.NewScript(-100, 10)

	sold, ok, err := c.SellLand(s, 100)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 10.0, sold)
	assert.Equal(t, 1500.0, c.Rallods())
	assert.Equal(t, 990.0, c.ArableLand())
}

func TestTransactions_ReadErrorLeavesLedgerUnchanged(t *testing.T) {
	c := RestoreCountry(100, 100, 0, 100)
	before := snap(c)
	s := prompttest.NewScript(5000)

	_, ok, err := c.DistributeRallods(s)
	assert.False(t, ok)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, before, snap(c))
}

func TestTrySpend_Affordable(t *testing.T) {
	c := RestoreCountry(100, 500, 0, 1000)

	ok, err := c.TrySpend(40, 10)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 60.0, c.Rallods())
	assert.Equal(t, 1000.0, c.ArableLand())
}

func TestTrySpend_ShortfallSeizesLand(t *testing.T) {
	c := RestoreCountry(40, 500, 0, 1000)

	ok, err := c.TrySpend(100, 10)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0.0, c.Rallods())
	assert.Equal(t, 994.0, c.ArableLand())
	assert.Equal(t, 6.0, c.IndustryLand())
}

func TestTrySpend_ShortfallTruncatesSeizure(t *testing.T) {
	c := RestoreCountry(35, 500, 0, 1000)

	ok, err := c.TrySpend(100, 10)
	require.NoError(t, err)
	assert.False(t, ok)
	// 65 / 10 = 6.5 square miles, truncated to 6.
	assert.Equal(t, 994.0, c.ArableLand())
}

func TestTrySpend_ZeroLandValue(t *testing.T) {
	c := RestoreCountry(40, 500, 0, 1000)
	before := snap(c)

	ok, err := c.TrySpend(100, 0)
	assert.ErrorIs(t, err, ErrZeroLandValue)
	assert.False(t, ok)
	assert.Equal(t, before, snap(c))
}

func TestMutators(t *testing.T) {
	c := RestoreCountry(1000, 500, 0, 1000)

	c.RemoveTheDead(120)
	assert.Equal(t, 380.0, c.Countrymen())

	c.Migration(-30)
	assert.Equal(t, 350.0, c.Countrymen())
	c.Migration(15)
	assert.Equal(t, 365.0, c.Countrymen())

	c.AddWorkers(22)
	assert.Equal(t, 22.0, c.Workers())
	assert.True(t, c.HasWorkers())

	c.SellCrops(300)
	assert.Equal(t, 1300.0, c.Rallods())

	c.EntertainTourists(700)
	assert.Equal(t, 700, c.PreviousTourismIncome())
	assert.Equal(t, 2000.0, c.Rallods())

	c.RemoveTheDead(1000)
	assert.Equal(t, -635.0, c.Countrymen())
}

func TestDrawPrices(t *testing.T) {
	p := tuning.Default().Prices

	got := DrawPrices(entropy.NewFixed(0.5, 0.2), nil, p, 1)
	assert.Equal(t, Prices{LandValue: 100, PlantingCost: 11}, got)

	got = DrawPrices(entropy.NewFixed(0.5, 0.2), fixedTrend(-1), p, 1)
	assert.Equal(t, 95, got.LandValue)

	p.DriftSpread = 1000
	got = DrawPrices(entropy.NewFixed(0, 0), fixedTrend(-1), p, 1)
	assert.Equal(t, 1, got.LandValue)
}

type fixedTrend float64

func (f fixedTrend) At(int) float64 { return float64(f) }

type recordingFormatter struct {
	args []float64
}

func (r *recordingFormatter) Status(rallods, countrymen, foreigners, arable float64, landValue, plantingCost int) string {
	r.args = []float64{rallods, countrymen, foreigners, arable, float64(landValue), float64(plantingCost)}
	return "status"
}

func TestStatus_PassesStocksThrough(t *testing.T) {
	c := RestoreCountry(10, 20, 30, 40)
	f := &recordingFormatter{}

	assert.Equal(t, "status", c.Status(f, 99, 12))
	assert.Equal(t, []float64{10, 20, 30, 40, 99, 12}, f.args)
}

func countOf(lines []string, want string) int {
	n := 0
	for _, l := range lines {
		if l == want || l == SellLandPrompt+want || l == GiveRallodsPrompt+want {
			n++
		}
	}
	return n
}
