package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	MaxTerm int `yaml:"max_term"`

	Prices     Prices     `yaml:"prices"`
	Population Population `yaml:"population"`
	Harvest    Harvest    `yaml:"harvest"`
	Tourism    Tourism    `yaml:"tourism"`
}

type Prices struct {
	LandValueMin    int     `yaml:"land_value_min"`
	LandValueMax    int     `yaml:"land_value_max"`
	PlantingCostMin int     `yaml:"planting_cost_min"`
	PlantingCostMax int     `yaml:"planting_cost_max"`
	DriftSpread     float64 `yaml:"drift_spread"`
	DriftFrequency  float64 `yaml:"drift_frequency"`
}

type Population struct {
	RallodsPerCountryman    float64 `yaml:"rallods_per_countryman"`
	PollutionControlUnit    float64 `yaml:"pollution_control_unit"`
	FuneralCost             float64 `yaml:"funeral_cost"`
	MaxStarvationDeaths     int     `yaml:"max_starvation_deaths"`
	MinCountrymen           int     `yaml:"min_countrymen"`
	HoardThreshold          float64 `yaml:"hoard_threshold"`
	NewWorkersFloor         int     `yaml:"new_workers_floor"`
	IndustryLandPerEmigrant float64 `yaml:"industry_land_per_emigrant"`
}

type Harvest struct {
	PollutionLossFactor float64 `yaml:"pollution_loss_factor"`
	PriceShare          float64 `yaml:"price_share"`
}

type Tourism struct {
	IncomePerCountryman float64 `yaml:"income_per_countryman"`
	RandomIncome        float64 `yaml:"random_income"`
	LossPerIndustryMile float64 `yaml:"loss_per_industry_mile"`
}

// Default returns the balance the game ships with.
func Default() Tuning {
	return Tuning{
		MaxTerm: 8,
		Prices: Prices{
			LandValueMin:    95,
			LandValueMax:    105,
			PlantingCostMin: 10,
			PlantingCostMax: 15,
			DriftSpread:     5,
			DriftFrequency:  0.35,
		},
		Population: Population{
			RallodsPerCountryman:    100,
			PollutionControlUnit:    25,
			FuneralCost:             9,
			MaxStarvationDeaths:     200,
			MinCountrymen:           343,
			HoardThreshold:          500,
			NewWorkersFloor:         20,
			IndustryLandPerEmigrant: 50,
		},
		Harvest: Harvest{
			PollutionLossFactor: 0.5,
			PriceShare:          0.5,
		},
		Tourism: Tourism{
			IncomePerCountryman: 22,
			RandomIncome:        500,
			LossPerIndustryMile: 15,
		},
	}
}

// Load reads a tuning file. Fields missing from the file keep their defaults.
func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

// Validate rejects balance values the year loop cannot work with.
func (t Tuning) Validate() error {
	if t.MaxTerm <= 0 {
		return fmt.Errorf("max_term must be positive, got %d", t.MaxTerm)
	}
	if t.Prices.LandValueMin <= 0 || t.Prices.LandValueMax <= t.Prices.LandValueMin {
		return fmt.Errorf("land value range [%d, %d) is empty or not positive",
			t.Prices.LandValueMin, t.Prices.LandValueMax)
	}
	if float64(t.Prices.LandValueMin) <= t.Prices.DriftSpread {
		return fmt.Errorf("drift_spread %.1f would let land value reach zero", t.Prices.DriftSpread)
	}
	if t.Prices.PlantingCostMin <= 0 || t.Prices.PlantingCostMax <= t.Prices.PlantingCostMin {
		return fmt.Errorf("planting cost range [%d, %d) is empty or not positive",
			t.Prices.PlantingCostMin, t.Prices.PlantingCostMax)
	}
	if t.Population.RallodsPerCountryman <= 0 || t.Population.PollutionControlUnit <= 0 ||
		t.Population.IndustryLandPerEmigrant <= 0 {
		return fmt.Errorf("population divisors must be positive")
	}
	return nil
}
