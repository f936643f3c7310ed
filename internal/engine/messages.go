package engine

import "fmt"

const (
	StarvationMessage = "%d countrymen died of starvation."
	PollutionMessage  = "%d countrymen died of carbon-monoxide and dust inhalation."
	FuneralMessage    = "You were forced to spend %d rallods on funeral expenses."
	LandSoldMessage   = "Insufficient reserves to cover cost - land was sold."
	WorkersMessage    = "%d workers came to the country."
	ImmigrantsMessage = "%d countrymen came to the island."
	EmigrantsMessage  = "%d countrymen left the island."
	HarvestMessage    = "Of %d sq. miles planted, you harvested %d sq. miles of crops."
	CropLossMessage   = "   (Due to air and water pollution from foreign industry.)"
	CropIncomeMessage = "Making %d rallods."
	TourismMessage    = "You made %d rallods from tourist trade."
	TourismDropPrefix = "   Decrease because "

	ImpeachedMessage = "%d countrymen died in one year!!!!! Due to this extreme mismanagement, " +
		"you have not only been impeached and thrown out of office, but you have also been declared national fink!!!!"
	DespisedMessage = "Over one third of the population has died since you were elected to office. " +
		"The people (remaining) hate your guts."
	ResignedMessage = "Money was left over in the treasury which you did not spend. As a result, " +
		"some of your countrymen died of starvation. The public is enraged and you have been forced to resign."
	OverthrownMessage = "The number of foreign workers has exceeded the number of countrymen. " +
		"As a minority, they have revolted and taken over the country."
	CompletedMessage = "Congratulations!!!!!!!!!!!!!!!!!! You have successfully completed your %d year term of office. " +
		"You were, of course, extremely lucky, but nevertheless, it's quite an achievement. Goodbye and good luck."
)

// Reasons tourism income can fall, picked by year.
var tourismDropReasons = []string{
	"fish population has dwindled due to water pollution.",
	"air pollution is killing game bird population.",
	"mineral baths are being ruined by water pollution.",
	"unpleasant smog is discouraging sun bathers.",
	"hotels are looking shabby due to smog grit.",
}

// Save-state prompts.
const (
	SavedYearsPrompt      = "How many years had you been in office when interrupted? "
	SavedTreasuryPrompt   = "How much did you have in the treasury? "
	SavedCountrymenPrompt = "How many countrymen? "
	SavedWorkersPrompt    = "How many workers? "
	SavedLandPrompt       = "How many square miles of land? "

	SavedLandError = "   Come on, you started with 1000 sq. miles of farm land\n" +
		"   and 1000 sq. miles of forest land."
)

func SavedYearsError(maxTerm int) string {
	return fmt.Sprintf("   Come on, your term in office is only %d years.", maxTerm)
}
