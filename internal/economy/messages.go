package economy

import "fmt"

// Prompts and rule messages for the yearly transactions.
const (
	SellLandPrompt    = "How many square miles do you wish to sell to industry? "
	GiveRallodsPrompt = "How many rallods will you distribute among your countrymen? "
	PlantLandPrompt   = "How many square miles do you wish to plant? "
	PollutionPrompt   = "How many rallods do you wish to spend on pollution control? "

	PlantLandWorkersError = "  Sorry, but each countryman can only plant 2 sq. miles."
	NegativeAmountError   = "  Think again. The amount cannot be negative."
)

func SellLandError(farmLand float64) string {
	return fmt.Sprintf("***  Think again. You only have %.0f square miles of farm land.", farmLand)
}

func GiveRallodsError(rallods float64) string {
	return fmt.Sprintf("   Think again. You've only %.0f rallods in the treasury.", rallods)
}

func PlantLandFarmError(farmLand float64) string {
	return fmt.Sprintf("  Sorry, but you only have %.0f sq. miles of farm land.", farmLand)
}

func PlantLandFundsError(rallods float64) string {
	return fmt.Sprintf("  Think again. You've only %.0f rallods left in the treasury.", rallods)
}

func PollutionError(rallods float64) string {
	return fmt.Sprintf("Think again. You only have %.0f rallods remaining.", rallods)
}
