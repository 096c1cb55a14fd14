package services

// Age-banded resale percentages. Age counts whole years only; month and
// day are never consulted.
const (
	resaleRateRecent = 0.30 // age <= 2 years
	resaleRateThree  = 0.20 // age == 3 years
	resaleRateOlder  = 0.10 // age > 3 years
)

// ResaleAmount maps an item's original cost and purchase year to the
// refund offered when the item is resold rather than donated.
func ResaleAmount(originalCost float64, purchaseYear, currentYear int) float64 {
	age := currentYear - purchaseYear
	switch {
	case age <= 2:
		return originalCost * resaleRateRecent
	case age == 3:
		return originalCost * resaleRateThree
	default:
		return originalCost * resaleRateOlder
	}
}
