package refdata

// DefaultCarbonBudget is the fallback carbon budget (kg CO2) written to the
// constraint cache when a shipment declares none.
const DefaultCarbonBudget = 5000

// MinWageByCountry returns the statutory minimum wage (cents/hour) keyed by
// country code. One entry per country in the table.
func MinWageByCountry() map[string]int {
	wages := make(map[string]int, len(Countries))
	for _, c := range Countries {
		wages[c.Code] = c.MinWageCents
	}
	return wages
}

// MinMaxHoursByRegion returns, per region, the strictest (lowest) maximum
// weekly hours among the region's countries. Downstream compliance applies
// the region floor when a country-level limit is missing.
func MinMaxHoursByRegion() map[string]int {
	regions := make(map[string]int)
	for _, c := range Countries {
		if cur, ok := regions[c.Region]; !ok || c.MaxHours < cur {
			regions[c.Region] = c.MaxHours
		}
	}
	return regions
}
