package subscriptionbox

import "bdn/internal/models"

// periodDays is the flat days-per-period approximation used for the
// coarse end-date estimate. Scheduling itself advances month-based
// frequencies by real calendar months; see advance.
var periodDays = map[string]int{
	models.FrequencyWeekly:    7,
	models.FrequencyBiWeekly:  14,
	models.FrequencyMonthly:   30,
	models.FrequencyBiMonthly: 60,
	models.FrequencyQuarterly: 90,
}

// periodMonths maps the month-based frequencies to their calendar
// month increment.
var periodMonths = map[string]int{
	models.FrequencyMonthly:   1,
	models.FrequencyBiMonthly: 2,
	models.FrequencyQuarterly: 3,
}
