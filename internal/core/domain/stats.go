package domain

// DailyTotal is the sum of one calendar day's entries.
type DailyTotal struct {
	Date     string  `json:"date"` // YYYY-MM-DD in the service time zone
	Calories float64 `json:"calories"`
	Entries  int     `json:"entries"`
}

// DailyAverage is the mean calories over days that have at least one entry.
type DailyAverage struct {
	Average    float64
	DaysActive int
}

// CalorieBalance compares what was eaten against the maintenance baseline.
// Balance is negative while the user is under their baseline.
type CalorieBalance struct {
	Date        string  `json:"date"`
	Consumed    float64 `json:"consumed"`
	Maintenance int     `json:"maintenance"`
	Balance     float64 `json:"balance"`
	Percentage  float64 `json:"percentage"`
}
