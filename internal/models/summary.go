package models

// TypeTotal is the aggregate of one category for a day, as read from the store.
type TypeTotal struct {
	Type     LogEntryType
	Entries  int
	Calories int
}

// CategoryTotals is the per-category part of a DailySummary.
type CategoryTotals struct {
	Entries  int `json:"entries" example:"2"`
	Calories int `json:"calories" example:"640"`
} // @name CategoryTotals

// DailySummary totals one calendar day of log entries.
type DailySummary struct {
	Day           string                    `json:"day" example:"2020-10-01"`
	EntryCount    int                       `json:"entryCount" example:"4"`
	TotalCalories int                       `json:"totalCalories" example:"1850"`
	ByType        map[string]CategoryTotals `json:"byType"`
} // @name DailySummary
