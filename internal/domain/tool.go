package domain

import "github.com/shopspring/decimal"

// Tool is a catalog entry. The three charge flags decide which days of a
// rental are billed.
type Tool struct {
	Code          string          `json:"code"`
	Type          string          `json:"type"`
	Brand         string          `json:"brand"`
	DailyCharge   decimal.Decimal `json:"daily_charge"`
	WeekdayCharge bool            `json:"weekday_charge"`
	WeekendCharge bool            `json:"weekend_charge"`
	HolidayCharge bool            `json:"holiday_charge"`
}
