package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalRequest is the input of a checkout. CheckoutDate carries a calendar
// date only; the time of day is ignored.
type RentalRequest struct {
	ToolCode        string    `json:"tool_code"`
	RentalDays      int       `json:"rental_days"`
	DiscountPercent int       `json:"discount_percent"`
	CheckoutDate    time.Time `json:"checkout_date"`
}

// RentalAgreement is the result of a successful checkout. It is built once and
// never modified afterwards.
type RentalAgreement struct {
	ID                string          `json:"id"`
	ToolCode          string          `json:"tool_code"`
	ToolType          string          `json:"tool_type"`
	ToolBrand         string          `json:"tool_brand"`
	RentalDays        int             `json:"rental_days"`
	CheckoutDate      time.Time       `json:"checkout_date"`
	DueDate           time.Time       `json:"due_date"`
	ChargeDays        int             `json:"charge_days"`
	DailyRentalCharge decimal.Decimal `json:"daily_rental_charge"`
	PreDiscountCharge decimal.Decimal `json:"pre_discount_charge"`
	DiscountPercent   int             `json:"discount_percent"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	FinalCharge       decimal.Decimal `json:"final_charge"`
}
