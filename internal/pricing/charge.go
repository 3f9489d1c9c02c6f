package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tool-rental-backend/internal/domain"
)

// ChargeWindow selects which calendar dates of a rental are inspected when
// counting excluded days.
type ChargeWindow string

const (
	// ChargeWindowInclusive inspects checkout date through due date, both
	// inclusive (rentalDays+1 dates).
	ChargeWindowInclusive ChargeWindow = "inclusive"
	// ChargeWindowAfterCheckout inspects the day after checkout through the
	// due date (rentalDays dates).
	ChargeWindowAfterCheckout ChargeWindow = "after_checkout"
)

// ParseChargeWindow converts a config value into a ChargeWindow. An empty
// value selects the inclusive window.
func ParseChargeWindow(s string) (ChargeWindow, error) {
	switch ChargeWindow(strings.ToLower(strings.TrimSpace(s))) {
	case "", ChargeWindowInclusive:
		return ChargeWindowInclusive, nil
	case ChargeWindowAfterCheckout:
		return ChargeWindowAfterCheckout, nil
	}
	return "", fmt.Errorf("unknown charge window %q", s)
}

// Calculator computes charge days and charges for a tool.
type Calculator struct {
	window ChargeWindow
}

// NewCalculator returns a Calculator using the given window. Unknown values
// fall back to ChargeWindowInclusive.
func NewCalculator(window ChargeWindow) *Calculator {
	if window != ChargeWindowAfterCheckout {
		window = ChargeWindowInclusive
	}
	return &Calculator{window: window}
}

// Window returns the charge window in use.
func (c *Calculator) Window() ChargeWindow {
	return c.window
}

// DueDate returns checkoutDate + rentalDays.
func DueDate(checkoutDate time.Time, rentalDays int) time.Time {
	return AddDays(checkoutDate, rentalDays)
}

// ChargeDays returns the number of billed days of a rental.
//
// Weekend days are subtracted when the tool does not charge weekends and
// holidays when it does not charge holidays; a date that is both is
// subtracted twice. The weekday flag is not consulted.
//
// The inclusive window inspects rentalDays+1 dates, so excluded dates can
// outnumber rental days (JAKR for one day from Saturday 2020-07-04 would
// come out at -1). The count is clamped to 0 so the final charge never
// exceeds the pre-discount charge.
func (c *Calculator) ChargeDays(tool domain.Tool, rentalDays int, checkoutDate time.Time) (int, error) {
	start := DateOnly(checkoutDate)
	end := DueDate(start, rentalDays)
	if c.window == ChargeWindowAfterCheckout {
		start = AddDays(start, 1)
	}

	nonChargeDays := 0
	if !tool.WeekendCharge {
		n, err := WeekendsInRange(start, end)
		if err != nil {
			return 0, err
		}
		nonChargeDays += n
	}
	if !tool.HolidayCharge {
		n, err := HolidaysInRange(start, end)
		if err != nil {
			return 0, err
		}
		nonChargeDays += n
	}

	chargeDays := rentalDays - nonChargeDays
	if chargeDays < 0 {
		chargeDays = 0
	}
	return chargeDays, nil
}

// PreDiscountCharge is dailyCharge × chargeDays, without rounding.
func PreDiscountCharge(dailyCharge decimal.Decimal, chargeDays int) decimal.Decimal {
	return dailyCharge.Mul(decimal.NewFromInt(int64(chargeDays)))
}

// DiscountAmount is preDiscountCharge × discountPercent/100 rounded half-up
// to cents.
func DiscountAmount(preDiscountCharge decimal.Decimal, discountPercent int) decimal.Decimal {
	return roundCents(preDiscountCharge.Mul(decimal.New(int64(discountPercent), -2)))
}

// FinalCharge is preDiscountCharge − discountAmount rounded half-up to cents.
func FinalCharge(preDiscountCharge, discountAmount decimal.Decimal) decimal.Decimal {
	return roundCents(preDiscountCharge.Sub(discountAmount))
}

// roundCents rounds to two places, half away from zero. Charges are never
// negative so this is half-up.
func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
