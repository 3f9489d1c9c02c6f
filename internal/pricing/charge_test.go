package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tool-rental-backend/internal/domain"
)

var (
	chainsaw = domain.Tool{Code: "CHNS", Type: "Chainsaw", Brand: "Stihl", DailyCharge: decimal.RequireFromString("1.49"), WeekdayCharge: true, HolidayCharge: true}
	ladder   = domain.Tool{Code: "LADW", Type: "Ladder", Brand: "Werner", DailyCharge: decimal.RequireFromString("1.99"), WeekdayCharge: true, WeekendCharge: true}
	jakd     = domain.Tool{Code: "JAKD", Type: "Jackhammer", Brand: "DeWalt", DailyCharge: decimal.RequireFromString("2.99"), WeekdayCharge: true}
	jakr     = domain.Tool{Code: "JAKR", Type: "Jackhammer", Brand: "Ridgid", DailyCharge: decimal.RequireFromString("2.99"), WeekdayCharge: true}
	always   = domain.Tool{Code: "ALWS", DailyCharge: decimal.RequireFromString("1.00"), WeekdayCharge: true, WeekendCharge: true, HolidayCharge: true}
)

func TestParseChargeWindow(t *testing.T) {
	w, err := ParseChargeWindow("")
	require.NoError(t, err)
	assert.Equal(t, ChargeWindowInclusive, w)

	w, err = ParseChargeWindow(" After_Checkout ")
	require.NoError(t, err)
	assert.Equal(t, ChargeWindowAfterCheckout, w)

	_, err = ParseChargeWindow("weekly")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown charge window")
}

func TestNewCalculator_UnknownWindow(t *testing.T) {
	assert.Equal(t, ChargeWindowInclusive, NewCalculator("bogus").Window())
	assert.Equal(t, ChargeWindowAfterCheckout, NewCalculator(ChargeWindowAfterCheckout).Window())
}

func TestChargeDays_Inclusive(t *testing.T) {
	calc := NewCalculator(ChargeWindowInclusive)

	tests := []struct {
		name     string
		tool     domain.Tool
		days     int
		checkout time.Time
		expected int
	}{
		{"JAKR over observed Independence Day", jakr, 5, date(2020, time.July, 3), 2},
		{"LADW skips holiday only", ladder, 3, date(2020, time.July, 2), 2},
		{"JAKD over Labor Day", jakd, 6, date(2015, time.September, 3), 3},
		{"CHNS new year weekend", chainsaw, 5, date(2022, time.January, 1), 3},
		{"CHNS charges the holiday", chainsaw, 5, date(2020, time.July, 2), 3},
		{"JAKR nine days", jakr, 9, date(2020, time.July, 2), 5},
		{"JAKD Labor Day 2022", jakd, 7, date(2022, time.September, 1), 4},
		{"LADW charges weekends", ladder, 7, date(2022, time.January, 1), 7},
		{"Everything chargeable", always, 10, date(2020, time.July, 1), 10},
		{"Floored at zero", jakr, 1, date(2020, time.July, 4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := calc.ChargeDays(tt.tool, tt.days, tt.checkout)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
			assert.LessOrEqual(t, n, tt.days)
		})
	}
}

func TestChargeDays_AfterCheckout(t *testing.T) {
	calc := NewCalculator(ChargeWindowAfterCheckout)

	tests := []struct {
		name     string
		tool     domain.Tool
		days     int
		checkout time.Time
		expected int
	}{
		{"JAKR starting the day before the weekend", jakr, 5, date(2020, time.July, 3), 3},
		{"LADW", ladder, 3, date(2020, time.July, 2), 2},
		{"JAKD", jakd, 6, date(2015, time.September, 3), 3},
		{"CHNS new year", chainsaw, 5, date(2022, time.January, 1), 4},
		{"JAKR nine days", jakr, 9, date(2020, time.July, 2), 5},
		{"Saturday checkout", jakr, 1, date(2020, time.July, 4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := calc.ChargeDays(tt.tool, tt.days, tt.checkout)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestChargeDays_WeekdayFlagIgnored(t *testing.T) {
	calc := NewCalculator(ChargeWindowInclusive)
	weekendOnly := jakr
	weekendOnly.WeekdayCharge = false

	a, err := calc.ChargeDays(jakr, 9, date(2020, time.July, 2))
	require.NoError(t, err)
	b, err := calc.ChargeDays(weekendOnly, 9, date(2020, time.July, 2))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDueDate(t *testing.T) {
	assert.Equal(t, date(2020, time.July, 8), DueDate(date(2020, time.July, 3), 5))
	assert.Equal(t, date(2021, time.January, 4), DueDate(date(2020, time.December, 30), 5))
	assert.Equal(t, date(2024, time.March, 1), DueDate(date(2024, time.February, 28), 2))
}

func TestPreDiscountCharge(t *testing.T) {
	assert.Equal(t, "4.47", PreDiscountCharge(chainsaw.DailyCharge, 3).StringFixed(2))
	assert.Equal(t, "14.95", PreDiscountCharge(jakr.DailyCharge, 5).StringFixed(2))
	assert.True(t, PreDiscountCharge(jakr.DailyCharge, 0).IsZero())

	// no intermediate rounding
	assert.Equal(t, "3.3675", PreDiscountCharge(decimal.RequireFromString("1.1225"), 3).String())
}

func TestDiscountAmount(t *testing.T) {
	tests := []struct {
		pre      string
		percent  int
		expected string
	}{
		{"7.45", 10, "0.75"},
		{"8.97", 20, "1.79"},
		{"3.98", 10, "0.40"},
		{"4.47", 25, "1.12"},
		{"14.95", 50, "7.48"},
		{"8.97", 0, "0.00"},
		{"8.97", 100, "8.97"},
	}

	for _, tt := range tests {
		t.Run(tt.pre, func(t *testing.T) {
			got := DiscountAmount(decimal.RequireFromString(tt.pre), tt.percent)
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}

func TestFinalCharge(t *testing.T) {
	pre := decimal.RequireFromString("14.95")
	assert.Equal(t, "7.47", FinalCharge(pre, DiscountAmount(pre, 50)).StringFixed(2))

	pre = decimal.RequireFromString("8.97")
	assert.Equal(t, "7.18", FinalCharge(pre, DiscountAmount(pre, 20)).StringFixed(2))
}

func TestFinalCharge_NeverExceedsPreDiscount(t *testing.T) {
	for _, raw := range []string{"0", "0.01", "1.49", "2.99", "7.45", "14.95", "1234.56"} {
		pre := decimal.RequireFromString(raw)
		for pct := 0; pct <= 100; pct++ {
			discount := DiscountAmount(pre, pct)
			final := FinalCharge(pre, discount)

			expected := pre.Sub(pre.Mul(decimal.NewFromInt(int64(pct))).Div(decimal.NewFromInt(100)).Round(2)).Round(2)
			assert.True(t, expected.Equal(final), "pre=%s pct=%d", raw, pct)
			assert.True(t, final.LessThanOrEqual(pre), "pre=%s pct=%d", raw, pct)
			assert.False(t, final.IsNegative(), "pre=%s pct=%d", raw, pct)
		}
	}
}
