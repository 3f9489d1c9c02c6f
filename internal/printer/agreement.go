package printer

import (
	"fmt"
	"io"
	"strings"

	"tool-rental-backend/internal/domain"
	"tool-rental-backend/internal/utils"
)

// WriteAgreement writes a as the labelled text block handed to customers.
func WriteAgreement(w io.Writer, a *domain.RentalAgreement) error {
	lines := []struct {
		label string
		value string
	}{
		{"Tool code", a.ToolCode},
		{"Tool type", a.ToolType},
		{"Tool brand", a.ToolBrand},
		{"Rental days", fmt.Sprintf("%d", a.RentalDays)},
		{"Checkout date", utils.FormatDate(a.CheckoutDate)},
		{"Due date", utils.FormatDate(a.DueDate)},
		{"Charge days", fmt.Sprintf("%d", a.ChargeDays)},
		{"Daily rental charge", utils.FormatCurrency(a.DailyRentalCharge)},
		{"Pre-discount charge", utils.FormatCurrency(a.PreDiscountCharge)},
		{"Discount percent", fmt.Sprintf("%d%%", a.DiscountPercent)},
		{"Discount amount", utils.FormatCurrency(a.DiscountAmount)},
		{"Final charge", utils.FormatCurrency(a.FinalCharge)},
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %s\n", l.label, l.value); err != nil {
			return err
		}
	}
	return nil
}

// FormatAgreement returns the text WriteAgreement would write.
func FormatAgreement(a *domain.RentalAgreement) string {
	var b strings.Builder
	_ = WriteAgreement(&b, a)
	return b.String()
}
