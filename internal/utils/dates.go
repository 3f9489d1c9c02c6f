package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	// ISODateLayout is the yyyy-mm-dd layout used by the API and config
	ISODateLayout = "2006-01-02"
	// AgreementDateLayout is the mm/dd/yy layout printed on agreements
	AgreementDateLayout = "01/02/06"
)

// ParseDate converts a yyyy-mm-dd or mm/dd/yy string into a UTC calendar date
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}

	for _, layout := range []string{ISODateLayout, AgreementDateLayout} {
		if t, err := time.ParseInLocation(layout, dateStr, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format %q, expected yyyy-mm-dd or mm/dd/yy", dateStr)
}

// FormatDate renders a date as mm/dd/yy
func FormatDate(t time.Time) string {
	return t.Format(AgreementDateLayout)
}
