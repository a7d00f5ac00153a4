package utils

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hance08/liverdesk/internal/constants"
)

// FormatYen renders a whole-unit amount as "¥1,234".
func FormatYen(amount int64) string {
	if amount < 0 {
		return "-" + constants.CurrencySymbol + humanize.Comma(-amount)
	}
	return constants.CurrencySymbol + humanize.Comma(amount)
}

// FormatDate shows the calendar day a sale was booked on.
func FormatDate(t time.Time) string {
	return t.UTC().Format(constants.DateFormat)
}
