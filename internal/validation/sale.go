package validation

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hance08/liverdesk/internal/constants"
	"github.com/hance08/liverdesk/internal/model"
)

var amountReplacer = strings.NewReplacer(constants.CurrencySymbol, "", ",", "", "円", "")

// ParseAmount reads a whole-unit amount such as "1500", "1,500" or "¥1,500".
func ParseAmount(s string) (int64, error) {
	raw := strings.TrimSpace(amountReplacer.Replace(s))
	if raw == "" {
		return 0, invalidf("amount is required")
	}

	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalidf("amount '%s' is not a whole number", s)
	}
	if amount <= 0 {
		return 0, invalidf("amount must be greater than 0")
	}
	if amount > constants.MaxAmount {
		return 0, invalidf("amount must not exceed %d", constants.MaxAmount)
	}
	return amount, nil
}

// ValidateAmount is the form validator form of ParseAmount.
func ValidateAmount(s string) error {
	_, err := ParseAmount(s)
	return err
}

func ParseSaleType(s string) (model.SaleType, error) {
	t, err := model.ParseSaleType(s)
	if err != nil {
		return "", invalidf("%v", err)
	}
	return t, nil
}

// ParseSaleDate accepts YYYY-MM-DD (midnight UTC) or a full RFC 3339
// timestamp. An empty string means now.
func ParseSaleDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now.UTC(), nil
	}

	if t, err := time.Parse(constants.DateFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, invalidf("invalid date '%s', use YYYY-MM-DD", s)
}

func ValidateDate(s string) error {
	_, err := ParseSaleDate(s, time.Now())
	return err
}

func ValidateMemo(s string) error {
	if utf8.RuneCountInString(s) > constants.MaxMemoLen {
		return invalidf("memo too long (max %d characters)", constants.MaxMemoLen)
	}
	return nil
}
