package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/hance08/liverdesk/internal/constants"
	"github.com/hance08/liverdesk/internal/model"
)

// Required returns a form validator for a mandatory text field.
func Required(field string) func(string) error {
	return func(s string) error {
		return validateText(field, s)
	}
}

func validateText(field, value string) error {
	value = strings.TrimSpace(value)

	if value == "" {
		return invalidf("%s can't be empty", field)
	}
	if utf8.RuneCountInString(value) > constants.MaxFieldLen {
		return invalidf("%s too long (max %d characters)", field, constants.MaxFieldLen)
	}
	return nil
}

// ValidateLiver checks that every liver field is filled in.
func ValidateLiver(l *model.Liver) error {
	fields := []struct {
		name  string
		value string
	}{
		{"real name", l.RealName},
		{"display name", l.DisplayName},
		{"bank name", l.BankName},
		{"branch name", l.BranchName},
		{"account type", l.AccountType},
		{"account number", l.AccountNumber},
		{"account holder", l.AccountHolder},
	}

	for _, f := range fields {
		if err := validateText(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}
