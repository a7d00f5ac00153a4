package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/liverdesk/internal/service"
	"github.com/hance08/liverdesk/internal/validation"
)

// PromptLiverForm asks for every liver field. Fields of in are used as the
// starting values, so the same form serves create and edit.
func PromptLiverForm(title string, in service.LiverInput) (service.LiverInput, error) {
	out := in

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().Title("Display Name:").Value(&out.DisplayName).Validate(validation.Required("display name")),
			huh.NewInput().Title("Real Name:").Value(&out.RealName).Validate(validation.Required("real name")),
		),
		huh.NewGroup(
			huh.NewInput().Title("Bank Name:").Value(&out.BankName).Validate(validation.Required("bank name")),
			huh.NewInput().Title("Branch Name:").Value(&out.BranchName).Validate(validation.Required("branch name")),
			huh.NewSelect[string]().
				Title("Account Type:").
				Options(accountTypeOptions(out.AccountType)...).
				Value(&out.AccountType),
			huh.NewInput().Title("Account Number:").Value(&out.AccountNumber).Validate(validation.Required("account number")),
			huh.NewInput().Title("Account Holder:").
				Description("As printed on the passbook, usually katakana").
				Value(&out.AccountHolder).
				Validate(validation.Required("account holder")),
		),
	)

	if err := form.Run(); err != nil {
		return in, err
	}
	return out, nil
}

// accountTypeOptions keeps an existing non-standard value selectable.
func accountTypeOptions(current string) []huh.Option[string] {
	types := []string{"Savings", "Checking", "Current"}
	found := current == ""
	for _, t := range types {
		if t == current {
			found = true
		}
	}
	if !found {
		types = append(types, current)
	}
	return huh.NewOptions(types...)
}
