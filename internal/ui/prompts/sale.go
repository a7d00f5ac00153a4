package prompts

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/liverdesk/internal/constants"
	"github.com/hance08/liverdesk/internal/model"
	"github.com/hance08/liverdesk/internal/service"
	"github.com/hance08/liverdesk/internal/validation"
)

// PromptLiverName asks for a liver by display name. When the typed name is
// not an exact match the candidates containing it are offered instead.
func PromptLiverName(livers []*model.Liver, current string) (string, error) {
	if len(livers) == 0 {
		return "", fmt.Errorf("no livers registered, run 'liverdesk liver create' first")
	}

	names := make([]string, 0, len(livers))
	for _, l := range livers {
		names = append(names, l.DisplayName)
	}

	typed := current
	err := huh.NewInput().
		Title("Liver:").
		Description("Display name, hiragana and katakana are treated alike").
		Suggestions(names).
		Value(&typed).
		Validate(validation.Required("liver")).
		Run()
	if err != nil {
		return "", err
	}

	if l, err := service.ResolveLiver(livers, typed); err == nil {
		return l.DisplayName, nil
	}

	candidates := service.SuggestLivers(livers, typed)
	if len(candidates) == 0 {
		return "", fmt.Errorf("'%s': %w", typed, service.ErrUnknownLiver)
	}

	options := make([]string, 0, len(candidates))
	for _, l := range candidates {
		options = append(options, l.DisplayName)
	}
	return PromptSelect(fmt.Sprintf("No liver named '%s', did you mean:", typed), options, "")
}

// PromptSaleForm asks for the remaining sale fields after the liver.
func PromptSaleForm(in service.SaleInput) (service.SaleInput, error) {
	out := in
	if out.Type == "" {
		out.Type = string(model.SaleTypeSubscription)
	}
	datePlaceholder := time.Now().UTC().Format(constants.DateFormat)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount (¥):").
				Description("Gross amount in whole yen").
				Value(&out.Amount).
				Validate(validation.ValidateAmount),
			huh.NewSelect[string]().
				Title("Type:").
				Options(
					huh.NewOption(model.SaleTypeSubscription.Label(), string(model.SaleTypeSubscription)),
					huh.NewOption(model.SaleTypeDonation.Label(), string(model.SaleTypeDonation)),
				).
				Value(&out.Type),
			huh.NewInput().
				Title("Date (YYYY-MM-DD):").
				Description("Press Enter for today").
				Placeholder(datePlaceholder).
				Value(&out.Date).
				Validate(validation.ValidateDate),
			huh.NewText().
				Title("Memo:").
				Value(&out.Memo).
				Validate(validation.ValidateMemo),
		),
	)

	if err := form.Run(); err != nil {
		return in, err
	}
	return out, nil
}
