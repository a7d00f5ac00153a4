package prompts

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/liverdesk/internal/service"
	"github.com/hance08/liverdesk/internal/ui"
	"github.com/hance08/liverdesk/internal/utils"
)

type WithdrawalAction string

const (
	ActionSelect      WithdrawalAction = "Select sales"
	ActionMarkChosen  WithdrawalAction = "Mark selected as withdrawn"
	ActionMarkAll     WithdrawalAction = "Mark all listed as withdrawn"
	ActionUndo        WithdrawalAction = "Undo a withdrawal"
	ActionSearch      WithdrawalAction = "Search"
	ActionToggleShown WithdrawalAction = "Show/hide withdrawn sales"
	ActionReload      WithdrawalAction = "Reload"
	ActionQuit        WithdrawalAction = "Quit"
)

// PromptWithdrawalAction offers the actions the view's options allow.
func PromptWithdrawalAction(opts service.ViewOptions) (WithdrawalAction, error) {
	actions := []WithdrawalAction{ActionSelect}
	if opts.EnableBulkMarking {
		actions = append(actions, ActionMarkChosen, ActionMarkAll)
	}
	if opts.EnableUndo {
		actions = append(actions, ActionUndo)
	}
	actions = append(actions, ActionSearch, ActionToggleShown, ActionReload, ActionQuit)

	options := make([]string, len(actions))
	for i, a := range actions {
		options[i] = string(a)
	}

	var choice string
	prompt := &survey.Select{
		Message: "Action:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice, ui.IconOption()); err != nil {
		return "", err
	}
	return WithdrawalAction(choice), nil
}

// PromptWithdrawalSelection lets the user tick pending sales of the view.
// It returns the ids of every ticked sale.
func PromptWithdrawalSelection(v *service.WithdrawalView) ([]string, error) {
	var labels []string
	var defaults []string
	idByLabel := make(map[string]string)

	for _, s := range v.FilteredSales() {
		if s.Withdrawn {
			continue
		}
		label := fmt.Sprintf("%s  %-12s %10s -> %s",
			utils.FormatDate(s.Date), v.LiverName(s.LiverID),
			utils.FormatYen(s.Amount), utils.FormatYen(v.Payout(s)))
		if _, dup := idByLabel[label]; dup {
			label = fmt.Sprintf("%s (%s)", label, s.ID[:min(8, len(s.ID))])
		}
		idByLabel[label] = s.ID
		labels = append(labels, label)
		if v.IsSelected(s.ID) {
			defaults = append(defaults, label)
		}
	}
	if len(labels) == 0 {
		return nil, nil
	}

	var picked []string
	prompt := &survey.MultiSelect{
		Message:  "Select sales to withdraw:",
		Options:  labels,
		Default:  defaults,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &picked, ui.IconOption()); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(picked))
	for _, label := range picked {
		ids = append(ids, idByLabel[label])
	}
	return ids, nil
}

// PromptWithdrawnSale picks one withdrawn sale of the view for undo.
func PromptWithdrawnSale(v *service.WithdrawalView) (string, error) {
	var labels []string
	idByLabel := make(map[string]string)

	for _, s := range v.Snapshot().Sales {
		if !s.Withdrawn {
			continue
		}
		label := fmt.Sprintf("%s  %-12s %10s (%s)",
			utils.FormatDate(s.Date), v.LiverName(s.LiverID), utils.FormatYen(s.Amount), s.ID[:min(8, len(s.ID))])
		idByLabel[label] = s.ID
		labels = append(labels, label)
	}
	if len(labels) == 0 {
		return "", nil
	}

	var choice string
	prompt := &survey.Select{
		Message:  "Sale to mark as pending again:",
		Options:  labels,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &choice, ui.IconOption()); err != nil {
		return "", err
	}
	return idByLabel[choice], nil
}
