package prompts

import (
	"time"

	"github.com/hance08/liverdesk/internal/constants"
	"github.com/hance08/liverdesk/internal/payout"
)

// PromptMonth picks one of the last twelve months, newest first.
func PromptMonth(now time.Time) (string, error) {
	options := payout.MonthOptions(now, constants.RankingMonths)
	return PromptSelect("Month:", options, options[0])
}
