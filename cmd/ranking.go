package cmd

import (
	"time"

	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/ui/prompts"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/spf13/cobra"
)

type rankingFlags struct {
	Month string
}

type rankingRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *rankingFlags
}

func NewRankingCmd(a *app.App) *cobra.Command {
	flags := &rankingFlags{}

	cmd := &cobra.Command{
		Use:     "ranking",
		Aliases: []string{"rank"},
		Short:   "Rank livers by monthly subscription revenue",
		Long: `Rank livers by the subscription sales booked in one month.

Donations are not counted. Without --month a month from the last twelve
can be picked interactively.`,
		Example: `  # Pick a month interactively
  liverdesk ranking

  # Ranking for March 2025
  liverdesk ranking --month 2025-03`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &rankingRunner{app: a, cmd: cmd, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Month, "month", "m", "", "Month to rank (YYYY-MM)")

	return cmd
}

func (r *rankingRunner) Run() error {
	month := r.flags.Month
	if month == "" {
		picked, err := prompts.PromptMonth(time.Now())
		if err != nil {
			return err
		}
		month = picked
	}

	ranked, err := r.app.Service.Ranking.Monthly(r.cmd.Context(), month)
	if err != nil {
		return err
	}
	return views.RenderRanking(month, ranked)
}
