package liver

import (
	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Search string
}

type listRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *listFlags
}

func NewListCmd(a *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List livers",
		Long: `List livers ordered by display name.

--search matches real name, display name and account holder. Hiragana and
katakana match each other and case is ignored.`,
		Example: `  # All livers
  liverdesk liver list

  # Livers whose names contain さくら or サクラ
  liverdesk liver list -s さくら`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{app: a, cmd: cmd, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "Filter livers by name or account holder")

	return cmd
}

func (r *listRunner) Run() error {
	livers, err := r.app.Service.Liver.SearchLivers(r.cmd.Context(), r.flags.Search)
	if err != nil {
		return err
	}
	return views.RenderLiverList(livers, r.flags.Search)
}
