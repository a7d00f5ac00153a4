package liver

import (
	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <liver-id>",
		Short: "Show one liver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.Service.Liver.FindLiver(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return views.RenderLiverDetail(l)
		},
	}
}
