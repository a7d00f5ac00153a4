package liver

import (
	"fmt"
	"os"

	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewImportCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <roster.yaml>",
		Short: "Import livers from a YAML roster",
		Long: `Import livers from a YAML file with a top-level "livers" list. Every entry
needs real_name, display_name, bank_name, branch_name, account_type,
account_number and account_holder. Nothing is imported if any entry is invalid.`,
		Example: `  liverdesk liver import roster.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open roster: %w", err)
			}
			defer f.Close()

			livers, err := a.Service.Liver.ImportLivers(cmd.Context(), f)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Imported %d livers\n", len(livers))
			return views.RenderLiverList(livers, "")
		},
	}
}
