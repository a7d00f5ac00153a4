package user

import (
	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/ui"
	"github.com/hance08/liverdesk/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewAddCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Create an operator account",
		Long: `Create an operator account. The first account can be created without
signing in; after that only a signed-in operator can add more.`,
		Annotations: app.PublicAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{app: a, cmd: cmd}
			return runner.Run()
		},
	}
}

func (r *addRunner) Run() error {
	ctx := r.cmd.Context()
	auth := r.app.Service.Auth

	hasUsers, err := auth.HasUsers(ctx)
	if err != nil {
		return err
	}
	if hasUsers {
		if _, err := auth.CurrentUser(ctx); err != nil {
			return err
		}
	} else {
		pterm.Info.Println("No operator accounts yet, creating the first one")
	}

	email, password, err := prompts.PromptCredentials("New operator", true)
	if err != nil {
		return err
	}

	u, err := auth.Register(ctx, email, password)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Operator %s created\n", u.Email)
	if !hasUsers {
		pterm.Info.Println("Run 'liverdesk login' to sign in")
	}
	ui.Separator()
	return nil
}
