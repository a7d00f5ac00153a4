package cmd

import (
	"errors"

	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/service"
	"github.com/hance08/liverdesk/internal/ui"
	"github.com/hance08/liverdesk/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type loginRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewLoginCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:         "login",
		Short:       "Sign in as an operator",
		Long:        `Sign in with email and password. The session lasts for session.ttl.`,
		Annotations: app.PublicAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &loginRunner{app: a, cmd: cmd}
			return runner.Run()
		},
	}
}

func (r *loginRunner) Run() error {
	ctx := r.cmd.Context()
	auth := r.app.Service.Auth

	if u, err := auth.CurrentUser(ctx); err == nil {
		pterm.Info.Printf("Already signed in as %s\n", u.Email)
		return nil
	} else if !errors.Is(err, service.ErrNotSignedIn) {
		return err
	}

	email, password, err := prompts.PromptCredentials("Sign in to liverdesk", false)
	if err != nil {
		return err
	}

	u, err := auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Signed in as %s\n", u.Email)
	ui.Separator()
	return nil
}

func NewLogoutCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "logout",
		Short:       "Sign out",
		Annotations: app.PublicAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				ok, err := prompts.PromptConfirm("Sign out of this machine?", true)
				if err != nil {
					return err
				}
				if !ok {
					pterm.Info.Println("Still signed in")
					return nil
				}
			}
			if err := a.Service.Auth.SignOut(cmd.Context()); err != nil {
				return err
			}
			pterm.Success.Println("Signed out")
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
	return cmd
}

func NewWhoamiCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in operator",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.Service.Auth.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			pterm.Info.Printf("%s (since %s)\n", u.Email, u.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
}
