package cmd

import (
	"os"

	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/ui"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:         "info",
		Short:       "Display application information",
		Long:        `Display current configuration, database path, session and payout settings.`,
		Annotations: app.PublicAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
				cmd: cmd,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbExists := false
	if _, err := os.Stat(r.app.DBPath); err == nil {
		dbExists = true
	}

	signedInAs := ""
	if u, err := r.app.Service.Auth.CurrentUser(r.cmd.Context()); err == nil {
		signedInAs = u.Email
	}

	items := views.SystemInfoItem{
		ConfigPath:   configPath,
		DBPath:       r.app.DBPath,
		DBExists:     dbExists,
		SessionFile:  r.app.Tokens.Path(),
		LogPath:      app.ExpandPath(cfg.Log.Path),
		TaxRate:      r.app.Service.Payout.TaxRate().String(),
		Share:        r.app.Service.Payout.Share().String(),
		DeletePolicy: string(cfg.Sales.DeletePolicy),
		SignedInAs:   signedInAs,
	}

	ui.PrintL2Title("liverdesk")
	return views.RenderSystemInfo(items)
}
