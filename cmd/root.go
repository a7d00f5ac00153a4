package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/hance08/liverdesk/cmd/liver"
	"github.com/hance08/liverdesk/cmd/sale"
	"github.com/hance08/liverdesk/cmd/user"
	"github.com/hance08/liverdesk/cmd/withdraw"
	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/config"
	"github.com/hance08/liverdesk/internal/constants"
	"github.com/hance08/liverdesk/internal/errhandler"
	"github.com/hance08/liverdesk/internal/logger"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	application := app.New()

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "liverdesk is a back-office CLI for liver sales, payouts and withdrawals",
		Long: `liverdesk keeps the liver roster and their sales, works out what each
liver is owed, tracks which payouts have been withdrawn and ranks livers by
monthly subscription revenue.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			if err := application.Open(cfg, migrations); err != nil {
				return err
			}
			log := logger.WithFields(application.Log, map[string]interface{}{
				"command": cmd.CommandPath(),
			})
			cmd.SetContext(logger.WithContext(cmd.Context(), log))
			return requireSignIn(cmd, application)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write debug logs to stderr")

	rootCmd.AddCommand(liver.NewLiverCmd(application))
	rootCmd.AddCommand(sale.NewSaleCmd(application))
	rootCmd.AddCommand(withdraw.NewWithdrawCmd(application))
	rootCmd.AddCommand(user.NewUserCmd(application))

	rootCmd.AddCommand(NewLoginCmd(application))
	rootCmd.AddCommand(NewLogoutCmd(application))
	rootCmd.AddCommand(NewWhoamiCmd(application))
	rootCmd.AddCommand(NewRankingCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if closeErr := application.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		errhandler.HandleError(err)
	}
}

// requireSignIn stops every command not marked public until someone has
// signed in.
func requireSignIn(cmd *cobra.Command, a *app.App) error {
	if cmd.Annotations[app.AnnotationPublic] == "true" {
		return nil
	}

	u, err := a.Service.Auth.CurrentUser(cmd.Context())
	if err != nil {
		return err
	}
	log := logger.FromContext(cmd.Context())
	log.Debug().Str("user_id", u.ID).Msg("command authorized")
	return nil
}

func initConfig() error {
	v := viper.GetViper()
	config.RegisterDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := createDefaultConfig(v, appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}
	if verbose {
		cfg.Log.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return nil
}

func createDefaultConfig(v *viper.Viper, appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
