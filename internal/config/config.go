package config

import (
	"fmt"
	"time"

	"github.com/hance08/liverdesk/internal/payout"
	"github.com/spf13/viper"
)

type DeletePolicy string

const (
	DeleteAlways      DeletePolicy = "always"
	DeletePendingOnly DeletePolicy = "pending-only"
	DeleteNever       DeletePolicy = "never"
)

type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Log        LogConfig        `mapstructure:"log"`
	Session    SessionConfig    `mapstructure:"session"`
	Payout     PayoutConfig     `mapstructure:"payout"`
	Withdrawal WithdrawalConfig `mapstructure:"withdrawal"`
	Sales      SalesConfig      `mapstructure:"sales"`
	ConfigPath string           `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

type SessionConfig struct {
	Dir string        `mapstructure:"dir"`
	TTL time.Duration `mapstructure:"ttl"`
}

// PayoutConfig holds decimal strings so no precision is lost on the way in.
type PayoutConfig struct {
	TaxRate string `mapstructure:"tax_rate"`
	Share   string `mapstructure:"share"`
}

type WithdrawalConfig struct {
	ShowWithdrawn bool          `mapstructure:"show_withdrawn"`
	EnableBulk    bool          `mapstructure:"enable_bulk"`
	EnableUndo    bool          `mapstructure:"enable_undo"`
	Concurrency   int           `mapstructure:"concurrency"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type SalesConfig struct {
	DeletePolicy DeletePolicy `mapstructure:"delete_policy"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Log:      LogConfig{Level: "info", Path: ""},
		Session:  SessionConfig{Dir: "", TTL: 12 * time.Hour},
		Payout:   PayoutConfig{TaxRate: payout.DefaultTaxRate, Share: payout.DefaultShare},
		Withdrawal: WithdrawalConfig{
			ShowWithdrawn: false,
			EnableBulk:    true,
			EnableUndo:    true,
			Concurrency:   8,
			Timeout:       30 * time.Second,
		},
		Sales: SalesConfig{DeletePolicy: DeletePendingOnly},
	}
}

// RegisterDefaults makes every key known to v so that a freshly written
// config file lists all of them.
func RegisterDefaults(v *viper.Viper) {
	d := NewDefault()

	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.verbose", d.Log.Verbose)
	v.SetDefault("session.dir", d.Session.Dir)
	v.SetDefault("session.ttl", d.Session.TTL.String())
	v.SetDefault("payout.tax_rate", d.Payout.TaxRate)
	v.SetDefault("payout.share", d.Payout.Share)
	v.SetDefault("withdrawal.show_withdrawn", d.Withdrawal.ShowWithdrawn)
	v.SetDefault("withdrawal.enable_bulk", d.Withdrawal.EnableBulk)
	v.SetDefault("withdrawal.enable_undo", d.Withdrawal.EnableUndo)
	v.SetDefault("withdrawal.concurrency", d.Withdrawal.Concurrency)
	v.SetDefault("withdrawal.timeout", d.Withdrawal.Timeout.String())
	v.SetDefault("sales.delete_policy", string(d.Sales.DeletePolicy))
}

func (c *Config) Validate() error {
	switch c.Sales.DeletePolicy {
	case DeleteAlways, DeletePendingOnly, DeleteNever:
	default:
		return fmt.Errorf("invalid sales.delete_policy '%s' (must be always, pending-only or never)", c.Sales.DeletePolicy)
	}

	if c.Withdrawal.Concurrency < 1 {
		return fmt.Errorf("withdrawal.concurrency must be at least 1")
	}
	if c.Withdrawal.Timeout < 0 {
		return fmt.Errorf("withdrawal.timeout can't be negative")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}

	return nil
}
