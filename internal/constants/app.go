package constants

const (
	AppName   = "liverdesk"
	EnvPrefix = "LIVERDESK"
)

const (
	MaxFieldLen = 100
	MaxMemoLen  = 500

	// MaxAmount caps a single sale so gross and payout sums stay within int64.
	MaxAmount int64 = 1_000_000_000_000
)

const (
	// Shown wherever a sale points at a liver that no longer exists.
	UnknownLiverLabel = "unknown"
	CurrencySymbol    = "¥"
)
