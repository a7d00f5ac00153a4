package constants

const (
	// Date Layout
	DateFormat  = "2006-01-02"
	MonthFormat = "2006-01"

	// TimestampLayout is the fixed-width ISO-8601 form sales are stored in.
	// Being fixed width keeps lexical and chronological order identical.
	TimestampLayout = "2006-01-02T15:04:05.000Z"

	// Status labels
	StatusPending   = "Pending"
	StatusWithdrawn = "Withdrawn"

	RankingMonths = 12
)
