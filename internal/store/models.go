package store

import (
	"fmt"
	"time"

	"github.com/hance08/liverdesk/internal/constants"
)

// Order selects the sort field and direction of a list query.
// The zero value keeps insertion order.
type Order struct {
	Field string
	Desc  bool
}

var (
	SalesByDateDesc     = Order{Field: "date", Desc: true}
	LiversByDisplayName = Order{Field: "display_name"}
	Unordered           = Order{}
)

var (
	liverOrderFields = map[string]bool{"display_name": true, "real_name": true, "created_at": true}
	saleOrderFields  = map[string]bool{"date": true, "amount": true, "liver_id": true}
)

func (o Order) clause(allowed map[string]bool) (string, error) {
	if o.Field == "" {
		return "ORDER BY rowid", nil
	}
	if !allowed[o.Field] {
		return "", fmt.Errorf("can not order by '%s'", o.Field)
	}

	dir := "ASC"
	if o.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s, rowid %s", o.Field, dir, dir), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(constants.TimestampLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored timestamp '%s': %w", s, err)
	}
	return t.UTC(), nil
}
