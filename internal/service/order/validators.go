package order

import (
	"strings"
	"time"

	"brokerage/internal/entities"
)

func isValidID(id int64) bool {
	return id > 0
}

func missingFields(newOrder entities.NewOrder) []string {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(newOrder.ObjectType) == "" {
		missing = append(missing, "objectType")
	}
	if strings.TrimSpace(newOrder.Source) == "" {
		missing = append(missing, "source")
	}
	if strings.TrimSpace(newOrder.Destination) == "" {
		missing = append(missing, "destination")
	}
	return missing
}

// parseShippingDate принимает YYYY-MM-DD и RFC3339, результат обрезается до дня в UTC.
func parseShippingDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if date, err := time.Parse(time.DateOnly, raw); err == nil {
		return date, true
	}

	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	date = date.UTC()
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), true
}

// now время перехода статуса. Микросекунды совпадают с точностью timestamptz,
// поэтому updated_at и запись в истории читаются обратно одинаковыми.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
