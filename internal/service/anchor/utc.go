package anchor

import (
	"time"

	"github.com/daydate-app/plan-notification-scheduling/internal/domain"
)

// UTCResolver is the legacy strategy: date-anchored instants land on UTC
// midnight of the target date with no timezone adjustment. Kept as the
// fallback when no usable zone can be resolved.
type UTCResolver struct{}

func UTC() *UTCResolver {
	return &UTCResolver{}
}

func (r *UTCResolver) MorningOf(date domain.CalendarDate) time.Time {
	return time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, time.UTC)
}

func (r *UTCResolver) DateOf(t time.Time) domain.CalendarDate {
	u := t.UTC()
	return domain.CalendarDate{Year: u.Year(), Month: u.Month(), Day: u.Day()}
}

func (r *UTCResolver) Zone() string {
	return "UTC"
}
