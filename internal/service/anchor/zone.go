package anchor

import (
	"fmt"
	"time"

	"github.com/daydate-app/plan-notification-scheduling/internal/domain"
)

// ZoneResolver anchors delivery instants to an IANA timezone.
type ZoneResolver struct {
	name string
	loc  *time.Location
}

// ForZone loads the named IANA zone. Unrecognized identifiers fail with
// domain.ErrUnknownTimezone; callers fall back to a default zone rather
// than aborting scheduling.
func ForZone(name string) (*ZoneResolver, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTimezone, name)
	}
	return &ZoneResolver{name: name, loc: loc}, nil
}

// MorningOf computes the UTC instant of DeliveryHour local time on the
// given date. The zone's UTC offset is sampled at local noon of that
// date, so a DST transition at the target hour cannot make the result
// ambiguous; the offset subtraction overflows into the adjacent UTC day
// through normal date normalization.
func (r *ZoneResolver) MorningOf(date domain.CalendarDate) time.Time {
	noon := time.Date(date.Year, date.Month, date.Day, 12, 0, 0, 0, r.loc)
	_, offset := noon.Zone()

	utcMorning := time.Date(date.Year, date.Month, date.Day, DeliveryHour, 0, 0, 0, time.UTC)
	return utcMorning.Add(-time.Duration(offset) * time.Second)
}

func (r *ZoneResolver) DateOf(t time.Time) domain.CalendarDate {
	local := t.In(r.loc)
	return domain.CalendarDate{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

func (r *ZoneResolver) Zone() string {
	return r.name
}
