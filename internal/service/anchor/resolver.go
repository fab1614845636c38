// Package anchor resolves the delivery convention of firing reminders at
// 09:00 in the couple's timezone rather than at an arbitrary UTC hour.
// Two strategies exist: a timezone-aware resolver and the legacy resolver
// that kept every instant at UTC midnight (09:00 KST for the original
// Korean audience).
package anchor

import (
	"time"

	"github.com/daydate-app/plan-notification-scheduling/internal/domain"
)

// DeliveryHour is the local hour of day at which date-anchored
// notifications fire.
const DeliveryHour = 9

// Resolver converts calendar dates into delivery instants under one
// timezone convention. Implementations are stateless and safe for
// concurrent use.
type Resolver interface {
	// MorningOf returns the UTC instant corresponding to DeliveryHour
	// on the given calendar date.
	MorningOf(date domain.CalendarDate) time.Time
	// DateOf returns the calendar date of t in the resolver's zone.
	DateOf(t time.Time) domain.CalendarDate
	// Zone reports the zone identifier for logging.
	Zone() string
}
