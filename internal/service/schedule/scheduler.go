// Package schedule computes the reminder sequence for a plan. The
// computation is pure: no clock reads, no I/O, no hidden state, so equal
// inputs always produce identical output.
package schedule

import (
	"time"

	"github.com/daydate-app/plan-notification-scheduling/internal/domain"
	"github.com/daydate-app/plan-notification-scheduling/internal/service/anchor"
	"github.com/daydate-app/plan-notification-scheduling/internal/service/message"
)

const (
	// advanceBookingDays is the lead time for the early booking nudge.
	advanceBookingDays = 14
	// immediateNudgeDelay spaces the immediate booking nudge away from
	// the plan-save moment that triggered scheduling.
	immediateNudgeDelay = 2 * time.Hour
)

// Scheduler derives notification records from a plan. The anchor
// strategy fixed at construction decides how "9 AM on date X" maps to a
// UTC instant.
type Scheduler struct {
	anchor anchor.Resolver
}

func New(a anchor.Resolver) *Scheduler {
	return &Scheduler{anchor: a}
}

// Schedule returns the ordered reminder set for the plan, using now as
// the reference instant for all days-until-event decisions. Output order
// is: booking rule, d_7, d_3, d_1, d_day, photo_nudge, with guarded
// entries omitted.
func (s *Scheduler) Schedule(plan domain.Plan, now time.Time) ([]domain.NotificationRecord, error) {
	eventDate, err := plan.EventCalendarDate()
	if err != nil {
		return nil, err
	}

	today := s.anchor.DateOf(now)
	daysUntilEvent := eventDate.DaysSince(today)

	records := make([]domain.NotificationRecord, 0, 6)

	booking, err := s.bookingRecord(plan, eventDate, today, daysUntilEvent, now)
	if err != nil {
		return nil, err
	}
	records = append(records, booking)

	if daysUntilEvent >= 7 {
		records = append(records, s.countdownRecord(plan, eventDate, 7))
	}
	if daysUntilEvent >= 3 {
		records = append(records, s.countdownRecord(plan, eventDate, 3))
	}
	if daysUntilEvent >= 1 {
		tomorrow := message.CountdownTomorrow(plan.LocationOrTitle())
		records = append(records, domain.NotificationRecord{
			PlanID:      plan.ID,
			Type:        domain.TypeD1,
			ScheduledAt: s.anchor.MorningOf(eventDate.AddDays(-1)),
			Title:       tomorrow.Title,
			Body:        tomorrow.Body,
		})
	}

	dayOf := message.DayOf(plan.Title)
	records = append(records, domain.NotificationRecord{
		PlanID:      plan.ID,
		Type:        domain.TypeDDay,
		ScheduledAt: s.anchor.MorningOf(eventDate),
		Title:       dayOf.Title,
		Body:        dayOf.Body,
	})

	photo := message.PhotoNudge(plan.Title)
	records = append(records, domain.NotificationRecord{
		PlanID:      plan.ID,
		Type:        domain.TypePhotoNudge,
		ScheduledAt: s.anchor.MorningOf(eventDate.AddDays(1)),
		Title:       photo.Title,
		Body:        photo.Body,
	})

	return records, nil
}

// bookingRecord emits exactly one of ticket_open / booking_nudge.
func (s *Scheduler) bookingRecord(
	plan domain.Plan,
	eventDate, today domain.CalendarDate,
	daysUntilEvent int,
	now time.Time,
) (domain.NotificationRecord, error) {
	if plan.HasTicketOpenDate() {
		ticketOpen, err := plan.TicketOpenCalendarDate()
		if err != nil {
			return domain.NotificationRecord{}, err
		}

		if ticketOpen.After(today) {
			content := message.TicketOpen(plan.Title)
			return domain.NotificationRecord{
				PlanID:               plan.ID,
				Type:                 domain.TypeTicketOpen,
				ScheduledAt:          s.anchor.MorningOf(ticketOpen),
				IncludeAffiliateLink: true,
				Title:                content.Title,
				Body:                 content.Body,
			}, nil
		}

		// Ticket window already open: nudge shortly after the save.
		content := message.BookingTicketedNow(plan.Title)
		return domain.NotificationRecord{
			PlanID:               plan.ID,
			Type:                 domain.TypeBookingNudge,
			ScheduledAt:          now.Add(immediateNudgeDelay),
			IncludeAffiliateLink: true,
			Title:                content.Title,
			Body:                 content.Body,
		}, nil
	}

	if daysUntilEvent >= advanceBookingDays {
		content := message.BookingAdvance(plan.Title)
		return domain.NotificationRecord{
			PlanID:               plan.ID,
			Type:                 domain.TypeBookingNudge,
			ScheduledAt:          s.anchor.MorningOf(eventDate.AddDays(-advanceBookingDays)),
			IncludeAffiliateLink: true,
			Title:                content.Title,
			Body:                 content.Body,
		}, nil
	}

	content := message.BookingLastCall(plan.Title)
	return domain.NotificationRecord{
		PlanID:               plan.ID,
		Type:                 domain.TypeBookingNudge,
		ScheduledAt:          now.Add(immediateNudgeDelay),
		IncludeAffiliateLink: true,
		Title:                content.Title,
		Body:                 content.Body,
	}, nil
}

func (s *Scheduler) countdownRecord(plan domain.Plan, eventDate domain.CalendarDate, daysBefore int) domain.NotificationRecord {
	var (
		recordType domain.NotificationType
		content    message.Content
	)
	switch daysBefore {
	case 7:
		recordType = domain.TypeD7
		content = message.CountdownWeek(plan.Title)
	case 3:
		recordType = domain.TypeD3
		content = message.CountdownThreeDays(plan.Title)
	}

	return domain.NotificationRecord{
		PlanID:               plan.ID,
		Type:                 recordType,
		ScheduledAt:          s.anchor.MorningOf(eventDate.AddDays(-daysBefore)),
		IncludeAffiliateLink: true,
		Title:                content.Title,
		Body:                 content.Body,
	}
}
