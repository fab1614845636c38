package schedule

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/daydate-app/plan-notification-scheduling/internal/domain"
	"github.com/daydate-app/plan-notification-scheduling/internal/service/anchor"
)

func seoulScheduler(t *testing.T) *Scheduler {
	t.Helper()
	resolver, err := anchor.ForZone("Asia/Seoul")
	if err != nil {
		t.Fatalf("failed to load Asia/Seoul: %v", err)
	}
	return New(resolver)
}

func recordTypes(records []domain.NotificationRecord) []domain.NotificationType {
	types := make([]domain.NotificationType, len(records))
	for i, r := range records {
		types[i] = r.Type
	}
	return types
}

func findRecord(t *testing.T, records []domain.NotificationRecord, typ domain.NotificationType) domain.NotificationRecord {
	t.Helper()
	for _, r := range records {
		if r.Type == typ {
			return r
		}
	}
	t.Fatalf("no %s record in %v", typ, recordTypes(records))
	return domain.NotificationRecord{}
}

func TestScheduleEmittedTypes(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		plan      domain.Plan
		wantTypes []domain.NotificationType
	}{
		{
			name: "far event with future ticket open date",
			plan: domain.Plan{
				ID:             "plan-1",
				Title:          "Concert",
				EventDate:      "2026-06-20",
				TicketOpenDate: "2026-05-01",
			},
			wantTypes: []domain.NotificationType{
				domain.TypeTicketOpen, domain.TypeD7, domain.TypeD3,
				domain.TypeD1, domain.TypeDDay, domain.TypePhotoNudge,
			},
		},
		{
			name: "far event with ticket window already open",
			plan: domain.Plan{
				ID:             "plan-2",
				Title:          "Festival",
				EventDate:      "2026-06-20",
				TicketOpenDate: "2026-03-01",
			},
			wantTypes: []domain.NotificationType{
				domain.TypeBookingNudge, domain.TypeD7, domain.TypeD3,
				domain.TypeD1, domain.TypeDDay, domain.TypePhotoNudge,
			},
		},
		{
			name: "far event without ticket window",
			plan: domain.Plan{
				ID:        "plan-3",
				Title:     "Cafe date",
				EventDate: "2026-06-20",
			},
			wantTypes: []domain.NotificationType{
				domain.TypeBookingNudge, domain.TypeD7, domain.TypeD3,
				domain.TypeD1, domain.TypeDDay, domain.TypePhotoNudge,
			},
		},
		{
			name: "event in five days skips d_7",
			plan: domain.Plan{
				ID:        "plan-4",
				Title:     "Exhibition",
				EventDate: "2026-04-06",
			},
			wantTypes: []domain.NotificationType{
				domain.TypeBookingNudge, domain.TypeD3,
				domain.TypeD1, domain.TypeDDay, domain.TypePhotoNudge,
			},
		},
		{
			name: "event in two days skips d_7 and d_3",
			plan: domain.Plan{
				ID:        "plan-5",
				Title:     "Picnic",
				EventDate: "2026-04-03",
			},
			wantTypes: []domain.NotificationType{
				domain.TypeBookingNudge,
				domain.TypeD1, domain.TypeDDay, domain.TypePhotoNudge,
			},
		},
		{
			name: "event today keeps only day-of and photo reminders",
			plan: domain.Plan{
				ID:        "plan-6",
				Title:     "Movie",
				EventDate: "2026-04-01",
			},
			wantTypes: []domain.NotificationType{
				domain.TypeBookingNudge, domain.TypeDDay, domain.TypePhotoNudge,
			},
		},
		{
			name: "past event still gets day-of and photo reminders",
			plan: domain.Plan{
				ID:        "plan-7",
				Title:     "Dinner",
				EventDate: "2026-03-20",
			},
			wantTypes: []domain.NotificationType{
				domain.TypeBookingNudge, domain.TypeDDay, domain.TypePhotoNudge,
			},
		},
	}

	scheduler := seoulScheduler(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := scheduler.Schedule(tt.plan, now)
			if err != nil {
				t.Fatalf("Schedule returned error: %v", err)
			}

			got := recordTypes(records)
			if !reflect.DeepEqual(got, tt.wantTypes) {
				t.Errorf("types = %v, want %v", got, tt.wantTypes)
			}

			ticketOpens := 0
			bookingNudges := 0
			for _, r := range records {
				if r.Type == domain.TypeTicketOpen {
					ticketOpens++
				}
				if r.Type == domain.TypeBookingNudge {
					bookingNudges++
				}
			}
			if ticketOpens+bookingNudges != 1 {
				t.Errorf("booking rule emitted %d ticket_open and %d booking_nudge, want exactly one total", ticketOpens, bookingNudges)
			}
		})
	}
}

func TestScheduleConcertScenario(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	plan := domain.Plan{
		ID:             "plan-concert",
		Title:          "Concert",
		EventDate:      "2026-06-20",
		TicketOpenDate: "2026-05-01",
	}

	records, err := seoulScheduler(t).Schedule(plan, now)
	if err != nil {
		t.Fatalf("Schedule returned error: %v", err)
	}

	// 09:00 KST is 00:00 UTC of the same date.
	wantInstants := map[domain.NotificationType]time.Time{
		domain.TypeTicketOpen: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		domain.TypeD7:         time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC),
		domain.TypeD3:         time.Date(2026, 6, 17, 0, 0, 0, 0, time.UTC),
		domain.TypeD1:         time.Date(2026, 6, 19, 0, 0, 0, 0, time.UTC),
		domain.TypeDDay:       time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		domain.TypePhotoNudge: time.Date(2026, 6, 21, 0, 0, 0, 0, time.UTC),
	}

	if len(records) != len(wantInstants) {
		t.Fatalf("got %d records (%v), want %d", len(records), recordTypes(records), len(wantInstants))
	}

	for typ, want := range wantInstants {
		r := findRecord(t, records, typ)
		if !r.ScheduledAt.Equal(want) {
			t.Errorf("%s scheduled at %v, want %v", typ, r.ScheduledAt, want)
		}
	}
}

func TestScheduleAdvanceBookingNudge(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 30, 0, 0, time.UTC)
	plan := domain.Plan{
		ID:        "plan-advance",
		Title:     "Spring festival",
		EventDate: "2026-05-20",
	}

	records, err := seoulScheduler(t).Schedule(plan, now)
	if err != nil {
		t.Fatalf("Schedule returned error: %v", err)
	}

	nudge := findRecord(t, records, domain.TypeBookingNudge)
	want := time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC) // 14 days before, 09:00 KST
	if !nudge.ScheduledAt.Equal(want) {
		t.Errorf("booking_nudge scheduled at %v, want %v", nudge.ScheduledAt, want)
	}
	if !nudge.IncludeAffiliateLink {
		t.Error("booking_nudge should include affiliate link")
	}
}

func TestScheduleImmediateNudgeDelay(t *testing.T) {
	now := time.Date(2026, 4, 1, 18, 15, 0, 0, time.UTC)

	tests := []struct {
		name      string
		plan      domain.Plan
		wantTitle string
	}{
		{
			name: "ticket window already open uses ticketed copy",
			plan: domain.Plan{
				ID:             "plan-t",
				Title:          "Musical",
				EventDate:      "2026-04-20",
				TicketOpenDate: "2026-03-01",
			},
			wantTitle: "🎟 지금 예매 가능!",
		},
		{
			name: "near event without ticket window uses last-call copy",
			plan: domain.Plan{
				ID:        "plan-n",
				Title:     "Aquarium",
				EventDate: "2026-04-08",
			},
			wantTitle: "🎟 곧이에요!",
		},
	}

	scheduler := seoulScheduler(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := scheduler.Schedule(tt.plan, now)
			if err != nil {
				t.Fatalf("Schedule returned error: %v", err)
			}

			nudge := findRecord(t, records, domain.TypeBookingNudge)
			if want := now.Add(2 * time.Hour); !nudge.ScheduledAt.Equal(want) {
				t.Errorf("booking_nudge scheduled at %v, want %v", nudge.ScheduledAt, want)
			}
			if nudge.Title != tt.wantTitle {
				t.Errorf("booking_nudge title = %q, want %q", nudge.Title, tt.wantTitle)
			}
		})
	}
}

func TestScheduleAffiliateLinkFlags(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	plan := domain.Plan{
		ID:             "plan-links",
		Title:          "Concert",
		EventDate:      "2026-06-20",
		TicketOpenDate: "2026-05-01",
	}

	records, err := seoulScheduler(t).Schedule(plan, now)
	if err != nil {
		t.Fatalf("Schedule returned error: %v", err)
	}

	wantLink := map[domain.NotificationType]bool{
		domain.TypeTicketOpen: true,
		domain.TypeD7:         true,
		domain.TypeD3:         true,
		domain.TypeD1:         false,
		domain.TypeDDay:       false,
		domain.TypePhotoNudge: false,
	}

	for _, r := range records {
		if r.IncludeAffiliateLink != wantLink[r.Type] {
			t.Errorf("%s IncludeAffiliateLink = %v, want %v", r.Type, r.IncludeAffiliateLink, wantLink[r.Type])
		}
	}
}

func TestScheduleDayBeforeUsesLocation(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		plan     domain.Plan
		wantBody string
	}{
		{
			name: "location name preferred",
			plan: domain.Plan{
				ID:           "plan-loc",
				Title:        "Concert",
				EventDate:    "2026-06-20",
				LocationName: "올림픽공원",
			},
			wantBody: "내일 올림픽공원에서 만나요!",
		},
		{
			name: "title when location missing",
			plan: domain.Plan{
				ID:        "plan-no-loc",
				Title:     "Concert",
				EventDate: "2026-06-20",
			},
			wantBody: "내일 Concert에서 만나요!",
		},
	}

	scheduler := seoulScheduler(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := scheduler.Schedule(tt.plan, now)
			if err != nil {
				t.Fatalf("Schedule returned error: %v", err)
			}
			d1 := findRecord(t, records, domain.TypeD1)
			if d1.Body != tt.wantBody {
				t.Errorf("d_1 body = %q, want %q", d1.Body, tt.wantBody)
			}
		})
	}
}

func TestScheduleCalendarDayGranularity(t *testing.T) {
	// 23:30 UTC is already the next morning in Seoul, so the event date
	// counts as today and the day-before reminder is skipped.
	now := time.Date(2026, 6, 19, 23, 30, 0, 0, time.UTC)
	plan := domain.Plan{
		ID:        "plan-granularity",
		Title:     "Brunch",
		EventDate: "2026-06-20",
	}

	records, err := seoulScheduler(t).Schedule(plan, now)
	if err != nil {
		t.Fatalf("Schedule returned error: %v", err)
	}

	want := []domain.NotificationType{domain.TypeBookingNudge, domain.TypeDDay, domain.TypePhotoNudge}
	if got := recordTypes(records); !reflect.DeepEqual(got, want) {
		t.Errorf("types = %v, want %v", got, want)
	}
}

func TestScheduleDeterministic(t *testing.T) {
	now := time.Date(2026, 4, 1, 7, 45, 12, 0, time.UTC)
	plan := domain.Plan{
		ID:             "plan-det",
		Title:          "Concert",
		EventDate:      "2026-06-20",
		TicketOpenDate: "2026-05-01",
		LocationName:   "잠실",
	}

	scheduler := seoulScheduler(t)

	first, err := scheduler.Schedule(plan, now)
	if err != nil {
		t.Fatalf("first Schedule returned error: %v", err)
	}
	second, err := scheduler.Schedule(plan, now)
	if err != nil {
		t.Fatalf("second Schedule returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated scheduling diverged:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestScheduleInvalidDates(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		plan    domain.Plan
		wantErr error
	}{
		{
			name:    "malformed event date",
			plan:    domain.Plan{ID: "p", Title: "X", EventDate: "2026/06/20"},
			wantErr: domain.ErrInvalidEventDate,
		},
		{
			name:    "empty event date",
			plan:    domain.Plan{ID: "p", Title: "X"},
			wantErr: domain.ErrInvalidEventDate,
		},
		{
			name:    "malformed ticket open date",
			plan:    domain.Plan{ID: "p", Title: "X", EventDate: "2026-06-20", TicketOpenDate: "soon"},
			wantErr: domain.ErrInvalidTicketOpenDate,
		},
	}

	scheduler := seoulScheduler(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := scheduler.Schedule(tt.plan, now)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if records != nil {
				t.Errorf("records = %v, want nil on error", records)
			}
		})
	}
}

func TestScheduleLegacyUTCAnchor(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	plan := domain.Plan{
		ID:        "plan-legacy",
		Title:     "Concert",
		EventDate: "2026-06-20",
	}

	records, err := New(anchor.UTC()).Schedule(plan, now)
	if err != nil {
		t.Fatalf("Schedule returned error: %v", err)
	}

	dday := findRecord(t, records, domain.TypeDDay)
	if want := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC); !dday.ScheduledAt.Equal(want) {
		t.Errorf("d_day scheduled at %v, want %v", dday.ScheduledAt, want)
	}
}
