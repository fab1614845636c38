package anchor

import (
	"errors"
	"testing"
	"time"

	"github.com/daydate-app/plan-notification-scheduling/internal/domain"
)

func TestForZoneUnknown(t *testing.T) {
	_, err := ForZone("Mars/Olympus_Mons")
	if !errors.Is(err, domain.ErrUnknownTimezone) {
		t.Errorf("error = %v, want %v", err, domain.ErrUnknownTimezone)
	}
}

func TestZoneResolverMorningOf(t *testing.T) {
	tests := []struct {
		name string
		zone string
		date domain.CalendarDate
		want time.Time
	}{
		{
			name: "seoul morning is utc midnight",
			zone: "Asia/Seoul",
			date: domain.CalendarDate{Year: 2026, Month: time.March, Day: 15},
			want: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "new york standard time",
			zone: "America/New_York",
			date: domain.CalendarDate{Year: 2026, Month: time.January, Day: 10},
			want: time.Date(2026, 1, 10, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "new york on spring-forward day uses daylight offset",
			zone: "America/New_York",
			date: domain.CalendarDate{Year: 2026, Month: time.March, Day: 8},
			want: time.Date(2026, 3, 8, 13, 0, 0, 0, time.UTC),
		},
		{
			name: "auckland daylight time rolls into previous utc day",
			zone: "Pacific/Auckland",
			date: domain.CalendarDate{Year: 2026, Month: time.January, Day: 15},
			want: time.Date(2026, 1, 14, 20, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, err := ForZone(tt.zone)
			if err != nil {
				t.Fatalf("ForZone(%q) returned error: %v", tt.zone, err)
			}
			got := resolver.MorningOf(tt.date)
			if !got.Equal(tt.want) {
				t.Errorf("MorningOf(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestZoneResolverDateOf(t *testing.T) {
	resolver, err := ForZone("Asia/Seoul")
	if err != nil {
		t.Fatalf("ForZone returned error: %v", err)
	}

	// 23:30 UTC is 08:30 the next day in Seoul.
	got := resolver.DateOf(time.Date(2026, 6, 19, 23, 30, 0, 0, time.UTC))
	want := domain.CalendarDate{Year: 2026, Month: time.June, Day: 20}
	if got != want {
		t.Errorf("DateOf = %v, want %v", got, want)
	}
}

func TestUTCResolver(t *testing.T) {
	resolver := UTC()

	date := domain.CalendarDate{Year: 2026, Month: time.June, Day: 20}
	if got, want := resolver.MorningOf(date), time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("MorningOf = %v, want %v", got, want)
	}

	got := resolver.DateOf(time.Date(2026, 6, 19, 23, 30, 0, 0, time.UTC))
	if want := (domain.CalendarDate{Year: 2026, Month: time.June, Day: 19}); got != want {
		t.Errorf("DateOf = %v, want %v", got, want)
	}
}
