package datemath_test

import (
	"testing"
	"time"

	"quartz/pkg/datemath"
)

func TestNewResolver(t *testing.T) {
	if _, err := datemath.NewResolver("Europe/Berlin"); err != nil {
		t.Fatalf("unexpected error creating valid resolver: %v", err)
	}
	if _, err := datemath.NewResolver(""); err != nil {
		t.Fatalf("empty timezone should default to UTC: %v", err)
	}
	if _, err := datemath.NewResolver("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolveRelative(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	// Wednesday, May 1, 2024, 15:30 UTC
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		phrase string
		want   time.Time
	}{
		{
			name:   "Bare weekday ahead in week",
			phrase: "friday",
			want:   now.AddDate(0, 0, 2),
		},
		{
			name:   "Next weekday adds a week",
			phrase: "next friday",
			want:   now.AddDate(0, 0, 9),
		},
		{
			name:   "Same weekday resolves to next week, never today",
			phrase: "this wednesday",
			want:   now.AddDate(0, 0, 7),
		},
		{
			name:   "Next same weekday",
			phrase: "next wednesday",
			want:   now.AddDate(0, 0, 14),
		},
		{
			name:   "Weekday behind in week wraps forward",
			phrase: "monday",
			want:   now.AddDate(0, 0, 5),
		},
		{
			name:   "Mixed case phrase",
			phrase: "by Next Friday please",
			want:   now.AddDate(0, 0, 9),
		},
		{
			name:   "No weekday defaults to a week out",
			phrase: "sometime soon",
			want:   now.AddDate(0, 0, 7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.ResolveRelative(tt.phrase, now)
			if !got.Equal(tt.want) {
				t.Errorf("ResolveRelative(%q) got = %v, want %v", tt.phrase, got, tt.want)
			}
			// Time of day must be preserved from now.
			if got.Hour() != now.Hour() || got.Minute() != now.Minute() {
				t.Errorf("ResolveRelative(%q) changed time of day: got %v", tt.phrase, got)
			}
		})
	}
}
