package datemath_test

import (
	"errors"
	"testing"
	"time"

	"student-task-priority/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/London")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser := datemath.UTC()

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "RFC3339 with Z",
			value: "2026-02-23T16:00:00Z",
			want:  time.Date(2026, 2, 23, 16, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 with offset",
			value: "2026-02-23T16:00:00+02:00",
			want:  time.Date(2026, 2, 23, 14, 0, 0, 0, time.UTC),
		},
		{
			name:  "Fractional seconds",
			value: "2026-02-23T16:00:00.250Z",
			want:  time.Date(2026, 2, 23, 16, 0, 0, 250e6, time.UTC),
		},
		{
			name:  "Naive timestamp is UTC",
			value: "2026-02-23T16:00:00",
			want:  time.Date(2026, 2, 23, 16, 0, 0, 0, time.UTC),
		},
		{
			name:  "Date only",
			value: " 2026-02-23 ",
			want:  time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Garbage",
			value:   "next tuesday-ish",
			wantErr: true,
		},
		{
			name:    "Empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnparseable) {
					t.Errorf("expected ErrUnparseable, got %v", err)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseInLocation(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := parser.Parse("2026-02-23 09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 2, 23, 2, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromUnixMillis(t *testing.T) {
	got, err := datemath.FromUnixMillis(1771862400000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2026, 2, 23, 16, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected time %v", got)
	}
}

func TestCeilDays(t *testing.T) {
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"exactly one day", now.Add(24 * time.Hour), 1},
		{"one hour", now.Add(time.Hour), 1},
		{"25 hours", now.Add(25 * time.Hour), 2},
		{"now", now, 0},
		{"three hours ago", now.Add(-3 * time.Hour), 0},
		{"two days ago", now.Add(-48 * time.Hour), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.CeilDays(now, tt.due); got != tt.want {
				t.Errorf("CeilDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCeilHalfHour(t *testing.T) {
	base := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)

	if got := datemath.CeilHalfHour(base); !got.Equal(base) {
		t.Errorf("boundary should be unchanged, got %v", got)
	}
	if got := datemath.CeilHalfHour(base.Add(time.Minute)); !got.Equal(base.Add(30 * time.Minute)) {
		t.Errorf("expected 10:30, got %v", got)
	}
	if got := datemath.CeilHalfHour(base.Add(31 * time.Minute)); !got.Equal(base.Add(time.Hour)) {
		t.Errorf("expected 11:00, got %v", got)
	}
}

func TestAtHour(t *testing.T) {
	parser := datemath.UTC()
	base := time.Date(2026, 2, 20, 15, 45, 0, 0, time.UTC)

	want := time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)
	if got := parser.AtHour(base, 9); !got.Equal(want) {
		t.Errorf("AtHour() = %v, want %v", got, want)
	}
}
