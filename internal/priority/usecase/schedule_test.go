package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-task-priority/internal/model"
	"student-task-priority/internal/priority"
	"student-task-priority/internal/priority/repository/memory"
	"student-task-priority/pkg/gcalendar"
)

func seededUseCase(t *testing.T, opts Options) *implUseCase {
	t.Helper()
	repo := memory.New()
	due := at(18, 0)
	require.NoError(t, repo.SaveLatest(context.Background(), model.ScoringResult{
		ID: "stored",
		RatedTasks: []model.ScoredTask{
			{Task: model.Task{ID: "t1", Title: "Essay", Module: "History", DueAt: &due, EstimatedHours: 2}, PriorityScore: 90, PriorityBand: model.BandCritical},
			{Task: model.Task{ID: "t2", Title: "Reading", Module: "General"}, PriorityScore: 60, PriorityBand: model.BandMedium},
			{Task: model.Task{ID: "t3", Title: "Lab", Module: "Physics", EstimatedHours: 3}, PriorityScore: 50, PriorityBand: model.BandMedium},
		},
	}))
	return newTestUseCase(repo, opts)
}

type span struct {
	id         string
	start, end time.Time
}

func spans(events []priority.StudyBlock) []span {
	out := make([]span, len(events))
	for i, e := range events {
		out[i] = span{id: e.TaskID, start: e.StartAt, end: e.EndAt}
	}
	return out
}

func TestSchedule(t *testing.T) {
	uc := seededUseCase(t, Options{})

	out, err := uc.Schedule(context.Background(), priority.ScheduleInput{})
	require.NoError(t, err)

	assert.Equal(t, "stored", out.ResultID)
	assert.Equal(t, "UTC", out.Timezone)
	assert.Zero(t, out.Pushed)

	nextMorning := time.Date(2026, 2, 21, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, []span{
		// Ends right at the due time.
		{"t1", at(16, 0), at(18, 0)},
		// No estimate counts as one hour, after a 30 minute gap.
		{"t2", at(18, 30), at(19, 30)},
		// Does not fit before 21:00, moves to the next study window.
		{"t3", nextMorning, nextMorning.Add(3 * time.Hour)},
	}, spans(out.Events))

	assert.Equal(t, "evt-t1", out.Events[0].EventID)
	assert.Equal(t, eventSource, out.Events[0].Source)
	assert.Equal(t, eventStatus, out.Events[0].Status)
}

func TestSchedule_Timezone(t *testing.T) {
	uc := seededUseCase(t, Options{})

	out, err := uc.Schedule(context.Background(), priority.ScheduleInput{Timezone: "Asia/Tokyo"})
	require.NoError(t, err)

	// 12:10Z is 21:10 in Tokyo, past the window; first block opens 09:00 JST.
	require.NotEmpty(t, out.Events)
	assert.Equal(t, time.Date(2026, 2, 21, 0, 0, 0, 0, time.UTC), out.Events[0].StartAt)
	for _, e := range out.Events {
		local := e.StartAt.In(mustLoad(t, "Asia/Tokyo"))
		assert.GreaterOrEqual(t, local.Hour(), defaultDayStartHour)
		assert.LessOrEqual(t, e.EndAt.In(local.Location()).Hour(), defaultDayEndHour)
	}
}

func TestSchedule_PushToCalendar(t *testing.T) {
	cal := &fakeCalendar{
		busy:      []gcalendar.Event{{Summary: "Lecture", StartTime: at(16, 0), EndTime: at(17, 0)}},
		failTitle: "Reading",
	}
	uc := seededUseCase(t, Options{Calendar: cal, Schedule: ScheduleDefaults{CalendarID: "study"}})

	out, err := uc.Schedule(context.Background(), priority.ScheduleInput{PushToCalendar: true})
	require.NoError(t, err)

	nextMorning := time.Date(2026, 2, 21, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, []span{
		{"t1", at(17, 0), at(19, 0)},
		{"t2", at(19, 30), at(20, 30)},
		{"t3", nextMorning, nextMorning.Add(3 * time.Hour)},
	}, spans(out.Events))

	assert.Equal(t, 2, out.Pushed)
	require.Len(t, cal.created, 2)
	assert.Equal(t, "study", cal.created[0].CalendarID)
	assert.Equal(t, "https://calendar.example/t1", out.Events[0].CalendarLink)
	assert.Empty(t, out.Events[1].CalendarLink)
}

func TestSchedule_Errors(t *testing.T) {
	t.Run("invalid timezone", func(t *testing.T) {
		uc := seededUseCase(t, Options{})
		_, err := uc.Schedule(context.Background(), priority.ScheduleInput{Timezone: "Nowhere/Land"})
		assert.ErrorIs(t, err, priority.ErrInvalidTimezone)
	})

	t.Run("calendar not configured", func(t *testing.T) {
		uc := seededUseCase(t, Options{})
		_, err := uc.Schedule(context.Background(), priority.ScheduleInput{PushToCalendar: true})
		assert.ErrorIs(t, err, priority.ErrCalendarNotConfigured)
	})

	t.Run("nothing stored", func(t *testing.T) {
		uc := newTestUseCase(nil, Options{})
		_, err := uc.Schedule(context.Background(), priority.ScheduleInput{})
		assert.ErrorIs(t, err, priority.ErrNoLatestResult)
	})
}

func TestBlockLength(t *testing.T) {
	p := planner{startHour: 9, endHour: 21}
	assert.Equal(t, time.Hour, p.blockLength(0))
	assert.Equal(t, 30*time.Minute, p.blockLength(0.2))
	assert.Equal(t, 90*time.Minute, p.blockLength(1.5))
	assert.Equal(t, 8*time.Hour, p.blockLength(20))

	narrow := planner{startHour: 9, endHour: 11}
	assert.Equal(t, 2*time.Hour, narrow.blockLength(5))
}

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}
