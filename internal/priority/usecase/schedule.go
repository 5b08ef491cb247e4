package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"student-task-priority/internal/model"
	"student-task-priority/internal/priority"
	"student-task-priority/pkg/datemath"
	"student-task-priority/pkg/gcalendar"
)

// Schedule plans one study block per task of the latest result.
func (uc *implUseCase) Schedule(ctx context.Context, input priority.ScheduleInput) (priority.ScheduleOutput, error) {
	tz := strings.TrimSpace(input.Timezone)
	if tz == "" {
		tz = uc.schedule.Timezone
	}
	dm, err := datemath.NewParser(tz)
	if err != nil {
		return priority.ScheduleOutput{}, fmt.Errorf("%w: %s", priority.ErrInvalidTimezone, tz)
	}
	if input.PushToCalendar && uc.calendar == nil {
		return priority.ScheduleOutput{}, priority.ErrCalendarNotConfigured
	}

	latest, err := uc.Latest(ctx)
	if err != nil {
		return priority.ScheduleOutput{}, err
	}

	p := planner{
		dm:        dm,
		startHour: uc.schedule.DayStartHour,
		endHour:   uc.schedule.DayEndHour,
		now:       uc.now(),
	}
	if input.PushToCalendar {
		p.busy = uc.busySlots(ctx, p.now, latest.RatedTasks)
	}

	out := priority.ScheduleOutput{
		ResultID: latest.ID,
		Timezone: tz,
		Events:   p.plan(latest.RatedTasks),
	}

	if input.PushToCalendar {
		out.Pushed = uc.pushEvents(ctx, tz, out.Events)
	}

	uc.l.Infof(ctx, "priority.usecase.Schedule: result=%s events=%d pushed=%d", out.ResultID, len(out.Events), out.Pushed)
	return out, nil
}

// busySlots lists existing calendar events over the planning horizon.
// A lookup failure only means blocks may overlap existing events.
func (uc *implUseCase) busySlots(ctx context.Context, now time.Time, tasks []model.ScoredTask) []slot {
	horizon := now.Add(time.Duration(len(tasks)+7) * 24 * time.Hour)
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.schedule.CalendarID,
		TimeMin:    now,
		TimeMax:    horizon,
	})
	if err != nil {
		uc.l.Warnf(ctx, "priority.usecase.Schedule: list calendar events (non-fatal): %v", err)
		return nil
	}

	busy := make([]slot, 0, len(events))
	for _, e := range events {
		if e.EndTime.After(e.StartTime) {
			busy = append(busy, slot{start: e.StartTime, end: e.EndTime})
		}
	}
	return busy
}

func (uc *implUseCase) pushEvents(ctx context.Context, tz string, events []priority.StudyBlock) int {
	pushed := 0
	for i := range events {
		ev := &events[i]
		created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.schedule.CalendarID,
			Summary:     "Study: " + ev.Title,
			Description: fmt.Sprintf("%s\nPriority %d (%s)", ev.Module, ev.PriorityScore, ev.PriorityBand),
			StartTime:   ev.StartAt,
			EndTime:     ev.EndAt,
			Timezone:    tz,
			PrivateProps: map[string]string{
				"taskId": ev.TaskID,
				"source": eventSource,
			},
		})
		if err != nil {
			uc.l.Warnf(ctx, "priority.usecase.Schedule: calendar event for %q (non-fatal): %v", ev.Title, err)
			continue
		}
		ev.CalendarLink = created.HtmlLink
		pushed++
	}
	return pushed
}

type slot struct {
	start, end time.Time
}

// planner places blocks sequentially from the next half hour, inside the
// daily study window, skipping busy slots and leaving a gap between blocks.
type planner struct {
	dm        *datemath.Parser
	startHour int
	endHour   int
	now       time.Time
	busy      []slot
}

func (p planner) plan(tasks []model.ScoredTask) []priority.StudyBlock {
	ranked := append([]model.ScoredTask(nil), tasks...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].PriorityScore != ranked[j].PriorityScore {
			return ranked[i].PriorityScore > ranked[j].PriorityScore
		}
		return dueBefore(ranked[i].DueAt, ranked[j].DueAt)
	})

	nowLocal := datemath.CeilHalfHour(p.now.In(p.dm.Location()))
	cursor := nowLocal
	blocks := make([]priority.StudyBlock, 0, len(ranked))

	for _, t := range ranked {
		d := p.blockLength(t.EstimatedHours)
		start := p.fit(cursor, d)

		if t.DueAt != nil {
			candidate := p.fit(datemath.CeilHalfHour(t.DueAt.In(p.dm.Location()).Add(-d)), d)
			if !candidate.Before(nowLocal) && !candidate.Before(cursor) {
				start = candidate
			}
		}

		end := start.Add(d)
		blocks = append(blocks, priority.StudyBlock{
			EventID:       "evt-" + t.ID,
			TaskID:        t.ID,
			Title:         t.Title,
			Module:        t.Module,
			StartAt:       start.UTC(),
			EndAt:         end.UTC(),
			DueAt:         t.DueAt,
			PriorityScore: t.PriorityScore,
			PriorityBand:  t.PriorityBand,
			Source:        eventSource,
			Status:        eventStatus,
		})
		p.busy = append(p.busy, slot{start: start, end: end})
		cursor = datemath.CeilHalfHour(end.Add(blockGap))
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartAt.Before(blocks[j].StartAt)
	})
	return blocks
}

// blockLength is the estimate in minutes clamped to [30m, 8h] and to the
// study window. A missing estimate counts as one hour.
func (p planner) blockLength(hours float64) time.Duration {
	if hours <= 0 {
		hours = 1
	}
	d := time.Duration(math.Round(hours*60)) * time.Minute
	d = max(minBlock, min(maxBlock, d))
	return min(d, time.Duration(p.endHour-p.startHour)*time.Hour)
}

// fit returns the earliest start at or after cursor where a block of
// length d lies inside the study window and overlaps no busy slot.
func (p planner) fit(cursor time.Time, d time.Duration) time.Time {
	for {
		dayStart := p.dm.AtHour(cursor, p.startHour)
		dayEnd := p.dm.AtHour(cursor, p.endHour)
		if cursor.Before(dayStart) {
			cursor = dayStart
		}
		if cursor.Add(d).After(dayEnd) {
			cursor = p.dm.AtHour(p.dm.StartOfDay(cursor).AddDate(0, 0, 1), p.startHour)
			continue
		}
		if s, ok := p.overlap(cursor, cursor.Add(d)); ok {
			cursor = datemath.CeilHalfHour(s.end)
			continue
		}
		return cursor
	}
}

func (p planner) overlap(start, end time.Time) (slot, bool) {
	for _, s := range p.busy {
		if start.Before(s.end) && s.start.Before(end) {
			return s, true
		}
	}
	return slot{}, false
}

func dueBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}
