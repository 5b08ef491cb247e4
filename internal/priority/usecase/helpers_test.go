package usecase

import (
	"context"
	"errors"
	"time"

	"student-task-priority/internal/model"
	"student-task-priority/internal/priority/repository"
	"student-task-priority/internal/priority/repository/memory"
	"student-task-priority/internal/priority/scorer"
	"student-task-priority/pkg/gcalendar"
	"student-task-priority/pkg/llmprovider"
	"student-task-priority/pkg/log"
)

var testNow = time.Date(2026, 2, 20, 12, 10, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func newTestUseCase(repo repository.Repository, opts Options) *implUseCase {
	if repo == nil {
		repo = memory.New()
	}
	opts.Clock = testClock
	sc := scorer.New(log.NewNop(), scorer.WithClock(testClock))
	uc := New(log.NewNop(), sc, repo, opts).(*implUseCase)
	uc.newID = func() string { return "result-1" }
	return uc
}

type fakeProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (p *fakeProvider) GenerateContent(context.Context, *llmprovider.Request) (*llmprovider.Response, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Parts: []llmprovider.Part{{Text: p.text}}},
		ProviderName: p.name,
		ModelName:    p.name + "-model",
	}, nil
}

func (p *fakeProvider) Name() string  { return p.name }
func (p *fakeProvider) Model() string { return p.name + "-model" }

type failingRepo struct{}

func (failingRepo) SaveLatest(context.Context, model.ScoringResult) error {
	return errors.New("disk full")
}

func (failingRepo) GetLatest(context.Context) (model.ScoringResult, error) {
	return model.ScoringResult{}, errors.New("disk gone")
}

type fakeCalendar struct {
	busy      []gcalendar.Event
	listErr   error
	failTitle string
	created   []gcalendar.CreateEventRequest
}

func (c *fakeCalendar) CreateEvent(_ context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if c.failTitle != "" && req.Summary == "Study: "+c.failTitle {
		return nil, errors.New("quota")
	}
	c.created = append(c.created, req)
	return &gcalendar.Event{ID: "ev", HtmlLink: "https://calendar.example/" + req.PrivateProps["taskId"]}, nil
}

func (c *fakeCalendar) ListEvents(context.Context, gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return c.busy, c.listErr
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 2, 20, hour, minute, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
