package services

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ascendops/internal/models/db_models"
	"ascendops/internal/models/request_models"
	"ascendops/pkg/utils"
)

type fakeEventRepo struct {
	events   map[string]*db_models.Event
	sessions map[string]*db_models.Session
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events:   make(map[string]*db_models.Event),
		sessions: make(map[string]*db_models.Session),
	}
}

func (r *fakeEventRepo) InsertEvent(ctx context.Context, event *db_models.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	r.events[event.ID.String()] = event
	return nil
}

func (r *fakeEventRepo) FindEventByID(ctx context.Context, id string) (*db_models.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	return event, nil
}

func (r *fakeEventRepo) FindEventWithSessions(ctx context.Context, id string) (*db_models.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	copied := *event
	copied.Sessions = nil
	sessions, _ := r.ListSessions(ctx, id)
	copied.Sessions = sessions
	return &copied, nil
}

func (r *fakeEventRepo) ListEvents(ctx context.Context) ([]db_models.Event, error) {
	out := make([]db_models.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateStart.After(out[j].DateStart) })
	return out, nil
}

func (r *fakeEventRepo) InsertSession(ctx context.Context, session *db_models.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	r.sessions[session.ID.String()] = session
	return nil
}

func (r *fakeEventRepo) FindSessionByID(ctx context.Context, id string) (*db_models.Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return session, nil
}

func (r *fakeEventRepo) ListSessions(ctx context.Context, eventID string) ([]db_models.Session, error) {
	out := make([]db_models.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		if eventID == "" || s.EventID.String() == eventID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Label < out[j].Label
	})
	return out, nil
}

func (r *fakeEventRepo) seedEvent(t *testing.T, name, dateStart, dateEnd string) *db_models.Event {
	t.Helper()
	start, err := utils.ParseDate(dateStart)
	if err != nil {
		t.Fatalf("seed event start: %v", err)
	}
	end, err := utils.ParseDate(dateEnd)
	if err != nil {
		t.Fatalf("seed event end: %v", err)
	}
	event := &db_models.Event{Name: name, DateStart: start, DateEnd: end}
	if err := r.InsertEvent(context.Background(), event); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

func (r *fakeEventRepo) seedSession(t *testing.T, eventID uuid.UUID, label, date string, timeBlock *string) *db_models.Session {
	t.Helper()
	d, err := utils.ParseDate(date)
	if err != nil {
		t.Fatalf("seed session date: %v", err)
	}
	session := &db_models.Session{EventID: eventID, Label: label, Date: d, TimeBlock: timeBlock}
	if err := r.InsertSession(context.Background(), session); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return session
}

func TestCreateEvent_Success(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	created, err := svc.CreateEvent(context.Background(), founderActor(), request_models.CreateEventRequest{
		Name:      "  Regionals 2024 ",
		DateStart: "2024-03-01",
		DateEnd:   "2024-03-02",
		Location:  "Brisbane",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Regionals 2024", created.Name)
	assert.Equal(t, "2024-03-01", created.DateStart)
	assert.Equal(t, "2024-03-02", created.DateEnd)
	assert.Len(t, repo.events, 1)
}

func TestCreateEvent_RequiresFounder(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	_, err := svc.CreateEvent(context.Background(), freelancerActor(), request_models.CreateEventRequest{
		Name:      "Regionals 2024",
		DateStart: "2024-03-01",
		DateEnd:   "2024-03-02",
	})

	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Empty(t, repo.events)
}

func TestCreateEvent_MissingFields(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	_, err := svc.CreateEvent(context.Background(), founderActor(), request_models.CreateEventRequest{
		Name: "Regionals 2024",
	})

	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Empty(t, repo.events)
}

// A malformed date reports the dedicated invalid-date error, not the
// generic missing-field one, and writes nothing.
func TestCreateEvent_BadDate(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	_, err := svc.CreateEvent(context.Background(), founderActor(), request_models.CreateEventRequest{
		Name:      "Regionals 2024",
		DateStart: "01/03/2024",
		DateEnd:   "2024-03-02",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidDate)
	assert.Empty(t, repo.events)
}

func TestListEvents_NewestFirst(t *testing.T) {
	repo := newFakeEventRepo()
	repo.seedEvent(t, "States 2023", "2023-06-10", "2023-06-11")
	repo.seedEvent(t, "Regionals 2024", "2024-03-01", "2024-03-02")
	svc := NewEventService(repo)

	events, err := svc.ListEvents(context.Background(), freelancerActor())

	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "Regionals 2024", events[0].Name)
	assert.Equal(t, "States 2023", events[1].Name)
}

func TestCreateSession_Success(t *testing.T) {
	repo := newFakeEventRepo()
	event := repo.seedEvent(t, "Regionals 2024", "2024-03-01", "2024-03-02")
	svc := NewEventService(repo)

	created, err := svc.CreateSession(context.Background(), founderActor(), request_models.CreateSessionRequest{
		EventID:   event.ID.String(),
		Label:     "Day 1 AM",
		Date:      "2024-03-01",
		TimeBlock: "AM",
	})

	assert.NoError(t, err)
	assert.Equal(t, event.ID.String(), created.EventID)
	if assert.NotNil(t, created.TimeBlock) {
		assert.Equal(t, "AM", *created.TimeBlock)
	}
}

func TestCreateSession_EmptyTimeBlockStaysNull(t *testing.T) {
	repo := newFakeEventRepo()
	event := repo.seedEvent(t, "Regionals 2024", "2024-03-01", "2024-03-02")
	svc := NewEventService(repo)

	created, err := svc.CreateSession(context.Background(), founderActor(), request_models.CreateSessionRequest{
		EventID: event.ID.String(),
		Label:   "Finals",
		Date:    "2024-03-02",
	})

	assert.NoError(t, err)
	assert.Nil(t, created.TimeBlock)
}

func TestCreateSession_RejectsUnknownTimeBlock(t *testing.T) {
	repo := newFakeEventRepo()
	event := repo.seedEvent(t, "Regionals 2024", "2024-03-01", "2024-03-02")
	svc := NewEventService(repo)

	_, err := svc.CreateSession(context.Background(), founderActor(), request_models.CreateSessionRequest{
		EventID:   event.ID.String(),
		Label:     "Twilight",
		Date:      "2024-03-01",
		TimeBlock: "EVENING",
	})

	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Empty(t, repo.sessions)
}

func TestCreateSession_UnknownEvent(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	_, err := svc.CreateSession(context.Background(), founderActor(), request_models.CreateSessionRequest{
		EventID: uuid.NewString(),
		Label:   "Day 1 AM",
		Date:    "2024-03-01",
	})

	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Empty(t, repo.sessions)
}

func TestGetEvent_SessionsInScheduleOrder(t *testing.T) {
	repo := newFakeEventRepo()
	event := repo.seedEvent(t, "Regionals 2024", "2024-03-01", "2024-03-02")
	repo.seedSession(t, event.ID, "Day 2 PM", "2024-03-02", nil)
	repo.seedSession(t, event.ID, "Day 1 AM", "2024-03-01", nil)
	svc := NewEventService(repo)

	detail, err := svc.GetEvent(context.Background(), freelancerActor(), event.ID.String())

	assert.NoError(t, err)
	assert.Len(t, detail.Sessions, 2)
	assert.Equal(t, "Day 1 AM", detail.Sessions[0].Label)
	assert.Equal(t, "Day 2 PM", detail.Sessions[1].Label)
}

func TestGetEvent_Unknown(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	_, err := svc.GetEvent(context.Background(), freelancerActor(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListSessions_FiltersByEvent(t *testing.T) {
	repo := newFakeEventRepo()
	regionals := repo.seedEvent(t, "Regionals 2024", "2024-03-01", "2024-03-02")
	states := repo.seedEvent(t, "States 2024", "2024-06-01", "2024-06-02")
	repo.seedSession(t, regionals.ID, "Day 1 AM", "2024-03-01", nil)
	repo.seedSession(t, states.ID, "Day 1 AM", "2024-06-01", nil)
	svc := NewEventService(repo)

	all, err := svc.ListSessions(context.Background(), freelancerActor(), "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.ListSessions(context.Background(), freelancerActor(), regionals.ID.String())
	assert.NoError(t, err)
	assert.Len(t, scoped, 1)
	assert.Equal(t, regionals.ID.String(), scoped[0].EventID)
}
