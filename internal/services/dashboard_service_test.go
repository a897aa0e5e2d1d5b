package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"ascendops/internal/models/db_models"
	"ascendops/pkg/utils"
)

// fakeDashboardRepo counts straight off the card and task fakes.
type fakeDashboardRepo struct {
	cards *fakeCardRepo
	tasks *fakeTaskRepo
}

func (r *fakeDashboardRepo) CountTotalCards(ctx context.Context) (int64, error) {
	return int64(len(r.cards.cards)), nil
}

func (r *fakeDashboardRepo) CountCardsByStatus(ctx context.Context, status db_models.CardStatus) (int64, error) {
	var n int64
	for _, card := range r.cards.cards {
		if card.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeDashboardRepo) CountPendingTasks(ctx context.Context, excludeStatus string) (int64, error) {
	var n int64
	for _, task := range r.tasks.tasks {
		if task.Status != excludeStatus {
			n++
		}
	}
	return n, nil
}

func TestBuildDashboard_CountsAndEvents(t *testing.T) {
	users := newFakeUserRepo()
	events := newFakeEventRepo()
	packages := newFakePackageRepo()
	bookings := newFakeBookingRepo(events, packages)
	cards := newFakeCardRepo(users, events)
	tasks := newFakeTaskRepo(bookings, users)

	events.seedEvent(t, "Regionals 2024", "2024-03-01", "2024-03-02")
	events.seedEvent(t, "States 2024", "2024-06-01", "2024-06-02")

	available := &db_models.SdCard{Label: "SD-01", Status: db_models.CardStatusAvailable}
	out := &db_models.SdCard{Label: "SD-02", Status: db_models.CardStatusCheckedOut}
	assert.NoError(t, cards.InsertCard(context.Background(), available))
	assert.NoError(t, cards.InsertCard(context.Background(), out))

	pending := &db_models.EditTask{Status: db_models.TaskStatusNotStarted}
	delivering := &db_models.EditTask{Status: "in_progress"}
	done := &db_models.EditTask{Status: db_models.TaskStatusSentToClient}
	for _, task := range []*db_models.EditTask{pending, delivering, done} {
		assert.NoError(t, tasks.Insert(context.Background(), task))
	}

	svc := NewDashboardService(&fakeDashboardRepo{cards: cards, tasks: tasks}, events)
	report, err := svc.BuildDashboard(context.Background(), freelancerActor())

	assert.NoError(t, err)
	assert.Equal(t, int64(2), report.TotalSdCards)
	assert.Equal(t, int64(1), report.SdCardsInUse)
	// Everything short of sent_to_client still counts as owed.
	assert.Equal(t, int64(2), report.PendingEdits)
	if assert.Len(t, report.Events, 2) {
		assert.Equal(t, "States 2024", report.Events[0].Name)
		assert.Equal(t, "Regionals 2024", report.Events[1].Name)
	}
}

func TestBuildDashboard_Empty(t *testing.T) {
	users := newFakeUserRepo()
	events := newFakeEventRepo()
	packages := newFakePackageRepo()
	bookings := newFakeBookingRepo(events, packages)
	cards := newFakeCardRepo(users, events)
	tasks := newFakeTaskRepo(bookings, users)

	svc := NewDashboardService(&fakeDashboardRepo{cards: cards, tasks: tasks}, events)
	report, err := svc.BuildDashboard(context.Background(), freelancerActor())

	assert.NoError(t, err)
	assert.Zero(t, report.TotalSdCards)
	assert.Zero(t, report.SdCardsInUse)
	assert.Zero(t, report.PendingEdits)
	assert.Empty(t, report.Events)
}

func TestBuildDashboard_RequiresAuth(t *testing.T) {
	users := newFakeUserRepo()
	events := newFakeEventRepo()
	packages := newFakePackageRepo()
	bookings := newFakeBookingRepo(events, packages)
	cards := newFakeCardRepo(users, events)
	tasks := newFakeTaskRepo(bookings, users)

	svc := NewDashboardService(&fakeDashboardRepo{cards: cards, tasks: tasks}, events)
	_, err := svc.BuildDashboard(context.Background(), unauthenticatedActor())

	assert.ErrorIs(t, err, utils.ErrAuthRequired)
}
