package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"ascendops/internal/auth"
	"ascendops/internal/models/db_models"
	"ascendops/internal/models/request_models"
	"ascendops/internal/models/response_models"
	"ascendops/internal/repositories"
	"ascendops/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, actor auth.Actor, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error)
	List(ctx context.Context, actor auth.Actor, filter repositories.BookingFilter) ([]response_models.BookingResponse, error)
	SessionRoster(ctx context.Context, actor auth.Actor, sessionID string) (*response_models.SessionRosterResponse, error)
	SessionRosterCSV(ctx context.Context, actor auth.Actor, sessionID string) ([]response_models.RosterCSVRow, string, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	eventRepo   repositories.EventRepository
	packageRepo repositories.PackageRepository
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	eventRepo repositories.EventRepository,
	packageRepo repositories.PackageRepository,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		packageRepo: packageRepo,
	}
}

// CreateBooking books an athlete into a session. The athlete is matched
// by exact (name, team); when a match exists it is reused as-is and the
// weight class and notes on the request do not overwrite it.
func (b *BookingService) CreateBooking(ctx context.Context, actor auth.Actor, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error) {
	if err := auth.RequireFounder(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(request.AthleteName)
	team := strings.TrimSpace(request.Team)
	if name == "" || request.SessionID == "" || request.PackageID == "" {
		return nil, fmt.Errorf("%w: athlete name, session and package are required", utils.ErrValidation)
	}

	sessionUUID, err := uuid.Parse(request.SessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid session id", utils.ErrValidation)
	}
	packageUUID, err := uuid.Parse(request.PackageID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid package id", utils.ErrValidation)
	}

	session, err := b.eventRepo.FindSessionByID(ctx, request.SessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if session == nil {
		return nil, fmt.Errorf("session %w", utils.ErrNotFound)
	}

	pkg, err := b.packageRepo.FindByID(ctx, request.PackageID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %w", utils.ErrNotFound)
	}

	event, err := b.eventRepo.FindEventByID(ctx, session.EventID.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %w", utils.ErrNotFound)
	}

	athlete := &db_models.Athlete{
		Name:        name,
		Team:        team,
		WeightClass: strings.TrimSpace(request.WeightClass),
		Notes:       request.Notes,
	}
	booking := &db_models.AthleteSession{
		SessionID:  sessionUUID,
		PackageID:  packageUUID,
		MusicLink:  strings.TrimSpace(request.MusicLink),
		MusicStart: strings.TrimSpace(request.MusicStart),
		MusicEnd:   strings.TrimSpace(request.MusicEnd),
		Paid:       request.Paid,
		Notes:      request.Notes,
	}
	if err := b.bookingRepo.BookTx(ctx, athlete, booking); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// Re-read the athlete so the response shows the stored row, which an
	// existing (name, team) match may differ from the request on.
	stored, err := b.bookingRepo.FindAthleteByID(ctx, booking.AthleteID.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if stored == nil {
		stored = athlete
	}

	return &response_models.BookingResponse{
		ID:           booking.ID.String(),
		AthleteID:    booking.AthleteID.String(),
		AthleteName:  stored.Name,
		Team:         stored.Team,
		WeightClass:  stored.WeightClass,
		SessionID:    session.ID.String(),
		SessionLabel: session.Label,
		SessionDate:  utils.FormatDate(session.Date),
		EventName:    event.Name,
		PackageName:  pkg.Name,
		MusicLink:    booking.MusicLink,
		MusicStart:   booking.MusicStart,
		MusicEnd:     booking.MusicEnd,
		Paid:         booking.Paid,
		Notes:        booking.Notes,
	}, nil
}

func (b *BookingService) List(ctx context.Context, actor auth.Actor, filter repositories.BookingFilter) ([]response_models.BookingResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	if err := validateBookingFilter(filter); err != nil {
		return nil, err
	}

	rows, err := b.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toBookingResponses(rows), nil
}

func (b *BookingService) SessionRoster(ctx context.Context, actor auth.Actor, sessionID string) (*response_models.SessionRosterResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	session, err := b.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	rows, err := b.bookingRepo.ListSessionRoster(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.SessionRosterResponse{
		Session: toSessionResponse(session),
		Entries: toBookingResponses(rows),
	}, nil
}

// SessionRosterCSV renders the run sheet for download. The second return
// is the suggested file name.
func (b *BookingService) SessionRosterCSV(ctx context.Context, actor auth.Actor, sessionID string) ([]response_models.RosterCSVRow, string, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, "", err
	}

	session, err := b.findSession(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	rows, err := b.bookingRepo.ListSessionRoster(ctx, sessionID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.RosterCSVRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.RosterCSVRow{
			Athlete:     row.AthleteName,
			Team:        row.Team,
			WeightClass: row.WeightClass,
			Package:     row.PackageName,
			MusicLink:   row.MusicLink,
			MusicStart:  row.MusicStart,
			MusicEnd:    row.MusicEnd,
			Paid:        row.Paid,
			Notes:       row.Notes,
		})
	}

	name := strings.ToLower(strings.ReplaceAll(session.Label, " ", "_"))
	return out, fmt.Sprintf("roster_%s_%s.csv", name, utils.FormatDate(session.Date)), nil
}

func (b *BookingService) findSession(ctx context.Context, sessionID string) (*db_models.Session, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, fmt.Errorf("%w: invalid session id", utils.ErrValidation)
	}
	session, err := b.eventRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if session == nil {
		return nil, fmt.Errorf("session %w", utils.ErrNotFound)
	}
	return session, nil
}

func validateBookingFilter(filter repositories.BookingFilter) error {
	if filter.EventID != "" {
		if _, err := uuid.Parse(filter.EventID); err != nil {
			return fmt.Errorf("%w: invalid event id", utils.ErrValidation)
		}
	}
	if filter.SessionID != "" {
		if _, err := uuid.Parse(filter.SessionID); err != nil {
			return fmt.Errorf("%w: invalid session id", utils.ErrValidation)
		}
	}
	return nil
}

func toBookingResponses(rows []repositories.BookingRow) []response_models.BookingResponse {
	out := make([]response_models.BookingResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.BookingResponse{
			ID:           row.ID,
			AthleteID:    row.AthleteID,
			AthleteName:  row.AthleteName,
			Team:         row.Team,
			WeightClass:  row.WeightClass,
			SessionID:    row.SessionID,
			SessionLabel: row.SessionLabel,
			SessionDate:  utils.FormatDate(row.SessionDate),
			EventName:    row.EventName,
			PackageName:  row.PackageName,
			MusicLink:    row.MusicLink,
			MusicStart:   row.MusicStart,
			MusicEnd:     row.MusicEnd,
			Paid:         row.Paid,
			Notes:        row.Notes,
		})
	}
	return out
}
