package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"ascendops/internal/auth"
	"ascendops/internal/models/db_models"
	"ascendops/internal/models/request_models"
	"ascendops/internal/models/response_models"
	"ascendops/internal/repositories"
	"ascendops/pkg/utils"
)

type SdCardServiceInterface interface {
	AddCard(ctx context.Context, actor auth.Actor, request request_models.CreateCardRequest) (*response_models.SdCardResponse, error)
	ListCards(ctx context.Context, actor auth.Actor) ([]response_models.SdCardResponse, error)
	ListOpenLogs(ctx context.Context, actor auth.Actor) ([]response_models.OpenLogResponse, error)
	Checkout(ctx context.Context, actor auth.Actor, request request_models.CheckoutRequest) (*response_models.OpenLogResponse, error)
	Return(ctx context.Context, actor auth.Actor, request request_models.ReturnRequest) error
	CardQRCode(ctx context.Context, actor auth.Actor, cardID string) ([]byte, error)
}

type SdCardService struct {
	cardRepo  repositories.SdCardRepository
	eventRepo repositories.EventRepository
	userRepo  repositories.UserRepository
	baseURL   string
	qrEncode  func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)
}

func NewSdCardService(
	cardRepo repositories.SdCardRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
	baseURL string,
) SdCardServiceInterface {
	return &SdCardService{
		cardRepo:  cardRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		baseURL:   strings.TrimRight(baseURL, "/"),
		qrEncode:  qrcode.Encode,
	}
}

func (s *SdCardService) AddCard(ctx context.Context, actor auth.Actor, request request_models.CreateCardRequest) (*response_models.SdCardResponse, error) {
	if err := auth.RequireFounder(actor); err != nil {
		return nil, err
	}

	label := strings.TrimSpace(request.Label)
	if label == "" {
		return nil, fmt.Errorf("%w: label is required", utils.ErrValidation)
	}

	card := &db_models.SdCard{
		Label:      label,
		CapacityGB: request.CapacityGB,
		Status:     db_models.CardStatusAvailable,
	}
	if err := s.cardRepo.InsertCard(ctx, card); err != nil {
		if errors.Is(err, utils.ErrCardLabelTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := toSdCardResponse(card)
	return &resp, nil
}

func (s *SdCardService) ListCards(ctx context.Context, actor auth.Actor) ([]response_models.SdCardResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.SdCardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, toSdCardResponse(&cards[i]))
	}
	return out, nil
}

func (s *SdCardService) ListOpenLogs(ctx context.Context, actor auth.Actor) ([]response_models.OpenLogResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	rows, err := s.cardRepo.ListOpenLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.OpenLogResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.OpenLogResponse{
			ID:           row.ID,
			CardID:       row.CardID,
			CardLabel:    row.CardLabel,
			UserName:     row.UserName,
			EventName:    row.EventName,
			SessionLabel: row.SessionLabel,
			Purpose:      row.Purpose,
			CheckedOutAt: utils.FormatUnix(row.CheckedOutAt),
		})
	}
	return out, nil
}

// Checkout takes a card out in the calling user's name. Only available
// cards can go out; the repository compare-and-set means a concurrent
// checkout of the same card fails with ErrCardNotAvailable rather than
// producing two open logs.
func (s *SdCardService) Checkout(ctx context.Context, actor auth.Actor, request request_models.CheckoutRequest) (*response_models.OpenLogResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	if request.SdCardID == "" {
		return nil, fmt.Errorf("%w: sd card is required", utils.ErrValidation)
	}
	if _, err := uuid.Parse(request.SdCardID); err != nil {
		return nil, fmt.Errorf("%w: invalid sd card id", utils.ErrValidation)
	}

	card, err := s.cardRepo.FindCardByID(ctx, request.SdCardID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if card == nil {
		return nil, fmt.Errorf("sd card %w", utils.ErrNotFound)
	}
	if card.Status != db_models.CardStatusAvailable {
		return nil, utils.ErrCardNotAvailable
	}

	eventID, sessionID, err := s.resolveContext(ctx, request.EventID, request.SessionID)
	if err != nil {
		return nil, err
	}

	entry := &db_models.SdCardLog{
		SdCardID:     card.ID,
		UserID:       actor.ID,
		EventID:      eventID,
		SessionID:    sessionID,
		Purpose:      strings.TrimSpace(request.Purpose),
		CheckedOutAt: utils.NowUnixSeconds(),
	}
	if err := s.cardRepo.CheckoutTx(ctx, entry); err != nil {
		if errors.Is(err, utils.ErrCardNotAvailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	borrower, err := s.userRepo.FindByID(ctx, actor.ID.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	userName := ""
	if borrower != nil {
		userName = borrower.Name
	}

	return &response_models.OpenLogResponse{
		ID:           entry.ID.String(),
		CardID:       card.ID.String(),
		CardLabel:    card.Label,
		UserName:     userName,
		Purpose:      entry.Purpose,
		CheckedOutAt: utils.FormatUnix(entry.CheckedOutAt),
	}, nil
}

func (s *SdCardService) Return(ctx context.Context, actor auth.Actor, request request_models.ReturnRequest) error {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return err
	}

	if request.LogID == "" {
		return fmt.Errorf("%w: log id is required", utils.ErrValidation)
	}
	if _, err := uuid.Parse(request.LogID); err != nil {
		return fmt.Errorf("%w: invalid log id", utils.ErrValidation)
	}

	if err := s.cardRepo.ReturnTx(ctx, request.LogID, utils.NowUnixSeconds()); err != nil {
		if errors.Is(err, utils.ErrOpenLogNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

// CardQRCode renders a PNG encoding the card's checkout deep link, for
// printing on the physical card sleeve.
func (s *SdCardService) CardQRCode(ctx context.Context, actor auth.Actor, cardID string) ([]byte, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(cardID); err != nil {
		return nil, fmt.Errorf("%w: invalid sd card id", utils.ErrValidation)
	}

	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if card == nil {
		return nil, fmt.Errorf("sd card %w", utils.ErrNotFound)
	}

	link := fmt.Sprintf("%s/sd-cards?card=%s", s.baseURL, url.QueryEscape(card.Label))
	png, err := s.qrEncode(link, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

func (s *SdCardService) resolveContext(ctx context.Context, eventID, sessionID string) (*uuid.UUID, *uuid.UUID, error) {
	var evPtr, sesPtr *uuid.UUID

	if eventID != "" {
		id, err := uuid.Parse(eventID)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid event id", utils.ErrValidation)
		}
		event, err := s.eventRepo.FindEventByID(ctx, eventID)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if event == nil {
			return nil, nil, fmt.Errorf("event %w", utils.ErrNotFound)
		}
		evPtr = &id
	}

	if sessionID != "" {
		id, err := uuid.Parse(sessionID)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid session id", utils.ErrValidation)
		}
		session, err := s.eventRepo.FindSessionByID(ctx, sessionID)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if session == nil {
			return nil, nil, fmt.Errorf("session %w", utils.ErrNotFound)
		}
		sesPtr = &id
	}

	return evPtr, sesPtr, nil
}

func toSdCardResponse(card *db_models.SdCard) response_models.SdCardResponse {
	return response_models.SdCardResponse{
		ID:         card.ID.String(),
		Label:      card.Label,
		CapacityGB: card.CapacityGB,
		Status:     string(card.Status),
	}
}
