package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nocturne/internal/data/entity"
	"nocturne/internal/data/repository"
	"nocturne/internal/dto/response"
	"nocturne/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionState string

const (
	StateIdle          SessionState = "idle"
	StateTableProposed SessionState = "table_proposed"
	StateTabBuilding   SessionState = "tab_building"
	StateConfirmed     SessionState = "confirmed"
	StateCancelled     SessionState = "cancelled"
)

// Terminal reports whether the session accepts no further mutation.
func (s SessionState) Terminal() bool {
	return s == StateConfirmed || s == StateCancelled
}

// Session binds one guest, one proposed table and one tab for the
// duration of a booking attempt. It is exclusively owned by its caller
// and never shared between sessions; only the table registry is.
type Session struct {
	ID    uuid.UUID
	User  *entity.UserProfile
	State SessionState
	Table *entity.Table
	Cart  *entity.Cart
}

type BookingService interface {
	StartSession(user *entity.UserProfile) *Session

	// SelectTable proposes a table: idle -> table_proposed. Locked
	// tables return ErrTableLocked, reserved or occupied ones
	// ErrTableUnavailable; in both cases the session stays idle.
	SelectTable(ctx context.Context, s *Session, tableID string) (*entity.Table, error)

	// StartTab opens an empty tab bound to the proposed table:
	// table_proposed -> tab_building.
	StartTab(s *Session) error

	AddBottle(ctx context.Context, s *Session, bottleID string) (entity.Progress, error)
	RemoveBottle(s *Session, bottleID string) (entity.Progress, error)
	Progress(s *Session) (entity.Progress, error)

	// Confirm finalizes the tab: tab_building -> confirmed. Fails with
	// ErrMinimumNotMet below the table minimum; if the registry write
	// loses a race the session rolls back to tab_building with the
	// cart intact and the caller gets ErrReservationConflict.
	Confirm(ctx context.Context, s *Session) (*response.ReservationResponse, error)

	// Cancel discards the tab without touching the registry.
	Cancel(s *Session) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) StartSession(user *entity.UserProfile) *Session {
	session := &Session{
		ID:    uuid.New(),
		User:  user,
		State: StateIdle,
	}
	s.log.Info("Session started",
		zap.String("session_id", session.ID.String()),
		zap.String("user_id", user.ID.String()),
	)
	return session
}

func (s *bookingService) SelectTable(ctx context.Context, session *Session, tableID string) (*entity.Table, error) {
	if session.State.Terminal() {
		return nil, fmt.Errorf("select table in state %s: %w", session.State, repository.ErrSessionClosed)
	}
	if session.State != StateIdle {
		return nil, fmt.Errorf("select table in state %s: %w", session.State, repository.ErrInvalidTransition)
	}

	table, err := s.repo.Table.FindByID(ctx, tableID)
	if err != nil {
		return nil, fmt.Errorf("select table: %w", err)
	}

	switch table.Status {
	case entity.TableStatusLocked:
		s.log.Warn("Locked table selected",
			zap.String("session_id", session.ID.String()),
			zap.String("table_id", tableID),
		)
		return nil, fmt.Errorf("select table %s: %w", tableID, repository.ErrTableLocked)
	case entity.TableStatusReserved, entity.TableStatusOccupied:
		// Reserved tables are not re-bookable by another guest.
		return nil, fmt.Errorf("select table %s: %w", tableID, repository.ErrTableUnavailable)
	}

	session.Table = table
	session.State = StateTableProposed

	s.log.Info("Table proposed",
		zap.String("session_id", session.ID.String()),
		zap.String("table_id", table.ID),
		zap.Int64("min_spend", table.MinSpend),
	)
	return table, nil
}

func (s *bookingService) StartTab(session *Session) error {
	if session.State.Terminal() {
		return fmt.Errorf("start tab in state %s: %w", session.State, repository.ErrSessionClosed)
	}
	if session.State != StateTableProposed {
		return fmt.Errorf("start tab in state %s: %w", session.State, repository.ErrInvalidTransition)
	}

	session.Cart = entity.NewCart()
	session.State = StateTabBuilding

	s.log.Info("Tab opened",
		zap.String("session_id", session.ID.String()),
		zap.String("table_id", session.Table.ID),
	)
	return nil
}

func (s *bookingService) AddBottle(ctx context.Context, session *Session, bottleID string) (entity.Progress, error) {
	if err := s.requireTabBuilding(session, "add bottle"); err != nil {
		return entity.Progress{}, err
	}

	bottle, err := s.repo.Bottle.FindByID(ctx, bottleID)
	if err != nil {
		return entity.Progress{}, fmt.Errorf("add bottle: %w", err)
	}

	session.Cart.AddBottle(*bottle)
	progress := session.Cart.Progress(session.Table.MinSpend)

	s.log.Debug("Bottle added",
		zap.String("session_id", session.ID.String()),
		zap.String("bottle_id", bottleID),
		zap.Int("quantity", session.Cart.Quantity(bottleID)),
		zap.Int64("spent", progress.Spent),
	)
	return progress, nil
}

func (s *bookingService) RemoveBottle(session *Session, bottleID string) (entity.Progress, error) {
	if err := s.requireTabBuilding(session, "remove bottle"); err != nil {
		return entity.Progress{}, err
	}

	// Absent ids are a no-op; the UI may race a double-click.
	session.Cart.RemoveBottle(bottleID)
	return session.Cart.Progress(session.Table.MinSpend), nil
}

func (s *bookingService) Progress(session *Session) (entity.Progress, error) {
	if err := s.requireTabBuilding(session, "progress"); err != nil {
		return entity.Progress{}, err
	}
	return session.Cart.Progress(session.Table.MinSpend), nil
}

func (s *bookingService) Confirm(ctx context.Context, session *Session) (*response.ReservationResponse, error) {
	if err := s.requireTabBuilding(session, "confirm"); err != nil {
		return nil, err
	}

	progress := session.Cart.Progress(session.Table.MinSpend)
	if !progress.Met {
		s.log.Warn("Confirm below minimum",
			zap.String("session_id", session.ID.String()),
			zap.Int64("spent", progress.Spent),
			zap.Int64("remaining", progress.Remaining),
		)
		return nil, fmt.Errorf("confirm table %s: %w", session.Table.ID, repository.ErrMinimumNotMet)
	}

	table, err := s.repo.Table.Reserve(ctx, session.Table.ID)
	if err != nil {
		// Lost the race or the floor changed under us. Stay in
		// tab_building with the cart intact so the guest can pick a
		// different table.
		if errors.Is(err, repository.ErrAlreadyReserved) || errors.Is(err, repository.ErrTableLocked) || errors.Is(err, repository.ErrInvalidTransition) {
			s.log.Warn("Reservation conflict",
				zap.String("session_id", session.ID.String()),
				zap.String("table_id", session.Table.ID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("confirm table %s: %w", session.Table.ID, repository.ErrReservationConflict)
		}
		return nil, fmt.Errorf("confirm table %s: %w", session.Table.ID, err)
	}

	res := &entity.Reservation{
		ID:        uuid.New(),
		OrderRef:  utils.GenerateOrderRef(),
		UserID:    session.User.ID,
		VenueID:   table.VenueID,
		TableID:   table.ID,
		Lines:     session.Cart.Lines(),
		Total:     session.Cart.Total(),
		CreatedAt: time.Now(),
	}
	if err := s.repo.Reservation.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("record reservation: %w", err)
	}

	session.Cart.Clear()
	session.State = StateConfirmed

	s.log.Info("Reservation confirmed",
		zap.String("session_id", session.ID.String()),
		zap.String("order_ref", res.OrderRef),
		zap.String("table_id", table.ID),
		zap.Int64("total", res.Total),
	)

	resp := response.ReservationToResponse(res)
	return &resp, nil
}

func (s *bookingService) Cancel(session *Session) error {
	if session.State.Terminal() {
		return fmt.Errorf("cancel in state %s: %w", session.State, repository.ErrSessionClosed)
	}
	if session.State == StateIdle {
		return fmt.Errorf("cancel in state %s: %w", session.State, repository.ErrInvalidTransition)
	}

	if session.Cart != nil {
		session.Cart.Clear()
	}
	session.State = StateCancelled

	s.log.Info("Session cancelled",
		zap.String("session_id", session.ID.String()),
	)
	return nil
}

func (s *bookingService) requireTabBuilding(session *Session, op string) error {
	if session.State.Terminal() {
		return fmt.Errorf("%s in state %s: %w", op, session.State, repository.ErrSessionClosed)
	}
	if session.State != StateTabBuilding {
		return fmt.Errorf("%s in state %s: %w", op, session.State, repository.ErrInvalidTransition)
	}
	return nil
}
