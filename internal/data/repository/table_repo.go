package repository

import (
	"context"
	"fmt"
	"sync"

	"nocturne/internal/data/entity"

	"go.uber.org/zap"
)

type TableRepository interface {
	ListByVenue(ctx context.Context, venueID string) ([]entity.Table, error)
	FindByID(ctx context.Context, tableID string) (*entity.Table, error)

	// Reserve performs the AVAILABLE -> RESERVED transition. Writes are
	// serialized; if two sessions race for the same table the first
	// caller wins and the second gets ErrAlreadyReserved.
	Reserve(ctx context.Context, tableID string) (*entity.Table, error)

	// SetStatus covers the transitions outside the booking flow:
	// check-in (AVAILABLE/RESERVED -> OCCUPIED) and release back to
	// AVAILABLE. Locked tables reject everything with ErrTableLocked.
	SetStatus(ctx context.Context, tableID string, status entity.TableStatus) (*entity.Table, error)

	// SetLocked is the administrative lock/unlock and the only way in
	// or out of LOCKED.
	SetLocked(ctx context.Context, tableID string, locked bool) (*entity.Table, error)

	Subscribe(venueID string, fn func([]entity.Table)) *Subscription
}

// Subscription is the handle returned by Subscribe. Unsubscribe stops
// further notifications; calling it twice is safe.
type Subscription struct {
	repo    *tableRepository
	venueID string
	id      int
}

func (s *Subscription) Unsubscribe() {
	if s.repo == nil {
		return
	}
	s.repo.unsubscribe(s)
	s.repo = nil
}

type subscriber struct {
	id int
	fn func([]entity.Table)
}

type tableRepository struct {
	mu     sync.Mutex
	tables map[string]*entity.Table // table id -> table
	venues map[string][]string      // venue id -> table ids, floor order
	subs   map[string][]subscriber  // venue id -> observers, registration order
	nextID int
	log    *zap.Logger
}

// NewTableRepository builds the registry from seeded floor data. The
// registry owns table status from here on; callers only see copies.
func NewTableRepository(venues []entity.Venue, tables []entity.Table, log *zap.Logger) TableRepository {
	r := &tableRepository{
		tables: make(map[string]*entity.Table, len(tables)),
		venues: make(map[string][]string, len(venues)),
		subs:   make(map[string][]subscriber),
		log:    log.With(zap.String("repository", "table")),
	}
	for _, v := range venues {
		r.venues[v.ID] = nil
	}
	for i := range tables {
		t := tables[i]
		r.tables[t.ID] = &t
		r.venues[t.VenueID] = append(r.venues[t.VenueID], t.ID)
	}
	return r
}

func (r *tableRepository) ListByVenue(ctx context.Context, venueID string) ([]entity.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, ok := r.venues[venueID]
	if !ok {
		return nil, fmt.Errorf("venue %s: %w", venueID, ErrNotFound)
	}
	return r.snapshot(ids), nil
}

func (r *tableRepository) FindByID(ctx context.Context, tableID string) (*entity.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tables[tableID]
	if !ok {
		return nil, fmt.Errorf("table %s: %w", tableID, ErrNotFound)
	}
	copied := *t
	return &copied, nil
}

func (r *tableRepository) Reserve(ctx context.Context, tableID string) (*entity.Table, error) {
	r.mu.Lock()

	t, ok := r.tables[tableID]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("table %s: %w", tableID, ErrNotFound)
	}

	switch t.Status {
	case entity.TableStatusLocked:
		r.mu.Unlock()
		return nil, fmt.Errorf("reserve table %s: %w", tableID, ErrTableLocked)
	case entity.TableStatusReserved:
		r.mu.Unlock()
		return nil, fmt.Errorf("reserve table %s: %w", tableID, ErrAlreadyReserved)
	case entity.TableStatusOccupied:
		r.mu.Unlock()
		return nil, fmt.Errorf("reserve table %s: %w", tableID, ErrInvalidTransition)
	}

	t.Status = entity.TableStatusReserved
	copied := *t
	venueID := t.VenueID
	subs, snap := r.pendingNotify(venueID)
	r.mu.Unlock()

	r.log.Info("Table reserved",
		zap.String("table_id", tableID),
		zap.String("venue_id", venueID),
	)

	r.notify(subs, snap)
	return &copied, nil
}

func (r *tableRepository) SetStatus(ctx context.Context, tableID string, status entity.TableStatus) (*entity.Table, error) {
	r.mu.Lock()

	t, ok := r.tables[tableID]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("table %s: %w", tableID, ErrNotFound)
	}
	if t.Status == entity.TableStatusLocked {
		r.mu.Unlock()
		return nil, fmt.Errorf("set status of table %s: %w", tableID, ErrTableLocked)
	}
	if !validTransition(t.Status, status) {
		r.mu.Unlock()
		return nil, fmt.Errorf("table %s %s -> %s: %w", tableID, t.Status, status, ErrInvalidTransition)
	}

	t.Status = status
	copied := *t
	venueID := t.VenueID
	subs, snap := r.pendingNotify(venueID)
	r.mu.Unlock()

	r.log.Info("Table status changed",
		zap.String("table_id", tableID),
		zap.String("status", string(status)),
	)

	r.notify(subs, snap)
	return &copied, nil
}

func (r *tableRepository) SetLocked(ctx context.Context, tableID string, locked bool) (*entity.Table, error) {
	r.mu.Lock()

	t, ok := r.tables[tableID]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("table %s: %w", tableID, ErrNotFound)
	}

	if locked {
		t.Status = entity.TableStatusLocked
	} else if t.Status == entity.TableStatusLocked {
		t.Status = entity.TableStatusAvailable
	}
	copied := *t
	subs, snap := r.pendingNotify(t.VenueID)
	r.mu.Unlock()

	r.log.Info("Table lock changed",
		zap.String("table_id", tableID),
		zap.Bool("locked", locked),
	)

	r.notify(subs, snap)
	return &copied, nil
}

func (r *tableRepository) Subscribe(venueID string, fn func([]entity.Table)) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	sub := subscriber{id: r.nextID, fn: fn}
	r.subs[venueID] = append(r.subs[venueID], sub)

	return &Subscription{repo: r, venueID: venueID, id: sub.id}
}

func (r *tableRepository) unsubscribe(s *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.subs[s.venueID]
	for i, sub := range subs {
		if sub.id == s.id {
			r.subs[s.venueID] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// pendingNotify collects the observer list and a fresh snapshot under
// the lock; the callbacks themselves run after unlock so an observer
// may call back into the registry.
func (r *tableRepository) pendingNotify(venueID string) ([]subscriber, []entity.Table) {
	subs := r.subs[venueID]
	if len(subs) == 0 {
		return nil, nil
	}
	copied := make([]subscriber, len(subs))
	copy(copied, subs)
	return copied, r.snapshot(r.venues[venueID])
}

// notify delivers the snapshot in registration order.
func (r *tableRepository) notify(subs []subscriber, snap []entity.Table) {
	for _, sub := range subs {
		sub.fn(snap)
	}
}

// snapshot copies the venue's tables in floor order. Callers hold the lock.
func (r *tableRepository) snapshot(ids []string) []entity.Table {
	out := make([]entity.Table, 0, len(ids))
	for _, id := range ids {
		if t, ok := r.tables[id]; ok {
			out = append(out, *t)
		}
	}
	return out
}

func validTransition(from, to entity.TableStatus) bool {
	if from == to {
		return false
	}
	switch to {
	case entity.TableStatusOccupied:
		// Check-in from a reservation or a walk-up.
		return from == entity.TableStatusAvailable || from == entity.TableStatusReserved
	case entity.TableStatusAvailable:
		// Release at the end of the night or a no-show.
		return from == entity.TableStatusReserved || from == entity.TableStatusOccupied
	case entity.TableStatusReserved:
		return from == entity.TableStatusAvailable
	case entity.TableStatusLocked:
		// Only SetLocked may enter LOCKED.
		return false
	}
	return false
}
