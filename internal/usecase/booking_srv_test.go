package usecase

import (
	"context"
	"testing"
	"time"

	"nocturne/internal/data/entity"
	"nocturne/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixtureRepo(t *testing.T) *repository.Repository {
	t.Helper()

	venues := []entity.Venue{
		{ID: "eclipse", Name: "ECLIPSE", Kind: entity.VenueKindClub, Currency: "EUR"},
	}
	tables := []entity.Table{
		{ID: "t1", VenueID: "eclipse", Label: "DF1", Zone: entity.ZoneDanceFloor, Status: entity.TableStatusAvailable, MinSpend: 1000_00, Capacity: 6},
		{ID: "t2", VenueID: "eclipse", Label: "DF2", Zone: entity.ZoneDanceFloor, Status: entity.TableStatusAvailable, MinSpend: 500_00, Capacity: 6},
		{ID: "t3", VenueID: "eclipse", Label: "DJ", Zone: entity.ZoneDJDeck, Status: entity.TableStatusLocked},
		{ID: "t4", VenueID: "eclipse", Label: "VIP1", Zone: entity.ZoneVIPLounge, Status: entity.TableStatusAvailable, MinSpend: 1000_00, Capacity: 10},
		{ID: "t5", VenueID: "eclipse", Label: "VIP2", Zone: entity.ZoneVIPLounge, Status: entity.TableStatusReserved, MinSpend: 2500_00, Capacity: 10},
	}
	menus := map[string][]entity.Bottle{
		"eclipse": {
			{ID: "b1", Name: "House Vodka", Category: entity.CategoryVodka, Price: 200_00},
			{ID: "b2", Name: "Dom Pérignon", Category: entity.CategoryChampagne, Price: 600_00},
		},
	}
	return repository.NewRepository(venues, tables, menus, zap.NewNop())
}

func fixtureGuest() *entity.UserProfile {
	return &entity.UserProfile{
		ID:          uuid.New(),
		Name:        "Nova",
		Phone:       "+4912345",
		LoyaltyTier: entity.TierGold,
		CreatedAt:   time.Now(),
	}
}

func TestBookingHappyPath(t *testing.T) {
	repo := fixtureRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	session := svc.StartSession(fixtureGuest())
	assert.Equal(t, StateIdle, session.State)

	table, err := svc.SelectTable(ctx, session, "t1")
	require.NoError(t, err)
	assert.Equal(t, StateTableProposed, session.State)
	assert.Equal(t, int64(1000_00), table.MinSpend)

	require.NoError(t, svc.StartTab(session))
	assert.Equal(t, StateTabBuilding, session.State)

	// Two bottles of champagne clear the 1000 minimum at 1200.
	_, err = svc.AddBottle(ctx, session, "b2")
	require.NoError(t, err)
	progress, err := svc.AddBottle(ctx, session, "b2")
	require.NoError(t, err)
	assert.Equal(t, int64(1200_00), progress.Spent)
	assert.Equal(t, int64(0), progress.Remaining)
	assert.True(t, progress.Met)
	assert.Equal(t, 2, session.Cart.Quantity("b2"))

	res, err := svc.Confirm(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, session.State)
	assert.Equal(t, "t1", res.TableID)
	assert.Equal(t, int64(1200_00), res.Total)
	assert.NotEmpty(t, res.OrderRef)

	// The cart is destroyed on confirmation.
	assert.Equal(t, 0, session.Cart.Len())

	// And the registry committed the status change.
	committed, err := repo.Table.FindByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusReserved, committed.Status)
}

func TestConfirmBelowMinimum(t *testing.T) {
	repo := fixtureRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	session := svc.StartSession(fixtureGuest())
	_, err := svc.SelectTable(ctx, session, "t2")
	require.NoError(t, err)
	require.NoError(t, svc.StartTab(session))

	progress, err := svc.AddBottle(ctx, session, "b1")
	require.NoError(t, err)
	require.False(t, progress.Met)

	_, err = svc.Confirm(ctx, session)
	assert.ErrorIs(t, err, repository.ErrMinimumNotMet)

	// Advisory failure: session and cart stay put, no registry write.
	assert.Equal(t, StateTabBuilding, session.State)
	assert.Equal(t, 1, session.Cart.Quantity("b1"))

	table, err := repo.Table.FindByID(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusAvailable, table.Status)
}

func TestSelectLockedTable(t *testing.T) {
	repo := fixtureRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	session := svc.StartSession(fixtureGuest())
	_, err := svc.SelectTable(ctx, session, "t3")
	assert.ErrorIs(t, err, repository.ErrTableLocked)

	// No session state was created for the failed proposal.
	assert.Equal(t, StateIdle, session.State)
	assert.Nil(t, session.Table)
	assert.Nil(t, session.Cart)
}

func TestSelectUnavailableTable(t *testing.T) {
	repo := fixtureRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	session := svc.StartSession(fixtureGuest())
	_, err := svc.SelectTable(ctx, session, "t5")
	assert.ErrorIs(t, err, repository.ErrTableUnavailable)
	assert.Equal(t, StateIdle, session.State)

	_, err = svc.SelectTable(ctx, session, "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRemoveBottleNoOpWhenAbsent(t *testing.T) {
	repo := fixtureRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	session := svc.StartSession(fixtureGuest())
	_, err := svc.SelectTable(ctx, session, "t1")
	require.NoError(t, err)
	require.NoError(t, svc.StartTab(session))

	_, err = svc.AddBottle(ctx, session, "b1")
	require.NoError(t, err)

	progress, err := svc.RemoveBottle(session, "b1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), progress.Spent)

	// Removing again is a silent no-op; double-clicks must not error.
	progress, err = svc.RemoveBottle(session, "b1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), progress.Spent)
	assert.Equal(t, 0, session.Cart.Len())
}

func TestConfirmRace(t *testing.T) {
	repo := fixtureRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	sessionA := svc.StartSession(fixtureGuest())
	sessionB := svc.StartSession(fixtureGuest())

	// Both sessions hold a proposal on the same available table.
	_, err := svc.SelectTable(ctx, sessionA, "t4")
	require.NoError(t, err)
	_, err = svc.SelectTable(ctx, sessionB, "t4")
	require.NoError(t, err)

	require.NoError(t, svc.StartTab(sessionA))
	require.NoError(t, svc.StartTab(sessionB))

	for i := 0; i < 2; i++ {
		_, err = svc.AddBottle(ctx, sessionA, "b2")
		require.NoError(t, err)
		_, err = svc.AddBottle(ctx, sessionB, "b2")
		require.NoError(t, err)
	}

	// A confirms first and wins.
	_, err = svc.Confirm(ctx, sessionA)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, sessionA.State)

	// B's confirm loses the race; tab survives for a different table.
	_, err = svc.Confirm(ctx, sessionB)
	assert.ErrorIs(t, err, repository.ErrReservationConflict)
	assert.Equal(t, StateTabBuilding, sessionB.State)
	assert.Equal(t, 2, sessionB.Cart.Quantity("b2"))
}

func TestCancelLeavesRegistryUntouched(t *testing.T) {
	repo := fixtureRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	session := svc.StartSession(fixtureGuest())
	_, err := svc.SelectTable(ctx, session, "t1")
	require.NoError(t, err)
	require.NoError(t, svc.StartTab(session))
	_, err = svc.AddBottle(ctx, session, "b2")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(session))
	assert.Equal(t, StateCancelled, session.State)
	assert.Equal(t, 0, session.Cart.Len())

	table, err := repo.Table.FindByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusAvailable, table.Status)
}

func TestTerminalStatesAcceptNoMutation(t *testing.T) {
	repo := fixtureRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	session := svc.StartSession(fixtureGuest())
	_, err := svc.SelectTable(ctx, session, "t1")
	require.NoError(t, err)
	require.NoError(t, svc.StartTab(session))
	for i := 0; i < 2; i++ {
		_, err = svc.AddBottle(ctx, session, "b2")
		require.NoError(t, err)
	}
	_, err = svc.Confirm(ctx, session)
	require.NoError(t, err)

	_, err = svc.SelectTable(ctx, session, "t2")
	assert.ErrorIs(t, err, repository.ErrSessionClosed)
	_, err = svc.AddBottle(ctx, session, "b1")
	assert.ErrorIs(t, err, repository.ErrSessionClosed)
	err = svc.Cancel(session)
	assert.ErrorIs(t, err, repository.ErrSessionClosed)

	cancelled := svc.StartSession(fixtureGuest())
	_, err = svc.SelectTable(ctx, cancelled, "t2")
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(cancelled))

	err = svc.StartTab(cancelled)
	assert.ErrorIs(t, err, repository.ErrSessionClosed)
}

func TestStateMachineOrdering(t *testing.T) {
	repo := fixtureRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	session := svc.StartSession(fixtureGuest())

	// From idle, only a table selection is a valid entry.
	err := svc.StartTab(session)
	assert.ErrorIs(t, err, repository.ErrInvalidTransition)
	_, err = svc.AddBottle(ctx, session, "b1")
	assert.ErrorIs(t, err, repository.ErrInvalidTransition)
	err = svc.Cancel(session)
	assert.ErrorIs(t, err, repository.ErrInvalidTransition)

	// A second proposal on an active session is rejected too.
	_, err = svc.SelectTable(ctx, session, "t1")
	require.NoError(t, err)
	_, err = svc.SelectTable(ctx, session, "t2")
	assert.ErrorIs(t, err, repository.ErrInvalidTransition)
}
