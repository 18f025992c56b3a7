package cmd

import (
	"context"
	"errors"
	"fmt"

	"nocturne/internal/data/entity"
	"nocturne/internal/data/repository"
	"nocturne/internal/dto/request"
	"nocturne/internal/dto/response"
	"nocturne/internal/usecase"
	"nocturne/internal/wire"
	"nocturne/pkg/utils"

	"go.uber.org/zap"
)

// Demo walks one scripted night through the engine: register a guest,
// browse the floor, open a tab, meet the minimum and confirm, then
// race a second session for the same table to show the conflict path.
func Demo(app *wire.App, cfg *utils.Config, log *zap.Logger) error {
	ctx := context.Background()
	svc := app.Service

	user, err := svc.User.Register(ctx, &request.RegisterUserRequest{
		Name:  cfg.Demo.UserName,
		Phone: cfg.Demo.UserPhone,
	})
	if err != nil {
		return fmt.Errorf("register demo user: %w", err)
	}

	clubs, err := svc.Venue.ListClubs(ctx)
	if err != nil {
		return fmt.Errorf("list clubs: %w", err)
	}
	for _, c := range clubs {
		fmt.Printf("%-8s %-28s %s\n", c.Name, c.Description, c.PriceRange)
	}

	venueID := cfg.Demo.Venue
	sub, err := svc.Venue.WatchFloor(ctx, venueID, func(tables []response.TableResponse) {
		available := 0
		for _, t := range tables {
			if t.Status == "AVAILABLE" {
				available++
			}
		}
		log.Info("Floor updated",
			zap.String("venue_id", venueID),
			zap.Int("available", available),
		)
	})
	if err != nil {
		return fmt.Errorf("watch floor: %w", err)
	}
	defer sub.Unsubscribe()

	tables, err := svc.Venue.ListTables(ctx, venueID)
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}

	var target *response.TableResponse
	for i := range tables {
		if tables[i].Status == "AVAILABLE" {
			target = &tables[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no available table at %s tonight", venueID)
	}
	fmt.Printf("\nProposing %s (min spend %s)\n", target.Label, utils.FormatAmount(target.MinSpend))

	userID, err := utils.ParseUUID(user.ID)
	if err != nil {
		return fmt.Errorf("parse user id: %w", err)
	}
	guest, err := app.Repo.User.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load demo user: %w", err)
	}

	sessionA := svc.Booking.StartSession(guest)
	if _, err := svc.Booking.SelectTable(ctx, sessionA, target.ID); err != nil {
		return fmt.Errorf("select table: %w", err)
	}
	if err := svc.Booking.StartTab(sessionA); err != nil {
		return fmt.Errorf("start tab: %w", err)
	}

	// A rival party proposes the same table while it is still free.
	sessionB := svc.Booking.StartSession(guest)
	if _, err := svc.Booking.SelectTable(ctx, sessionB, target.ID); err != nil {
		return fmt.Errorf("rival select table: %w", err)
	}
	if err := svc.Booking.StartTab(sessionB); err != nil {
		return fmt.Errorf("rival start tab: %w", err)
	}

	bottles, err := svc.Venue.ListBottles(ctx, venueID)
	if err != nil {
		return fmt.Errorf("list bottles: %w", err)
	}

	progress, err := buildTab(ctx, svc.Booking, sessionA, bottles)
	if err != nil {
		return fmt.Errorf("build tab: %w", err)
	}
	fmt.Printf("Tab at %s of %s, minimum met\n",
		utils.FormatAmount(progress.Spent), utils.FormatAmount(target.MinSpend))

	if _, err := buildTab(ctx, svc.Booking, sessionB, bottles); err != nil {
		return fmt.Errorf("rival build tab: %w", err)
	}

	res, err := svc.Booking.Confirm(ctx, sessionA)
	if err != nil {
		return fmt.Errorf("confirm: %w", err)
	}
	fmt.Printf("Confirmed %s for table %s, total %s\n",
		res.OrderRef, res.TableID, utils.FormatAmount(res.Total))

	// The rival's confirm must lose: the registry already flipped the
	// table to RESERVED.
	if _, err := svc.Booking.Confirm(ctx, sessionB); err != nil {
		if errors.Is(err, repository.ErrReservationConflict) {
			fmt.Println("Rival session hit a reservation conflict; their tab is preserved")
		} else {
			return fmt.Errorf("rival confirm: %w", err)
		}
	}
	if err := svc.Booking.Cancel(sessionB); err != nil {
		return fmt.Errorf("rival cancel: %w", err)
	}

	stats, err := svc.Stats.NightlyStats(ctx)
	if err != nil {
		return fmt.Errorf("nightly stats: %w", err)
	}
	fmt.Printf("\nNightly: revenue %s, occupancy %d%%, bottles %d, active tables %d\n",
		utils.FormatAmount(stats.TotalRevenue), stats.OccupancyRate,
		stats.BottlesSold, stats.ActiveTables)

	return nil
}

// buildTab adds bottles round-robin until the table minimum is met.
func buildTab(ctx context.Context, booking usecase.BookingService, session *usecase.Session, bottles []response.BottleResponse) (entity.Progress, error) {
	for i := 0; ; i = (i + 1) % len(bottles) {
		progress, err := booking.AddBottle(ctx, session, bottles[i].ID)
		if err != nil {
			return entity.Progress{}, err
		}
		if progress.Met {
			return progress, nil
		}
	}
}
