package seed

import (
	"testing"

	"nocturne/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenues(t *testing.T) {
	venues := Venues()
	require.Len(t, venues, 3)

	ids := make(map[string]bool)
	for _, v := range venues {
		ids[v.ID] = true
		assert.NotEmpty(t, v.Name)
		assert.NotEmpty(t, v.Manager.Name)
		assert.Len(t, v.Events, 3)
	}
	assert.True(t, ids["eclipse"] && ids["velvet"] && ids["void"])
}

func TestTablesLayout(t *testing.T) {
	venues := Venues()
	tables := Tables(venues, AllAvailable)

	// 1 DJ booth + 8 dance floor + 6 VIP per venue
	require.Len(t, tables, 3*15)

	byVenue := make(map[string][]entity.Table)
	for _, tb := range tables {
		byVenue[tb.VenueID] = append(byVenue[tb.VenueID], tb)
	}

	for _, v := range venues {
		floor := byVenue[v.ID]
		require.Len(t, floor, 15)

		var locked, df, vip int
		for _, tb := range floor {
			switch tb.Zone {
			case entity.ZoneDJDeck:
				locked++
				assert.Equal(t, entity.TableStatusLocked, tb.Status)
				assert.Equal(t, int64(0), tb.MinSpend)
			case entity.ZoneDanceFloor:
				df++
				assert.Equal(t, entity.TableStatusAvailable, tb.Status)
				assert.Equal(t, int64(1000_00), tb.MinSpend)
				assert.Equal(t, 6, tb.Capacity)
			case entity.ZoneVIPLounge:
				vip++
				assert.Equal(t, int64(2500_00), tb.MinSpend)
				assert.Equal(t, 10, tb.Capacity)
			}
		}
		assert.Equal(t, 1, locked)
		assert.Equal(t, 8, df)
		assert.Equal(t, 6, vip)
	}
}

func TestRandomStatusDeterministic(t *testing.T) {
	venues := Venues()

	first := Tables(venues, RandomStatus(42))
	second := Tables(venues, RandomStatus(42))
	require.Equal(t, len(first), len(second))

	for i := range first {
		assert.Equal(t, first[i].Status, second[i].Status, "table %s", first[i].ID)
	}
}

func TestRandomStatusOnlyValidStatuses(t *testing.T) {
	venues := Venues()
	tables := Tables(venues, RandomStatus(7))

	for _, tb := range tables {
		switch tb.Zone {
		case entity.ZoneDanceFloor:
			assert.Contains(t, []entity.TableStatus{
				entity.TableStatusAvailable,
				entity.TableStatusOccupied,
			}, tb.Status)
		case entity.ZoneVIPLounge:
			assert.Contains(t, []entity.TableStatus{
				entity.TableStatusAvailable,
				entity.TableStatusReserved,
			}, tb.Status)
		}
	}
}

func TestMenus(t *testing.T) {
	venues := Venues()
	menus := Menus(venues)

	require.Len(t, menus, 3)
	for _, v := range venues {
		menu := menus[v.ID]
		require.Len(t, menu, 6)
		for _, b := range menu {
			assert.Positive(t, b.Price)
			assert.NotEmpty(t, b.Name)
		}
	}
}
