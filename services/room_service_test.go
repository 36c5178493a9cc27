package services

import (
	"testing"

	"hotel-booking/models"

	"github.com/stretchr/testify/assert"
)

func roomIDs(rooms []models.Room) []int {
	ids := make([]int, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilterAndSort_SearchMatchesNameAndFeatures(t *testing.T) {
	svc := NewRoomService()

	t.Run("name match is case-insensitive", func(t *testing.T) {
		rooms := svc.FilterAndSort(RoomCriteria{Search: "deluxe"})
		assert.Equal(t, []int{3, 8, 5}, roomIDs(rooms))
	})

	t.Run("feature match", func(t *testing.T) {
		rooms := svc.FilterAndSort(RoomCriteria{Search: "tầm nhìn biển"})
		assert.Equal(t, []int{5}, roomIDs(rooms))
	})

	t.Run("empty query matches all", func(t *testing.T) {
		rooms := svc.FilterAndSort(RoomCriteria{})
		assert.Len(t, rooms, 10)
	})

	t.Run("no matches is an empty result, not an error", func(t *testing.T) {
		rooms := svc.FilterAndSort(RoomCriteria{Search: "helipad"})
		assert.Empty(t, rooms)
	})
}

func TestFilterAndSort_CategoryAndGuests(t *testing.T) {
	svc := NewRoomService()

	t.Run("all sentinel passes through", func(t *testing.T) {
		rooms := svc.FilterAndSort(RoomCriteria{Category: FilterAll})
		assert.Len(t, rooms, 10)
	})

	t.Run("suites for four or more guests", func(t *testing.T) {
		rooms := svc.FilterAndSort(RoomCriteria{
			Category:  models.CategorySuite,
			MinGuests: 4,
			SortBy:    SortPopular,
		})
		// Executive Suite sleeps 3; only the Presidential Suite qualifies.
		assert.Equal(t, []int{7}, roomIDs(rooms))
	})

	t.Run("guest threshold", func(t *testing.T) {
		rooms := svc.FilterAndSort(RoomCriteria{MinGuests: 5})
		assert.Equal(t, []int{8, 13}, roomIDs(rooms))
	})
}

// The three filters are independent predicates: the combined result must
// equal the order-preserving intersection of the single-filter results,
// whichever way they are intersected.
func TestFilterAndSort_FiltersCommute(t *testing.T) {
	svc := NewRoomService()

	criteria := RoomCriteria{Search: "minibar", Category: models.CategoryStandard, MinGuests: 2}
	combined := roomIDs(svc.FilterAndSort(criteria))

	bySearch := roomIDs(svc.FilterAndSort(RoomCriteria{Search: criteria.Search}))
	byCategory := roomIDs(svc.FilterAndSort(RoomCriteria{Category: criteria.Category}))
	byGuests := roomIDs(svc.FilterAndSort(RoomCriteria{MinGuests: criteria.MinGuests}))

	intersections := [][]int{
		intersect(intersect(bySearch, byCategory), byGuests),
		intersect(intersect(byGuests, bySearch), byCategory),
		intersect(intersect(byCategory, byGuests), bySearch),
	}
	for _, got := range intersections {
		assert.Equal(t, combined, got)
	}
}

func intersect(a, b []int) []int {
	set := make(map[int]bool, len(b))
	for _, id := range b {
		set[id] = true
	}
	out := make([]int, 0, len(a))
	for _, id := range a {
		if set[id] {
			out = append(out, id)
		}
	}
	return out
}

func TestFilterAndSort_Sorting(t *testing.T) {
	svc := NewRoomService()

	t.Run("price ascending", func(t *testing.T) {
		rooms := svc.FilterAndSort(RoomCriteria{SortBy: SortPriceAsc})
		assert.Equal(t, []int{1, 9, 4, 3, 5, 2, 6, 8, 13, 7}, roomIDs(rooms))
	})

	t.Run("price descending", func(t *testing.T) {
		rooms := svc.FilterAndSort(RoomCriteria{SortBy: SortPriceDesc})
		assert.Equal(t, []int{7, 13, 8, 6, 2, 5, 3, 4, 9, 1}, roomIDs(rooms))
	})

	t.Run("name ascending is lexicographic", func(t *testing.T) {
		rooms := svc.FilterAndSort(RoomCriteria{SortBy: SortNameAsc})
		for i := 1; i < len(rooms); i++ {
			assert.LessOrEqual(t, rooms[i-1].Name, rooms[i].Name)
		}
	})

	t.Run("popular sorts flagged rooms first, ties keep catalog order", func(t *testing.T) {
		rooms := svc.FilterAndSort(RoomCriteria{SortBy: SortPopular})
		// Popular rooms in catalog order: 2, 5, 7. Then the rest, unchanged.
		assert.Equal(t, []int{2, 5, 7, 1, 3, 8, 13, 4, 6, 9}, roomIDs(rooms))
	})

	t.Run("unknown sort keeps filtered order", func(t *testing.T) {
		rooms := svc.FilterAndSort(RoomCriteria{SortBy: "rating"})
		assert.Equal(t, []int{1, 2, 3, 8, 13, 4, 5, 6, 7, 9}, roomIDs(rooms))
	})
}

func TestFindByIDAndRoomTypes(t *testing.T) {
	svc := NewRoomService()

	room, ok := svc.FindByID(5)
	assert.True(t, ok)
	assert.Equal(t, "Deluxe Ocean View", room.Name)

	_, ok = svc.FindByID(999)
	assert.False(t, ok)

	rt, ok := svc.FindRoomType("Presidential")
	assert.True(t, ok)
	assert.Equal(t, 5000000, rt.Price)

	_, ok = svc.FindRoomType("bungalow")
	assert.False(t, ok)

	assert.Len(t, svc.RoomTypes(), 4)
}
