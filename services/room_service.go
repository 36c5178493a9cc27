// services/room_service.go
package services

import (
	"sort"
	"strings"

	"hotel-booking/models"
)

// Sort options accepted by the room listing.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPopular   = "popular"
)

// FilterAll is the pass-through sentinel for category and guest filters.
const FilterAll = "all"

// RoomCriteria is the user-supplied filter/sort state from the room listing.
// MinGuests <= 0 means "all".
type RoomCriteria struct {
	Search    string
	Category  string
	MinGuests int
	SortBy    string
}

// RoomService serves the static room catalog: lookups plus the filter/sort
// view the listing page renders.
type RoomService struct {
	catalog   []models.Room
	fallbacks []models.RoomTypeFallback
}

func NewRoomService() *RoomService {
	return &RoomService{
		catalog:   models.Rooms,
		fallbacks: models.RoomTypeFallbacks,
	}
}

func (s *RoomService) FindByID(id int) (models.Room, bool) {
	for _, room := range s.catalog {
		if room.ID == id {
			return room, true
		}
	}
	return models.Room{}, false
}

// RoomTypes returns the category fallback price table in its original order.
func (s *RoomService) RoomTypes() []models.RoomTypeFallback {
	out := make([]models.RoomTypeFallback, len(s.fallbacks))
	copy(out, s.fallbacks)
	return out
}

func (s *RoomService) FindRoomType(key string) (models.RoomTypeFallback, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, rt := range s.fallbacks {
		if rt.Key == key {
			return rt, true
		}
	}
	return models.RoomTypeFallback{}, false
}

// FilterAndSort applies the three filters, then sorts. The filters are
// independent predicates, so their order does not affect the result. An empty
// result is valid: it means "no matches", not an error.
func (s *RoomService) FilterAndSort(criteria RoomCriteria) []models.Room {
	filtered := make([]models.Room, 0, len(s.catalog))

	query := strings.ToLower(strings.TrimSpace(criteria.Search))
	category := strings.ToLower(strings.TrimSpace(criteria.Category))

	for _, room := range s.catalog {
		if query != "" && !matchesQuery(room, query) {
			continue
		}
		if category != "" && category != FilterAll && room.Category != category {
			continue
		}
		if criteria.MinGuests > 0 && room.Guests < criteria.MinGuests {
			continue
		}
		filtered = append(filtered, room)
	}

	sortRooms(filtered, criteria.SortBy)
	return filtered
}

func matchesQuery(room models.Room, query string) bool {
	if strings.Contains(strings.ToLower(room.Name), query) {
		return true
	}
	for _, feature := range room.Features {
		if strings.Contains(strings.ToLower(feature), query) {
			return true
		}
	}
	return false
}

// sortRooms sorts in place. All orderings are stable; "popular" has no
// secondary key, so ties keep their prior relative order. Unknown sort keys
// leave the filtered order untouched.
func sortRooms(rooms []models.Room, sortBy string) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(rooms, func(i, j int) bool {
			return roomPrice(rooms[i]) < roomPrice(rooms[j])
		})
	case SortPriceDesc:
		sort.SliceStable(rooms, func(i, j int) bool {
			return roomPrice(rooms[i]) > roomPrice(rooms[j])
		})
	case SortNameAsc:
		sort.SliceStable(rooms, func(i, j int) bool {
			return rooms[i].Name < rooms[j].Name
		})
	case SortNameDesc:
		sort.SliceStable(rooms, func(i, j int) bool {
			return rooms[i].Name > rooms[j].Name
		})
	case SortPopular:
		sort.SliceStable(rooms, func(i, j int) bool {
			return rooms[i].Popular && !rooms[j].Popular
		})
	}
}

func roomPrice(room models.Room) int {
	price, err := ParseAmount(room.Price)
	if err != nil {
		return 0
	}
	return price
}
