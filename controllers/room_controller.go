package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{Service: service}
}

// ----------------------------------------------------
// 1. List Rooms (GET /api/rooms)
// ----------------------------------------------------
//
// Query params: search, category (default "all"), guests (default "all"),
// sort (default "popular"). An empty result is a normal 200 response.

func (rc *RoomController) GetRooms(c *gin.Context) {
	criteria := services.RoomCriteria{
		Search:   c.DefaultQuery("search", ""),
		Category: c.DefaultQuery("category", services.FilterAll),
		SortBy:   c.DefaultQuery("sort", services.SortPopular),
	}

	rawGuests := strings.TrimSpace(c.DefaultQuery("guests", services.FilterAll))
	if rawGuests != "" && rawGuests != services.FilterAll {
		guests, err := strconv.Atoi(rawGuests)
		if err != nil || guests < 0 {
			log.Printf("❌ Invalid guests filter: %q", rawGuests)
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "guests must be a non-negative integer or 'all'",
			})
			return
		}
		criteria.MinGuests = guests
	}

	rooms := rc.Service.FilterAndSort(criteria)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"rooms": rooms,
		"total": len(rooms),
	})
}

// ----------------------------------------------------
// 2. Room detail (GET /api/rooms/:id)
// ----------------------------------------------------

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid room id",
		})
		return
	}

	room, ok := rc.Service.FindByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Room not found",
		})
		return
	}

	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// 3. Room type fallback table (GET /api/room-types)
// ----------------------------------------------------

func (rc *RoomController) GetRoomTypes(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Service.RoomTypes())
}
