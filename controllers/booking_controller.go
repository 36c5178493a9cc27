// controllers/booking_controller.go
package controllers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Store services.BookingStore
}

func NewBookingController(store services.BookingStore) *BookingController {
	return &BookingController{Store: store}
}

// ----------------------------------------------------
// 1. List bookings (GET /api/bookings)
// ----------------------------------------------------

func (bc *BookingController) GetBookings(c *gin.Context) {
	records, err := bc.Store.LoadAll()
	if err != nil {
		log.Printf("❌ Failed to load booking ledger: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load bookings",
			"details": err.Error(),
		})
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"bookings": records,
		"total":    len(records),
	})
}

// ----------------------------------------------------
// 2. Booking lookup (GET /api/bookings/:bookingId)
// ----------------------------------------------------
//
// Deep-link target: the full receipt is reconstructed from the stored record
// alone, no checkout context required.

func (bc *BookingController) GetBookingByID(c *gin.Context) {
	bookingID := strings.ToUpper(strings.TrimSpace(c.Param("bookingId")))
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Booking id is required",
		})
		return
	}

	records, err := bc.Store.LoadAll()
	if err != nil {
		log.Printf("❌ Failed to load booking ledger: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load bookings",
			"details": err.Error(),
		})
		return
	}

	for _, record := range records {
		if record.BookingID == bookingID {
			utils.JSONSuccess(c, http.StatusOK, gin.H{
				"booking": record,
				"receipt": buildReceipt(record),
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{
		"status":  "error",
		"message": fmt.Sprintf("Booking %s not found", bookingID),
	})
}

// buildReceipt derives the display strings and the deep-link parameter set
// for the confirmation view. specialRequests is omitted from the parameters
// when empty, never sent as an empty string.
func buildReceipt(record models.BookingRecord) gin.H {
	params := url.Values{}
	params.Set("bookingId", record.BookingID)
	params.Set("roomId", record.RoomID)
	params.Set("checkIn", record.CheckIn)
	params.Set("checkOut", record.CheckOut)
	params.Set("guests", record.Guests)
	params.Set("adults", record.Adults)
	params.Set("children", record.Children)
	params.Set("roomType", record.RoomType)
	params.Set("fullName", record.FullName)
	params.Set("email", record.Email)
	params.Set("phone", record.Phone)
	if record.SpecialRequests != "" {
		params.Set("specialRequests", record.SpecialRequests)
	}

	return gin.H{
		"bookingId":  record.BookingID,
		"roomName":   record.RoomName,
		"checkIn":    utils.FormatDisplayDate(record.CheckIn),
		"checkOut":   utils.FormatDisplayDate(record.CheckOut),
		"nights":     record.Nights,
		"subtotal":   utils.FormatCurrency(record.Subtotal),
		"tax":        utils.FormatCurrency(record.Tax),
		"serviceFee": utils.FormatCurrency(record.ServiceFee),
		"total":      utils.FormatCurrency(record.Total),
		"detailLink": "/booking/" + record.BookingID + "?" + params.Encode(),
	}
}
