// controllers/checkout_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Service *services.CheckoutService
}

func NewCheckoutController(service *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Service: service}
}

// ----------------------------------------------------
// 1. Quote (GET /api/checkout/quote)
// ----------------------------------------------------
//
// Prices a draft for the booking summary before payment. The draft comes in
// on the same query-parameter contract the room detail page produces.

func (cc *CheckoutController) GetQuote(c *gin.Context) {
	draft, err := services.ParseBookingDraft(c.Request.URL.Query())
	if err != nil {
		respondDraftError(c, err)
		return
	}

	pricing, err := cc.Service.QuoteDraft(draft)
	if err != nil {
		respondDraftError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, pricing)
}

// ----------------------------------------------------
// 2. Submit payment (POST /api/checkout)
// ----------------------------------------------------
//
// Draft from query params, payment details from the JSON body. Runs the full
// flow and answers with the persisted booking record once the simulated
// processing completes. An identical submit while the first is still
// processing is answered with 409 instead of a second record.

func (cc *CheckoutController) SubmitPayment(c *gin.Context) {
	draft, err := services.ParseBookingDraft(c.Request.URL.Query())
	if err != nil {
		respondDraftError(c, err)
		return
	}

	var payment services.PaymentDetails
	if err := c.ShouldBindJSON(&payment); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	flow, err := cc.Service.FlowFor(draft)
	if err != nil {
		respondDraftError(c, err)
		return
	}

	done, err := flow.Submit(payment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIncompletePaymentFields),
			errors.Is(err, services.ErrUnknownBank),
			errors.Is(err, services.ErrUnknownPaymentMethod):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
		case errors.Is(err, services.ErrPaymentInProgress),
			errors.Is(err, services.ErrCheckoutCompleted):
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Payment failed",
				"details": err.Error(),
			})
		}
		return
	}

	record := <-done
	log.Printf("✅ Booking %s confirmed (%s, %d nights, total %d)",
		record.BookingID, record.RoomName, record.Nights, record.Total)

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"booking": record,
		"receipt": buildReceipt(record),
	})
}

// respondDraftError maps draft/pricing failures onto the abort-to-home
// contract: the client shows the notice, then redirects.
func respondDraftError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrMissingBookingContext) || errors.Is(err, services.ErrUnknownRoom) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":   "error",
			"message":  "Booking information is incomplete, please start over",
			"details":  err.Error(),
			"redirect": "/",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Checkout failed",
		"details": err.Error(),
	})
}
