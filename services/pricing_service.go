// services/pricing_service.go
package services

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"hotel-booking/models"
)

// Tax and service fee rates applied to the subtotal, each rounded
// independently. No compounding.
const (
	taxRate        = 0.10
	serviceFeeRate = 0.05
)

var (
	// ErrUnknownRoom: neither the room id nor the room type resolved to a
	// price. Surfaced instead of silently billing zero.
	ErrUnknownRoom = errors.New("unknown_room")

	// ErrInvalidAmount: a catalog price string did not parse.
	ErrInvalidAmount = errors.New("invalid_amount")
)

// PricingService derives the nightly-rate arithmetic for a booking. Pure
// derivation over the catalog; no side effects.
type PricingService struct {
	Rooms *RoomService
}

func NewPricingService(rooms *RoomService) *PricingService {
	return &PricingService{Rooms: rooms}
}

// ParseAmount converts a locale-formatted amount string ("2,200,000") to
// integer currency units by stripping thousands separators. No fractional
// units are modeled.
func ParseAmount(s string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return 0, ErrInvalidAmount
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return n, nil
}

// ResolvePrice resolves the nightly price and display name for a booking
// reference: (1) catalog lookup by room id, (2) fallback table lookup by room
// type, (3) ErrUnknownRoom.
func (s *PricingService) ResolvePrice(roomID int, roomType string) (string, int, error) {
	if roomID > 0 {
		if room, ok := s.Rooms.FindByID(roomID); ok {
			price, err := ParseAmount(room.Price)
			if err != nil {
				return "", 0, err
			}
			return room.Name, price, nil
		}
	}
	if roomType != "" {
		if rt, ok := s.Rooms.FindRoomType(roomType); ok {
			return rt.Name, rt.Price, nil
		}
	}
	return "", 0, ErrUnknownRoom
}

// Nights is the ceiling of the check-in/check-out difference in whole days,
// floored at 1. Same-day and inverted ranges are tolerated rather than
// rejected; the booking flow never validates checkOut > checkIn.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// Quote computes the full breakdown for a draft's room reference and dates.
func (s *PricingService) Quote(roomID int, roomType string, checkIn, checkOut time.Time) (models.PricingBreakdown, error) {
	_, unitPrice, err := s.ResolvePrice(roomID, roomType)
	if err != nil {
		return models.PricingBreakdown{}, err
	}

	nights := Nights(checkIn, checkOut)
	subtotal := unitPrice * nights
	tax := int(math.Round(float64(subtotal) * taxRate))
	serviceFee := int(math.Round(float64(subtotal) * serviceFeeRate))

	return models.PricingBreakdown{
		Nights:     nights,
		UnitPrice:  unitPrice,
		Subtotal:   subtotal,
		Tax:        tax,
		ServiceFee: serviceFee,
		Total:      subtotal + tax + serviceFee,
	}, nil
}
