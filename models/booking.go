package models

import (
	"time"

	"gorm.io/datatypes"
)

// BookingDraft carries the in-flight user selections between the room detail
// page and checkout. It is never persisted on its own; a draft only becomes a
// BookingRecord when payment completes. Counts stay strings because that is
// how the parameter contract transports them.
type BookingDraft struct {
	RoomID          int       `json:"roomId,omitempty"`
	RoomType        string    `json:"roomType,omitempty"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Guests          string    `json:"guests"`
	Adults          string    `json:"adults"`
	Children        string    `json:"children"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
}

// PricingBreakdown is the derived nightly-rate arithmetic. Plain value, no
// side effects; Total == Subtotal + Tax + ServiceFee exactly.
type PricingBreakdown struct {
	Nights     int `json:"nights"`
	UnitPrice  int `json:"unitPrice"`
	Subtotal   int `json:"subtotal"`
	Tax        int `json:"tax"`
	ServiceFee int `json:"serviceFee"`
	Total      int `json:"total"`
}

// BookingRecord is the persisted, immutable result of a completed checkout.
// Created exactly once at the Processing -> Success transition, never mutated.
type BookingRecord struct {
	BookingID       string    `json:"bookingId"`
	RoomID          string    `json:"roomId"`
	RoomName        string    `json:"roomName"`
	RoomType        string    `json:"roomType"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	Guests          string    `json:"guests"`
	Adults          string    `json:"adults"`
	Children        string    `json:"children"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	SpecialRequests string    `json:"specialRequests"`
	Total           int       `json:"total"`
	Subtotal        int       `json:"subtotal"`
	Tax             int       `json:"tax"`
	ServiceFee      int       `json:"serviceFee"`
	Nights          int       `json:"nights"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BookingLedger backs the booking record store: one row per store key holding
// the whole record collection as a JSON array, mirroring a key-value area.
type BookingLedger struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StoreKey  string         `gorm:"column:store_key;uniqueIndex;size:64" json:"storeKey"`
	Records   datatypes.JSON `gorm:"column:records" json:"records"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
