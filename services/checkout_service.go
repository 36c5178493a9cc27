// services/checkout_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"hotel-booking/models"
	"hotel-booking/utils"
)

// Checkout flow states. There is no failure terminal: validation failures
// keep the flow in CollectingPayment and the simulated processing always
// succeeds.
type CheckoutState string

const (
	StateCollectingPayment CheckoutState = "COLLECTING_PAYMENT"
	StateProcessing        CheckoutState = "PROCESSING"
	StateSuccess           CheckoutState = "SUCCESS"
)

// Payment methods accepted by the checkout form.
const (
	MethodCreditCard   = "credit-card"
	MethodBankTransfer = "bank-transfer"
	MethodCash         = "cash"
)

var (
	ErrMissingBookingContext   = errors.New("missing_booking_context")
	ErrIncompletePaymentFields = errors.New("incomplete_payment_fields")
	ErrUnknownPaymentMethod    = errors.New("unknown_payment_method")
	ErrUnknownBank             = errors.New("unknown_bank")
	ErrPaymentInProgress       = errors.New("payment_in_progress")
	ErrCheckoutCompleted       = errors.New("checkout_already_completed")
)

// Banks accepted by the bank-transfer form.
var acceptedBanks = map[string]bool{
	"vietcombank": true,
	"bidv":        true,
	"vietinbank":  true,
	"techcombank": true,
	"acb":         true,
	"mbbank":      true,
}

const dateLayout = "2006-01-02"

// PaymentDetails is the payment form payload. Fields are presence-checked per
// method only; no Luhn check, no expiry validity check.
type PaymentDetails struct {
	Method        string `json:"paymentMethod"`
	CardNumber    string `json:"cardNumber"`
	CardName      string `json:"cardName"`
	ExpiryDate    string `json:"expiryDate"`
	CVV           string `json:"cvv"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
}

// ParseBookingDraft is the one typed, validated parse step for the URL
// parameter contract. Everything downstream works with the parsed draft; no
// re-parsing at consumption sites. A draft without both dates, or without at
// least one of roomId/roomType, is invalid and the flow must abort back to
// the home context.
func ParseBookingDraft(query url.Values) (models.BookingDraft, error) {
	draft := models.BookingDraft{
		Guests:          paramOrDefault(query, "guests", "2"),
		Adults:          paramOrDefault(query, "adults", "1"),
		Children:        paramOrDefault(query, "children", "0"),
		FullName:        strings.TrimSpace(query.Get("fullName")),
		Email:           strings.TrimSpace(query.Get("email")),
		Phone:           strings.TrimSpace(query.Get("phone")),
		SpecialRequests: strings.TrimSpace(query.Get("specialRequests")),
		RoomType:        strings.ToLower(strings.TrimSpace(query.Get("roomType"))),
	}

	if raw := strings.TrimSpace(query.Get("roomId")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return models.BookingDraft{}, ErrMissingBookingContext
		}
		draft.RoomID = id
	}
	if draft.RoomID == 0 && draft.RoomType == "" {
		return models.BookingDraft{}, ErrMissingBookingContext
	}

	checkIn, err := time.Parse(dateLayout, strings.TrimSpace(query.Get("checkIn")))
	if err != nil {
		return models.BookingDraft{}, ErrMissingBookingContext
	}
	checkOut, err := time.Parse(dateLayout, strings.TrimSpace(query.Get("checkOut")))
	if err != nil {
		return models.BookingDraft{}, ErrMissingBookingContext
	}
	draft.CheckIn = checkIn
	draft.CheckOut = checkOut

	for _, count := range []string{draft.Guests, draft.Adults, draft.Children} {
		if n, err := strconv.Atoi(count); err != nil || n < 0 {
			return models.BookingDraft{}, ErrMissingBookingContext
		}
	}

	return draft, nil
}

func paramOrDefault(query url.Values, key, def string) string {
	if v := strings.TrimSpace(query.Get(key)); v != "" {
		return v
	}
	return def
}

// CheckoutService builds checkout flows: one flow per checkout page visit.
// In-flight flows are registered per draft fingerprint so a duplicate
// submission reaches the same flow instance and hits its state guard.
type CheckoutService struct {
	Pricing *PricingService
	Store   BookingStore
	Delay   time.Duration

	mu    sync.Mutex
	flows map[string]*CheckoutFlow
}

func NewCheckoutService(pricing *PricingService, store BookingStore, delay time.Duration) *CheckoutService {
	return &CheckoutService{
		Pricing: pricing,
		Store:   store,
		Delay:   delay,
		flows:   make(map[string]*CheckoutFlow),
	}
}

// draftKey fingerprints the submission identity: two requests carrying the
// same room reference, dates and email are the same checkout.
func draftKey(draft models.BookingDraft) string {
	return fmt.Sprintf("%d|%s|%s|%s|%s",
		draft.RoomID,
		draft.RoomType,
		draft.CheckIn.Format(dateLayout),
		draft.CheckOut.Format(dateLayout),
		strings.ToLower(draft.Email),
	)
}

// QuoteDraft prices a parsed draft for the booking summary.
func (s *CheckoutService) QuoteDraft(draft models.BookingDraft) (models.PricingBreakdown, error) {
	return s.Pricing.Quote(draft.RoomID, draft.RoomType, draft.CheckIn, draft.CheckOut)
}

// NewFlow validates the draft, resolves its pricing and returns a fresh flow
// in CollectingPayment.
func (s *CheckoutService) NewFlow(draft models.BookingDraft) (*CheckoutFlow, error) {
	if draft.CheckIn.IsZero() || draft.CheckOut.IsZero() {
		return nil, ErrMissingBookingContext
	}
	if draft.RoomID == 0 && draft.RoomType == "" {
		return nil, ErrMissingBookingContext
	}

	roomName, _, err := s.Pricing.ResolvePrice(draft.RoomID, draft.RoomType)
	if err != nil {
		return nil, err
	}
	pricing, err := s.QuoteDraft(draft)
	if err != nil {
		return nil, err
	}

	return &CheckoutFlow{
		svc:      s,
		draft:    draft,
		pricing:  pricing,
		roomName: roomName,
		state:    StateCollectingPayment,
	}, nil
}

// FlowFor returns the registered in-flight flow for an identical draft, or
// validates and registers a fresh one. Each HTTP submit goes through here, so
// a duplicate submit lands on the flow that is already Processing and gets
// rejected by its guard instead of spawning a second record.
func (s *CheckoutService) FlowFor(draft models.BookingDraft) (*CheckoutFlow, error) {
	candidate, err := s.NewFlow(draft)
	if err != nil {
		return nil, err
	}

	key := draftKey(draft)
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.flows[key]; ok && existing.State() != StateSuccess {
		return existing, nil
	}
	candidate.key = key
	s.flows[key] = candidate
	return candidate, nil
}

// release drops a completed flow from the registry so a later, separate
// checkout for the same draft starts clean.
func (s *CheckoutService) release(key string, flow *CheckoutFlow) {
	if key == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flows[key] == flow {
		delete(s.flows, key)
	}
}

// CheckoutFlow is a single checkout instance. Success is terminal; a new
// navigation starts a new flow.
type CheckoutFlow struct {
	svc      *CheckoutService
	draft    models.BookingDraft
	pricing  models.PricingBreakdown
	roomName string
	key      string

	mu    sync.Mutex
	state CheckoutState
}

func (f *CheckoutFlow) State() CheckoutState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *CheckoutFlow) Pricing() models.PricingBreakdown {
	return f.pricing
}

// Submit drives CollectingPayment -> Processing. The state check under the
// lock is the double-submit guard: a second submit while Processing is
// rejected regardless of what the UI does, so at most one record is ever
// appended per flow. Validation failures leave the state at
// CollectingPayment and are fully retryable.
//
// On success the returned channel delivers the persisted record after the
// simulated processing delay.
func (f *CheckoutFlow) Submit(payment PaymentDetails) (<-chan models.BookingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateProcessing:
		return nil, ErrPaymentInProgress
	case StateSuccess:
		return nil, ErrCheckoutCompleted
	}

	if err := validatePayment(payment); err != nil {
		return nil, err
	}

	f.state = StateProcessing
	done := make(chan models.BookingRecord, 1)
	time.AfterFunc(f.svc.Delay, func() {
		f.complete(done)
	})
	return done, nil
}

// complete runs the Processing -> Success transition: generate the booking
// reference, build the record, append it to the store.
func (f *CheckoutFlow) complete(done chan<- models.BookingRecord) {
	bookingID, err := utils.GenerateBookingRef()
	if err != nil {
		// crypto/rand failure: fall back to a timestamp-derived reference
		// rather than losing a paid booking.
		bookingID = strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))
		if len(bookingID) > 8 {
			bookingID = bookingID[len(bookingID)-8:]
		}
		log.Printf("⚠️  booking ref generator failed, using fallback %s: %v", bookingID, err)
	}

	roomID := ""
	if f.draft.RoomID > 0 {
		roomID = strconv.Itoa(f.draft.RoomID)
	}

	record := models.BookingRecord{
		BookingID:       bookingID,
		RoomID:          roomID,
		RoomName:        f.roomName,
		RoomType:        f.draft.RoomType,
		CheckIn:         f.draft.CheckIn.Format(dateLayout),
		CheckOut:        f.draft.CheckOut.Format(dateLayout),
		Guests:          f.draft.Guests,
		Adults:          f.draft.Adults,
		Children:        f.draft.Children,
		FullName:        f.draft.FullName,
		Email:           f.draft.Email,
		Phone:           f.draft.Phone,
		SpecialRequests: f.draft.SpecialRequests,
		Total:           f.pricing.Total,
		Subtotal:        f.pricing.Subtotal,
		Tax:             f.pricing.Tax,
		ServiceFee:      f.pricing.ServiceFee,
		Nights:          f.pricing.Nights,
		CreatedAt:       time.Now().UTC(),
	}

	if err := f.svc.Store.Append(record); err != nil {
		// Never block a confirmed payment on a store failure.
		log.Printf("❌ failed to append booking %s to ledger: %v", bookingID, err)
	}

	f.mu.Lock()
	f.state = StateSuccess
	f.mu.Unlock()
	f.svc.release(f.key, f)

	done <- record
}

// validatePayment is presence validation only, per method. The CVV is
// truncated to its first 3 digits before the check, matching the form.
func validatePayment(payment PaymentDetails) error {
	method := strings.ToLower(strings.TrimSpace(payment.Method))
	switch method {
	case MethodCreditCard:
		cvv := digitsOnly(payment.CVV)
		if len(cvv) > 3 {
			cvv = cvv[:3]
		}
		if strings.TrimSpace(payment.CardNumber) == "" ||
			strings.TrimSpace(payment.CardName) == "" ||
			strings.TrimSpace(payment.ExpiryDate) == "" ||
			cvv == "" {
			return fmt.Errorf("%w: card number, card holder, expiry and CVV are required", ErrIncompletePaymentFields)
		}
		return nil
	case MethodBankTransfer:
		bank := strings.ToLower(strings.TrimSpace(payment.BankName))
		if bank == "" || strings.TrimSpace(payment.AccountNumber) == "" {
			return fmt.Errorf("%w: bank and account number are required", ErrIncompletePaymentFields)
		}
		if !acceptedBanks[bank] {
			return ErrUnknownBank
		}
		return nil
	case MethodCash:
		// Paid at the hotel; nothing to collect.
		return nil
	default:
		return ErrUnknownPaymentMethod
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
