package services

import (
	"net/url"
	"testing"
	"time"

	"hotel-booking/models"
	"hotel-booking/utils"

	"github.com/stretchr/testify/assert"
)

func testCheckoutService(store BookingStore) *CheckoutService {
	rooms := NewRoomService()
	return NewCheckoutService(NewPricingService(rooms), store, 5*time.Millisecond)
}

func testDraft(t *testing.T) models.BookingDraft {
	t.Helper()
	draft, err := ParseBookingDraft(url.Values{
		"roomId":   {"3"},
		"checkIn":  {"2025-06-01"},
		"checkOut": {"2025-06-04"},
		"guests":   {"2"},
		"fullName": {"Nguyen Van A"},
		"email":    {"a@example.com"},
		"phone":    {"0901234567"},
	})
	assert.NoError(t, err)
	return draft
}

func TestParseBookingDraft(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		draft, err := ParseBookingDraft(url.Values{
			"roomType": {"Suite"},
			"checkIn":  {"2025-06-01"},
			"checkOut": {"2025-06-04"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "suite", draft.RoomType)
		assert.Equal(t, "2", draft.Guests)
		assert.Equal(t, "1", draft.Adults)
		assert.Equal(t, "0", draft.Children)
	})

	t.Run("missing dates", func(t *testing.T) {
		_, err := ParseBookingDraft(url.Values{
			"roomId":  {"3"},
			"checkIn": {"2025-06-01"},
		})
		assert.ErrorIs(t, err, ErrMissingBookingContext)
	})

	t.Run("missing both room references", func(t *testing.T) {
		_, err := ParseBookingDraft(url.Values{
			"checkIn":  {"2025-06-01"},
			"checkOut": {"2025-06-04"},
		})
		assert.ErrorIs(t, err, ErrMissingBookingContext)
	})

	t.Run("malformed inputs rejected at the boundary", func(t *testing.T) {
		_, err := ParseBookingDraft(url.Values{
			"roomId":   {"abc"},
			"checkIn":  {"2025-06-01"},
			"checkOut": {"2025-06-04"},
		})
		assert.ErrorIs(t, err, ErrMissingBookingContext)

		_, err = ParseBookingDraft(url.Values{
			"roomId":   {"3"},
			"checkIn":  {"June 1st"},
			"checkOut": {"2025-06-04"},
		})
		assert.ErrorIs(t, err, ErrMissingBookingContext)

		_, err = ParseBookingDraft(url.Values{
			"roomId":   {"3"},
			"checkIn":  {"2025-06-01"},
			"checkOut": {"2025-06-04"},
			"children": {"-1"},
		})
		assert.ErrorIs(t, err, ErrMissingBookingContext)
	})
}

func TestNewFlow_RequiresContext(t *testing.T) {
	svc := testCheckoutService(NewMemoryStore())

	_, err := svc.NewFlow(models.BookingDraft{})
	assert.ErrorIs(t, err, ErrMissingBookingContext)

	_, err = svc.NewFlow(models.BookingDraft{
		RoomType: "penthouse",
		CheckIn:  mustDate(t, "2025-06-01"),
		CheckOut: mustDate(t, "2025-06-04"),
	})
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestSubmit_CashRequiresNoFields(t *testing.T) {
	store := NewMemoryStore()
	svc := testCheckoutService(store)

	flow, err := svc.NewFlow(testDraft(t))
	assert.NoError(t, err)
	assert.Equal(t, StateCollectingPayment, flow.State())

	done, err := flow.Submit(PaymentDetails{Method: MethodCash})
	assert.NoError(t, err)
	assert.Equal(t, StateProcessing, flow.State())

	record := <-done
	assert.Equal(t, StateSuccess, flow.State())
	assert.True(t, utils.IsValidBookingRef(record.BookingID))
	assert.Equal(t, "Phòng Deluxe", record.RoomName)
	assert.Equal(t, 3, record.Nights)
	assert.Equal(t, 7590000, record.Total)
	assert.Equal(t, "Nguyen Van A", record.FullName)

	records, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, record.BookingID, records[0].BookingID)
}

func TestSubmit_PaymentValidation(t *testing.T) {
	svc := testCheckoutService(NewMemoryStore())

	t.Run("credit card with empty CVV rejected, state retained", func(t *testing.T) {
		flow, err := svc.NewFlow(testDraft(t))
		assert.NoError(t, err)

		_, err = flow.Submit(PaymentDetails{
			Method:     MethodCreditCard,
			CardNumber: "4111 1111 1111 1111",
			CardName:   "NGUYEN VAN A",
			ExpiryDate: "12/27",
		})
		assert.ErrorIs(t, err, ErrIncompletePaymentFields)
		assert.Equal(t, StateCollectingPayment, flow.State())

		// Fully retryable after fixing the field.
		done, err := flow.Submit(PaymentDetails{
			Method:     MethodCreditCard,
			CardNumber: "4111 1111 1111 1111",
			CardName:   "NGUYEN VAN A",
			ExpiryDate: "12/27",
			CVV:        "12345",
		})
		assert.NoError(t, err)
		<-done
		assert.Equal(t, StateSuccess, flow.State())
	})

	t.Run("bank transfer needs bank and account", func(t *testing.T) {
		flow, err := svc.NewFlow(testDraft(t))
		assert.NoError(t, err)

		_, err = flow.Submit(PaymentDetails{Method: MethodBankTransfer, BankName: "vietcombank"})
		assert.ErrorIs(t, err, ErrIncompletePaymentFields)

		_, err = flow.Submit(PaymentDetails{
			Method:        MethodBankTransfer,
			BankName:      "monopoly-bank",
			AccountNumber: "1234567890",
		})
		assert.ErrorIs(t, err, ErrUnknownBank)

		done, err := flow.Submit(PaymentDetails{
			Method:        MethodBankTransfer,
			BankName:      "Techcombank",
			AccountNumber: "1234567890",
		})
		assert.NoError(t, err)
		<-done
	})

	t.Run("unknown method", func(t *testing.T) {
		flow, err := svc.NewFlow(testDraft(t))
		assert.NoError(t, err)

		_, err = flow.Submit(PaymentDetails{Method: "crypto"})
		assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
	})
}

func TestSubmit_DoubleSubmitGuard(t *testing.T) {
	store := NewMemoryStore()
	svc := testCheckoutService(store)

	flow, err := svc.NewFlow(testDraft(t))
	assert.NoError(t, err)

	done, err := flow.Submit(PaymentDetails{Method: MethodCash})
	assert.NoError(t, err)

	// Second submit while processing is rejected by the state machine itself.
	_, err = flow.Submit(PaymentDetails{Method: MethodCash})
	assert.ErrorIs(t, err, ErrPaymentInProgress)

	<-done

	// Success is terminal for the flow instance.
	_, err = flow.Submit(PaymentDetails{Method: MethodCash})
	assert.ErrorIs(t, err, ErrCheckoutCompleted)

	records, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFlowFor_RoutesDuplicateDraftsToSameFlow(t *testing.T) {
	store := NewMemoryStore()
	svc := testCheckoutService(store)
	draft := testDraft(t)

	first, err := svc.FlowFor(draft)
	assert.NoError(t, err)
	second, err := svc.FlowFor(draft)
	assert.NoError(t, err)
	assert.Same(t, first, second)

	done, err := first.Submit(PaymentDetails{Method: MethodCash})
	assert.NoError(t, err)

	// The duplicate submit lands on the processing flow and is rejected.
	_, err = second.Submit(PaymentDetails{Method: MethodCash})
	assert.ErrorIs(t, err, ErrPaymentInProgress)

	<-done
	records, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	// Completion releases the draft: a later checkout starts a fresh flow.
	third, err := svc.FlowFor(draft)
	assert.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, StateCollectingPayment, third.State())
}

func TestSubmit_AppendOnlyGrowth(t *testing.T) {
	store := NewMemoryStore()
	svc := testCheckoutService(store)

	const n = 5
	for i := 0; i < n; i++ {
		flow, err := svc.NewFlow(testDraft(t))
		assert.NoError(t, err)
		done, err := flow.Submit(PaymentDetails{Method: MethodCash})
		assert.NoError(t, err)
		<-done
	}

	records, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Len(t, records, n)

	seen := map[time.Time]bool{}
	for _, record := range records {
		assert.Equal(t, "3", record.RoomID)
		assert.Equal(t, "2025-06-01", record.CheckIn)
		assert.Equal(t, "2025-06-04", record.CheckOut)
		assert.False(t, seen[record.CreatedAt], "createdAt should be distinct")
		seen[record.CreatedAt] = true
	}
}
