package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const bookingRefCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// BookingRefLength is the length of a confirmation token.
const BookingRefLength = 8

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateBookingRef builds an 8-char A-Z0-9 booking reference, e.g.
// "AB4D93KF". Uses crypto/rand with rand.Int (math/big) to avoid modulo bias.
// Not guaranteed globally unique; the collision probability is accepted.
func GenerateBookingRef() (string, error) {
	return randomCode(BookingRefLength)
}

func randomCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(bookingRefCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(bookingRefCharset[num.Int64()])
	}
	return sb.String(), nil
}

// IsValidBookingRef reports whether s looks like a generated reference.
func IsValidBookingRef(s string) bool {
	if len(s) != BookingRefLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(bookingRefCharset, rune(s[i])) {
			return false
		}
	}
	return true
}

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders integer currency units with grouped thousands,
// the same shape as the catalog's price strings ("7,590,000").
func FormatCurrency(amount int) string {
	return currencyPrinter.Sprintf("%d", amount)
}

// FormatDisplayDate renders an ISO date string as dd/mm/yyyy for receipts.
// Unparseable input is returned as-is.
func FormatDisplayDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}
