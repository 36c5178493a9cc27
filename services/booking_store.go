// services/booking_store.go
package services

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"hotel-booking/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultLedgerKey is the single fixed key the booking collection lives
// under. The whole collection is one serialized array under one key.
const DefaultLedgerKey = "bookings"

// BookingStore is the append-only ledger for completed checkouts. No update
// or delete exists; records are immutable once appended.
type BookingStore interface {
	Append(record models.BookingRecord) error
	LoadAll() ([]models.BookingRecord, error)
}

// decodeRecords treats a missing or corrupt payload as an empty collection.
// Corruption degrades to "start fresh" and never reaches the caller.
func decodeRecords(raw []byte) []models.BookingRecord {
	if len(raw) == 0 {
		return []models.BookingRecord{}
	}
	var records []models.BookingRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("⚠️  booking ledger payload unreadable, starting fresh: %v", err)
		return []models.BookingRecord{}
	}
	if records == nil {
		records = []models.BookingRecord{}
	}
	return records
}

// LedgerStore persists the collection as one JSON array in a single
// booking_ledgers row. Append is read-modify-write inside a transaction with
// a row lock, so concurrent writers cannot lose an update.
type LedgerStore struct {
	DB  *gorm.DB
	Key string
}

func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{DB: db, Key: DefaultLedgerKey}
}

func (s *LedgerStore) Append(record models.BookingRecord) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var row models.BookingLedger
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("store_key = ?", s.Key).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = models.BookingLedger{StoreKey: s.Key}
		} else if err != nil {
			return err
		}

		records := decodeRecords(row.Records)
		records = append(records, record)

		raw, err := json.Marshal(records)
		if err != nil {
			return err
		}
		row.Records = datatypes.JSON(raw)
		return tx.Save(&row).Error
	})
}

func (s *LedgerStore) LoadAll() ([]models.BookingRecord, error) {
	var row models.BookingLedger
	err := s.DB.Where("store_key = ?", s.Key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.BookingRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeRecords(row.Records), nil
}

// MemoryStore keeps the serialized collection in memory with the same
// byte-level semantics as the durable backend. Used in tests.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed replaces the raw stored payload, valid or not.
func (s *MemoryStore) Seed(raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = raw
}

func (s *MemoryStore) Append(record models.BookingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := decodeRecords(s.raw)
	records = append(records, record)

	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	s.raw = raw
	return nil
}

func (s *MemoryStore) LoadAll() ([]models.BookingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decodeRecords(s.raw), nil
}
