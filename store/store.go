// Package store keeps wizard bookings in process memory. There is no
// persistence layer in this system; bookings live for the lifetime of the
// process only.
package store

import (
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("booking not found")

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

type Travelers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

type Preferences struct {
	Budget        string   `json:"budget"`
	Accommodation string   `json:"accommodation"`
	Activities    []string `json:"activities"`
}

type Booking struct {
	ID           string      `json:"id"`
	TravelerName string      `json:"traveler_name"`
	Destination  string      `json:"destination"`
	StartDate    string      `json:"start_date"`
	EndDate      string      `json:"end_date"`
	Travelers    Travelers   `json:"travelers"`
	Preferences  Preferences `json:"preferences"`
	PackageID    int         `json:"package_id,omitempty"`
	Currency     string      `json:"currency"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

type BookingStore struct {
	mu       sync.RWMutex
	bookings map[string]Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[string]Booking),
	}
}

func (s *BookingStore) Create(b Booking) {
	s.mu.Lock()
	s.bookings[b.ID] = b
	s.mu.Unlock()
}

func (s *BookingStore) Get(id string) (Booking, error) {
	s.mu.RLock()
	b, ok := s.bookings[id]
	s.mu.RUnlock()
	if !ok {
		return Booking{}, ErrNotFound
	}
	return b, nil
}

// Confirm attaches the selected package to a pending booking and marks it
// confirmed.
func (s *BookingStore) Confirm(id string, packageID int) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return Booking{}, ErrNotFound
	}
	b.PackageID = packageID
	b.Status = StatusConfirmed
	s.bookings[id] = b
	return b, nil
}
