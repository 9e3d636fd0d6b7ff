package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func sampleBooking(id string) Booking {
	return Booking{
		ID:           id,
		TravelerName: "Thandi Nkosi",
		Destination:  "Paris",
		StartDate:    "2025-04-10",
		EndDate:      "2025-04-15",
		Travelers:    Travelers{Adults: 2, Children: 1},
		Preferences:  Preferences{Budget: "mid-range", Accommodation: "hotel"},
		Currency:     "ZAR",
		Status:       StatusPending,
		CreatedAt:    time.Now(),
	}
}

func TestCreateAndGet(t *testing.T) {
	s := NewBookingStore()
	s.Create(sampleBooking("b-1"))

	got, err := s.Get("b-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TravelerName != "Thandi Nkosi" || got.Status != StatusPending {
		t.Errorf("booking = %+v", got)
	}
}

func TestGetUnknownID(t *testing.T) {
	s := NewBookingStore()
	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestConfirm(t *testing.T) {
	s := NewBookingStore()
	s.Create(sampleBooking("b-2"))

	confirmed, err := s.Confirm("b-2", 3)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if confirmed.Status != StatusConfirmed || confirmed.PackageID != 3 {
		t.Errorf("confirmed = %+v", confirmed)
	}

	// The stored copy reflects the confirmation too.
	got, err := s.Get("b-2")
	if err != nil {
		t.Fatalf("Get after Confirm: %v", err)
	}
	if got.Status != StatusConfirmed || got.PackageID != 3 {
		t.Errorf("stored = %+v", got)
	}
}

func TestConfirmUnknownID(t *testing.T) {
	s := NewBookingStore()
	if _, err := s.Confirm("missing", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := NewBookingStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("b-%d", n)
			s.Create(sampleBooking(id))
			if _, err := s.Get(id); err != nil {
				t.Errorf("Get %s: %v", id, err)
			}
		}(i)
	}
	wg.Wait()
}
