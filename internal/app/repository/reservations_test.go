package repository

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) // Tuesday 15:00

func TestValidateReservationOK(t *testing.T) {
	err := ValidateReservation("Maria", "2026-03-11", "19:30", 4, testNow)
	if err != nil {
		t.Errorf("Expected valid reservation, got error: %v", err)
	}
}

func TestValidateReservationTodayLaterOK(t *testing.T) {
	err := ValidateReservation("Maria", "2026-03-10", "18:00", 2, testNow)
	if err != nil {
		t.Errorf("Expected valid same-day reservation, got error: %v", err)
	}
}

func TestValidateReservationGuests(t *testing.T) {
	if err := ValidateReservation("Maria", "2026-03-11", "19:30", 0, testNow); !errors.Is(err, ErrGuestsOutOfRange) {
		t.Errorf("Expected ErrGuestsOutOfRange for 0 guests, got %v", err)
	}
	if err := ValidateReservation("Maria", "2026-03-11", "19:30", 21, testNow); !errors.Is(err, ErrGuestsOutOfRange) {
		t.Errorf("Expected ErrGuestsOutOfRange for 21 guests, got %v", err)
	}
	if err := ValidateReservation("Maria", "2026-03-11", "19:30", 20, testNow); err != nil {
		t.Errorf("Expected 20 guests to be allowed, got %v", err)
	}
}

func TestValidateReservationPastDate(t *testing.T) {
	if err := ValidateReservation("Maria", "2026-03-09", "19:30", 2, testNow); !errors.Is(err, ErrReservationInPast) {
		t.Errorf("Expected ErrReservationInPast for yesterday, got %v", err)
	}
}

func TestValidateReservationTodayPastTime(t *testing.T) {
	// now is 15:00, booking 12:00 today must fail
	if err := ValidateReservation("Maria", "2026-03-10", "12:00", 2, testNow); !errors.Is(err, ErrReservationInPast) {
		t.Errorf("Expected ErrReservationInPast for earlier today, got %v", err)
	}
}

func TestValidateReservationBusinessHours(t *testing.T) {
	if err := ValidateReservation("Maria", "2026-03-11", "10:59", 2, testNow); !errors.Is(err, ErrOutsideOpenHours) {
		t.Errorf("Expected ErrOutsideOpenHours before opening, got %v", err)
	}
	if err := ValidateReservation("Maria", "2026-03-11", "22:01", 2, testNow); !errors.Is(err, ErrOutsideOpenHours) {
		t.Errorf("Expected ErrOutsideOpenHours after closing, got %v", err)
	}
	if err := ValidateReservation("Maria", "2026-03-11", "11:00", 2, testNow); err != nil {
		t.Errorf("Expected opening time to be allowed, got %v", err)
	}
	if err := ValidateReservation("Maria", "2026-03-11", "22:00", 2, testNow); err != nil {
		t.Errorf("Expected closing time to be allowed, got %v", err)
	}
}

func TestValidateReservationBadInput(t *testing.T) {
	if err := ValidateReservation("", "2026-03-11", "19:30", 2, testNow); !errors.Is(err, ErrBadReservationData) {
		t.Errorf("Expected ErrBadReservationData for empty name, got %v", err)
	}
	if err := ValidateReservation("Maria", "11.03.2026", "19:30", 2, testNow); !errors.Is(err, ErrBadReservationData) {
		t.Errorf("Expected ErrBadReservationData for bad date format, got %v", err)
	}
	if err := ValidateReservation("Maria", "2026-03-11", "7pm", 2, testNow); !errors.Is(err, ErrBadReservationData) {
		t.Errorf("Expected ErrBadReservationData for bad time format, got %v", err)
	}
}
