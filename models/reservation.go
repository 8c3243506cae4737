package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation lifecycle statuses. A reservation is created as pending and only
// moves along the transition graph below; completed and cancelled are terminal.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

// reservationTransitions maps each status to the statuses it may move to.
// Terminal statuses have no entry.
var reservationTransitions = map[string][]string{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationCompleted, ReservationCancelled},
}

// IsReservationStatus reports whether s is one of the known statuses.
func IsReservationStatus(s string) bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

// CanTransitionReservation reports whether a reservation in status from may
// move to status to.
func CanTransitionReservation(from, to string) bool {
	for _, next := range reservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ConsumesCapacity reports whether a reservation in the given status counts
// against slot capacity. Cancelled bookings release their seats and completed
// ones represent realized visits, so only open bookings consume capacity.
func ConsumesCapacity(status string) bool {
	return status == ReservationPending || status == ReservationConfirmed
}

type Reservation struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Code string    `gorm:"uniqueIndex;not null"` // human-readable, e.g. RES2024001

	CustomerName  string `gorm:"not null"`
	CustomerEmail string `gorm:"not null"`
	CustomerPhone string `gorm:"not null"`

	Date      time.Time `gorm:"type:date;index:idx_reservation_slot;not null"` // calendar date, midnight UTC
	Time      string    `gorm:"index:idx_reservation_slot;not null"`           // slot label, e.g. "19:00"
	PartySize int       `gorm:"not null"`

	Status          string `gorm:"type:varchar(20);index;not null;default:'pending'"`
	SpecialRequests string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
