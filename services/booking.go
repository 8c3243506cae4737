// services/booking.go
package services

import (
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restobook-backend/models"
	"restobook-backend/utils"
)

// BookingInput is a public reservation request. Any caller-supplied status is
// ignored: reservations are always created as pending.
type BookingInput struct {
	Name            string
	Email           string
	Phone           string
	Date            time.Time // calendar date, normalized to midnight UTC
	Time            string    // slot label from the catalog
	PartySize       int
	SpecialRequests string
}

// CreateReservation validates a booking request against the slot catalog and
// inserts it with status pending. The capacity check and the insert run in a
// single transaction that first takes a per-slot advisory lock, so two
// concurrent bookings for the same slot serialize and cannot both land in a
// slot that only fits one of them. Row locks alone would not do: an empty
// slot has no rows to lock, and a blocked transaction would recount from its
// pre-insert snapshot.
func CreateReservation(db *gorm.DB, catalog TimeSlotCatalog, input BookingInput) (*models.Reservation, error) {
	slot, ok := catalog.Find(input.Time)
	if !ok {
		return nil, NewValidationError("time", "not a bookable time slot")
	}
	if input.PartySize < 1 || input.PartySize > catalog.MaxPartySize {
		return nil, NewValidationError("guests",
			fmt.Sprintf("party size must be between 1 and %d", catalog.MaxPartySize))
	}

	reservation := &models.Reservation{
		CustomerName:    input.Name,
		CustomerEmail:   input.Email,
		CustomerPhone:   input.Phone,
		Date:            utils.BeginningOfDayUTC(input.Date),
		Time:            slot.Label,
		PartySize:       input.PartySize,
		Status:          models.ReservationPending,
		SpecialRequests: input.SpecialRequests,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Held until commit; read committed takes a fresh snapshot per
		// statement, so once the lock is granted the count below sees
		// every booking an earlier holder committed.
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)",
			slotLockKey(reservation.Date, reservation.Time)).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		var existing []models.Reservation
		if err := tx.
			Where("date = ? AND time = ? AND status IN ?",
				reservation.Date, reservation.Time,
				[]string{models.ReservationPending, models.ReservationConfirmed}).
			Find(&existing).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		used := 0
		for _, r := range existing {
			used += r.PartySize
		}
		if !SlotCanSeat(slot, used, reservation.PartySize) {
			return ErrSlotFull
		}

		code, err := nextReservationCode(tx, reservation.Date)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		reservation.Code = code

		if err := tx.Create(reservation).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// TransitionReservation moves a reservation to newStatus, enforcing the
// lifecycle graph. On an illegal transition the stored record is left
// untouched and ErrInvalidTransition is returned. The read and the update
// share one transaction so a concurrent transition cannot interleave.
func TransitionReservation(db *gorm.DB, id string, newStatus string) (*models.Reservation, error) {
	if !models.IsReservationStatus(newStatus) {
		return nil, NewValidationError("status", "unknown reservation status")
	}

	var reservation models.Reservation
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&reservation, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		if !models.CanTransitionReservation(reservation.Status, newStatus) {
			return ErrInvalidTransition
		}

		reservation.Status = newStatus
		reservation.UpdatedAt = time.Now().UTC()
		if err := tx.Model(&reservation).
			Updates(map[string]interface{}{
				"status":     reservation.Status,
				"updated_at": reservation.UpdatedAt,
			}).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// nextReservationCode generates the next human-readable code for the booking
// year, e.g. RES2024001. Numbering is per year, not per slot, so bookings in
// different slots race on the same counter; an advisory lock on the year,
// held until commit, keeps count-then-format free of duplicates. The unique
// index on code backstops any remaining collision.
func nextReservationCode(tx *gorm.DB, date time.Time) (string, error) {
	if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", codeLockKey(date.Year())).Error; err != nil {
		return "", err
	}

	prefix := fmt.Sprintf("RES%d", date.Year())
	var count int64
	if err := tx.Model(&models.Reservation{}).
		Where("code LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", prefix, count+1), nil
}

// slotLockKey derives the advisory lock key serializing bookings for one slot
// on one calendar date.
func slotLockKey(date time.Time, slotLabel string) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "slot:%s:%s", date.Format("2006-01-02"), slotLabel)
	return int64(h.Sum64())
}

// codeLockKey derives the advisory lock key serializing reservation code
// generation for one booking year.
func codeLockKey(year int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "code:%d", year)
	return int64(h.Sum64())
}
