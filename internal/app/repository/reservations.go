package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Business hours for table reservations.
const (
	OpeningHour = 11
	ClosingHour = 22
	MaxGuests   = 20
)

var (
	ErrGuestsOutOfRange   = errors.New("number of guests must be between 1 and 20")
	ErrReservationInPast  = errors.New("reservation cannot be in the past")
	ErrOutsideOpenHours   = errors.New("reservations are only available between 11:00 and 22:00")
	ErrReservationTaken   = errors.New("reservation for this date and time already exists")
	ErrBadReservationData = errors.New("invalid reservation data")
)

// ValidateReservation проверяет заявку на бронь относительно времени now.
// Правила из исходного сервиса: гостей 1..20, дата не в прошлом, для
// сегодняшней даты время не в прошлом, время в рабочих часах.
func ValidateReservation(name, dateStr, timeStr string, guests int, now time.Time) error {
	if strings.TrimSpace(name) == "" {
		return ErrBadReservationData
	}
	if guests < 1 || guests > MaxGuests {
		return ErrGuestsOutOfRange
	}
	d, err := time.ParseInLocation("2006-01-02", dateStr, now.Location())
	if err != nil {
		return ErrBadReservationData
	}
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return ErrBadReservationData
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return ErrReservationInPast
	}
	if d.Equal(today) {
		nowMinutes := now.Hour()*60 + now.Minute()
		resMinutes := t.Hour()*60 + t.Minute()
		if resMinutes < nowMinutes {
			return ErrReservationInPast
		}
	}

	if t.Hour() < OpeningHour || t.Hour() > ClosingHour || (t.Hour() == ClosingHour && t.Minute() > 0) {
		return ErrOutsideOpenHours
	}
	return nil
}

func toPublicReservation(rr reservation, username string) Reservation {
	return Reservation{
		ID:              rr.ID,
		UserID:          rr.UserID,
		Username:        username,
		Name:            rr.Name,
		NumberOfGuests:  rr.NumberOfGuests,
		ReservationDate: rr.ReservationDate,
		ReservationTime: rr.ReservationTime,
		SpecialRequests: rr.SpecialRequests,
		CreatedAt:       rr.CreatedAt,
		UpdatedAt:       rr.UpdatedAt,
	}
}

// CreateReservation validates and stores a reservation. The (user, date,
// time) pair is unique: booking the same slot twice fails.
func (r *Repository) CreateReservation(userID int64, name, dateStr, timeStr, specialRequests string, guests int) (Reservation, error) {
	if err := ValidateReservation(name, dateStr, timeStr, guests, time.Now()); err != nil {
		return Reservation{}, err
	}

	var out reservation
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&reservation{}).
			Where("user_id = ? AND reservation_date = ? AND reservation_time = ?", userID, dateStr, timeStr).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrReservationTaken
		}
		now := time.Now()
		out = reservation{
			UserID:          userID,
			Name:            strings.TrimSpace(name),
			NumberOfGuests:  guests,
			ReservationDate: dateStr,
			ReservationTime: timeStr,
			SpecialRequests: strings.TrimSpace(specialRequests),
			CreatedAt:       &now,
			UpdatedAt:       &now,
		}
		return tx.Create(&out).Error
	})
	if err != nil {
		return Reservation{}, err
	}

	u, err := r.GetUserByID(userID)
	if err != nil {
		return Reservation{}, err
	}
	return toPublicReservation(out, u.Username), nil
}

// ListReservations: staff see all, others only their own.
func (r *Repository) ListReservations(userID int64, isStaff bool) ([]Reservation, error) {
	type row struct {
		reservation
		Username string
	}
	q := r.db.Table("reservations r").
		Select("r.*, u.username").
		Joins("JOIN users u ON u.id = r.user_id").
		Order("r.reservation_date DESC, r.reservation_time DESC")
	if !isStaff {
		q = q.Where("r.user_id = ?", userID)
	}
	var rows []row
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]Reservation, 0, len(rows))
	for _, rr := range rows {
		result = append(result, toPublicReservation(rr.reservation, rr.Username))
	}
	return result, nil
}

func (r *Repository) GetReservation(userID int64, isStaff bool, id int) (Reservation, error) {
	var rr reservation
	q := r.db.Where("id = ?", id)
	if !isStaff {
		q = q.Where("user_id = ?", userID)
	}
	if err := q.First(&rr).Error; err != nil {
		return Reservation{}, err
	}
	u, err := r.GetUserByID(rr.UserID)
	if err != nil {
		return Reservation{}, err
	}
	return toPublicReservation(rr, u.Username), nil
}

// UpdateReservation updates allowed fields of the caller's reservation and
// re-runs validation over the merged state.
func (r *Repository) UpdateReservation(userID int64, isStaff bool, id int, name, dateStr, timeStr, specialRequests *string, guests *int) error {
	var rr reservation
	q := r.db.Where("id = ?", id)
	if !isStaff {
		q = q.Where("user_id = ?", userID)
	}
	if err := q.First(&rr).Error; err != nil {
		return err
	}

	merged := rr
	if name != nil {
		merged.Name = strings.TrimSpace(*name)
	}
	if dateStr != nil {
		merged.ReservationDate = *dateStr
	}
	if timeStr != nil {
		merged.ReservationTime = *timeStr
	}
	if specialRequests != nil {
		merged.SpecialRequests = strings.TrimSpace(*specialRequests)
	}
	if guests != nil {
		merged.NumberOfGuests = *guests
	}
	if err := ValidateReservation(merged.Name, merged.ReservationDate, merged.ReservationTime, merged.NumberOfGuests, time.Now()); err != nil {
		return err
	}

	now := time.Now()
	merged.UpdatedAt = &now
	return r.db.Model(&reservation{}).Where("id = ?", rr.ID).Updates(map[string]interface{}{
		"name":             merged.Name,
		"number_of_guests": merged.NumberOfGuests,
		"reservation_date": merged.ReservationDate,
		"reservation_time": merged.ReservationTime,
		"special_requests": merged.SpecialRequests,
		"updated_at":       merged.UpdatedAt,
	}).Error
}

func (r *Repository) DeleteReservation(userID int64, isStaff bool, id int) error {
	q := r.db.Where("id = ?", id)
	if !isStaff {
		q = q.Where("user_id = ?", userID)
	}
	res := q.Delete(&reservation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
