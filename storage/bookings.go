// storage/bookings.go
package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
)

// BookingStore persists reservations under clinic_bookings and derives
// the availability grid from them.
type BookingStore struct {
	kv  KV
	now func() time.Time
}

func NewBookingStore(kv KV) *BookingStore {
	return &BookingStore{kv: kv, now: time.Now}
}

func (s *BookingStore) Save(bookings []models.Booking) error {
	return setJSON(s.kv, KeyBookings, bookings)
}

func (s *BookingStore) Load() ([]models.Booking, error) {
	var bookings []models.Booking
	ok, err := getJSON(s.kv, KeyBookings, &bookings)
	if err != nil || !ok {
		return []models.Booking{}, err
	}
	return bookings, nil
}

func (s *BookingStore) Add(booking models.Booking) error {
	bookings, err := s.Load()
	if err != nil {
		return err
	}
	return s.Save(append(bookings, booking))
}

// GenerateBookingID issues a BK-prefixed base36 timestamp id.
func (s *BookingStore) GenerateBookingID() string {
	return "BK" + strings.ToUpper(strconv.FormatInt(s.now().UnixMilli(), 36))
}

func parseClock(t string) (int, bool) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hours, err1 := strconv.Atoi(parts[0])
	minutes, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AvailableSlots builds the slot grid for one day from the clinic hours
// and the stored non-cancelled bookings. Closed days return nothing.
func (s *BookingStore) AvailableSlots(dateStr string, duration int) ([]models.TimeSlot, error) {
	if duration <= 0 {
		duration = 30
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", dateStr)
	}
	open, close, ok := data.BusinessHoursForDate(date)
	if !ok {
		return []models.TimeSlot{}, nil // 定休日
	}

	bookings, err := s.Load()
	if err != nil {
		return nil, err
	}
	var dayBookings []models.Booking
	for _, b := range bookings {
		if b.Date == dateStr && b.Status != models.BookingCancelled {
			dayBookings = append(dayBookings, b)
		}
	}

	openTime, _ := parseClock(open)
	closeTime, _ := parseClock(close)
	step := data.ClinicInfo.SlotDuration

	var slots []models.TimeSlot
	for t := openTime; t+duration <= closeTime; t += step {
		end := t + duration
		booked := false
		for _, b := range dayBookings {
			start, ok := parseClock(b.Time)
			if !ok {
				continue
			}
			if t < start+b.Duration && end > start {
				booked = true
				break
			}
		}
		slots = append(slots, models.TimeSlot{Time: formatClock(t), Available: !booked})
	}
	return slots, nil
}
