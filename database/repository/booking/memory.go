package bookingRepo

import (
	"context"
	"sort"
	"sync"

	"fotoagenda/models"
)

type slotKey struct {
	businessID, date, start string
}

// memoryBookingRepo keeps bookings in process memory. It is used for local
// runs (STORE_DRIVER=memory) and tests.
type memoryBookingRepo struct {
	mu     sync.RWMutex
	byID   map[string]models.Booking
	bySlot map[slotKey]string
}

// NewMemoryBookingRepo constructs an empty in-memory BookingRepository.
func NewMemoryBookingRepo() BookingRepository {
	return &memoryBookingRepo{
		byID:   make(map[string]models.Booking),
		bySlot: make(map[slotKey]string),
	}
}

func (r *memoryBookingRepo) CreateIfAbsent(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey{booking.BusinessID, booking.Date, booking.StartTime}
	if _, taken := r.bySlot[key]; taken {
		return ErrSlotTaken
	}
	r.bySlot[key] = booking.ID
	r.byID[booking.ID] = *booking
	return nil
}

func (r *memoryBookingRepo) FindByDate(ctx context.Context, businessID, date string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Booking
	for _, b := range r.byID {
		if b.BusinessID == businessID && b.Date == date {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

func (r *memoryBookingRepo) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &b, nil
}

func (r *memoryBookingRepo) List(ctx context.Context, businessID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, 0, len(r.byID))
	for _, b := range r.byID {
		if businessID == "" || b.BusinessID == businessID {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

func (r *memoryBookingRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return ErrBookingNotFound
	}
	delete(r.byID, id)
	delete(r.bySlot, slotKey{b.BusinessID, b.Date, b.StartTime})
	return nil
}

// sortBookings orders by date then start time; both are zero-padded strings.
func sortBookings(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return bookings[i].StartTime < bookings[j].StartTime
	})
}
