package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "fotoagenda/database/repository/booking"
	"fotoagenda/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateIfAbsent(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepo) FindByDate(ctx context.Context, businessID, date string) ([]models.Booking, error) {
	args := m.Called(ctx, businessID, date)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockRepo) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, businessID string) ([]models.Booking, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockRepo) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newService() *DefaultBookingService {
	svc := NewBookingService(bookingRepo.NewMemoryBookingRepo())
	svc.Now = func() time.Time { return time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateAssignsIdentityAndStatus(t *testing.T) {
	svc := newService()

	b, err := svc.Create(context.Background(), Draft{
		BusinessID:   "demo",
		Date:         "2025-05-13",
		StartTime:    "09:00:00",
		CustomerName: "Ana",
		EventDetails: "boda",

		ExternalCalendarRef: "gcal-evt-42",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "09:00", b.StartTime)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, "Ana", b.CustomerName)
	assert.False(t, b.CreatedAt.IsZero())

	stored, err := svc.Get(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, stored.ID)
	assert.Equal(t, "gcal-evt-42", stored.ExternalCalendarRef)
}

func TestCreateRejectsSecondBookingForSameSlot(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	draft := Draft{BusinessID: "demo", Date: "2025-05-13", StartTime: "09:00"}

	_, err := svc.Create(ctx, draft)
	require.NoError(t, err)

	_, err = svc.Create(ctx, draft)
	assert.ErrorIs(t, err, bookingRepo.ErrSlotTaken)

	// Different business, same slot.
	draft.BusinessID = "other"
	_, err = svc.Create(ctx, draft)
	assert.NoError(t, err)
}

func TestCreateValidatesDraft(t *testing.T) {
	svc := newService()
	cases := map[string]Draft{
		"business_id": {Date: "2025-05-13", StartTime: "09:00"},
		"date":        {BusinessID: "demo", Date: "13/05/2025", StartTime: "09:00"},
		"start_time":  {BusinessID: "demo", Date: "2025-05-13", StartTime: "9am"},
	}
	for field, draft := range cases {
		_, err := svc.Create(context.Background(), draft)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, field)
		assert.Equal(t, field, vErr.Field)
	}
}

func TestCreateWrapsPersistenceErrors(t *testing.T) {
	repo := new(mockRepo)
	repo.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
	svc := NewBookingService(repo)

	_, err := svc.Create(context.Background(), Draft{BusinessID: "demo", Date: "2025-05-13", StartTime: "10:00"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, bookingRepo.ErrSlotTaken)
	assert.Contains(t, err.Error(), "connection reset")
	repo.AssertExpectations(t)
}

func TestCancelFreesSlot(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	draft := Draft{BusinessID: "demo", Date: "2025-05-13", StartTime: "11:00"}

	b, err := svc.Create(ctx, draft)
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, b.ID))

	assert.ErrorIs(t, svc.Cancel(ctx, b.ID), bookingRepo.ErrBookingNotFound)

	_, err = svc.Create(ctx, draft)
	assert.NoError(t, err)
}

func TestListByBusinessOrdersByDateAndTime(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	for _, d := range []Draft{
		{BusinessID: "demo", Date: "2025-05-14", StartTime: "09:00"},
		{BusinessID: "demo", Date: "2025-05-13", StartTime: "18:00"},
		{BusinessID: "demo", Date: "2025-05-13", StartTime: "10:00"},
		{BusinessID: "other", Date: "2025-05-13", StartTime: "10:00"},
	} {
		_, err := svc.Create(ctx, d)
		require.NoError(t, err)
	}

	list, err := svc.ListByBusiness(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2025-05-13", list[0].Date)
	assert.Equal(t, "10:00", list[0].StartTime)
	assert.Equal(t, "18:00", list[1].StartTime)
	assert.Equal(t, "2025-05-14", list[2].Date)
}
