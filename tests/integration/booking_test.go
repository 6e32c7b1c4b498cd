//go:build integration

package integration

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeyemi-o/hotel-management/internal/models"
	"github.com/adeyemi-o/hotel-management/internal/repository"
	"github.com/adeyemi-o/hotel-management/internal/service"
)

func createTestRoom(t *testing.T, number string) *models.Room {
	t.Helper()
	room := &models.Room{
		RoomNumber: number,
		Type:       models.RoomDouble,
		Price:      150,
		Capacity:   2,
		Status:     models.RoomAvailable,
	}
	require.NoError(t, testDB.Create(room).Error)
	return room
}

func newBookingService() service.BookingService {
	return service.NewBookingService(
		repository.NewBookingRepository(testDB),
		repository.NewRoomRepository(testDB),
		repository.NewCustomerRepository(testDB),
		nil,
	)
}

func stay(daysFromNow, nights int) (time.Time, time.Time) {
	in := time.Now().UTC().AddDate(0, 0, daysFromNow)
	return in, in.AddDate(0, 0, nights)
}

func input(roomID uint, email string, daysFromNow, nights int) service.CreateBookingInput {
	in, out := stay(daysFromNow, nights)
	return service.CreateBookingInput{
		RoomID:         roomID,
		CustomerName:   "Guest " + email,
		CustomerEmail:  email,
		CheckInDate:    in,
		CheckOutDate:   out,
		NumberOfGuests: 2,
		TotalAmount:    300,
	}
}

// 20 guests race for the same room and dates; the row lock must let exactly
// one through.
func TestConcurrentBookingSameRoom(t *testing.T) {
	cleanTables()
	room := createTestRoom(t, "204")
	svc := newBookingService()

	attempts := 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	conflicts := 0

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(n int) {
			defer wg.Done()
			_, err := svc.CreateBooking(t.Context(), input(room.ID, fmt.Sprintf("guest%02d@example.com", n), 5, 3))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case err == service.ErrRoomUnavailable:
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded, "exactly one booking should win the room")
	assert.Equal(t, attempts-1, conflicts)

	var count int64
	testDB.Model(&models.Booking{}).
		Where("room_id = ? AND status = ?", room.ID, models.StatusConfirmed).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

// Concurrent creations across different rooms must never produce duplicate
// booking numbers.
func TestConcurrentBookingNumbersUnique(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	attempts := 30
	rooms := make([]*models.Room, attempts)
	for i := range rooms {
		rooms[i] = createTestRoom(t, fmt.Sprintf("R%03d", i))
	}

	var wg sync.WaitGroup
	numbers := make(chan string, attempts)

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(n int) {
			defer wg.Done()
			b, err := svc.CreateBooking(t.Context(), input(rooms[n].ID, fmt.Sprintf("unique%02d@example.com", n), 5, 2))
			if err != nil {
				t.Errorf("create booking: %v", err)
				return
			}
			numbers <- b.BookingNumber
		}(i)
	}
	wg.Wait()
	close(numbers)

	seen := map[string]bool{}
	for n := range numbers {
		assert.False(t, seen[n], "duplicate booking number %s", n)
		seen[n] = true
	}
	assert.Len(t, seen, attempts)
}

func TestOverlapShapes(t *testing.T) {
	cleanTables()
	room := createTestRoom(t, "204")
	svc := newBookingService()

	// Baseline stay: day 10 through day 14
	_, err := svc.CreateBooking(t.Context(), input(room.ID, "baseline@example.com", 10, 4))
	require.NoError(t, err)

	for _, tc := range []struct {
		name        string
		from, nights int
		wantErr     error
	}{
		{"partial left", 8, 3, service.ErrRoomUnavailable},
		{"partial right", 13, 3, service.ErrRoomUnavailable},
		{"contained", 11, 2, service.ErrRoomUnavailable},
		{"containing", 8, 10, service.ErrRoomUnavailable},
		{"touching before", 7, 3, nil},
		{"touching after", 14, 3, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(t.Context(), input(room.ID, tc.name+"@example.com", tc.from, tc.nights))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCancelFreesRoomForRebooking(t *testing.T) {
	cleanTables()
	room := createTestRoom(t, "204")
	svc := newBookingService()

	first, err := svc.CreateBooking(t.Context(), input(room.ID, "first@example.com", 5, 3))
	require.NoError(t, err)

	_, err = svc.CreateBooking(t.Context(), input(room.ID, "second@example.com", 5, 3))
	assert.ErrorIs(t, err, service.ErrRoomUnavailable)

	_, err = svc.CancelBooking(t.Context(), first.ID)
	require.NoError(t, err)

	rebooked, err := svc.CreateBooking(t.Context(), input(room.ID, "second@example.com", 5, 3))
	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, rebooked.Status)
}

func TestCustomerDeduplicatedByEmail(t *testing.T) {
	cleanTables()
	roomA := createTestRoom(t, "101")
	roomB := createTestRoom(t, "102")
	svc := newBookingService()

	_, err := svc.CreateBooking(t.Context(), input(roomA.ID, "Repeat.Guest@Example.com", 5, 2))
	require.NoError(t, err)
	_, err = svc.CreateBooking(t.Context(), input(roomB.ID, "repeat.guest@example.com", 5, 2))
	require.NoError(t, err)

	var count int64
	testDB.Model(&models.Customer{}).Count(&count)
	assert.Equal(t, int64(1), count, "mixed-case emails must map to one customer")
}

func TestCheckInCheckOutLifecycle(t *testing.T) {
	cleanTables()
	room := createTestRoom(t, "204")
	svc := newBookingService()

	booking, err := svc.CreateBooking(t.Context(), input(room.ID, "stay@example.com", 0, 2))
	require.NoError(t, err)

	checkedIn, err := svc.CheckIn(t.Context(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, checkedIn.Status)

	var r models.Room
	require.NoError(t, testDB.First(&r, room.ID).Error)
	assert.Equal(t, models.RoomOccupied, r.Status)

	checkedOut, err := svc.CheckOut(t.Context(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedOut, checkedOut.Status)

	require.NoError(t, testDB.First(&r, room.ID).Error)
	assert.Equal(t, models.RoomAvailable, r.Status)

	// re-checkout and cancel are both rejected now
	_, err = svc.CheckOut(t.Context(), booking.ID)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
	_, err = svc.CancelBooking(t.Context(), booking.ID)
	assert.ErrorIs(t, err, service.ErrAlreadyCheckedOut)
}
