package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/adeyemi-o/hotel-management/internal/models"
	"github.com/adeyemi-o/hotel-management/internal/repository"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomUnavailable   = errors.New("room is not available for the requested dates")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrAlreadyCheckedOut = errors.New("booking is already checked out")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrInvalidDates      = errors.New("check-out date must be after check-in date")
	ErrCheckInPast       = errors.New("check-in date cannot be in the past")
)

// Event routing keys published after a successful commit.
const (
	EventBookingCreated    = "booking.created"
	EventBookingCancelled  = "booking.cancelled"
	EventBookingCheckedIn  = "booking.checked_in"
	EventBookingCheckedOut = "booking.checked_out"
)

// EventPublisher is satisfied by rabbitmq.Publisher. A nil publisher disables
// events; publish failures are logged and never surfaced to the caller.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// BookingEvent is the message body for booking.* events. The mail consumer
// renders emails from it without touching the database.
type BookingEvent struct {
	BookingID     uint      `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	RoomNumber    string    `json:"room_number"`
	RoomType      string    `json:"room_type"`
	CheckInDate   time.Time `json:"check_in_date"`
	CheckOutDate  time.Time `json:"check_out_date"`
	TotalAmount   float64   `json:"total_amount"`
}

type CreateBookingInput struct {
	RoomID          uint
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	TotalAmount     float64
	SpecialRequests string
	Source          models.BookingSource
	CreatedByID     *uint
}

// UpdateBookingInput is a partial patch; nil fields are left unchanged.
type UpdateBookingInput struct {
	RoomID          *uint
	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	NumberOfGuests  *int
	TotalAmount     *float64
	SpecialRequests *string
}

type CalendarEvent struct {
	BookingID  uint                 `json:"booking_id"`
	Title      string               `json:"title"`
	Start      time.Time            `json:"start"`
	End        time.Time            `json:"end"`
	RoomNumber string               `json:"room_number"`
	Customer   string               `json:"customer"`
	Status     models.BookingStatus `json:"status"`
}

type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id uint, patch UpdateBookingInput) (*models.Booking, error)
	CancelBooking(ctx context.Context, id uint) (*models.Booking, error)
	CheckIn(ctx context.Context, id uint) (*models.Booking, error)
	CheckOut(ctx context.Context, id uint) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	FindByNumberAndEmail(ctx context.Context, number, email string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error)
	GetCalendarEvents(ctx context.Context, from, to time.Time) ([]CalendarEvent, error)
}

type bookingService struct {
	bookingRepo  repository.BookingRepository
	roomRepo     repository.RoomRepository
	customerRepo repository.CustomerRepository
	publisher    EventPublisher
	now          func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	customerRepo repository.CustomerRepository,
	publisher EventPublisher,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
		now:          time.Now,
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *bookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	checkIn := startOfDay(input.CheckInDate)
	checkOut := startOfDay(input.CheckOutDate)

	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDates
	}
	if checkIn.Before(startOfDay(s.now())) {
		return nil, ErrCheckInPast
	}

	var created *models.Booking

	err := s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		// Lock the room row so conflicting creations for the same room
		// serialize before the overlap check runs.
		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, input.RoomID)
		if err != nil {
			return ErrRoomNotFound
		}

		conflicts, err := s.bookingRepo.CountOverlapping(ctx, tx, room.ID, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if conflicts > 0 {
			return ErrRoomUnavailable
		}

		customer, err := s.findOrCreateCustomer(ctx, tx, input)
		if err != nil {
			return err
		}

		number, err := s.nextBookingNumber(ctx, tx)
		if err != nil {
			return err
		}

		source := input.Source
		if source == "" {
			source = models.SourceOnline
		}

		booking := &models.Booking{
			BookingNumber:   number,
			RoomID:          room.ID,
			CustomerID:      customer.ID,
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			NumberOfGuests:  input.NumberOfGuests,
			TotalAmount:     input.TotalAmount,
			SpecialRequests: input.SpecialRequests,
			Source:          source,
			Status:          models.StatusConfirmed,
			PaymentStatus:   models.PaymentPending,
			CreatedByID:     input.CreatedByID,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		created = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.FindByID(ctx, created.ID)
	if err != nil {
		// Commit succeeded; fall back to the row we just wrote.
		booking = created
	}

	s.publish(EventBookingCreated, booking)
	return booking, nil
}

func (s *bookingService) findOrCreateCustomer(ctx context.Context, tx *gorm.DB, input CreateBookingInput) (*models.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(input.CustomerEmail))

	customer, err := s.customerRepo.FindByEmail(ctx, tx, email)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer = &models.Customer{
		Name:  input.CustomerName,
		Email: email,
		Phone: input.CustomerPhone,
	}
	if err := s.customerRepo.Create(ctx, tx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

// nextBookingNumber builds BK + yyyymmdd + zero-padded per-day sequence. The
// sequence comes from an atomic counter upsert, so concurrent creations on
// the same day cannot collide.
func (s *bookingService) nextBookingNumber(ctx context.Context, tx *gorm.DB) (string, error) {
	day := s.now().UTC().Format("20060102")
	seq, err := s.bookingRepo.NextSequence(ctx, tx, day)
	if err != nil {
		return "", fmt.Errorf("booking sequence: %w", err)
	}
	return fmt.Sprintf("BK%s%04d", day, seq), nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, id uint, patch UpdateBookingInput) (*models.Booking, error) {
	err := s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrBookingNotFound
		}

		roomID := booking.RoomID
		if patch.RoomID != nil {
			roomID = *patch.RoomID
		}
		checkIn := booking.CheckInDate
		if patch.CheckInDate != nil {
			checkIn = startOfDay(*patch.CheckInDate)
		}
		checkOut := booking.CheckOutDate
		if patch.CheckOutDate != nil {
			checkOut = startOfDay(*patch.CheckOutDate)
		}
		if !checkOut.After(checkIn) {
			return ErrInvalidDates
		}

		datesChanged := !checkIn.Equal(booking.CheckInDate) || !checkOut.Equal(booking.CheckOutDate)
		if roomID != booking.RoomID || datesChanged {
			if _, err := s.roomRepo.FindByIDForUpdate(ctx, tx, roomID); err != nil {
				return ErrRoomNotFound
			}
			conflicts, err := s.bookingRepo.CountOverlapping(ctx, tx, roomID, checkIn, checkOut, booking.ID)
			if err != nil {
				return err
			}
			if conflicts > 0 {
				return ErrRoomUnavailable
			}
		}

		fields := map[string]any{
			"room_id":        roomID,
			"check_in_date":  checkIn,
			"check_out_date": checkOut,
		}
		if patch.NumberOfGuests != nil {
			fields["number_of_guests"] = *patch.NumberOfGuests
		}
		if patch.TotalAmount != nil {
			fields["total_amount"] = *patch.TotalAmount
		}
		if patch.SpecialRequests != nil {
			fields["special_requests"] = *patch.SpecialRequests
		}

		return s.bookingRepo.Updates(ctx, tx, booking.ID, fields)
	})
	if err != nil {
		return nil, err
	}

	return s.bookingRepo.FindByID(ctx, id)
}

func (s *bookingService) CancelBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var wasCheckedIn bool

	err := s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrBookingNotFound
		}

		switch booking.Status {
		case models.StatusCheckedOut:
			return ErrAlreadyCheckedOut
		case models.StatusCancelled:
			return ErrAlreadyCancelled
		}

		wasCheckedIn = booking.Status == models.StatusCheckedIn

		if err := s.bookingRepo.UpdateStatus(ctx, tx, booking.ID, models.StatusCancelled); err != nil {
			return err
		}

		// A checked-in guest's room frees up when the stay is cancelled.
		if wasCheckedIn {
			if err := s.roomRepo.UpdateStatus(ctx, tx, booking.RoomID, models.RoomAvailable); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(EventBookingCancelled, booking)
	return booking, nil
}

func (s *bookingService) CheckIn(ctx context.Context, id uint) (*models.Booking, error) {
	err := s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrBookingNotFound
		}
		if booking.Status != models.StatusConfirmed {
			return ErrInvalidTransition
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, booking.ID, models.StatusCheckedIn); err != nil {
			return err
		}
		return s.roomRepo.UpdateStatus(ctx, tx, booking.RoomID, models.RoomOccupied)
	})
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(EventBookingCheckedIn, booking)
	return booking, nil
}

func (s *bookingService) CheckOut(ctx context.Context, id uint) (*models.Booking, error) {
	err := s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrBookingNotFound
		}
		if booking.Status != models.StatusCheckedIn {
			return ErrInvalidTransition
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, booking.ID, models.StatusCheckedOut); err != nil {
			return err
		}
		return s.roomRepo.UpdateStatus(ctx, tx, booking.RoomID, models.RoomAvailable)
	})
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(EventBookingCheckedOut, booking)
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// FindByNumberAndEmail is the public lookup: booking number is matched
// case-insensitively, and the customer email must match the booking's owner.
func (s *bookingService) FindByNumberAndEmail(ctx context.Context, number, email string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByNumber(ctx, strings.ToUpper(strings.TrimSpace(number)))
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if booking.Customer == nil ||
		!strings.EqualFold(booking.Customer.Email, strings.TrimSpace(email)) {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error) {
	return s.bookingRepo.List(ctx, filter)
}

func (s *bookingService) GetCalendarEvents(ctx context.Context, from, to time.Time) ([]CalendarEvent, error) {
	bookings, err := s.bookingRepo.FindActiveOverlapping(ctx, from, to)
	if err != nil {
		return nil, err
	}

	events := make([]CalendarEvent, len(bookings))
	for i, b := range bookings {
		ev := CalendarEvent{
			BookingID: b.ID,
			Title:     b.BookingNumber,
			Start:     b.CheckInDate,
			End:       b.CheckOutDate,
			Status:    b.Status,
		}
		if b.Room != nil {
			ev.RoomNumber = b.Room.RoomNumber
		}
		if b.Customer != nil {
			ev.Customer = b.Customer.Name
			ev.Title = b.BookingNumber + " - " + b.Customer.Name
		}
		events[i] = ev
	}
	return events, nil
}

func (s *bookingService) publish(key string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}

	event := BookingEvent{
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		CheckInDate:   booking.CheckInDate,
		CheckOutDate:  booking.CheckOutDate,
		TotalAmount:   booking.TotalAmount,
	}
	if booking.Customer != nil {
		event.CustomerName = booking.Customer.Name
		event.CustomerEmail = booking.Customer.Email
	}
	if booking.Room != nil {
		event.RoomNumber = booking.Room.RoomNumber
		event.RoomType = string(booking.Room.Type)
	}

	if err := s.publisher.Publish(key, event); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event":   key,
			"booking": booking.BookingNumber,
		}).Warn("failed to publish booking event")
	}
}
