package service

import (
	"context"
	"errors"
	"time"

	"github.com/adeyemi-o/hotel-management/internal/models"
	"github.com/adeyemi-o/hotel-management/internal/repository"
)

var (
	ErrRoomNumberTaken       = errors.New("room number already exists")
	ErrRoomHasActiveBookings = errors.New("room has active bookings and cannot be deleted")
)

type RoomInput struct {
	RoomNumber string
	Type       models.RoomType
	Price      float64
	Capacity   int
	Status     models.RoomStatus
	Amenities  []string
	Images     []string
	Floor      *int
}

type RoomService interface {
	CreateRoom(ctx context.Context, input RoomInput) (*models.Room, error)
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]models.Room, error)
	CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error)
	UpdateRoom(ctx context.Context, id uint, fields map[string]any) (*models.Room, error)
	SetStatus(ctx context.Context, id uint, status models.RoomStatus) error
	DeleteRoom(ctx context.Context, id uint) error
}

type roomService struct {
	roomRepo    repository.RoomRepository
	bookingRepo repository.BookingRepository
}

func NewRoomService(roomRepo repository.RoomRepository, bookingRepo repository.BookingRepository) RoomService {
	return &roomService{roomRepo: roomRepo, bookingRepo: bookingRepo}
}

func (s *roomService) CreateRoom(ctx context.Context, input RoomInput) (*models.Room, error) {
	if _, err := s.roomRepo.FindByNumber(ctx, input.RoomNumber); err == nil {
		return nil, ErrRoomNumberTaken
	}

	status := input.Status
	if status == "" {
		status = models.RoomAvailable
	}

	room := &models.Room{
		RoomNumber: input.RoomNumber,
		Type:       input.Type,
		Price:      input.Price,
		Capacity:   input.Capacity,
		Status:     status,
		Amenities:  input.Amenities,
		Images:     input.Images,
		Floor:      input.Floor,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *roomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *roomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	return s.roomRepo.FindAll(ctx)
}

// CheckAvailability is the overlap primitive: true when no active booking for
// the room intersects the half-open [checkIn, checkOut) window.
func (s *roomService) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	count, err := s.bookingRepo.CountOverlapping(ctx, nil, roomID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// ListAvailable scans all rooms and drops the conflicted ones. Linear at
// hotel scale (tens to hundreds of rooms). Rooms under maintenance are never
// offered.
func (s *roomService) ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]models.Room, error) {
	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Status == models.RoomMaintenance {
			continue
		}
		free, err := s.CheckAvailability(ctx, room.ID, checkIn, checkOut, 0)
		if err != nil {
			return nil, err
		}
		if free {
			available = append(available, room)
		}
	}
	return available, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, id uint, fields map[string]any) (*models.Room, error) {
	if _, err := s.roomRepo.FindByID(ctx, id); err != nil {
		return nil, ErrRoomNotFound
	}
	if err := s.roomRepo.Updates(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.roomRepo.FindByID(ctx, id)
}

func (s *roomService) SetStatus(ctx context.Context, id uint, status models.RoomStatus) error {
	if _, err := s.roomRepo.FindByID(ctx, id); err != nil {
		return ErrRoomNotFound
	}
	return s.roomRepo.Updates(ctx, id, map[string]any{"status": status})
}

func (s *roomService) DeleteRoom(ctx context.Context, id uint) error {
	if _, err := s.roomRepo.FindByID(ctx, id); err != nil {
		return ErrRoomNotFound
	}

	active, err := s.bookingRepo.CountActiveForRoom(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrRoomHasActiveBookings
	}
	return s.roomRepo.Delete(ctx, id)
}
