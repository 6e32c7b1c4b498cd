package service

import (
	"context"
	"errors"
	"time"

	"github.com/adeyemi-o/hotel-management/internal/models"
	"github.com/adeyemi-o/hotel-management/internal/repository"
)

var ErrInvalidRange = errors.New("report range end must be after start")

// Report format versions. Bump when a payload's shape changes.
const (
	DailyReportVersion   = 1
	MonthlyReportVersion = 1
	CustomReportVersion  = 1
)

// DailyReport is a snapshot: occupancy is occupied-rooms over total-rooms for
// the day, not room-night utilization.
type DailyReport struct {
	Version       int                      `json:"version"`
	Date          time.Time                `json:"date"`
	TotalRooms    int64                    `json:"total_rooms"`
	OccupiedRooms int64                    `json:"occupied_rooms"`
	OccupancyRate float64                  `json:"occupancy_rate"`
	Revenue       float64                  `json:"revenue"`
	StatusCounts  []repository.StatusCount `json:"status_counts"`
}

type MonthlyReport struct {
	Version       int                         `json:"version"`
	Year          int                         `json:"year"`
	Month         time.Month                  `json:"month"`
	TotalRooms    int64                       `json:"total_rooms"`
	RoomDays      int64                       `json:"room_days"`
	BookedDays    int64                       `json:"booked_days"`
	OccupancyRate float64                     `json:"occupancy_rate"`
	Revenue       float64                     `json:"revenue"`
	BookingsTrend []repository.DayCount       `json:"bookings_trend"`
	RoomTypes     []repository.GroupBreakdown `json:"room_types"`
	Sources       []repository.GroupBreakdown `json:"sources"`
}

type CustomReport struct {
	Version       int                         `json:"version"`
	From          time.Time                   `json:"from"`
	To            time.Time                   `json:"to"`
	Revenue       float64                     `json:"revenue"`
	BookingsTrend []repository.DayCount       `json:"bookings_trend"`
	StatusCounts  []repository.StatusCount    `json:"status_counts"`
	RoomTypes     []repository.GroupBreakdown `json:"room_types"`
	Sources       []repository.GroupBreakdown `json:"sources"`
}

type ReportService interface {
	DailySnapshot(ctx context.Context, date time.Time) (*DailyReport, error)
	MonthlyReport(ctx context.Context, year int, month time.Month) (*MonthlyReport, error)
	CustomReport(ctx context.Context, from, to time.Time) (*CustomReport, error)
	TopCustomers(ctx context.Context, limit int) ([]repository.CustomerRevenue, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	roomRepo   repository.RoomRepository
}

func NewReportService(reportRepo repository.ReportRepository, roomRepo repository.RoomRepository) ReportService {
	return &reportService{reportRepo: reportRepo, roomRepo: roomRepo}
}

// OccupancyRate is occupied/total as a percentage; 0 when the hotel has no
// rooms.
func OccupancyRate(occupied, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(occupied) / float64(total) * 100
}

func (s *reportService) DailySnapshot(ctx context.Context, date time.Time) (*DailyReport, error) {
	day := startOfDay(date)
	next := day.AddDate(0, 0, 1)

	total, err := s.roomRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	occupied, err := s.roomRepo.CountByStatus(ctx, models.RoomOccupied)
	if err != nil {
		return nil, err
	}
	revenue, err := s.reportRepo.SumPaidRevenue(ctx, day, next)
	if err != nil {
		return nil, err
	}
	statusCounts, err := s.reportRepo.CountByStatus(ctx, day, next)
	if err != nil {
		return nil, err
	}

	return &DailyReport{
		Version:       DailyReportVersion,
		Date:          day,
		TotalRooms:    total,
		OccupiedRooms: occupied,
		OccupancyRate: OccupancyRate(occupied, total),
		Revenue:       revenue,
		StatusCounts:  statusCounts,
	}, nil
}

// clippedDays counts the whole days of [in, out) that fall inside
// [from, to).
func clippedDays(in, out, from, to time.Time) int64 {
	if in.Before(from) {
		in = from
	}
	if out.After(to) {
		out = to
	}
	if !out.After(in) {
		return 0
	}
	return int64(out.Sub(in).Hours() / 24)
}

func (s *reportService) MonthlyReport(ctx context.Context, year int, month time.Month) (*MonthlyReport, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	daysInMonth := int64(to.Sub(from).Hours() / 24)

	total, err := s.roomRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	stays, err := s.reportRepo.StaysOverlapping(ctx, from, to)
	if err != nil {
		return nil, err
	}
	var bookedDays int64
	for _, b := range stays {
		bookedDays += clippedDays(b.CheckInDate, b.CheckOutDate, from, to)
	}

	revenue, err := s.reportRepo.SumPaidRevenue(ctx, from, to)
	if err != nil {
		return nil, err
	}
	trend, err := s.reportRepo.BookingsPerDay(ctx, from, to)
	if err != nil {
		return nil, err
	}
	roomTypes, err := s.reportRepo.RoomTypeBreakdown(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sources, err := s.reportRepo.SourceBreakdown(ctx, from, to)
	if err != nil {
		return nil, err
	}

	roomDays := total * daysInMonth
	return &MonthlyReport{
		Version:       MonthlyReportVersion,
		Year:          year,
		Month:         month,
		TotalRooms:    total,
		RoomDays:      roomDays,
		BookedDays:    bookedDays,
		OccupancyRate: OccupancyRate(bookedDays, roomDays),
		Revenue:       revenue,
		BookingsTrend: trend,
		RoomTypes:     roomTypes,
		Sources:       sources,
	}, nil
}

func (s *reportService) CustomReport(ctx context.Context, from, to time.Time) (*CustomReport, error) {
	from = startOfDay(from)
	// Range end is inclusive at day granularity.
	to = startOfDay(to).AddDate(0, 0, 1)
	if !to.After(from) {
		return nil, ErrInvalidRange
	}

	revenue, err := s.reportRepo.SumPaidRevenue(ctx, from, to)
	if err != nil {
		return nil, err
	}
	trend, err := s.reportRepo.BookingsPerDay(ctx, from, to)
	if err != nil {
		return nil, err
	}
	statusCounts, err := s.reportRepo.CountByStatus(ctx, from, to)
	if err != nil {
		return nil, err
	}
	roomTypes, err := s.reportRepo.RoomTypeBreakdown(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sources, err := s.reportRepo.SourceBreakdown(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &CustomReport{
		Version:       CustomReportVersion,
		From:          from,
		To:            to,
		Revenue:       revenue,
		BookingsTrend: trend,
		StatusCounts:  statusCounts,
		RoomTypes:     roomTypes,
		Sources:       sources,
	}, nil
}

func (s *reportService) TopCustomers(ctx context.Context, limit int) ([]repository.CustomerRevenue, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.reportRepo.TopCustomers(ctx, limit)
}
