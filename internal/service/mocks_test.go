package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/adeyemi-o/hotel-management/internal/models"
	"github.com/adeyemi-o/hotel-management/internal/repository"
)

// Func-field mocks shared by the service tests. Unset fields return zero
// values; Transaction runs the callback with a nil tx, which the other mock
// methods ignore.

type mockBookingRepo struct {
	createFn              func(ctx context.Context, tx *gorm.DB, b *models.Booking) error
	findByIDFn            func(ctx context.Context, id uint) (*models.Booking, error)
	findByIDForUpdateFn   func(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error)
	findByNumberFn        func(ctx context.Context, number string) (*models.Booking, error)
	listFn                func(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error)
	findActiveFn          func(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	countOverlappingFn    func(ctx context.Context, tx *gorm.DB, roomID uint, in, out time.Time, exclude uint) (int64, error)
	countActiveForRoomFn  func(ctx context.Context, roomID uint) (int64, error)
	countCreatedByFn      func(ctx context.Context, staffID uint) (int64, error)
	nextSequenceFn        func(ctx context.Context, tx *gorm.DB, day string) (int, error)
	updatesFn             func(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) error
	updateStatusFn        func(ctx context.Context, tx *gorm.DB, id uint, status models.BookingStatus) error
	updatePaymentStatusFn func(ctx context.Context, id uint, status models.PaymentStatus) error
}

func (m *mockBookingRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}
func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, b *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, b)
	}
	b.ID = 1
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	if m.findByIDForUpdateFn != nil {
		return m.findByIDForUpdateFn(ctx, tx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindByNumber(ctx context.Context, number string) (*models.Booking, error) {
	if m.findByNumberFn != nil {
		return m.findByNumberFn(ctx, number)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) List(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}
func (m *mockBookingRepo) FindActiveOverlapping(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	if m.findActiveFn != nil {
		return m.findActiveFn(ctx, from, to)
	}
	return nil, nil
}
func (m *mockBookingRepo) CountOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, in, out time.Time, exclude uint) (int64, error) {
	if m.countOverlappingFn != nil {
		return m.countOverlappingFn(ctx, tx, roomID, in, out, exclude)
	}
	return 0, nil
}
func (m *mockBookingRepo) CountActiveForRoom(ctx context.Context, roomID uint) (int64, error) {
	if m.countActiveForRoomFn != nil {
		return m.countActiveForRoomFn(ctx, roomID)
	}
	return 0, nil
}
func (m *mockBookingRepo) CountCreatedBy(ctx context.Context, staffID uint) (int64, error) {
	if m.countCreatedByFn != nil {
		return m.countCreatedByFn(ctx, staffID)
	}
	return 0, nil
}
func (m *mockBookingRepo) NextSequence(ctx context.Context, tx *gorm.DB, day string) (int, error) {
	if m.nextSequenceFn != nil {
		return m.nextSequenceFn(ctx, tx, day)
	}
	return 1, nil
}
func (m *mockBookingRepo) Updates(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) error {
	if m.updatesFn != nil {
		return m.updatesFn(ctx, tx, id, fields)
	}
	return nil
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.BookingStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, tx, id, status)
	}
	return nil
}
func (m *mockBookingRepo) UpdatePaymentStatus(ctx context.Context, id uint, status models.PaymentStatus) error {
	if m.updatePaymentStatusFn != nil {
		return m.updatePaymentStatusFn(ctx, id, status)
	}
	return nil
}

type mockRoomRepo struct {
	createFn        func(ctx context.Context, room *models.Room) error
	findByIDFn      func(ctx context.Context, id uint) (*models.Room, error)
	findByNumberFn  func(ctx context.Context, number string) (*models.Room, error)
	findAllFn       func(ctx context.Context) ([]models.Room, error)
	countAllFn      func(ctx context.Context) (int64, error)
	countByStatusFn func(ctx context.Context, status models.RoomStatus) (int64, error)
	updatesFn       func(ctx context.Context, id uint, fields map[string]any) error
	updateStatusFn  func(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus) error
	deleteFn        func(ctx context.Context, id uint) error
}

func (m *mockRoomRepo) Create(ctx context.Context, room *models.Room) error {
	if m.createFn != nil {
		return m.createFn(ctx, room)
	}
	room.ID = 1
	return nil
}
func (m *mockRoomRepo) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRoomRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRoomRepo) FindByNumber(ctx context.Context, number string) (*models.Room, error) {
	if m.findByNumberFn != nil {
		return m.findByNumberFn(ctx, number)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRoomRepo) FindAll(ctx context.Context) ([]models.Room, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}
func (m *mockRoomRepo) CountAll(ctx context.Context) (int64, error) {
	if m.countAllFn != nil {
		return m.countAllFn(ctx)
	}
	return 0, nil
}
func (m *mockRoomRepo) CountByStatus(ctx context.Context, status models.RoomStatus) (int64, error) {
	if m.countByStatusFn != nil {
		return m.countByStatusFn(ctx, status)
	}
	return 0, nil
}
func (m *mockRoomRepo) Updates(ctx context.Context, id uint, fields map[string]any) error {
	if m.updatesFn != nil {
		return m.updatesFn(ctx, id, fields)
	}
	return nil
}
func (m *mockRoomRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, tx, id, status)
	}
	return nil
}
func (m *mockRoomRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockCustomerRepo struct {
	createFn       func(ctx context.Context, tx *gorm.DB, customer *models.Customer) error
	findByIDFn     func(ctx context.Context, id uint) (*models.Customer, error)
	findByEmailFn  func(ctx context.Context, tx *gorm.DB, email string) (*models.Customer, error)
	listFn         func(ctx context.Context, search string, limit, offset int) ([]models.Customer, error)
	findBookingsFn func(ctx context.Context, customerID uint) ([]models.Booking, error)
}

func (m *mockCustomerRepo) Create(ctx context.Context, tx *gorm.DB, customer *models.Customer) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, customer)
	}
	customer.ID = 1
	return nil
}
func (m *mockCustomerRepo) FindByID(ctx context.Context, id uint) (*models.Customer, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockCustomerRepo) FindByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.Customer, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, tx, email)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockCustomerRepo) List(ctx context.Context, search string, limit, offset int) ([]models.Customer, error) {
	if m.listFn != nil {
		return m.listFn(ctx, search, limit, offset)
	}
	return nil, nil
}
func (m *mockCustomerRepo) FindBookings(ctx context.Context, customerID uint) ([]models.Booking, error) {
	if m.findBookingsFn != nil {
		return m.findBookingsFn(ctx, customerID)
	}
	return nil, nil
}

type mockStaffRepo struct {
	createFn      func(ctx context.Context, staff *models.Staff) error
	findByIDFn    func(ctx context.Context, id uint) (*models.Staff, error)
	findByEmailFn func(ctx context.Context, email string) (*models.Staff, error)
	findAllFn     func(ctx context.Context) ([]models.Staff, error)
	updatesFn     func(ctx context.Context, id uint, fields map[string]any) error
	deleteFn      func(ctx context.Context, id uint) error
}

func (m *mockStaffRepo) Create(ctx context.Context, staff *models.Staff) error {
	if m.createFn != nil {
		return m.createFn(ctx, staff)
	}
	staff.ID = 1
	return nil
}
func (m *mockStaffRepo) FindByID(ctx context.Context, id uint) (*models.Staff, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockStaffRepo) FindByEmail(ctx context.Context, email string) (*models.Staff, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockStaffRepo) FindAll(ctx context.Context) ([]models.Staff, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}
func (m *mockStaffRepo) Updates(ctx context.Context, id uint, fields map[string]any) error {
	if m.updatesFn != nil {
		return m.updatesFn(ctx, id, fields)
	}
	return nil
}
func (m *mockStaffRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockActivityRepo struct {
	createFn       func(ctx context.Context, entry *models.ActivityLog) error
	listFn         func(ctx context.Context, filter repository.ActivityFilter) ([]models.ActivityLog, error)
	countByStaffFn func(ctx context.Context, staffID uint) (int64, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, entry *models.ActivityLog) error {
	if m.createFn != nil {
		return m.createFn(ctx, entry)
	}
	return nil
}
func (m *mockActivityRepo) List(ctx context.Context, filter repository.ActivityFilter) ([]models.ActivityLog, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}
func (m *mockActivityRepo) CountByStaff(ctx context.Context, staffID uint) (int64, error) {
	if m.countByStaffFn != nil {
		return m.countByStaffFn(ctx, staffID)
	}
	return 0, nil
}

type mockPaymentRepo struct {
	createFn          func(ctx context.Context, payment *models.Payment) error
	findByReferenceFn func(ctx context.Context, reference string) (*models.Payment, error)
	findByBookingFn   func(ctx context.Context, bookingID uint) ([]models.Payment, error)
	markPaidFn        func(ctx context.Context, id uint, gatewayRef string, paidAt time.Time) error
	markFailedFn      func(ctx context.Context, id uint) error
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	if m.createFn != nil {
		return m.createFn(ctx, payment)
	}
	payment.ID = 1
	return nil
}
func (m *mockPaymentRepo) FindByReference(ctx context.Context, reference string) (*models.Payment, error) {
	if m.findByReferenceFn != nil {
		return m.findByReferenceFn(ctx, reference)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockPaymentRepo) FindByBookingID(ctx context.Context, bookingID uint) ([]models.Payment, error) {
	if m.findByBookingFn != nil {
		return m.findByBookingFn(ctx, bookingID)
	}
	return nil, nil
}
func (m *mockPaymentRepo) MarkPaid(ctx context.Context, id uint, gatewayRef string, paidAt time.Time) error {
	if m.markPaidFn != nil {
		return m.markPaidFn(ctx, id, gatewayRef, paidAt)
	}
	return nil
}
func (m *mockPaymentRepo) MarkFailed(ctx context.Context, id uint) error {
	if m.markFailedFn != nil {
		return m.markFailedFn(ctx, id)
	}
	return nil
}

type mockReportRepo struct {
	sumRevenueFn   func(ctx context.Context, from, to time.Time) (float64, error)
	perDayFn       func(ctx context.Context, from, to time.Time) ([]repository.DayCount, error)
	byStatusFn     func(ctx context.Context, from, to time.Time) ([]repository.StatusCount, error)
	roomTypesFn    func(ctx context.Context, from, to time.Time) ([]repository.GroupBreakdown, error)
	sourcesFn      func(ctx context.Context, from, to time.Time) ([]repository.GroupBreakdown, error)
	topCustomersFn func(ctx context.Context, limit int) ([]repository.CustomerRevenue, error)
	staysFn        func(ctx context.Context, from, to time.Time) ([]models.Booking, error)
}

func (m *mockReportRepo) SumPaidRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	if m.sumRevenueFn != nil {
		return m.sumRevenueFn(ctx, from, to)
	}
	return 0, nil
}
func (m *mockReportRepo) BookingsPerDay(ctx context.Context, from, to time.Time) ([]repository.DayCount, error) {
	if m.perDayFn != nil {
		return m.perDayFn(ctx, from, to)
	}
	return nil, nil
}
func (m *mockReportRepo) CountByStatus(ctx context.Context, from, to time.Time) ([]repository.StatusCount, error) {
	if m.byStatusFn != nil {
		return m.byStatusFn(ctx, from, to)
	}
	return nil, nil
}
func (m *mockReportRepo) RoomTypeBreakdown(ctx context.Context, from, to time.Time) ([]repository.GroupBreakdown, error) {
	if m.roomTypesFn != nil {
		return m.roomTypesFn(ctx, from, to)
	}
	return nil, nil
}
func (m *mockReportRepo) SourceBreakdown(ctx context.Context, from, to time.Time) ([]repository.GroupBreakdown, error) {
	if m.sourcesFn != nil {
		return m.sourcesFn(ctx, from, to)
	}
	return nil, nil
}
func (m *mockReportRepo) TopCustomers(ctx context.Context, limit int) ([]repository.CustomerRevenue, error) {
	if m.topCustomersFn != nil {
		return m.topCustomersFn(ctx, limit)
	}
	return nil, nil
}
func (m *mockReportRepo) StaysOverlapping(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	if m.staysFn != nil {
		return m.staysFn(ctx, from, to)
	}
	return nil, nil
}

// mockPublisher records published events in order.
type mockPublisher struct {
	events []string
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.events = append(m.events, routingKey)
	return nil
}
