package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/adeyemi-o/hotel-management/internal/models"
	"github.com/adeyemi-o/hotel-management/internal/paystack"
	"github.com/adeyemi-o/hotel-management/internal/repository"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrGateway         = errors.New("payment gateway error")
)

type InitializePaymentResult struct {
	Reference   string `json:"reference"`
	CheckoutURL string `json:"checkout_url"`
}

// VerifyPaymentResult is returned for declined transactions as well; Success
// false with a nil error means the gateway answered but the charge did not
// go through.
type VerifyPaymentResult struct {
	Success   bool            `json:"success"`
	Reference string          `json:"reference"`
	Booking   *models.Booking `json:"booking,omitempty"`
}

type PaymentService interface {
	Initialize(ctx context.Context, bookingID uint) (*InitializePaymentResult, error)
	Verify(ctx context.Context, reference string) (*VerifyPaymentResult, error)
	ListForBooking(ctx context.Context, bookingID uint) ([]models.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	gateway     paystack.Gateway
	callbackURL string
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	gateway paystack.Gateway,
	callbackURL string,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		gateway:     gateway,
		callbackURL: callbackURL,
	}
}

// Initialize creates a hosted checkout session for the booking's total and
// persists a PENDING payment row keyed by a generated reference. On gateway
// failure the caller decides the rollback (the public flow cancels the
// just-created booking).
func (s *paymentService) Initialize(ctx context.Context, bookingID uint) (*InitializePaymentResult, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if booking.Customer == nil {
		return nil, ErrBookingNotFound
	}

	reference := "PAY-" + strings.ToUpper(uuid.NewString()[:12])

	session, err := s.gateway.Initialize(ctx, paystack.InitializeRequest{
		Reference:   reference,
		Email:       booking.Customer.Email,
		Amount:      booking.TotalAmount,
		CallbackURL: s.callbackURL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	payment := &models.Payment{
		BookingID: booking.ID,
		Amount:    booking.TotalAmount,
		Method:    models.MethodCard,
		Status:    models.PaymentPending,
		Reference: reference,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return &InitializePaymentResult{
		Reference:   reference,
		CheckoutURL: session.AuthorizationURL,
	}, nil
}

// Verify checks the transaction with the gateway and, on success, marks the
// payment PAID and mirrors the status onto the parent booking.
func (s *paymentService) Verify(ctx context.Context, reference string) (*VerifyPaymentResult, error) {
	payment, err := s.paymentRepo.FindByReference(ctx, reference)
	if err != nil {
		return nil, ErrPaymentNotFound
	}

	verified, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	if !verified.Success {
		if err := s.paymentRepo.MarkFailed(ctx, payment.ID); err != nil {
			logrus.WithError(err).WithField("reference", reference).
				Warn("failed to mark payment failed")
		}
		if err := s.bookingRepo.UpdatePaymentStatus(ctx, payment.BookingID, models.PaymentFailed); err != nil {
			logrus.WithError(err).WithField("reference", reference).
				Warn("failed to mirror failed payment onto booking")
		}
		return &VerifyPaymentResult{Success: false, Reference: reference}, nil
	}

	paidAt := verified.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}
	if err := s.paymentRepo.MarkPaid(ctx, payment.ID, verified.GatewayRef, paidAt); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.UpdatePaymentStatus(ctx, payment.BookingID, models.PaymentPaid); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.FindByID(ctx, payment.BookingID)
	if err != nil {
		booking = nil
	}
	return &VerifyPaymentResult{Success: true, Reference: reference, Booking: booking}, nil
}

func (s *paymentService) ListForBooking(ctx context.Context, bookingID uint) ([]models.Payment, error) {
	return s.paymentRepo.FindByBookingID(ctx, bookingID)
}
