package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/adeyemi-o/hotel-management/config"
	"github.com/adeyemi-o/hotel-management/internal/consumer"
	"github.com/adeyemi-o/hotel-management/internal/handler"
	"github.com/adeyemi-o/hotel-management/internal/mailer"
	"github.com/adeyemi-o/hotel-management/internal/middleware"
	"github.com/adeyemi-o/hotel-management/internal/paystack"
	"github.com/adeyemi-o/hotel-management/internal/repository"
	"github.com/adeyemi-o/hotel-management/internal/service"
	"github.com/adeyemi-o/hotel-management/internal/validation"
	"github.com/adeyemi-o/hotel-management/pkg/database"
	"github.com/adeyemi-o/hotel-management/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ carries booking lifecycle events to the mail consumer. The API
	// stays up without it; events are then dropped with a warning.
	var publisher service.EventPublisher
	if pub, err := rabbitmq.NewPublisher(cfg.RabbitURL); err != nil {
		logrus.WithError(err).Warn("rabbitmq unavailable, booking events disabled")
	} else {
		defer pub.Close()
		publisher = pub

		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			logrus.WithError(err).Warn("rabbitmq consumer setup failed, booking mail disabled")
		} else {
			defer mqConsumer.Close()
			msgs, err := mqConsumer.Consume()
			if err != nil {
				logrus.WithError(err).Warn("rabbitmq consume failed, booking mail disabled")
			} else {
				consumer.NewEmailConsumer(mailer.New(cfg.ResendAPIKey, cfg.MailFrom)).Start(msgs)
			}
		}
	}

	// Repositories
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, customerRepo, publisher)
	roomSvc := service.NewRoomService(roomRepo, bookingRepo)
	paymentSvc := service.NewPaymentService(
		paymentRepo,
		bookingRepo,
		paystack.NewClient(cfg.PaystackSecretKey, cfg.PaystackBaseURL),
		cfg.PaymentCallback,
	)
	staffSvc := service.NewStaffService(staffRepo, bookingRepo, activityRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	activitySvc := service.NewActivityService(activityRepo)
	reportSvc := service.NewReportService(reportRepo, roomRepo)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			logrus.WithFields(logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			}).Info("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "hotel-management"})
	})

	staffHandler := handler.NewStaffHandler(
		staffSvc, customerSvc, activitySvc,
		cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour,
	)
	staffHandler.RegisterAuthRoutes(e)

	api := e.Group("/api/v1")
	handler.NewPublicHandler(bookingSvc, roomSvc, paymentSvc).RegisterRoutes(api)

	admin := api.Group("/admin", middleware.JWTAuth(cfg.JWTSecret))
	handler.NewBookingHandler(bookingSvc, activitySvc).RegisterRoutes(admin)
	handler.NewRoomHandler(roomSvc, activitySvc).RegisterRoutes(admin)
	staffHandler.RegisterRoutes(admin)
	handler.NewReportHandler(reportSvc).RegisterRoutes(admin)

	logrus.Infof("hotel management API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
