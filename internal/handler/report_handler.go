package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adeyemi-o/hotel-management/internal/export"
	"github.com/adeyemi-o/hotel-management/internal/service"
)

type ReportHandler struct {
	svc service.ReportService
}

func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/reports/daily", h.Daily)
	admin.GET("/reports/monthly", h.Monthly)
	admin.GET("/reports/custom", h.Custom)
	admin.GET("/reports/top-customers", h.TopCustomers)
	admin.GET("/reports/export.csv", h.ExportCSV)
	admin.GET("/reports/export.pdf", h.ExportPDF)
}

func (h *ReportHandler) Daily(c echo.Context) error {
	date := time.Now().UTC()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		date = parsed
	}

	report, err := h.svc.DailySnapshot(c.Request().Context(), date)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Monthly(c echo.Context) error {
	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	if raw := c.QueryParam("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 2000 || y > 2100 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		year = y
	}
	if raw := c.QueryParam("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return echo.NewHTTPError(http.StatusBadRequest, "month must be 1-12")
		}
		month = time.Month(m)
	}

	report, err := h.svc.MonthlyReport(c.Request().Context(), year, month)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Custom(c echo.Context) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}

	report, err := h.svc.CustomReport(c.Request().Context(), from, to)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) TopCustomers(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	customers, err := h.svc.TopCustomers(c.Request().Context(), limit)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *ReportHandler) ExportCSV(c echo.Context) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}

	report, err := h.svc.CustomReport(c.Request().Context(), from, to)
	if err != nil {
		return toHTTPError(err)
	}

	filename := fmt.Sprintf("report_%s_%s.csv", from.Format("20060102"), to.Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteReportCSV(c.Response(), report)
}

func (h *ReportHandler) ExportPDF(c echo.Context) error {
	from, to, err := parseRange(c)
	if err != nil {
		return err
	}

	report, err := h.svc.CustomReport(c.Request().Context(), from, to)
	if err != nil {
		return toHTTPError(err)
	}

	pdf, err := export.ReportPDF(report)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("report_%s_%s.pdf", from.Format("20060102"), to.Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func parseRange(c echo.Context) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", c.QueryParam("from"))
	if err != nil {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", c.QueryParam("to"))
	if err != nil {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "to must be YYYY-MM-DD")
	}
	return from, to, nil
}
