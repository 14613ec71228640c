package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hotelops/hotel-console/internal/core/domain"
	"github.com/hotelops/hotel-console/internal/infrastructure/pms"
)

// FinancialHandler serves the financial dashboard and reports.
type FinancialHandler struct {
	client *pms.Client
}

func NewFinancialHandler(client *pms.Client) *FinancialHandler {
	return &FinancialHandler{client: client}
}

func (h *FinancialHandler) financial(c echo.Context) (*pms.FinancialService, error) {
	api, err := backendFor(c, h.client)
	if err != nil {
		return nil, err
	}
	return api.Financial(), nil
}

// reportWindow reads ?period= (default month) and, for custom, the
// startDate/endDate pair in YYYY-MM-DD form.
func reportWindow(c echo.Context) (domain.ReportPeriod, domain.DateRange, error) {
	period := domain.ReportPeriod(strings.ToUpper(strings.TrimSpace(c.QueryParam("period"))))
	if period == "" {
		period = domain.PeriodMonth
	}
	if period != domain.PeriodCustom {
		return period, domain.DateRange{}, nil
	}
	rng, err := domain.ParseDateRange(c.QueryParam("startDate"), c.QueryParam("endDate"))
	if err != nil {
		return "", domain.DateRange{}, err
	}
	return period, rng, nil
}

// Dashboard returns today's and this month's headline figures.
//
// @Summary      Financial dashboard
// @Tags         financial
// @Produce      json
// @Success      200  {object}  domain.FinancialDashboard
// @Router       /financial/dashboard [get]
func (h *FinancialHandler) Dashboard(c echo.Context) error {
	svc, err := h.financial(c)
	if err != nil {
		return err
	}
	d, err := svc.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *FinancialHandler) QuickStats(c echo.Context) error {
	svc, err := h.financial(c)
	if err != nil {
		return err
	}
	q, err := svc.QuickStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, q)
}

// Revenue returns the revenue report for a canned or custom window.
//
// @Summary      Revenue report
// @Tags         financial
// @Produce      json
// @Param        period     query     string  false  "TODAY, WEEK, MONTH, YEAR or CUSTOM"
// @Param        startDate  query     string  false  "YYYY-MM-DD, with CUSTOM"
// @Param        endDate    query     string  false  "YYYY-MM-DD, with CUSTOM"
// @Success      200        {object}  domain.RevenueReport
// @Failure      400        {object}  map[string]string
// @Router       /financial/revenue [get]
func (h *FinancialHandler) Revenue(c echo.Context) error {
	period, rng, err := reportWindow(c)
	if err != nil {
		return err
	}
	svc, err := h.financial(c)
	if err != nil {
		return err
	}
	r, err := svc.Revenue(c.Request().Context(), period, rng)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

func (h *FinancialHandler) RevenueForMonth(c echo.Context) error {
	year, err := pathInt(c, "year")
	if err != nil {
		return err
	}
	month, err := pathInt(c, "month")
	if err != nil {
		return err
	}
	svc, err := h.financial(c)
	if err != nil {
		return err
	}
	r, err := svc.RevenueForMonth(c.Request().Context(), year, month)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

func (h *FinancialHandler) Expenses(c echo.Context) error {
	period, rng, err := reportWindow(c)
	if err != nil {
		return err
	}
	svc, err := h.financial(c)
	if err != nil {
		return err
	}
	r, err := svc.Expenses(c.Request().Context(), period, rng)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

func (h *FinancialHandler) Occupancy(c echo.Context) error {
	period, rng, err := reportWindow(c)
	if err != nil {
		return err
	}
	svc, err := h.financial(c)
	if err != nil {
		return err
	}
	r, err := svc.Occupancy(c.Request().Context(), period, rng)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}
