package pms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

const financialPath = "/api/admin/financial"

// Canned report windows the backend exposes per report kind.
var (
	revenuePeriods = map[domain.ReportPeriod]string{
		domain.PeriodToday: "today",
		domain.PeriodWeek:  "week",
		domain.PeriodMonth: "month",
		domain.PeriodYear:  "year",
	}
	expensePeriods = map[domain.ReportPeriod]string{
		domain.PeriodToday: "today",
		domain.PeriodMonth: "month",
		domain.PeriodYear:  "year",
	}
	occupancyPeriods = expensePeriods
)

type FinancialService struct {
	c *Client
}

func (s *FinancialService) Dashboard(ctx context.Context) (*domain.FinancialDashboard, error) {
	d, err := call[domain.FinancialDashboard](ctx, s.c, Request{
		Op:     "financial.dashboard",
		Method: http.MethodGet,
		Path:   financialPath + "/dashboard",
		Auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *FinancialService) QuickStats(ctx context.Context) (*domain.QuickStats, error) {
	q, err := call[domain.QuickStats](ctx, s.c, Request{
		Op:     "financial.quick_stats",
		Method: http.MethodGet,
		Path:   financialPath + "/stats/quick",
		Auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Revenue fetches the revenue report for period. rng is only read for
// domain.PeriodCustom.
func (s *FinancialService) Revenue(ctx context.Context, period domain.ReportPeriod, rng domain.DateRange) (*domain.RevenueReport, error) {
	req, err := reportRequest("financial.revenue", "/revenue", revenuePeriods, period, rng)
	if err != nil {
		return nil, err
	}
	return report[domain.RevenueReport](ctx, s.c, req)
}

// RevenueForMonth fetches the revenue report of a specific calendar month.
func (s *FinancialService) RevenueForMonth(ctx context.Context, year, month int) (*domain.RevenueReport, error) {
	if month < 1 || month > 12 {
		return nil, invalidRequestError("financial.revenue_month", fmt.Sprintf("invalid month %d", month), nil)
	}
	return report[domain.RevenueReport](ctx, s.c, Request{
		Op:     "financial.revenue_month",
		Method: http.MethodGet,
		Path:   financialPath + "/revenue/month/" + strconv.Itoa(year) + "/" + strconv.Itoa(month),
		Auth:   true,
	})
}

func (s *FinancialService) Expenses(ctx context.Context, period domain.ReportPeriod, rng domain.DateRange) (*domain.ExpenseReport, error) {
	req, err := reportRequest("financial.expenses", "/expenses", expensePeriods, period, rng)
	if err != nil {
		return nil, err
	}
	return report[domain.ExpenseReport](ctx, s.c, req)
}

func (s *FinancialService) Occupancy(ctx context.Context, period domain.ReportPeriod, rng domain.DateRange) (*domain.OccupancyReport, error) {
	req, err := reportRequest("financial.occupancy", "/occupancy", occupancyPeriods, period, rng)
	if err != nil {
		return nil, err
	}
	return report[domain.OccupancyReport](ctx, s.c, req)
}

func reportRequest(op, base string, periods map[domain.ReportPeriod]string, period domain.ReportPeriod, rng domain.DateRange) (Request, error) {
	req := Request{Op: op, Method: http.MethodGet, Auth: true}

	if period == domain.PeriodCustom {
		if err := rng.Validate(); err != nil {
			return Request{}, invalidRequestError(op, err.Error(), err)
		}
		q := url.Values{}
		q.Set("startDate", rng.Start.Format(domain.DateLayout))
		q.Set("endDate", rng.End.Format(domain.DateLayout))
		req.Path = financialPath + base
		req.Query = q
		return req, nil
	}

	suffix, ok := periods[period]
	if !ok {
		return Request{}, invalidRequestError(op, fmt.Sprintf("unsupported report period %q", period), nil)
	}
	req.Path = financialPath + base + "/" + suffix
	return req, nil
}

func report[T any](ctx context.Context, c *Client, req Request) (*T, error) {
	r, err := call[T](ctx, c, req)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
