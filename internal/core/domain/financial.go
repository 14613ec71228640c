package domain

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date format the financial endpoints expect.
const DateLayout = "2006-01-02"

var ErrInvalidDateRange = errors.New("invalid date range")

// ReportPeriod selects one of the canned report windows.
type ReportPeriod string

const (
	PeriodToday  ReportPeriod = "TODAY"
	PeriodWeek   ReportPeriod = "WEEK"
	PeriodMonth  ReportPeriod = "MONTH"
	PeriodYear   ReportPeriod = "YEAR"
	PeriodCustom ReportPeriod = "CUSTOM"
)

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Validate rejects zero bounds and ranges that end before they start.
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() || r.End.Before(r.Start) {
		return ErrInvalidDateRange
	}
	return nil
}

// ParseDateRange parses two YYYY-MM-DD strings into a validated range.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}
	r := DateRange{Start: s, End: e}
	return r, r.Validate()
}

type FinancialDashboard struct {
	TodayRevenue              float64 `json:"todayRevenue"`
	TodayExpenses             float64 `json:"todayExpenses"`
	TodayBookings             int64   `json:"todayBookings"`
	TodayCheckIns             int64   `json:"todayCheckIns"`
	TodayCheckOuts            int64   `json:"todayCheckOuts"`
	TodayOccupancyRate        float64 `json:"todayOccupancyRate"`
	MonthToDateRevenue        float64 `json:"monthToDateRevenue"`
	MonthToDateExpenses       float64 `json:"monthToDateExpenses"`
	MonthToDateBookings       int64   `json:"monthToDateBookings"`
	MonthToDateOccupancyRate  float64 `json:"monthToDateOccupancyRate"`
	YearToDateRevenue         float64 `json:"yearToDateRevenue"`
	YearToDateExpenses        float64 `json:"yearToDateExpenses"`
	YearToDateBookings        int64   `json:"yearToDateBookings"`
	YearToDateOccupancyRate   float64 `json:"yearToDateOccupancyRate"`
	TotalUnpaidAmount         float64 `json:"totalUnpaidAmount"`
	UnpaidBookingsCount       int64   `json:"unpaidBookingsCount"`
	RevenueGrowthPercentage   float64 `json:"revenueGrowthPercentage"`
	OccupancyGrowthPercentage float64 `json:"occupancyGrowthPercentage"`
}

type QuickStats struct {
	TodayRevenue float64 `json:"todayRevenue"`
	MonthRevenue float64 `json:"monthRevenue"`
	YearRevenue  float64 `json:"yearRevenue"`
	GeneratedAt  string  `json:"generatedAt"`
}

type DailyRevenue struct {
	Date             string  `json:"date"`
	TotalRevenue     float64 `json:"totalRevenue"`
	RoomRevenue      float64 `json:"roomRevenue"`
	ServiceRevenue   float64 `json:"serviceRevenue"`
	BookingsCount    int64   `json:"bookingsCount"`
	CheckInsCount    int64   `json:"checkInsCount"`
	CheckOutsCount   int64   `json:"checkOutsCount"`
	AverageDailyRate float64 `json:"averageDailyRate"`
	OccupancyRate    float64 `json:"occupancyRate"`
}

type RevenueReport struct {
	StartDate               string             `json:"startDate"`
	EndDate                 string             `json:"endDate"`
	Period                  string             `json:"period"`
	TotalRevenue            float64            `json:"totalRevenue"`
	RoomRevenue             float64            `json:"roomRevenue"`
	ServiceRevenue          float64            `json:"serviceRevenue"`
	OtherRevenue            float64            `json:"otherRevenue"`
	TotalTax                float64            `json:"totalTax"`
	TotalServiceCharges     float64            `json:"totalServiceCharges"`
	NetRevenue              float64            `json:"netRevenue"`
	TotalBookings           int64              `json:"totalBookings"`
	ConfirmedBookings       int64              `json:"confirmedBookings"`
	CancelledBookings       int64              `json:"cancelledBookings"`
	CompletedBookings       int64              `json:"completedBookings"`
	PaidBookings            int64              `json:"paidBookings"`
	UnpaidBookings          int64              `json:"unpaidBookings"`
	PartiallyPaidBookings   int64              `json:"partiallyPaidBookings"`
	TotalPaidAmount         float64            `json:"totalPaidAmount"`
	TotalUnpaidAmount       float64            `json:"totalUnpaidAmount"`
	AverageBookingValue     float64            `json:"averageBookingValue"`
	AverageDailyRate        float64            `json:"averageDailyRate"`
	RevenuePerAvailableRoom float64            `json:"revenuePerAvailableRoom"`
	RevenueByChannel        map[string]float64 `json:"revenueByChannel,omitempty"`
	RevenueByRoomType       map[string]float64 `json:"revenueByRoomType,omitempty"`
	DailyBreakdown          []DailyRevenue     `json:"dailyBreakdown,omitempty"`
}

type ExpenseReport struct {
	StartDate            string             `json:"startDate"`
	EndDate              string             `json:"endDate"`
	TotalExpenses        float64            `json:"totalExpenses"`
	PaidExpenses         float64            `json:"paidExpenses"`
	UnpaidExpenses       float64            `json:"unpaidExpenses"`
	ReversedExpenses     float64            `json:"reversedExpenses"`
	ExpensesByCategory   map[string]float64 `json:"expensesByCategory,omitempty"`
	TotalTransactions    int64              `json:"totalTransactions"`
	PaidTransactions     int64              `json:"paidTransactions"`
	UnpaidTransactions   int64              `json:"unpaidTransactions"`
	ReversedTransactions int64              `json:"reversedTransactions"`
	AverageExpenseAmount float64            `json:"averageExpenseAmount"`
	AverageDailyExpenses float64            `json:"averageDailyExpenses"`
}

type DailyOccupancy struct {
	Date           string  `json:"date"`
	TotalRooms     int64   `json:"totalRooms"`
	OccupiedRooms  int64   `json:"occupiedRooms"`
	AvailableRooms int64   `json:"availableRooms"`
	OccupancyRate  float64 `json:"occupancyRate"`
	CheckIns       int64   `json:"checkIns"`
	CheckOuts      int64   `json:"checkOuts"`
}

type OccupancyReport struct {
	StartDate             string           `json:"startDate"`
	EndDate               string           `json:"endDate"`
	AverageOccupancyRate  float64          `json:"averageOccupancyRate"`
	TotalRooms            int64            `json:"totalRooms"`
	AverageOccupiedRooms  float64          `json:"averageOccupiedRooms"`
	AverageAvailableRooms float64          `json:"averageAvailableRooms"`
	TotalRoomNights       int64            `json:"totalRoomNights"`
	OccupiedRoomNights    int64            `json:"occupiedRoomNights"`
	AvailableRoomNights   int64            `json:"availableRoomNights"`
	DailyOccupancy        []DailyOccupancy `json:"dailyOccupancy,omitempty"`
}
