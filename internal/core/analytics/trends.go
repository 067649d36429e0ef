package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
)

// DayLayout is the calendar-day format used by the trends report.
const DayLayout = "2006-01-02"

// TrendPoint is the number of orders placed on one day.
type TrendPoint struct {
	Day    time.Time `json:"day" yaml:"day"`
	Orders int       `json:"orders" yaml:"orders"`
}

// Label returns the day as YYYY-MM-DD.
func (p TrendPoint) Label() string {
	return p.Day.Format(DayLayout)
}

// Trends parses daily counts into points sorted by day ascending. Rows for
// the same day are merged.
func Trends(rows []domain.DailyOrderCount) ([]TrendPoint, error) {
	byDay := make(map[time.Time]int, len(rows))
	for _, row := range rows {
		day, err := time.Parse(DayLayout, row.Day)
		if err != nil {
			return nil, fmt.Errorf("invalid order day %q: %w", row.Day, err)
		}
		byDay[day] += row.Orders
	}

	points := make([]TrendPoint, 0, len(byDay))
	for day, orders := range byDay {
		points = append(points, TrendPoint{Day: day, Orders: orders})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Day.Before(points[j].Day)
	})

	return points, nil
}

// TotalOrders sums the orders over all points.
func TotalOrders(points []TrendPoint) int {
	total := 0
	for _, p := range points {
		total += p.Orders
	}
	return total
}
