package report_test

import (
	"errors"
	"testing"
	"time"

	"github.com/barkada-pos/api/internal/order"
	"github.com/barkada-pos/api/internal/queue"
	"github.com/barkada-pos/api/internal/report"
	"github.com/shopspring/decimal"
)

func ticketAt(created time.Time, lines []order.Line) queue.Ticket {
	o := &order.Order{Lines: lines}
	return queue.Ticket{
		Lines:     lines,
		Pricing:   o.Price(),
		CreatedAt: created,
	}
}

func TestWindow(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 6, 14, 15, 30, 0, 0, loc)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, loc)

	tests := []struct {
		period string
		from   time.Time
	}{
		{report.PeriodDaily, time.Date(2025, 6, 14, 0, 0, 0, 0, loc)},
		{report.PeriodWeekly, time.Date(2025, 6, 8, 0, 0, 0, 0, loc)},
		{report.PeriodMonthly, time.Date(2025, 6, 1, 0, 0, 0, 0, loc)},
		{report.PeriodYearly, time.Date(2025, 1, 1, 0, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		from, to, err := report.Window(tt.period, now)
		if err != nil {
			t.Fatalf("%s: %v", tt.period, err)
		}
		if !from.Equal(tt.from) || !to.Equal(end) {
			t.Errorf("%s: got [%v, %v), want [%v, %v)", tt.period, from, to, tt.from, end)
		}
	}

	if _, _, err := report.Window("hourly", now); !errors.Is(err, report.ErrUnknownPeriod) {
		t.Errorf("got %v, want ErrUnknownPeriod", err)
	}
}

func TestBuild(t *testing.T) {
	loc := time.UTC
	from := time.Date(2025, 6, 14, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 1)

	beer := order.Line{MenuItemID: "al-b-1", Name: "San Miguel Beer", UnitPrice: decimal.NewFromInt(65), Quantity: 1}
	burger := order.Line{MenuItemID: "f-4", Name: "Grilled Burger", UnitPrice: decimal.NewFromInt(320), Quantity: 2}

	tickets := []queue.Ticket{
		ticketAt(from.Add(12*time.Hour), []order.Line{beer, burger}),
		ticketAt(from.Add(20*time.Hour), []order.Line{beer}),
		// The day before; must not count.
		ticketAt(from.Add(-2*time.Hour), []order.Line{burger}),
	}

	s := report.Build(report.PeriodDaily, tickets, from, to)

	if s.OrderCount != 2 {
		t.Fatalf("order count: got %d, want 2", s.OrderCount)
	}
	// 860.10 + 79.30
	if s.TotalSales.StringFixed(2) != "939.40" {
		t.Errorf("total sales: got %s, want 939.40", s.TotalSales.StringFixed(2))
	}
	if s.AverageOrder.StringFixed(2) != "469.70" {
		t.Errorf("average order: got %s, want 469.70", s.AverageOrder.StringFixed(2))
	}

	if len(s.TopItems) != 2 {
		t.Fatalf("top items: got %d, want 2", len(s.TopItems))
	}
	top := s.TopItems[0]
	if top.MenuItemID != "al-b-1" || top.Quantity != 2 || top.Revenue.StringFixed(2) != "130.00" {
		t.Errorf("top item: %+v", top)
	}
	if s.TopItems[1].MenuItemID != "f-4" || s.TopItems[1].Revenue.StringFixed(2) != "640.00" {
		t.Errorf("second item: %+v", s.TopItems[1])
	}
}

func TestBuildEmptyWindow(t *testing.T) {
	from := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	s := report.Build(report.PeriodDaily, nil, from, from.AddDate(0, 0, 1))
	if s.OrderCount != 0 || !s.TotalSales.IsZero() || !s.AverageOrder.IsZero() {
		t.Errorf("empty summary: %+v", s)
	}
	if len(s.TopItems) != 0 {
		t.Errorf("top items: got %d, want 0", len(s.TopItems))
	}
}

func TestBuildTopItemLimit(t *testing.T) {
	from := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	var lines []order.Line
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		lines = append(lines, order.Line{MenuItemID: id, Name: id, UnitPrice: decimal.NewFromInt(100), Quantity: 1})
	}
	s := report.Build(report.PeriodDaily, []queue.Ticket{ticketAt(from.Add(time.Hour), lines)}, from, to)

	if len(s.TopItems) != 5 {
		t.Errorf("top items: got %d, want 5", len(s.TopItems))
	}
}
