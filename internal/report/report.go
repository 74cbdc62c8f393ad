// Package report rolls submitted tickets into sales summaries for the
// manager dashboard.
package report

import (
	"errors"
	"sort"
	"time"

	"github.com/barkada-pos/api/internal/queue"
	"github.com/shopspring/decimal"
)

var ErrUnknownPeriod = errors.New("unknown report period")

// Reporting periods, matching the dashboard tabs.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// topItemLimit caps the best-sellers list.
const topItemLimit = 5

// ItemSales aggregates one menu item's sold quantity and revenue across
// the reporting window.
type ItemSales struct {
	MenuItemID string
	Name       string
	Quantity   int32
	Revenue    decimal.Decimal
}

// Summary is the sales rollup for one period window.
type Summary struct {
	Period       string
	From         time.Time
	To           time.Time
	OrderCount   int
	TotalSales   decimal.Decimal
	AverageOrder decimal.Decimal
	TopItems     []ItemSales
}

// Window returns the half-open [from, to) interval the period covers,
// anchored on now: daily is the current day, weekly the last seven days,
// monthly and yearly the calendar month and year to date.
func Window(period string, now time.Time) (time.Time, time.Time, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := midnight.AddDate(0, 0, 1)

	switch period {
	case PeriodDaily:
		return midnight, end, nil
	case PeriodWeekly:
		return end.AddDate(0, 0, -7), end, nil
	case PeriodMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), end, nil
	case PeriodYearly:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), end, nil
	default:
		return time.Time{}, time.Time{}, ErrUnknownPeriod
	}
}

// Build rolls the tickets created within [from, to) into a Summary.
// Every submitted ticket counts as a sale; ticket status only tracks
// prep progress and never excludes a sale from the report.
func Build(period string, tickets []queue.Ticket, from, to time.Time) Summary {
	s := Summary{
		Period:       period,
		From:         from,
		To:           to,
		TotalSales:   decimal.Zero,
		AverageOrder: decimal.Zero,
	}

	byItem := make(map[string]*ItemSales)
	for _, t := range tickets {
		if t.CreatedAt.Before(from) || !t.CreatedAt.Before(to) {
			continue
		}
		s.OrderCount++
		s.TotalSales = s.TotalSales.Add(t.Pricing.GrandTotal)

		for _, l := range t.Lines {
			agg, ok := byItem[l.MenuItemID]
			if !ok {
				agg = &ItemSales{MenuItemID: l.MenuItemID, Name: l.Name, Revenue: decimal.Zero}
				byItem[l.MenuItemID] = agg
			}
			agg.Quantity += l.Quantity
			agg.Revenue = agg.Revenue.Add(l.LineTotal())
		}
	}

	if s.OrderCount > 0 {
		s.AverageOrder = s.TotalSales.Div(decimal.NewFromInt(int64(s.OrderCount)))
	}

	items := make([]ItemSales, 0, len(byItem))
	for _, agg := range byItem {
		items = append(items, *agg)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		if !items[i].Revenue.Equal(items[j].Revenue) {
			return items[i].Revenue.GreaterThan(items[j].Revenue)
		}
		return items[i].Name < items[j].Name
	})
	if len(items) > topItemLimit {
		items = items[:topItemLimit]
	}
	s.TopItems = items
	return s
}
