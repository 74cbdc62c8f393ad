// Package staff scores shift performance for the manager dashboard.
// Ratings are heuristic, per role, on a 1.0-5.0 scale.
package staff

import (
	"github.com/barkada-pos/api/internal/enum"
	"github.com/shopspring/decimal"
)

// Trend labels for a staff member's recent rating history.
const (
	TrendImproving = "IMPROVING"
	TrendDeclining = "DECLINING"
	TrendStable    = "STABLE"
)

// Metrics is one shift's raw numbers. Zero values mean "not tracked for
// this role" and leave the base rating untouched.
type Metrics struct {
	OrdersProcessed    int
	AverageServiceTime float64 // minutes
	TotalSales         decimal.Decimal
	TicketsScanned     int
	IncidentsLogged    int
	WastageReported    int
}

// Record is one scored shift.
type Record struct {
	StaffID string
	Role    string
	Metrics Metrics
	Rating  float64
}

// TeamSummary aggregates the latest record of each team member.
type TeamSummary struct {
	AverageRating float64
	TotalOrders   int
	TotalSales    decimal.Decimal
	TopPerformer  string // staff ID, empty when no records exist
}

// DailyRating scores one shift for the given role. Every role starts at
// a perfect 5.0 and gains or loses fractions per metric; the result is
// clamped to [1.0, 5.0]. Roles without shift metrics (owner, manager,
// developer) keep the base rating.
func DailyRating(role string, m Metrics) float64 {
	rating := 5.0

	switch role {
	case enum.RoleWaiter:
		if m.AverageServiceTime > 0 {
			if m.AverageServiceTime > 6 {
				rating -= 0.5
			}
			if m.AverageServiceTime > 8 {
				rating -= 0.5
			}
			if m.AverageServiceTime < 4 {
				rating += 0.2
			}
		}
		if m.OrdersProcessed > 0 {
			if m.OrdersProcessed > 25 {
				rating += 0.3
			}
			if m.OrdersProcessed < 10 {
				rating -= 0.3
			}
		}

	case enum.RoleBartender:
		if m.OrdersProcessed > 0 {
			if m.OrdersProcessed > 40 {
				rating += 0.3
			}
			if m.OrdersProcessed < 20 {
				rating -= 0.3
			}
		}
		if m.TotalSales.IsPositive() {
			if m.TotalSales.GreaterThan(decimal.NewFromInt(15000)) {
				rating += 0.2
			}
			if m.TotalSales.LessThan(decimal.NewFromInt(8000)) {
				rating -= 0.2
			}
		}

	case enum.RoleKitchen:
		if m.AverageServiceTime > 0 {
			if m.AverageServiceTime > 12 {
				rating -= 0.5
			}
			if m.AverageServiceTime > 15 {
				rating -= 0.5
			}
			if m.AverageServiceTime < 8 {
				rating += 0.2
			}
		}
		if m.OrdersProcessed > 0 {
			if m.OrdersProcessed > 30 {
				rating += 0.3
			}
			if m.OrdersProcessed < 15 {
				rating -= 0.3
			}
		}

	case enum.RoleSecurity:
		if m.TicketsScanned > 0 {
			if m.TicketsScanned > 50 {
				rating += 0.3
			}
			if m.TicketsScanned < 20 {
				rating -= 0.2
			}
		}
		if m.IncidentsLogged > 5 {
			rating -= 0.3
		}
	}

	return clamp(rating, 1.0, 5.0)
}

// Trend compares the average of the last three ratings against the three
// before them. Moves larger than 0.2 count as a trend; anything shorter
// than six records is stable by definition.
func Trend(history []Record) string {
	if len(history) < 6 {
		return TrendStable
	}

	recent := average(history[len(history)-3:])
	previous := average(history[len(history)-6 : len(history)-3])

	switch diff := recent - previous; {
	case diff > 0.2:
		return TrendImproving
	case diff < -0.2:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// Suggestions returns coaching notes derived from the latest record.
func Suggestions(history []Record) []string {
	if len(history) == 0 {
		return nil
	}
	latest := history[len(history)-1]
	m := latest.Metrics

	var out []string
	switch latest.Role {
	case enum.RoleWaiter:
		if m.AverageServiceTime > 6 {
			out = append(out, "Consider reviewing order flow to reduce service time")
		}
		if m.OrdersProcessed > 0 && m.OrdersProcessed < 15 {
			out = append(out, "Focus on increasing order volume during peak hours")
		}
	case enum.RoleBartender:
		if m.OrdersProcessed > 0 && m.OrdersProcessed < 25 {
			out = append(out, "Work on improving order processing speed")
		}
		if m.TotalSales.IsPositive() && m.TotalSales.LessThan(decimal.NewFromInt(10000)) {
			out = append(out, "Consider upselling techniques to increase sales")
		}
	case enum.RoleKitchen:
		if m.AverageServiceTime > 10 {
			out = append(out, "Review kitchen workflow to reduce preparation time")
		}
		if m.WastageReported > 3 {
			out = append(out, "Focus on reducing food waste and improving portion control")
		}
	case enum.RoleSecurity:
		if m.TicketsScanned > 0 && m.TicketsScanned < 30 {
			out = append(out, "Increase vigilance in checking customer tickets")
		}
		if m.IncidentsLogged > 3 {
			out = append(out, "Review incident prevention strategies")
		}
	}
	return out
}

// TeamPerformance rolls up each member's latest record into a summary.
// records maps staff ID to that member's history, oldest first.
func TeamPerformance(records map[string][]Record) TeamSummary {
	sum := TeamSummary{TotalSales: decimal.Zero}

	var ratingTotal float64
	var counted int
	bestRating := -1.0

	for staffID, history := range records {
		if len(history) == 0 {
			continue
		}
		latest := history[len(history)-1]

		ratingTotal += latest.Rating
		counted++
		sum.TotalOrders += latest.Metrics.OrdersProcessed
		sum.TotalSales = sum.TotalSales.Add(latest.Metrics.TotalSales)

		// Ties resolve to the lexically smaller ID to keep output stable.
		if latest.Rating > bestRating ||
			(latest.Rating == bestRating && staffID < sum.TopPerformer) {
			bestRating = latest.Rating
			sum.TopPerformer = staffID
		}
	}

	if counted > 0 {
		sum.AverageRating = ratingTotal / float64(counted)
	}
	return sum
}

func average(records []Record) float64 {
	var total float64
	for _, r := range records {
		total += r.Rating
	}
	return total / float64(len(records))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
