package parser

import (
	"testing"
	"time"

	"github.com/sahanav/askledger/internal/model"
)

func TestPlan_PriorityRules(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		parsed model.ParsedQuery
		want   model.QueryShape
	}{
		{
			name:   "category and month",
			parsed: model.ParsedQuery{Category: model.CategoryHouseExpense, Month: "02"},
			want: model.QueryShape{
				Kind:     model.ShapeCategoryAndMonth,
				Category: model.CategoryHouseExpense,
				Month:    "02",
				Year:     "2024",
			},
		},
		{
			name:   "category and month with explicit year",
			parsed: model.ParsedQuery{Category: model.CategoryFood, Month: "12", Year: "2023"},
			want: model.QueryShape{
				Kind:     model.ShapeCategoryAndMonth,
				Category: model.CategoryFood,
				Month:    "12",
				Year:     "2023",
			},
		},
		{
			name:   "month only",
			parsed: model.ParsedQuery{Month: "03"},
			want:   model.QueryShape{Kind: model.ShapeMonthOnly, Month: "03", Year: "2024"},
		},
		{
			name:   "category only defaults to current month",
			parsed: model.ParsedQuery{Category: model.CategoryTransport},
			want: model.QueryShape{
				Kind:     model.ShapeCategoryOnly,
				Category: model.CategoryTransport,
				Month:    "06",
				Year:     "2024",
			},
		},
		{
			name:   "category with explicit year spans the whole year",
			parsed: model.ParsedQuery{Category: model.CategoryTransport, Year: "2024"},
			want: model.QueryShape{
				Kind:     model.ShapeCategoryOnly,
				Category: model.CategoryTransport,
				Month:    "",
				Year:     "2024",
			},
		},
		{
			name:   "neither category nor month",
			parsed: model.ParsedQuery{},
			want:   model.QueryShape{Kind: model.ShapeFallback},
		},
		{
			// A bare year with nothing else still yields the general
			// summary, not a yearly breakdown.
			name:   "bare year still falls back",
			parsed: model.ParsedQuery{Year: "2024"},
			want:   model.QueryShape{Kind: model.ShapeFallback},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Plan(tt.parsed, now)
			if got != tt.want {
				t.Errorf("Plan(%+v) = %+v, want %+v", tt.parsed, got, tt.want)
			}
		})
	}
}

func TestPlan_WholeYearScenario(t *testing.T) {
	// "transport expenses this year" extracts the category and the year
	// timeframe; the planner must leave the month empty so the adapter
	// queries the whole-year range.
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	parsed := Extract("transport expenses this year", now)
	if parsed.Category != model.CategoryTransport {
		t.Fatalf("Category = %q, want %q", parsed.Category, model.CategoryTransport)
	}
	if parsed.Month != "" {
		t.Fatalf("Month = %q, want unset", parsed.Month)
	}

	shape := Plan(parsed, now)
	want := model.QueryShape{
		Kind:     model.ShapeCategoryOnly,
		Category: model.CategoryTransport,
		Month:    "",
		Year:     "2024",
	}
	if shape != want {
		t.Errorf("Plan() = %+v, want %+v", shape, want)
	}
}
