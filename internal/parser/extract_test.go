package parser

import (
	"fmt"
	"testing"
	"time"

	"github.com/sahanav/askledger/internal/model"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestExtract_MonthVariants(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "full name", query: "expenses in january", want: "01"},
		{name: "abbreviation", query: "feb expenses", want: "02"},
		{name: "bare number", query: "expenses for 2", want: "02"},
		{name: "zero padded number", query: "expenses for 02", want: "02"},
		{name: "two digit number", query: "expenses for 12", want: "12"},
		{name: "full december", query: "show spending in december", want: "12"},
		{name: "mixed case", query: "Costs In MARCH", want: "03"},
		{name: "no month", query: "show my spending", want: ""},
		{name: "bare year is not a month", query: "2024", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.query, testNow)
			if got.Month != tt.want {
				t.Errorf("Extract(%q).Month = %q, want %q", tt.query, got.Month, tt.want)
			}
		})
	}
}

func TestExtract_AllMonthSpellingsAgree(t *testing.T) {
	variants := map[string][]string{
		"01": {"january", "jan", "1"},
		"04": {"april", "apr", "4"},
		"09": {"september", "sep", "9"},
		"11": {"november", "nov", "11"},
	}

	for want, tokens := range variants {
		for _, token := range tokens {
			query := fmt.Sprintf("expenses for %s", token)
			got := Extract(query, testNow)
			if got.Month != want {
				t.Errorf("Extract(%q).Month = %q, want %q", query, got.Month, want)
			}
		}
	}
}

func TestExtract_CategoryKeywords(t *testing.T) {
	// Every keyword, embedded in a carrier sentence, must yield exactly
	// its own category.
	for _, info := range model.Categories() {
		for _, keyword := range info.Keywords {
			query := fmt.Sprintf("show me my %s expenses", keyword)
			got := Extract(query, testNow)
			if got.Category != info.Code {
				t.Errorf("Extract(%q).Category = %q, want %q", query, got.Category, info.Code)
			}
		}
	}
}

func TestExtract_NoCategoryLeftUnset(t *testing.T) {
	got := Extract("what did I spend in june", testNow)
	if got.Category != "" {
		t.Errorf("Category = %q, want unset", got.Category)
	}
	if got.Month != "06" {
		t.Errorf("Month = %q, want %q", got.Month, "06")
	}
}

func TestExtract_YearDetection(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "explicit year", query: "food expenses 2023", want: "2023"},
		{name: "last year", query: "transport expenses last year", want: "2023"},
		{name: "previous year", query: "spending previous year", want: "2023"},
		{name: "this year", query: "transport expenses this year", want: "2024"},
		{name: "current year", query: "spending current year", want: "2024"},
		{name: "no year", query: "food expenses", want: ""},
		{name: "three digit number ignored", query: "spent 200", want: ""},
		{name: "19xx ignored", query: "expenses 1999", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.query, testNow)
			if got.Year != tt.want {
				t.Errorf("Extract(%q).Year = %q, want %q", tt.query, got.Year, tt.want)
			}
		})
	}
}

func TestExtract_RelativePeriodOverridesAbsolute(t *testing.T) {
	// now = 2024-01-15, so "last month" resolves across the year
	// boundary to December 2023.
	now := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		query     string
		wantMonth string
		wantYear  string
	}{
		{name: "last month beats month name", query: "food costs in january last month", wantMonth: "12", wantYear: "2023"},
		{name: "last month alone", query: "show food costs last month", wantMonth: "12", wantYear: "2023"},
		{name: "previous month", query: "spending previous month", wantMonth: "12", wantYear: "2023"},
		{name: "this month", query: "spending this month", wantMonth: "01", wantYear: "2024"},
		{name: "current month", query: "spending current month", wantMonth: "01", wantYear: "2024"},
		{name: "next month", query: "spending next month", wantMonth: "02", wantYear: "2024"},
		{name: "relative beats explicit year", query: "expenses 2022 last month", wantMonth: "12", wantYear: "2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.query, now)
			if got.Month != tt.wantMonth || got.Year != tt.wantYear {
				t.Errorf("Extract(%q) = month %q year %q, want month %q year %q",
					tt.query, got.Month, got.Year, tt.wantMonth, tt.wantYear)
			}
		})
	}
}

func TestExtract_EmptyAndWhitespaceQueries(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		got := Extract(query, testNow)
		if got.Category != "" || got.Month != "" || got.Year != "" {
			t.Errorf("Extract(%q) = %+v, want all fields unset", query, got)
		}
	}
}

func TestExtract_HouseExpenseScenario(t *testing.T) {
	got := Extract("get me house expenses for february", testNow)

	want := model.ParsedQuery{
		OriginalQuery: "get me house expenses for february",
		Category:      model.CategoryHouseExpense,
		Month:         "02",
	}
	if got != want {
		t.Errorf("Extract() = %+v, want %+v", got, want)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	query := "show food costs last month"
	now := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)

	first := Extract(query, now)
	second := Extract(query, now)
	if first != second {
		t.Errorf("Extract is not deterministic: %+v vs %+v", first, second)
	}
}
