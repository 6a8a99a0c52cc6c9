// file: internals/features/school/analytics/service/analytics_service_test.go
package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestWindowMonth(t *testing.T) {
	start, end := Window(2024, 3)
	if !start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}

	// December rolls into the next year
	start, end = Window(2024, 12)
	if !end.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("december end = %v", end)
	}
	_ = start
}

func TestWindowWholeYear(t *testing.T) {
	start, end := Window(2024, 0)
	if !start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestWindowHalfOpen(t *testing.T) {
	start, end := Window(2024, 3)

	within := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
	if !(within.Equal(start) || within.After(start)) || !within.Before(end) {
		t.Error("last instant of the month fell outside the window")
	}
	boundary := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	if boundary.Before(end) {
		t.Error("first instant of the next month fell inside the window")
	}
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSummaryArithmetic(t *testing.T) {
	// A 50000 salary payout and a 12000 fee payment, both in March
	// 2024, plus one student who has not paid at all.
	payRows := []TeacherPayRow{
		{Salary: 50000, SalaryDate: date(2024, 3, 5)},
		{Salary: 45000, SalaryDate: date(2024, 4, 5)},
		{Salary: 40000, SalaryDate: nil},
	}
	feeRows := []StudentFeeRow{
		{FeesPaid: true, FeesPaidDate: date(2024, 3, 28), ClassFees: 12000, HasClass: true},
		{FeesPaid: true, FeesPaidDate: date(2024, 5, 2), ClassFees: 12000, HasClass: true},
		{FeesPaid: false, ClassFees: 12000, HasClass: true},
		{FeesPaid: false, HasClass: false},
	}

	start, end := Window(2024, 3)
	if got := SumExpenses(payRows, start, end); got != 50000 {
		t.Errorf("expenses = %d, want 50000", got)
	}
	if got := SumIncome(feeRows, start, end); got != 12000 {
		t.Errorf("income = %d, want 12000", got)
	}

	// Outstanding fees ignore the window entirely.
	if got := SumUnpaidFees(feeRows); got != 12000 {
		t.Errorf("unpaid fees = %d, want 12000", got)
	}
	yStart, yEnd := Window(2024, 0)
	if got := SumIncome(feeRows, yStart, yEnd); got != 24000 {
		t.Errorf("yearly income = %d, want 24000", got)
	}
	if got := SumUnpaidFees(feeRows); got != 12000 {
		t.Errorf("unpaid fees after widening the window = %d, want 12000", got)
	}
}

func TestBuildDashboardCards(t *testing.T) {
	cards := BuildDashboardCards(3, 5, 42)
	want := []DashboardCard{
		{Title: "Total Classes", Count: 3, Color: "bg-green-500"},
		{Title: "Total Teachers", Count: 5, Color: "bg-blue-500"},
		{Title: "Total Students", Count: 42, Color: "bg-yellow-500"},
	}
	if len(cards) != len(want) {
		t.Fatalf("cards = %v", cards)
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Errorf("card %d = %+v, want %+v", i, cards[i], want[i])
		}
	}
}

func TestEmptyIfNil(t *testing.T) {
	got, err := json.Marshal(fiber.Map{"years": emptyIfNil(nil)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != `{"years":[]}` {
		t.Errorf("empty result serialized as %s, want {\"years\":[]}", got)
	}

	if v := emptyIfNil([]int{2023, 2024}); len(v) != 2 || v[0] != 2023 {
		t.Errorf("non-nil input changed: %v", v)
	}
}

func TestSumIncomeSkipsStudentsWithoutClass(t *testing.T) {
	start, end := Window(2024, 0)
	rows := []StudentFeeRow{
		{FeesPaid: true, FeesPaidDate: date(2024, 6, 1), ClassFees: 0, HasClass: false},
	}
	if got := SumIncome(rows, start, end); got != 0 {
		t.Errorf("income = %d, want 0", got)
	}
}
