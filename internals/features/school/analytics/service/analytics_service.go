// file: internals/features/school/analytics/service/analytics_service.go
package service

import (
	"time"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

// Window returns the half-open [start, end) reporting window for a
// year, or for one month of it when month is 1..12.
func Window(year int, month int) (time.Time, time.Time) {
	if month >= 1 && month <= 12 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

type FinancialSummary struct {
	Income     int64 `json:"income"`
	Expenses   int64 `json:"expenses"`
	UnpaidFees int64 `json:"unpaidFees"`
}

// TeacherPayRow is one teacher's payout record.
type TeacherPayRow struct {
	Salary     int64
	SalaryDate *time.Time
}

// StudentFeeRow joins a student's payment state with their class fees.
// ClassFees is zero when the student has no class.
type StudentFeeRow struct {
	FeesPaid     bool
	FeesPaidDate *time.Time
	ClassFees    int64
	HasClass     bool
}

// SumExpenses totals salaries paid out inside the window.
func SumExpenses(rows []TeacherPayRow, start, end time.Time) int64 {
	var total int64
	for _, r := range rows {
		if r.SalaryDate == nil {
			continue
		}
		if !r.SalaryDate.Before(start) && r.SalaryDate.Before(end) {
			total += r.Salary
		}
	}
	return total
}

// SumIncome totals class fees of students who paid inside the window.
// Students without a class contribute nothing.
func SumIncome(rows []StudentFeeRow, start, end time.Time) int64 {
	var total int64
	for _, r := range rows {
		if !r.FeesPaid || r.FeesPaidDate == nil || !r.HasClass {
			continue
		}
		if !r.FeesPaidDate.Before(start) && r.FeesPaidDate.Before(end) {
			total += r.ClassFees
		}
	}
	return total
}

// SumUnpaidFees totals the fees still owed by enrolled students. This
// is a snapshot of the present, never bounded by a window.
func SumUnpaidFees(rows []StudentFeeRow) int64 {
	var total int64
	for _, r := range rows {
		if !r.FeesPaid && r.HasClass {
			total += r.ClassFees
		}
	}
	return total
}

// emptyIfNil keeps empty results serializing as [] rather than null.
func emptyIfNil(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

// AvailableYears lists every year that has at least one salary payout
// or one fee payment recorded.
func (s *AnalyticsService) AvailableYears() ([]int, error) {
	var years []int
	err := s.DB.Raw(`
		SELECT DISTINCT year FROM (
			SELECT EXTRACT(YEAR FROM teacher_salary_date)::int AS year
			FROM teachers WHERE teacher_salary_date IS NOT NULL
			UNION
			SELECT EXTRACT(YEAR FROM student_fees_paid_date)::int AS year
			FROM students WHERE student_fees_paid_date IS NOT NULL
		) y ORDER BY year
	`).Scan(&years).Error
	return emptyIfNil(years), err
}

// AvailableMonths lists the months of the given year that have any
// financial activity.
func (s *AnalyticsService) AvailableMonths(year int) ([]int, error) {
	var months []int
	err := s.DB.Raw(`
		SELECT DISTINCT month FROM (
			SELECT EXTRACT(MONTH FROM teacher_salary_date)::int AS month
			FROM teachers
			WHERE teacher_salary_date IS NOT NULL
			  AND EXTRACT(YEAR FROM teacher_salary_date)::int = ?
			UNION
			SELECT EXTRACT(MONTH FROM student_fees_paid_date)::int AS month
			FROM students
			WHERE student_fees_paid_date IS NOT NULL
			  AND EXTRACT(YEAR FROM student_fees_paid_date)::int = ?
		) m ORDER BY month
	`, year, year).Scan(&months).Error
	return emptyIfNil(months), err
}

// Summary computes the financial picture for the window. Income and
// expenses are bounded by the window; unpaid fees are the outstanding
// total as of now, regardless of window.
func (s *AnalyticsService) Summary(year int, month int) (FinancialSummary, error) {
	start, end := Window(year, month)
	var out FinancialSummary

	var payRows []TeacherPayRow
	if err := s.DB.Raw(`
		SELECT teacher_salary AS salary, teacher_salary_date AS salary_date
		FROM teachers
	`).Scan(&payRows).Error; err != nil {
		return out, err
	}

	var feeRows []StudentFeeRow
	if err := s.DB.Raw(`
		SELECT s.student_fees_paid           AS fees_paid,
		       s.student_fees_paid_date      AS fees_paid_date,
		       COALESCE(c.class_fees, 0)     AS class_fees,
		       s.student_class_id IS NOT NULL AS has_class
		FROM students s
		LEFT JOIN classes c ON c.class_id = s.student_class_id
	`).Scan(&feeRows).Error; err != nil {
		return out, err
	}

	out.Expenses = SumExpenses(payRows, start, end)
	out.Income = SumIncome(feeRows, start, end)
	out.UnpaidFees = SumUnpaidFees(feeRows)
	return out, nil
}

type DashboardCard struct {
	Title string `json:"title"`
	Count int64  `json:"count"`
	Color string `json:"color"`
}

// BuildDashboardCards pairs the entity counts with their fixed card
// titles and colors.
func BuildDashboardCards(classes, teachers, students int64) []DashboardCard {
	return []DashboardCard{
		{Title: "Total Classes", Count: classes, Color: "bg-green-500"},
		{Title: "Total Teachers", Count: teachers, Color: "bg-blue-500"},
		{Title: "Total Students", Count: students, Color: "bg-yellow-500"},
	}
}

// DashboardCards returns the entity counts shown on the landing page.
func (s *AnalyticsService) DashboardCards() ([]DashboardCard, error) {
	var classes, teachers, students int64
	if err := s.DB.Raw(`SELECT COUNT(*) FROM classes`).Scan(&classes).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Raw(`SELECT COUNT(*) FROM teachers`).Scan(&teachers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Raw(`SELECT COUNT(*) FROM students`).Scan(&students).Error; err != nil {
		return nil, err
	}
	return BuildDashboardCards(classes, teachers, students), nil
}
