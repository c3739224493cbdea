package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// NoCoverage is the display value for a shift no caregiver could fill.
// A coverage gap is a normal scheduling outcome, not an error.
const NoCoverage = "No coverage"

// ShiftAssignment is one cell of the schedule. Caregiver holds the display
// name, or NoCoverage when the shift went unfilled.
type ShiftAssignment struct {
	CaregiverID string `json:"caregiver_id,omitempty"`
	Caregiver   string `json:"caregiver"`
}

// Filled reports whether a caregiver was assigned to the cell.
func (a ShiftAssignment) Filled() bool { return a.CaregiverID != "" }

// DayAssignment holds both shifts of a single date.
type DayAssignment struct {
	AM ShiftAssignment `json:"AM"`
	PM ShiftAssignment `json:"PM"`
}

// MonthSchedule is one complete build: every real day of (Month, Year)
// mapped to its AM/PM assignments.
type MonthSchedule struct {
	Month int                      `json:"month"`
	Year  int                      `json:"year"`
	Days  map[string]DayAssignment `json:"days"`
}

// Dates returns the schedule's dates in calendar order.
func (s *MonthSchedule) Dates() []string {
	dates := make([]string, 0, len(s.Days))
	for d := range s.Days {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// CoverageGap explains why a (date, shift) could not be filled.
type CoverageGap struct {
	Date    string   `json:"date"`
	Shift   Shift    `json:"shift"`
	Reasons []string `json:"reasons"`
}

// PayRecord is the derived pay line for one caregiver. WeeklyGross treats
// the full accumulated hour total as one week's work and MonthlyGross is
// four such weeks; both are deliberate simplifications carried over from
// the paper process this system replaced.
type PayRecord struct {
	CaregiverID  string          `json:"caregiver_id"`
	Name         string          `json:"name"`
	Hours        float64         `json:"hours"`
	PayRate      decimal.Decimal `json:"pay_rate"`
	WeeklyGross  decimal.Decimal `json:"weekly_gross"`
	MonthlyGross decimal.Decimal `json:"monthly_gross"`
}

// AvailabilityInput is one availability entry in an API payload.
type AvailabilityInput struct {
	Date   string             `json:"date"`
	Shift  Shift              `json:"shift"`
	Status AvailabilityStatus `json:"status"`
}

// CaregiverInput is a caregiver as submitted to the scheduling endpoints.
type CaregiverInput struct {
	ID           string              `json:"id,omitempty"`
	Name         string              `json:"name"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	PayRate      *decimal.Decimal    `json:"pay_rate,omitempty"`
	Hours        float64             `json:"hours,omitempty"`
	Availability []AvailabilityInput `json:"availability,omitempty"`
}

// ScheduleInput is the payload for a stateless schedule build.
type ScheduleInput struct {
	Month      int              `json:"month"`
	Year       int              `json:"year"`
	Caregivers []CaregiverInput `json:"caregivers"`
}

// RosterStats summarizes one caregiver's totals after a build.
type RosterStats struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// ScheduleResponse is the result of a schedule build.
type ScheduleResponse struct {
	Schedule      *MonthSchedule         `json:"schedule"`
	Gaps          []CoverageGap          `json:"gaps,omitempty"`
	FairnessScore float64                `json:"fairness_score"`
	Caregivers    map[string]RosterStats `json:"caregivers"`
	Payroll       map[string]PayRecord   `json:"payroll"`
}
