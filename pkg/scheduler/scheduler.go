package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/arnavshah/care-scheduler-go/pkg/models"
)

// Scheduler assigns caregivers to the AM/PM shifts of a month.
//
// It never mutates the caller's caregiver records: the roster is cloned at
// construction and every BuildMonth starts from the captured baseline hours,
// so repeated builds are idempotent instead of double-counting.
type Scheduler struct {
	roster   []*models.Caregiver
	baseline []float64
	gaps     []models.CoverageGap
}

// New creates a scheduler over a clone of the given roster. Roster order is
// preserved because it breaks ties between caregivers with equal hours.
func New(roster []*models.Caregiver) *Scheduler {
	s := &Scheduler{
		roster:   make([]*models.Caregiver, len(roster)),
		baseline: make([]float64, len(roster)),
	}
	for i, c := range roster {
		s.roster[i] = c.Clone()
		s.baseline[i] = c.Hours
	}
	return s
}

// ValidateMonth checks the month/year bounds shared by every build.
func ValidateMonth(month, year int) error {
	if month < 1 || month > 12 {
		return &models.ValidationError{Field: "month", Reason: fmt.Sprintf("%d out of range [1,12]", month)}
	}
	if year < 2000 {
		return &models.ValidationError{Field: "year", Reason: fmt.Sprintf("%d before 2000", year)}
	}
	return nil
}

// DaysIn returns the number of real calendar days in (month, year).
func DaysIn(month, year int) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateString formats a calendar day as the ISO date used as schedule key.
func DateString(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// BuildMonth produces a complete schedule for (month, year): every real day,
// AM before PM. For each shift the pick is the lowest-hours caregiver among
// those marked preferred, falling back to the lowest-hours caregiver among
// all who are not unavailable; ties go to the earlier roster entry. Each
// assignment adds models.ShiftHours to the pick's running total.
func (s *Scheduler) BuildMonth(month, year int) (*models.MonthSchedule, error) {
	if err := ValidateMonth(month, year); err != nil {
		return nil, err
	}

	// Start every build from the baseline captured at construction.
	for i, c := range s.roster {
		c.Hours = s.baseline[i]
	}
	s.gaps = nil

	sched := &models.MonthSchedule{
		Month: month,
		Year:  year,
		Days:  make(map[string]models.DayAssignment, DaysIn(month, year)),
	}

	for day := 1; day <= DaysIn(month, year); day++ {
		date := DateString(year, month, day)
		var assigned models.DayAssignment
		for _, shift := range models.ShiftOrder {
			cell := s.assign(date, shift)
			if shift == models.ShiftAM {
				assigned.AM = cell
			} else {
				assigned.PM = cell
			}
		}
		sched.Days[date] = assigned
	}

	return sched, nil
}

// assign fills one (date, shift) cell and updates the pick's hours.
func (s *Scheduler) assign(date string, shift models.Shift) models.ShiftAssignment {
	var best *models.Caregiver
	bestPreferred := false
	unavailableCount := 0

	for _, c := range s.roster {
		status := c.AvailabilityFor(date, shift)
		if status == models.Unavailable {
			unavailableCount++
			continue
		}
		preferred := status == models.Preferred

		switch {
		case best == nil:
		case preferred && !bestPreferred:
			// A preferred caregiver outranks a merely available one.
		case preferred == bestPreferred && c.Hours < best.Hours:
		default:
			continue
		}
		best = c
		bestPreferred = preferred
	}

	if best == nil {
		reasons := []string{"no caregivers on roster"}
		if len(s.roster) > 0 {
			reasons = []string{fmt.Sprintf("%d caregivers marked unavailable", unavailableCount)}
		}
		s.gaps = append(s.gaps, models.CoverageGap{Date: date, Shift: shift, Reasons: reasons})
		return models.ShiftAssignment{Caregiver: models.NoCoverage}
	}

	best.Hours += models.ShiftHours
	return models.ShiftAssignment{CaregiverID: best.ID, Caregiver: best.Name}
}

// Roster returns the scheduler's cloned caregivers with the hour totals of
// the most recent build. Callers fold these back into their own records.
func (s *Scheduler) Roster() []*models.Caregiver {
	return s.roster
}

// Gaps returns the coverage gaps recorded by the most recent build.
func (s *Scheduler) Gaps() []models.CoverageGap {
	return s.gaps
}

// FairnessScore returns a percentage (0-100) representing how evenly hours
// are distributed across the roster. 100% is perfectly fair (stddev = 0).
func (s *Scheduler) FairnessScore() float64 {
	if len(s.roster) == 0 {
		return 100.0
	}

	var sum float64
	for _, c := range s.roster {
		sum += c.Hours
	}
	if sum == 0 {
		return 100.0
	}

	mean := sum / float64(len(s.roster))
	var varianceSum float64
	for _, c := range s.roster {
		diff := c.Hours - mean
		varianceSum += diff * diff
	}
	stdDev := math.Sqrt(varianceSum / float64(len(s.roster)))

	score := (1.0 - (stdDev / mean)) * 100.0
	if score < 0 {
		return 0.0
	}
	return score
}
