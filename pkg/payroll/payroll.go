// Package payroll derives gross pay from accumulated caregiver hours.
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/arnavshah/care-scheduler-go/pkg/models"
)

// weeksPerMonth extrapolates the accumulated total to a monthly figure.
var weeksPerMonth = decimal.NewFromInt(4)

// Calculate is a pure function over the roster: caregiver ID -> pay record.
// Keying by ID keeps caregivers who share a display name from overwriting
// each other. weekly_gross = hours x rate, monthly_gross = weekly x 4.
func Calculate(roster []*models.Caregiver) map[string]models.PayRecord {
	records := make(map[string]models.PayRecord, len(roster))
	for _, c := range roster {
		weekly := decimal.NewFromFloat(c.Hours).Mul(c.PayRate)
		records[c.ID] = models.PayRecord{
			CaregiverID:  c.ID,
			Name:         c.Name,
			Hours:        c.Hours,
			PayRate:      c.PayRate,
			WeeklyGross:  weekly,
			MonthlyGross: weekly.Mul(weeksPerMonth),
		}
	}
	return records
}

// Totals sums the weekly and monthly gross across all records.
func Totals(records map[string]models.PayRecord) (weekly, monthly decimal.Decimal) {
	for _, r := range records {
		weekly = weekly.Add(r.WeeklyGross)
		monthly = monthly.Add(r.MonthlyGross)
	}
	return weekly, monthly
}
