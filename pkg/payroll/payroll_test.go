package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/care-scheduler-go/pkg/models"
	"github.com/arnavshah/care-scheduler-go/pkg/payroll"
)

func TestCalculate_WeeklyAndMonthlyGross(t *testing.T) {
	cg, err := models.NewCaregiver("Alice Johnson", "545-1234", "alice@example.com", decimal.NewFromFloat(25.0))
	require.NoError(t, err)
	require.NoError(t, cg.AddHours(40))

	records := payroll.Calculate([]*models.Caregiver{cg})
	require.Len(t, records, 1)

	rec := records[cg.ID]
	assert.Equal(t, cg.ID, rec.CaregiverID)
	assert.Equal(t, "Alice Johnson", rec.Name)
	assert.Equal(t, 40.0, rec.Hours)
	assert.Equal(t, "1000.00", rec.WeeklyGross.StringFixed(2))
	assert.Equal(t, "4000.00", rec.MonthlyGross.StringFixed(2))
}

func TestCalculate_ZeroHours(t *testing.T) {
	cg, err := models.NewCaregiver("Bob Smith", "125-5678", "bob@example.com", models.DefaultPayRate)
	require.NoError(t, err)

	records := payroll.Calculate([]*models.Caregiver{cg})
	rec := records[cg.ID]
	assert.True(t, rec.WeeklyGross.IsZero())
	assert.True(t, rec.MonthlyGross.IsZero())
}

func TestCalculate_SameNameDoesNotCollide(t *testing.T) {
	a, err := models.NewCaregiver("Alex Kim", "555-0001", "alex1@example.com", decimal.NewFromInt(20))
	require.NoError(t, err)
	b, err := models.NewCaregiver("Alex Kim", "555-0002", "alex2@example.com", decimal.NewFromInt(30))
	require.NoError(t, err)
	require.NoError(t, a.AddHours(6))
	require.NoError(t, b.AddHours(12))

	records := payroll.Calculate([]*models.Caregiver{a, b})
	require.Len(t, records, 2, "ID-keyed records must not overwrite on name collision")

	assert.Equal(t, "120.00", records[a.ID].WeeklyGross.StringFixed(2))
	assert.Equal(t, "360.00", records[b.ID].WeeklyGross.StringFixed(2))
}

func TestTotals(t *testing.T) {
	a, err := models.NewCaregiver("Alice", "555-0001", "alice@example.com", decimal.NewFromInt(25))
	require.NoError(t, err)
	b, err := models.NewCaregiver("Bob", "555-0002", "bob@example.com", decimal.NewFromInt(20))
	require.NoError(t, err)
	require.NoError(t, a.AddHours(40))
	require.NoError(t, b.AddHours(10))

	records := payroll.Calculate([]*models.Caregiver{a, b})
	weekly, monthly := payroll.Totals(records)

	assert.Equal(t, "1200.00", weekly.StringFixed(2))
	assert.Equal(t, "4800.00", monthly.StringFixed(2))
}

func TestCalculate_EmptyRoster(t *testing.T) {
	records := payroll.Calculate(nil)
	assert.Empty(t, records)

	weekly, monthly := payroll.Totals(records)
	assert.True(t, weekly.IsZero())
	assert.True(t, monthly.IsZero())
}
