package models_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/care-scheduler-go/pkg/models"
)

func newCaregiver(t *testing.T) *models.Caregiver {
	t.Helper()
	cg, err := models.NewCaregiver("Alice Johnson", "545-1234", "alice@example.com", models.DefaultPayRate)
	require.NoError(t, err)
	return cg
}

func TestNewCaregiver_Valid(t *testing.T) {
	cg := newCaregiver(t)

	assert.NotEmpty(t, cg.ID)
	assert.Equal(t, "Alice Johnson", cg.Name)
	assert.True(t, cg.PayRate.Equal(decimal.NewFromInt(20)))
	assert.Zero(t, cg.Hours)
}

func TestNewCaregiver_Validation(t *testing.T) {
	rate := models.DefaultPayRate
	cases := []struct {
		name                 string
		cgName, phone, email string
		rate                 decimal.Decimal
	}{
		{"empty name", "", "545-1234", "a@b.com", rate},
		{"empty phone", "Alice", "", "a@b.com", rate},
		{"empty email", "Alice", "545-1234", "", rate},
		{"email without @", "Alice", "545-1234", "a.b.com", rate},
		{"email with two @", "Alice", "545-1234", "a@b@c", rate},
		{"negative pay rate", "Alice", "545-1234", "a@b.com", decimal.NewFromInt(-1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := models.NewCaregiver(tc.cgName, tc.phone, tc.email, tc.rate)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)

			var vErr *models.ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestNewCaregiver_AcceptsSingleAtEmail(t *testing.T) {
	_, err := models.NewCaregiver("Alice", "545-1234", "a@b.com", models.DefaultPayRate)
	assert.NoError(t, err)
}

func TestSetAvailability_OverwritesPriorStatus(t *testing.T) {
	cg := newCaregiver(t)

	require.NoError(t, cg.SetAvailability("2024-12-01", models.ShiftAM, models.Preferred))
	require.NoError(t, cg.SetAvailability("2024-12-01", models.ShiftAM, models.Unavailable))

	assert.Equal(t, models.Unavailable, cg.AvailabilityFor("2024-12-01", models.ShiftAM))
}

func TestSetAvailability_RejectsUnknownStatus(t *testing.T) {
	cg := newCaregiver(t)

	err := cg.SetAvailability("2024-12-01", models.ShiftAM, models.AvailabilityStatus("maybe"))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, models.Available, cg.AvailabilityFor("2024-12-01", models.ShiftAM))
}

func TestSetAvailability_RejectsUnknownShift(t *testing.T) {
	cg := newCaregiver(t)

	err := cg.SetAvailability("2024-12-01", models.Shift("NIGHT"), models.Preferred)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestAvailabilityFor_DefaultsToAvailable(t *testing.T) {
	cg := newCaregiver(t)
	assert.Equal(t, models.Available, cg.AvailabilityFor("2024-12-25", models.ShiftPM))
}

func TestAddHours(t *testing.T) {
	cg := newCaregiver(t)

	require.NoError(t, cg.AddHours(6))
	require.NoError(t, cg.AddHours(6))
	assert.Equal(t, 12.0, cg.Hours)
}

func TestAddHours_NegativeLeavesHoursUnchanged(t *testing.T) {
	cg := newCaregiver(t)
	require.NoError(t, cg.AddHours(18))

	err := cg.AddHours(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
	assert.Equal(t, 18.0, cg.Hours, "rejected delta must not mutate hours")
}

func TestClone_IsIndependent(t *testing.T) {
	cg := newCaregiver(t)
	require.NoError(t, cg.SetAvailability("2024-12-01", models.ShiftAM, models.Preferred))

	dup := cg.Clone()
	require.NoError(t, dup.AddHours(6))
	require.NoError(t, dup.SetAvailability("2024-12-01", models.ShiftAM, models.Unavailable))

	assert.Zero(t, cg.Hours)
	assert.Equal(t, models.Preferred, cg.AvailabilityFor("2024-12-01", models.ShiftAM))
	assert.Equal(t, models.Unavailable, dup.AvailabilityFor("2024-12-01", models.ShiftAM))
}
