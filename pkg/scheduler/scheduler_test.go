package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/care-scheduler-go/pkg/models"
	"github.com/arnavshah/care-scheduler-go/pkg/scheduler"
)

func caregiver(t *testing.T, name string) *models.Caregiver {
	t.Helper()
	cg, err := models.NewCaregiver(name, "555-0100", name+"@example.com", models.DefaultPayRate)
	require.NoError(t, err)
	return cg
}

func TestValidateMonth(t *testing.T) {
	assert.NoError(t, scheduler.ValidateMonth(1, 2000))
	assert.NoError(t, scheduler.ValidateMonth(12, 2024))

	for _, tc := range []struct{ month, year int }{
		{0, 2024}, {13, 2024}, {-1, 2024}, {6, 1999}, {6, 0},
	} {
		err := scheduler.ValidateMonth(tc.month, tc.year)
		require.Error(t, err, "month=%d year=%d", tc.month, tc.year)
		assert.ErrorIs(t, err, models.ErrValidation)

		var vErr *models.ValidationError
		assert.ErrorAs(t, err, &vErr, "month/year failures share the field-error type")
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, scheduler.DaysIn(12, 2024))
	assert.Equal(t, 29, scheduler.DaysIn(2, 2024), "leap February")
	assert.Equal(t, 28, scheduler.DaysIn(2, 2023))
	assert.Equal(t, 30, scheduler.DaysIn(4, 2024))
}

func TestBuildMonth_CoversEveryDayWithTwoShifts(t *testing.T) {
	s := scheduler.New([]*models.Caregiver{caregiver(t, "alice"), caregiver(t, "bob")})

	sched, err := s.BuildMonth(2, 2024)
	require.NoError(t, err)

	assert.Len(t, sched.Days, 29)
	for _, date := range sched.Dates() {
		day := sched.Days[date]
		assert.NotEmpty(t, day.AM.Caregiver, "%s AM", date)
		assert.NotEmpty(t, day.PM.Caregiver, "%s PM", date)
	}
}

func TestBuildMonth_SingleCaregiverWorksEveryShift(t *testing.T) {
	alice := caregiver(t, "alice")
	s := scheduler.New([]*models.Caregiver{alice})

	sched, err := s.BuildMonth(12, 2024)
	require.NoError(t, err)

	for _, date := range sched.Dates() {
		day := sched.Days[date]
		assert.Equal(t, "alice", day.AM.Caregiver)
		assert.Equal(t, "alice", day.PM.Caregiver)
	}

	// 31 days x 2 shifts x 6 hours
	assert.Equal(t, 31*2*6.0, s.Roster()[0].Hours)
	assert.Empty(t, s.Gaps())

	// The caller's record is untouched; totals live on the scheduler's clone.
	assert.Zero(t, alice.Hours)
}

func TestBuildMonth_EmptyRosterIsAllGaps(t *testing.T) {
	s := scheduler.New(nil)

	sched, err := s.BuildMonth(12, 2024)
	require.NoError(t, err)

	for _, date := range sched.Dates() {
		day := sched.Days[date]
		assert.Equal(t, models.NoCoverage, day.AM.Caregiver)
		assert.Equal(t, models.NoCoverage, day.PM.Caregiver)
		assert.False(t, day.AM.Filled())
		assert.False(t, day.PM.Filled())
	}
	assert.Len(t, s.Gaps(), 31*2)
}

func TestBuildMonth_UnavailableCaregiverIsNeverPicked(t *testing.T) {
	alice := caregiver(t, "alice")
	bob := caregiver(t, "bob")
	for _, shift := range models.ShiftOrder {
		require.NoError(t, alice.SetAvailability("2024-12-25", shift, models.Unavailable))
	}

	s := scheduler.New([]*models.Caregiver{alice, bob})
	sched, err := s.BuildMonth(12, 2024)
	require.NoError(t, err)

	day := sched.Days["2024-12-25"]
	assert.Equal(t, "bob", day.AM.Caregiver)
	assert.Equal(t, "bob", day.PM.Caregiver)
}

func TestBuildMonth_PreferredOutranksLowerHours(t *testing.T) {
	// bob carries far more hours than alice, but he is the only caregiver
	// marked preferred for the shift, so the pick must come from the
	// preferred subset regardless of hours.
	alice := caregiver(t, "alice")
	bob := caregiver(t, "bob")
	require.NoError(t, bob.AddHours(60))
	require.NoError(t, bob.SetAvailability("2024-12-03", models.ShiftAM, models.Preferred))

	s := scheduler.New([]*models.Caregiver{alice, bob})
	sched, err := s.BuildMonth(12, 2024)
	require.NoError(t, err)

	assert.Equal(t, "bob", sched.Days["2024-12-03"].AM.Caregiver)
}

func TestBuildMonth_TieBreaksByRosterOrder(t *testing.T) {
	alice := caregiver(t, "alice")
	bob := caregiver(t, "bob")
	require.NoError(t, alice.SetAvailability("2024-12-01", models.ShiftAM, models.Preferred))
	require.NoError(t, bob.SetAvailability("2024-12-01", models.ShiftAM, models.Preferred))

	s := scheduler.New([]*models.Caregiver{alice, bob})
	sched, err := s.BuildMonth(12, 2024)
	require.NoError(t, err)

	// Equal hours, both preferred: the earlier roster entry wins.
	assert.Equal(t, "alice", sched.Days["2024-12-01"].AM.Caregiver)
}

func TestBuildMonth_AMAssignmentFeedsPMTieBreak(t *testing.T) {
	alice := caregiver(t, "alice")
	bob := caregiver(t, "bob")

	s := scheduler.New([]*models.Caregiver{alice, bob})
	sched, err := s.BuildMonth(12, 2024)
	require.NoError(t, err)

	// Day one: alice takes AM on the roster-order tie-break, which lifts her
	// hours so bob must take PM.
	day := sched.Days["2024-12-01"]
	assert.Equal(t, "alice", day.AM.Caregiver)
	assert.Equal(t, "bob", day.PM.Caregiver)
}

func TestBuildMonth_BalancesHoursAcrossRoster(t *testing.T) {
	roster := []*models.Caregiver{
		caregiver(t, "alice"),
		caregiver(t, "bob"),
		caregiver(t, "carol"),
	}

	s := scheduler.New(roster)
	_, err := s.BuildMonth(6, 2024)
	require.NoError(t, err)

	// 30 days x 2 shifts = 60 assignments over 3 caregivers.
	var total float64
	for _, cg := range s.Roster() {
		assert.Equal(t, 20*6.0, cg.Hours)
		total += cg.Hours
	}
	assert.Equal(t, 60*6.0, total)
	assert.Equal(t, 100.0, s.FairnessScore())
}

func TestBuildMonth_RerunDoesNotDoubleCountHours(t *testing.T) {
	s := scheduler.New([]*models.Caregiver{caregiver(t, "alice")})

	_, err := s.BuildMonth(12, 2024)
	require.NoError(t, err)
	first := s.Roster()[0].Hours

	_, err = s.BuildMonth(12, 2024)
	require.NoError(t, err)

	assert.Equal(t, first, s.Roster()[0].Hours, "rebuild must restart from baseline hours")
}

func TestBuildMonth_CarriedHoursShiftTheFirstPick(t *testing.T) {
	alice := caregiver(t, "alice")
	bob := caregiver(t, "bob")
	require.NoError(t, alice.AddHours(12))

	s := scheduler.New([]*models.Caregiver{alice, bob})
	sched, err := s.BuildMonth(12, 2024)
	require.NoError(t, err)

	// bob starts lower, so he gets the first shifts despite roster order.
	assert.Equal(t, "bob", sched.Days["2024-12-01"].AM.Caregiver)
}

func TestBuildMonth_InvalidMonthOrYear(t *testing.T) {
	s := scheduler.New([]*models.Caregiver{caregiver(t, "alice")})

	_, err := s.BuildMonth(13, 2024)
	assert.ErrorIs(t, err, models.ErrValidation)

	var vErr *models.ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = s.BuildMonth(12, 1999)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.ErrorAs(t, err, &vErr)
}

func TestGaps_ReportUnavailableCounts(t *testing.T) {
	alice := caregiver(t, "alice")
	require.NoError(t, alice.SetAvailability("2024-12-25", models.ShiftAM, models.Unavailable))

	s := scheduler.New([]*models.Caregiver{alice})
	_, err := s.BuildMonth(12, 2024)
	require.NoError(t, err)

	require.Len(t, s.Gaps(), 1)
	gap := s.Gaps()[0]
	assert.Equal(t, "2024-12-25", gap.Date)
	assert.Equal(t, models.ShiftAM, gap.Shift)
	assert.Contains(t, gap.Reasons[0], "1 caregivers marked unavailable")
}

func TestFairnessScore_EmptyRosterIsPerfect(t *testing.T) {
	s := scheduler.New(nil)
	assert.Equal(t, 100.0, s.FairnessScore())
}
