package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/care-scheduler-go/internal/seed"
	"github.com/arnavshah/care-scheduler-go/pkg/models"
)

func TestSampleRoster(t *testing.T) {
	roster, err := seed.SampleRoster(12, 2024)
	require.NoError(t, err)
	require.Len(t, roster, 8)

	for _, cg := range roster {
		assert.Equal(t, models.Preferred, cg.AvailabilityFor("2024-12-02", models.ShiftAM))
		assert.Equal(t, models.Available, cg.AvailabilityFor("2024-12-01", models.ShiftAM))
		assert.Equal(t, models.Available, cg.AvailabilityFor("2024-12-01", models.ShiftPM))
		// Beyond the seeded week slots fall back to the default.
		assert.Equal(t, models.Available, cg.AvailabilityFor("2024-12-20", models.ShiftAM))
	}
}
