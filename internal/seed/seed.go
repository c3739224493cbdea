// Package seed provides a sample caregiver roster for demos and local runs.
package seed

import (
	"fmt"

	"github.com/arnavshah/care-scheduler-go/pkg/models"
)

// SampleRoster returns eight caregivers at the default pay rate, with
// availability set for the first week of (month, year): preferred for AM
// shifts on even days, available otherwise.
func SampleRoster(month, year int) ([]*models.Caregiver, error) {
	people := []struct{ name, phone, email string }{
		{"Alice Johnson", "545-1234", "alice@example.com"},
		{"Bob Smith", "125-5678", "bob@example.com"},
		{"Carol Lee", "355-8765", "carol@example.com"},
		{"David Brown", "555-4321", "david@example.com"},
		{"Emma Wilson", "577-6789", "emma@example.com"},
		{"Frank Green", "598-9876", "frank@example.com"},
		{"Grace White", "666-3456", "grace@example.com"},
		{"Hannah Black", "544-6543", "hannah@example.com"},
	}

	roster := make([]*models.Caregiver, 0, len(people))
	for _, p := range people {
		cg, err := models.NewCaregiver(p.name, p.phone, p.email, models.DefaultPayRate)
		if err != nil {
			return nil, err
		}

		for day := 1; day <= 7; day++ {
			date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
			am := models.Available
			if day%2 == 0 {
				am = models.Preferred
			}
			if err := cg.SetAvailability(date, models.ShiftAM, am); err != nil {
				return nil, err
			}
			if err := cg.SetAvailability(date, models.ShiftPM, models.Available); err != nil {
				return nil, err
			}
		}

		roster = append(roster, cg)
	}
	return roster, nil
}
