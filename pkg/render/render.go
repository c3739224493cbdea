// Package render turns schedules and pay reports into presentation text.
// The core never formats its own output; callers pick a renderer and hand
// the result to whatever persistence they want.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/arnavshah/care-scheduler-go/pkg/models"
)

// ScheduleRenderer renders one month's schedule.
type ScheduleRenderer interface {
	RenderSchedule(s *models.MonthSchedule) (string, error)
}

// PayrollRenderer renders a pay report with roster-wide totals.
type PayrollRenderer interface {
	RenderPayroll(records map[string]models.PayRecord, weekly, monthly decimal.Decimal) (string, error)
}

// WriteFile persists rendered output at the caller-specified path, creating
// parent directories as needed.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// sortedRecords orders pay records by caregiver name, then ID for stability
// when names collide.
func sortedRecords(records map[string]models.PayRecord) []models.PayRecord {
	out := make([]models.PayRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].CaregiverID < out[j].CaregiverID
	})
	return out
}
