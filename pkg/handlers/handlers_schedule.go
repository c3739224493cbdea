package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arnavshah/care-scheduler-go/pkg/database"
	"github.com/arnavshah/care-scheduler-go/pkg/models"
	"github.com/arnavshah/care-scheduler-go/pkg/payroll"
	"github.com/arnavshah/care-scheduler-go/pkg/scheduler"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// rosterFromInput validates a request roster and converts it to domain
// caregivers, preserving submitted IDs and carried-over hours. Submitted IDs
// must be unique: payroll and roster stats are keyed by ID, so a duplicate
// would silently overwrite another caregiver's entry.
func rosterFromInput(inputs []models.CaregiverInput) ([]*models.Caregiver, error) {
	roster := make([]*models.Caregiver, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		if in.ID != "" {
			if seen[in.ID] {
				return nil, &models.ValidationError{Field: "id", Reason: "duplicate caregiver ID " + in.ID}
			}
			seen[in.ID] = true
		}
		rate := models.DefaultPayRate
		if in.PayRate != nil {
			rate = *in.PayRate
		}
		cg, err := models.NewCaregiver(in.Name, in.Phone, in.Email, rate)
		if err != nil {
			return nil, err
		}
		if in.ID != "" {
			cg.ID = in.ID
		}
		if err := cg.AddHours(in.Hours); err != nil {
			return nil, err
		}
		for _, a := range in.Availability {
			if err := cg.SetAvailability(a.Date, a.Shift, a.Status); err != nil {
				return nil, err
			}
		}
		roster = append(roster, cg)
	}
	return roster, nil
}

// scheduleResponse assembles the common build result payload.
func scheduleResponse(s *scheduler.Scheduler, sched *models.MonthSchedule) models.ScheduleResponse {
	roster := s.Roster()
	stats := make(map[string]models.RosterStats, len(roster))
	for _, cg := range roster {
		stats[cg.ID] = models.RosterStats{Name: cg.Name, Hours: cg.Hours}
	}
	return models.ScheduleResponse{
		Schedule:      sched,
		Gaps:          s.Gaps(),
		FairnessScore: s.FairnessScore(),
		Caregivers:    stats,
		Payroll:       payroll.Calculate(roster),
	}
}

// ScheduleJSON builds a schedule from the request payload alone. Nothing is
// persisted; the caller receives the updated hour totals and folds them back
// however it likes.
func (h *Handler) ScheduleJSON(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roster, err := rosterFromInput(input.Caregivers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := scheduler.New(roster)
	sched, err := s.BuildMonth(input.Month, input.Year)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.RecordUsage(c, len(sched.Days)*len(models.ShiftOrder), len(roster))

	c.JSON(http.StatusOK, scheduleResponse(s, sched))
}

// runContribution tallies the hours a persisted run granted per caregiver.
func (h *Handler) runContribution(runID uint) (map[string]float64, error) {
	var cells []database.ScheduleCell
	if err := h.DB.Where("run_id = ?", runID).Find(&cells).Error; err != nil {
		return nil, err
	}
	hours := make(map[string]float64)
	for _, cell := range cells {
		if cell.CaregiverID != "" {
			hours[cell.CaregiverID] += models.ShiftHours
		}
	}
	return hours, nil
}

// GenerateSchedule builds a schedule from the stored roster and persists the
// run. Rebuilding a month replaces the previous run for that month: the
// replaced run's hour contribution is backed out of the baseline before
// building and the stored totals are replaced rather than incremented, so
// regeneration never double-counts.
func (h *Handler) GenerateSchedule(c *gin.Context) {
	var req struct {
		Month int `json:"month"`
		Year  int `json:"year"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roster, err := h.loadRoster()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load roster"})
		return
	}

	// Stored hours include the run being replaced. Back out that run's
	// per-caregiver contribution so the rebuild starts from the hours the
	// roster had before this month was first generated.
	var prior database.ScheduleRun
	if err := h.DB.Where("month = ? AND year = ?", req.Month, req.Year).First(&prior).Error; err == nil {
		contributed, err := h.runContribution(prior.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load prior run"})
			return
		}
		for _, cg := range roster {
			cg.Hours -= contributed[cg.ID]
			if cg.Hours < 0 {
				cg.Hours = 0
			}
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load prior run"})
		return
	}

	s := scheduler.New(roster)
	sched, err := s.BuildMonth(req.Month, req.Year)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var replaced database.ScheduleRun
		if err := tx.Where("month = ? AND year = ?", req.Month, req.Year).First(&replaced).Error; err == nil {
			if err := tx.Where("run_id = ?", replaced.ID).Delete(&database.ScheduleCell{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&replaced).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		run := database.ScheduleRun{
			Month:         req.Month,
			Year:          req.Year,
			FairnessScore: s.FairnessScore(),
		}
		if err := tx.Create(&run).Error; err != nil {
			return err
		}

		for _, date := range sched.Dates() {
			assigned := sched.Days[date]
			cells := []database.ScheduleCell{
				{RunID: run.ID, Date: date, Shift: string(models.ShiftAM), CaregiverID: assigned.AM.CaregiverID, CaregiverName: assigned.AM.Caregiver},
				{RunID: run.ID, Date: date, Shift: string(models.ShiftPM), CaregiverID: assigned.PM.CaregiverID, CaregiverName: assigned.PM.Caregiver},
			}
			if err := tx.Create(&cells).Error; err != nil {
				return err
			}
		}

		for _, cg := range s.Roster() {
			if err := tx.Model(&database.CaregiverRecord{}).Where("id = ?", cg.ID).Update("hours", cg.Hours).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not persist schedule"})
		return
	}

	h.RecordUsage(c, len(sched.Days)*len(models.ShiftOrder), len(roster))

	c.JSON(http.StatusOK, scheduleResponse(s, sched))
}

// loadRun reconstructs a persisted month schedule, or returns nil when no
// run exists for (month, year).
func (h *Handler) loadRun(month, year int) (*models.MonthSchedule, error) {
	var run database.ScheduleRun
	if err := h.DB.Where("month = ? AND year = ?", month, year).First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var cells []database.ScheduleCell
	if err := h.DB.Where("run_id = ?", run.ID).Find(&cells).Error; err != nil {
		return nil, err
	}

	sched := &models.MonthSchedule{
		Month: month,
		Year:  year,
		Days:  make(map[string]models.DayAssignment, len(cells)/2),
	}
	for _, cell := range cells {
		day := sched.Days[cell.Date]
		assigned := models.ShiftAssignment{CaregiverID: cell.CaregiverID, Caregiver: cell.CaregiverName}
		if models.Shift(cell.Shift) == models.ShiftAM {
			day.AM = assigned
		} else {
			day.PM = assigned
		}
		sched.Days[cell.Date] = day
	}
	return sched, nil
}

// monthYearParams parses and bounds-checks the :year/:month path segments.
func monthYearParams(c *gin.Context) (month, year int, ok bool) {
	year, errY := strconv.Atoi(c.Param("year"))
	month, errM := strconv.Atoi(c.Param("month"))
	if errY != nil || errM != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month must be integers"})
		return 0, 0, false
	}
	if err := scheduler.ValidateMonth(month, year); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, 0, false
	}
	return month, year, true
}

// GetSchedule returns the persisted schedule for a month.
func (h *Handler) GetSchedule(c *gin.Context) {
	month, year, ok := monthYearParams(c)
	if !ok {
		return
	}

	sched, err := h.loadRun(month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule"})
		return
	}
	if sched == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No schedule for that month"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": sched})
}

// ScheduleHTML returns the persisted schedule rendered as an HTML page.
func (h *Handler) ScheduleHTML(c *gin.Context) {
	month, year, ok := monthYearParams(c)
	if !ok {
		return
	}

	sched, err := h.loadRun(month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule"})
		return
	}
	if sched == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No schedule for that month"})
		return
	}

	page, err := h.HTML.RenderSchedule(sched)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not render schedule"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// PayrollReport returns the pay report for the stored roster.
func (h *Handler) PayrollReport(c *gin.Context) {
	roster, err := h.loadRoster()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load roster"})
		return
	}

	records := payroll.Calculate(roster)
	weekly, monthly := payroll.Totals(records)

	c.JSON(http.StatusOK, gin.H{
		"payroll":       records,
		"total_weekly":  weekly,
		"total_monthly": monthly,
	})
}

// PayrollHTML returns the pay report rendered as an HTML page.
func (h *Handler) PayrollHTML(c *gin.Context) {
	roster, err := h.loadRoster()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load roster"})
		return
	}

	records := payroll.Calculate(roster)
	weekly, monthly := payroll.Totals(records)

	page, err := h.HTML.RenderPayroll(records, weekly, monthly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not render pay report"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
