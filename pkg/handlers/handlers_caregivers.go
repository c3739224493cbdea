package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/arnavshah/care-scheduler-go/pkg/database"
	"github.com/arnavshah/care-scheduler-go/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recordToCaregiver rebuilds the in-memory caregiver from its stored row and
// availability entries. Stored rows were validated on the way in, so a bad
// pay rate here means a corrupted row.
func recordToCaregiver(rec database.CaregiverRecord, entries []database.AvailabilityEntry) (*models.Caregiver, error) {
	rate, err := decimal.NewFromString(rec.PayRate)
	if err != nil {
		return nil, err
	}

	cg := &models.Caregiver{
		ID:           rec.ID,
		Name:         rec.Name,
		Phone:        rec.Phone,
		Email:        rec.Email,
		PayRate:      rate,
		Hours:        rec.Hours,
		Availability: make(map[models.Slot]models.AvailabilityStatus, len(entries)),
	}
	for _, e := range entries {
		cg.Availability[models.Slot{Date: e.Date, Shift: models.Shift(e.Shift)}] = models.AvailabilityStatus(e.Status)
	}
	return cg, nil
}

// loadRoster reads the full caregiver roster in creation order. Creation
// order matters: it is the tie-break order during scheduling.
func (h *Handler) loadRoster() ([]*models.Caregiver, error) {
	var records []database.CaregiverRecord
	if err := h.DB.Order("created_at, id").Find(&records).Error; err != nil {
		return nil, err
	}

	var entries []database.AvailabilityEntry
	if err := h.DB.Find(&entries).Error; err != nil {
		return nil, err
	}
	byCaregiver := make(map[string][]database.AvailabilityEntry)
	for _, e := range entries {
		byCaregiver[e.CaregiverID] = append(byCaregiver[e.CaregiverID], e)
	}

	roster := make([]*models.Caregiver, 0, len(records))
	for _, rec := range records {
		cg, err := recordToCaregiver(rec, byCaregiver[rec.ID])
		if err != nil {
			return nil, err
		}
		roster = append(roster, cg)
	}
	return roster, nil
}

// CreateCaregiver validates and stores a new caregiver.
func (h *Handler) CreateCaregiver(c *gin.Context) {
	var req struct {
		Name    string           `json:"name"`
		Phone   string           `json:"phone"`
		Email   string           `json:"email"`
		PayRate *decimal.Decimal `json:"pay_rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate := models.DefaultPayRate
	if req.PayRate != nil {
		rate = *req.PayRate
	}

	cg, err := models.NewCaregiver(req.Name, req.Phone, req.Email, rate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := database.CaregiverRecord{
		ID:      cg.ID,
		Name:    cg.Name,
		Phone:   cg.Phone,
		Email:   cg.Email,
		PayRate: cg.PayRate.String(),
		Hours:   0,
	}
	if err := h.DB.Create(&rec).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create caregiver"})
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// ListCaregivers returns all stored caregivers in creation order.
func (h *Handler) ListCaregivers(c *gin.Context) {
	var records []database.CaregiverRecord
	if err := h.DB.Order("created_at, id").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list caregivers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"caregivers": records})
}

// GetCaregiver returns one caregiver with its availability entries.
func (h *Handler) GetCaregiver(c *gin.Context) {
	id := c.Param("id")

	var rec database.CaregiverRecord
	if err := h.DB.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Caregiver not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch caregiver"})
		return
	}

	var entries []database.AvailabilityEntry
	if err := h.DB.Where("caregiver_id = ?", id).Order("date, shift").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"caregiver": rec, "availability": entries})
}

// DeleteCaregiver removes a caregiver and its availability entries.
func (h *Handler) DeleteCaregiver(c *gin.Context) {
	id := c.Param("id")

	res := h.DB.Delete(&database.CaregiverRecord{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete caregiver"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Caregiver not found"})
		return
	}
	if err := h.DB.Where("caregiver_id = ?", id).Delete(&database.AvailabilityEntry{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Caregiver deleted"})
}

// SetAvailability upserts availability entries for one caregiver.
func (h *Handler) SetAvailability(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Entries []models.AvailabilityInput `json:"entries"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entries is required"})
		return
	}

	var rec database.CaregiverRecord
	if err := h.DB.First(&rec, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Caregiver not found"})
		return
	}

	// Run the entries through the domain validation before touching rows.
	probe := &models.Caregiver{Availability: make(map[models.Slot]models.AvailabilityStatus)}
	for _, e := range req.Entries {
		if _, err := time.Parse("2006-01-02", e.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: want YYYY-MM-DD, got " + e.Date})
			return
		}
		if err := probe.SetAvailability(e.Date, e.Shift, e.Status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	for _, e := range req.Entries {
		h.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "caregiver_id"}, {Name: "date"}, {Name: "shift"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"status": string(e.Status)}),
		}).Create(&database.AvailabilityEntry{
			CaregiverID: id,
			Date:        e.Date,
			Shift:       string(e.Shift),
			Status:      string(e.Status),
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "count": len(req.Entries)})
}
