package handlers

import (
	"net/http"

	"github.com/arnavshah/care-scheduler-go/pkg/models"
	"github.com/arnavshah/care-scheduler-go/pkg/scheduler"
	"github.com/gin-gonic/gin"
)

// ValidateInput checks a schedule payload without building anything.
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if err := scheduler.ValidateMonth(input.Month, input.Year); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	// Check for duplicate IDs before field validation
	ids := make(map[string]bool)
	for _, cg := range input.Caregivers {
		if cg.ID == "" {
			continue
		}
		if ids[cg.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate caregiver ID: " + cg.ID})
			return
		}
		ids[cg.ID] = true
	}

	if _, err := rosterFromInput(input.Caregivers); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"caregiver_count": len(input.Caregivers),
			"day_count":       scheduler.DaysIn(input.Month, input.Year),
		},
	})
}
