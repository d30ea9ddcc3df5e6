package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medpractice/doctor-dashboard/internal/service"
)

// DashboardHandler serves the summary cards, analytics charts and reference data.
type DashboardHandler struct {
	store *service.Store
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(store *service.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// GetStatistics godoc
// @Summary Dashboard counters and the admissions series
// @Description Counts patients by status from the current patient list; the monthly admissions series is fixed demo data.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.Statistics
// @Failure 401 {object} gin.H "Not logged in"
// @Router /statistics [get]
func (h *DashboardHandler) GetStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetStatistics())
}

// GetDoctors godoc
// @Summary List doctors for the assignment dropdowns
// @Description Doctors come from the seed data and change only through an import.
// @Tags Dashboard
// @Produce json
// @Success 200 {array} domain.Doctor
// @Failure 401 {object} gin.H "Not logged in"
// @Router /doctors [get]
func (h *DashboardHandler) GetDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetDoctors())
}
