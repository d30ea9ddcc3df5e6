package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medpractice/doctor-dashboard/internal/domain"
	"medpractice/doctor-dashboard/internal/service"
)

// AppointmentHandler serves the appointments calendar.
type AppointmentHandler struct {
	store *service.Store
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(store *service.Store) *AppointmentHandler {
	return &AppointmentHandler{store: store}
}

// CreateAppointmentRequest accepts either start/end directly or the calendar form's
// separate date and time fields plus an optional duration.
type CreateAppointmentRequest struct {
	PatientID       int    `json:"patientId"`
	DoctorID        int    `json:"doctorId"`
	Title           string `json:"title"`
	Start           string `json:"start"`
	End             string `json:"end"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes" binding:"gte=0"`
}

func (r CreateAppointmentRequest) toAppointment() (domain.Appointment, error) {
	start := r.Start
	if start == "" && r.Date != "" {
		start = r.Date + "T" + r.Time
	}
	if start == "" {
		return domain.Appointment{}, errors.New("start (or date and time) is required")
	}

	end := r.End
	if end == "" && r.DurationMinutes > 0 {
		at, err := domain.ParseDateTime(start)
		if err != nil {
			return domain.Appointment{}, err
		}
		end = at.Add(time.Duration(r.DurationMinutes) * time.Minute).Format(domain.DateTimeLayout)
	}

	return domain.Appointment{
		PatientID: r.PatientID,
		DoctorID:  r.DoctorID,
		Title:     r.Title,
		Start:     start,
		End:       end,
	}, nil
}

// ListAppointments godoc
// @Summary List appointments
// @Tags Appointments
// @Produce json
// @Success 200 {array} domain.Appointment
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.store.GetAppointments(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve appointments.")
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// Calendar godoc
// @Summary Month grid of appointments
// @Tags Appointments
// @Produce json
// @Param month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {array} domain.CalendarDay
// @Router /appointments/calendar [get]
func (h *AppointmentHandler) Calendar(c *gin.Context) {
	month := time.Now()
	if m := c.Query("month"); m != "" {
		parsed, err := time.ParseInLocation("2006-01", m, time.Local)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "month must be formatted as YYYY-MM")
			return
		}
		month = parsed
	}

	days, err := h.store.Calendar(c.Request.Context(), month)
	if err != nil {
		respondServiceError(c, err, "Failed to build calendar.")
		return
	}
	c.JSON(http.StatusOK, days)
}

// CreateAppointment godoc
// @Summary Schedule an appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Param appointment body CreateAppointmentRequest true "Appointment details"
// @Success 201 {object} domain.Appointment
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	appointment, err := req.toAppointment()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	created, err := h.store.AddAppointment(c.Request.Context(), appointment)
	if err != nil {
		respondServiceError(c, err, "Failed to schedule appointment.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteAppointment godoc
// @Summary Delete an appointment
// @Tags Appointments
// @Param id path int true "Appointment id"
// @Success 204
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteAppointment(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete appointment.")
		return
	}
	c.Status(http.StatusNoContent)
}
