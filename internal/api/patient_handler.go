package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medpractice/doctor-dashboard/internal/domain"
	"medpractice/doctor-dashboard/internal/service"
)

// PatientHandler serves the patients page.
type PatientHandler struct {
	store *service.Store
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(store *service.Store) *PatientHandler {
	return &PatientHandler{store: store}
}

// CreatePatientRequest is the patient form. Id and admission date are assigned by the store.
type CreatePatientRequest struct {
	Name      string               `json:"name"`
	Age       int                  `json:"age"`
	Gender    string               `json:"gender"`
	Condition string               `json:"condition"`
	Status    domain.PatientStatus `json:"status"`
	Notes     string               `json:"notes"`
	DoctorID  *int                 `json:"doctorId"`
}

// PatientResponse is a patient row with its doctor's name resolved.
type PatientResponse struct {
	domain.Patient
	DoctorName string `json:"doctorName"`
}

// MapPatientToResponse resolves the doctor reference; dangling references read as "N/A".
func MapPatientToResponse(p domain.Patient, doctors []domain.Doctor) PatientResponse {
	return PatientResponse{Patient: p, DoctorName: domain.DoctorName(doctors, p.DoctorID)}
}

// MapPatientsToResponse converts a slice of patients.
func MapPatientsToResponse(patients []domain.Patient, doctors []domain.Doctor) []PatientResponse {
	responses := make([]PatientResponse, len(patients))
	for i, p := range patients {
		responses[i] = MapPatientToResponse(p, doctors)
	}
	return responses
}

// ListPatients godoc
// @Summary List patients
// @Description Optional "status" filters by treatment status ("all" for everyone); optional "q" searches name and condition.
// @Tags Patients
// @Produce json
// @Param status query string false "Status filter"
// @Param q query string false "Search text"
// @Success 200 {array} PatientResponse
// @Router /patients [get]
func (h *PatientHandler) ListPatients(c *gin.Context) {
	var (
		patients []domain.Patient
		err      error
	)
	if q, ok := c.GetQuery("q"); ok {
		patients, err = h.store.SearchPatients(c.Request.Context(), q)
	} else {
		patients, err = h.store.FilterPatients(c.Request.Context(), c.Query("status"))
	}
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve patients.")
		return
	}
	c.JSON(http.StatusOK, MapPatientsToResponse(patients, h.store.GetDoctors()))
}

// CreatePatient godoc
// @Summary Add a patient
// @Tags Patients
// @Accept json
// @Produce json
// @Param patient body CreatePatientRequest true "Patient details"
// @Success 201 {object} PatientResponse
// @Router /patients [post]
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	patient, err := h.store.AddPatient(c.Request.Context(), domain.Patient{
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Condition: req.Condition,
		Status:    req.Status,
		Notes:     req.Notes,
		DoctorID:  req.DoctorID,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create patient.")
		return
	}
	c.JSON(http.StatusCreated, MapPatientToResponse(patient, h.store.GetDoctors()))
}

// UpdatePatient godoc
// @Summary Update some fields of a patient
// @Description Fields missing from the body keep their values; "doctorId": null unassigns the doctor.
// @Tags Patients
// @Accept json
// @Produce json
// @Param id path int true "Patient id"
// @Param patient body domain.PatientUpdate true "Fields to change"
// @Success 200 {object} PatientResponse
// @Failure 404 {object} gin.H "Patient not found"
// @Router /patients/{id} [patch]
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req domain.PatientUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	patient, err := h.store.UpdatePatient(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update patient.")
		return
	}
	c.JSON(http.StatusOK, MapPatientToResponse(patient, h.store.GetDoctors()))
}

// DeletePatient godoc
// @Summary Delete a patient
// @Description Deleting an unknown id succeeds.
// @Tags Patients
// @Param id path int true "Patient id"
// @Success 204
// @Router /patients/{id} [delete]
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.store.DeletePatient(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete patient.")
		return
	}
	c.Status(http.StatusNoContent)
}
