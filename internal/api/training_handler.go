package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medpractice/doctor-dashboard/internal/domain"
	"medpractice/doctor-dashboard/internal/service"
)

// TrainingHandler serves the trainings page.
type TrainingHandler struct {
	store *service.Store
}

// NewTrainingHandler creates a new TrainingHandler.
func NewTrainingHandler(store *service.Store) *TrainingHandler {
	return &TrainingHandler{store: store}
}

// CreateTrainingRequest is the training form. The status is not accepted from the client.
type CreateTrainingRequest struct {
	Topic string `json:"topic"`
	Date  string `json:"date"`
}

// ListTrainings godoc
// @Summary List trainings
// @Tags Trainings
// @Produce json
// @Success 200 {array} domain.Training
// @Router /trainings [get]
func (h *TrainingHandler) ListTrainings(c *gin.Context) {
	trainings, err := h.store.GetTrainings(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve trainings.")
		return
	}
	c.JSON(http.StatusOK, trainings)
}

// CreateTraining godoc
// @Summary Add a training
// @Description New trainings always start as Upcoming.
// @Tags Trainings
// @Accept json
// @Produce json
// @Param training body CreateTrainingRequest true "Training details"
// @Success 201 {object} domain.Training
// @Router /trainings [post]
func (h *TrainingHandler) CreateTraining(c *gin.Context) {
	var req CreateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	training, err := h.store.AddTraining(c.Request.Context(), domain.Training{Topic: req.Topic, Date: req.Date})
	if err != nil {
		respondServiceError(c, err, "Failed to add training.")
		return
	}
	c.JSON(http.StatusCreated, training)
}

// UpdateTraining godoc
// @Summary Update some fields of a training
// @Description A Completed training cannot move back to Upcoming.
// @Tags Trainings
// @Accept json
// @Produce json
// @Param id path int true "Training id"
// @Param training body domain.TrainingUpdate true "Fields to change"
// @Success 200 {object} domain.Training
// @Failure 404 {object} gin.H "Training not found"
// @Failure 409 {object} gin.H "Invalid status transition"
// @Router /trainings/{id} [patch]
func (h *TrainingHandler) UpdateTraining(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req domain.TrainingUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	training, err := h.store.UpdateTraining(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update training.")
		return
	}
	c.JSON(http.StatusOK, training)
}

// CompleteTraining godoc
// @Summary Mark a training as Completed
// @Tags Trainings
// @Produce json
// @Param id path int true "Training id"
// @Success 200 {object} domain.Training
// @Failure 404 {object} gin.H "Training not found"
// @Router /trainings/{id}/complete [post]
func (h *TrainingHandler) CompleteTraining(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	training, err := h.store.CompleteTraining(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to update training.")
		return
	}
	c.JSON(http.StatusOK, training)
}
