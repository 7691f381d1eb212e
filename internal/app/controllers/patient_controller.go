package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/app/services"
	"github.com/ycelik/clinicore/internal/middleware"
)

// PatientController handles patient record operations
type PatientController struct {
	patientService *services.PatientService
}

// NewPatientController creates a new PatientController
func NewPatientController(patientService *services.PatientService) *PatientController {
	return &PatientController{patientService: patientService}
}

// Create handles POST /api/patient.
func (c *PatientController) Create(ctx *gin.Context) {
	var req dto.PatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	patient, err := c.patientService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, patient)
}

// GetByID handles GET /api/patient/:id.
func (c *PatientController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	patient, err := c.patientService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, patient)
}

// GetAll handles GET /api/patient.
func (c *PatientController) GetAll(ctx *gin.Context) {
	patients, err := c.patientService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, patients)
}

// Update handles PUT /api/patient/:id.
func (c *PatientController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.PatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	patient, err := c.patientService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, patient)
}

// Delete handles DELETE /api/patient/:id.
func (c *PatientController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.patientService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Patient deleted"})
}
