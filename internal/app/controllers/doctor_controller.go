package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/app/services"
	"github.com/ycelik/clinicore/internal/middleware"
)

// DoctorController handles doctor record operations
type DoctorController struct {
	doctorService *services.DoctorService
}

// NewDoctorController creates a new DoctorController
func NewDoctorController(doctorService *services.DoctorService) *DoctorController {
	return &DoctorController{doctorService: doctorService}
}

// Create handles POST /api/doctor.
func (c *DoctorController) Create(ctx *gin.Context) {
	var req dto.DoctorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	doctor, err := c.doctorService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, doctor)
}

// GetByID handles GET /api/doctor/:id.
func (c *DoctorController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	doctor, err := c.doctorService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, doctor)
}

// GetAll handles GET /api/doctor.
func (c *DoctorController) GetAll(ctx *gin.Context) {
	doctors, err := c.doctorService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, doctors)
}

// Update handles PUT /api/doctor/:id.
func (c *DoctorController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.DoctorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	doctor, err := c.doctorService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, doctor)
}

// Delete handles DELETE /api/doctor/:id.
func (c *DoctorController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.doctorService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Doctor deleted"})
}
