package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/app/services"
	"github.com/ycelik/clinicore/internal/middleware"
)

// StaffController handles staff record operations
type StaffController struct {
	staffService *services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService *services.StaffService) *StaffController {
	return &StaffController{staffService: staffService}
}

// Create handles POST /api/staff.
func (c *StaffController) Create(ctx *gin.Context) {
	var req dto.StaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	staff, err := c.staffService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, staff)
}

// GetByID handles GET /api/staff/:id.
func (c *StaffController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	staff, err := c.staffService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, staff)
}

// GetAll handles GET /api/staff.
func (c *StaffController) GetAll(ctx *gin.Context) {
	staff, err := c.staffService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, staff)
}

// Update handles PUT /api/staff/:id.
func (c *StaffController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.StaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	staff, err := c.staffService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, staff)
}

// Delete handles DELETE /api/staff/:id.
func (c *StaffController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.staffService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Staff member deleted"})
}
