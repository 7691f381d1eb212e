package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/app/services"
	"github.com/ycelik/clinicore/internal/middleware"
)

// AppointmentController handles appointment booking operations
type AppointmentController struct {
	appointmentService *services.AppointmentService
}

// NewAppointmentController creates a new AppointmentController
func NewAppointmentController(appointmentService *services.AppointmentService) *AppointmentController {
	return &AppointmentController{appointmentService: appointmentService}
}

// Create handles POST /api/appointments. A successful booking returns 201
// with the confirmed slot.
func (c *AppointmentController) Create(ctx *gin.Context) {
	var req dto.AppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	appt, err := c.appointmentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewBookedSlotResponse(appt))
}

// GetByID handles GET /api/appointments/:id.
func (c *AppointmentController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	appt, err := c.appointmentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appt)
}

// GetAll handles GET /api/appointments.
func (c *AppointmentController) GetAll(ctx *gin.Context) {
	appts, err := c.appointmentService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appts)
}

// Update handles PUT /api/appointments/:id.
func (c *AppointmentController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.AppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	appt, err := c.appointmentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appt)
}

// Delete handles DELETE /api/appointments/:id.
func (c *AppointmentController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.appointmentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Appointment deleted"})
}

// pathID parses the :id path parameter, writing the 400 itself on failure.
func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
