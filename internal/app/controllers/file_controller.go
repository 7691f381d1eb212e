package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ycelik/clinicore/internal/app/models/dto"
	"github.com/ycelik/clinicore/internal/app/services"
	"github.com/ycelik/clinicore/internal/middleware"
)

// FileController handles medical file operations
type FileController struct {
	fileService *services.FileService
}

// NewFileController creates a new FileController
func NewFileController(fileService *services.FileService) *FileController {
	return &FileController{fileService: fileService}
}

// Upload handles POST /api/file/upload. The file arrives as multipart form
// data with an optional patientId field.
func (c *FileController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing file")
		errorDetail = errorDetail.WithDetails("Request must include a 'file' form field")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var patientID *int64
	if raw := ctx.PostForm("patientId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid patientId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		patientID = &id
	}

	identity := middleware.IdentityFromContext(ctx)
	file, err := c.fileService.Upload(ctx.Request.Context(), identity, fileHeader, patientID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewFileInfoResponse(file))
}

// Download handles GET /api/file/download/:id, serving the bytes as an
// attachment.
func (c *FileController) Download(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	identity := middleware.IdentityFromContext(ctx)
	file, fullPath, err := c.fileService.Fetch(ctx.Request.Context(), identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(fullPath, file.FileName)
}

// Preview handles GET /api/file/preview/:id, serving the bytes inline so
// browsers render images and PDFs in place.
func (c *FileController) Preview(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	identity := middleware.IdentityFromContext(ctx)
	file, fullPath, err := c.fileService.Fetch(ctx.Request.Context(), identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if file.ContentType != nil {
		ctx.Header("Content-Type", *file.ContentType)
	}
	ctx.Header("Content-Disposition", `inline; filename="`+file.FileName+`"`)
	ctx.File(fullPath)
}

// GetInfo handles GET /api/file/info/:id.
func (c *FileController) GetInfo(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	identity := middleware.IdentityFromContext(ctx)
	file, err := c.fileService.GetInfo(ctx.Request.Context(), identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewFileInfoResponse(file))
}

// ListAll handles GET /api/file, the whole archive for privileged callers.
func (c *FileController) ListAll(ctx *gin.Context) {
	identity := middleware.IdentityFromContext(ctx)
	files, err := c.fileService.ListAll(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewFileInfoResponses(files))
}

// ListByPatient handles GET /api/file/patient/:patientId.
func (c *FileController) ListByPatient(ctx *gin.Context) {
	patientID, err := strconv.ParseInt(ctx.Param("patientId"), 10, 64)
	if err != nil || patientID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid patient ID format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	identity := middleware.IdentityFromContext(ctx)
	files, err := c.fileService.ListByPatient(ctx.Request.Context(), identity, patientID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewFileInfoResponses(files))
}

// Update handles PUT /api/file/:id, a metadata-only update.
func (c *FileController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.FileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	identity := middleware.IdentityFromContext(ctx)
	file, err := c.fileService.UpdateMetadata(ctx.Request.Context(), identity, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewFileInfoResponse(file))
}

// Delete handles DELETE /api/file/:id.
func (c *FileController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	identity := middleware.IdentityFromContext(ctx)
	if err := c.fileService.Delete(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "File deleted"})
}
