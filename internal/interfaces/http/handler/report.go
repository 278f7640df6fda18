package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appreport "github.com/dukadash/backend/internal/application/report"
)

// uploadLimit caps report uploads independently of the global body limit
const uploadLimit = 25 << 20

// ReportHandler serves report export and file routes
type ReportHandler struct {
	BaseHandler
	exportService *appreport.ExportService
}

// NewReportHandler creates a ReportHandler
func NewReportHandler(exportService *appreport.ExportService) *ReportHandler {
	return &ReportHandler{exportService: exportService}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.POST("/generate", h.Generate)
		reports.POST("/upload", h.Upload)
		reports.GET("/files", h.ListFiles)
		reports.GET("/files/:id/download", h.Download)
		reports.DELETE("/files/:id", h.DeleteFile)
	}
}

// Generate renders a PDF report for the selected window and streams it
// back. The file is also stored for later download.
func (h *ReportHandler) Generate(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input appreport.GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	doc, err := h.exportService.Generate(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	writeDocument(c, doc)
}

// Upload stores a client-supplied report file
func (h *ReportHandler) Upload(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing file")
		return
	}
	if fileHeader.Size > uploadLimit {
		h.BadRequest(c, "File exceeds maximum allowed size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, uploadLimit))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	dto, err := h.exportService.Upload(c.Request.Context(), userID, fileHeader.Filename, contentType, data)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto)
}

// ListFiles returns the user's stored report files
func (h *ReportHandler) ListFiles(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	filter, err := bindFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	files, err := h.exportService.ListFiles(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, files)
}

// Download streams a stored report file
func (h *ReportHandler) Download(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid file ID")
		return
	}

	doc, err := h.exportService.Download(c.Request.Context(), userID, fileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	writeDocument(c, doc)
}

// DeleteFile removes a stored report file and its object
func (h *ReportHandler) DeleteFile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileID, err := pathID(c)
	if err != nil {
		h.BadRequest(c, "Invalid file ID")
		return
	}

	if err := h.exportService.DeleteFile(c.Request.Context(), userID, fileID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func writeDocument(c *gin.Context, doc *appreport.GeneratedDocument) {
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(doc.Bytes)))
	c.Data(http.StatusOK, doc.ContentType, doc.Bytes)
}
