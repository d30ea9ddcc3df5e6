package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"medpractice/doctor-dashboard/internal/service"
)

const (
	exportFileName = "doctor-dashboard-data.json"
	maxImportBytes = 10 << 20
)

// DataHandler serves the settings page export/import actions.
type DataHandler struct {
	store          *service.Store
	archiveService service.ArchiveService
}

// NewDataHandler creates a new DataHandler. archiveService is always set; it reports
// ErrArchiveUnavailable itself when no bucket is configured.
func NewDataHandler(store *service.Store, archiveService service.ArchiveService) *DataHandler {
	return &DataHandler{store: store, archiveService: archiveService}
}

// Export godoc
// @Summary Download the whole dataset
// @Tags Data
// @Produce json
// @Success 200 {object} domain.Dataset
// @Router /data/export [get]
func (h *DataHandler) Export(c *gin.Context) {
	data, err := h.store.ExportData()
	if err != nil {
		respondServiceError(c, err, "Failed to export data.")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	c.Data(http.StatusOK, "application/json", data)
}

// Import godoc
// @Summary Merge an exported dataset over the current one
// @Description Accepts the JSON document as the request body or as a multipart "file" field.
// @Tags Data
// @Accept json
// @Accept mpfd
// @Produce json
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H "Invalid JSON"
// @Router /data/import [post]
func (h *DataHandler) Import(c *gin.Context) {
	data, err := readImportBody(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Could not read import: "+err.Error())
		return
	}
	if err := h.store.ImportData(data); err != nil {
		respondServiceError(c, err, "Failed to import data.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data imported!"})
}

func readImportBody(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile("file")
		if err != nil {
			return nil, err
		}
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return io.ReadAll(c.Request.Body)
}

// Archive godoc
// @Summary Upload an export to object storage and return a download link
// @Tags Data
// @Produce json
// @Success 201 {object} domain.ExportArchive
// @Failure 503 {object} gin.H "Archive storage not configured"
// @Router /data/archive [post]
func (h *DataHandler) Archive(c *gin.Context) {
	archive, err := h.archiveService.ArchiveExport(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to archive export.")
		return
	}
	c.JSON(http.StatusCreated, archive)
}
