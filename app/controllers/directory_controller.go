package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zipcodetw/zipcodetw/app/responses"
	"github.com/zipcodetw/zipcodetw/internal/ingest"
	"github.com/zipcodetw/zipcodetw/internal/zipdir"
)

// DirectoryController administers the zipcode directory.
type DirectoryController struct {
	builder *zipdir.Builder
	logger  *zap.Logger
}

// NewDirectoryController wires a Builder behind the admin controller.
func NewDirectoryController(builder *zipdir.Builder, logger *zap.Logger) *DirectoryController {
	return &DirectoryController{builder: builder, logger: logger}
}

// Load handles POST /v1/admin/directory/load: an uploaded CSV file field
// named "file" is parsed and loaded into the directory in one transaction.
func (dc *DirectoryController) Load(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MISSING_FILE",
			Message: "a \"file\" form field with the directory CSV is required: " + err.Error(),
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_FILE",
			Message: err.Error(),
		})
		return
	}
	defer f.Close()

	rows, err := ingest.ReadDirectoryCSV(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MALFORMED_CSV",
			Message: err.Error(),
		})
		return
	}

	start := time.Now()
	if err := dc.builder.Load(c.Request.Context(), rows); err != nil {
		dc.logger.Error("directory load failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "LOAD_ERROR",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.DirectoryLoadResponse{
		RowsLoaded:       len(rows),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	})
}
