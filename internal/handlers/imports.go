package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/services"
)

type ImportHandler struct {
	log           *logger.Logger
	importService services.ImportService
}

func NewImportHandler(log *logger.Logger, importService services.ImportService) *ImportHandler {
	return &ImportHandler{
		log:           log.With("handler", "ImportHandler"),
		importService: importService,
	}
}

type importFunc func(ctx context.Context, tx *gorm.DB, file io.Reader, dryRun bool) (*services.ImportResult, error)

// handleImport is the shared multipart plumbing: one "file" field, a
// dry_run query flag defaulting to true.
func (h *ImportHandler) handleImport(c *gin.Context, name string, apply importFunc) {
	header, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "missing_file", err)
		return
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		RespondError(c, http.StatusBadRequest, "csv_required", nil)
		return
	}
	file, err := header.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "unreadable_file", err)
		return
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	dryRun := c.DefaultQuery("dry_run", "true") != "false"
	result, err := apply(c.Request.Context(), nil, file, dryRun)
	if err != nil {
		h.log.Error("Import failed", "import", name, "dryRun", dryRun, "error", err)
		RespondError(c, http.StatusInternalServerError, "import_failed", err)
		return
	}
	RespondOK(c, result)
}

func (h *ImportHandler) InventorySnapshots(c *gin.Context) {
	h.handleImport(c, "inventory-snapshots", h.importService.ImportInventorySnapshots)
}

func (h *ImportHandler) Receipts(c *gin.Context) {
	h.handleImport(c, "receipts", h.importService.ImportReceipts)
}

func (h *ImportHandler) DemandActuals(c *gin.Context) {
	h.handleImport(c, "demand-actuals", h.importService.ImportDemandActuals)
}

func (h *ImportHandler) SamplesWithdrawals(c *gin.Context) {
	h.handleImport(c, "samples-withdrawals", h.importService.ImportSamplesWithdrawals)
}

func (h *ImportHandler) Products(c *gin.Context) {
	h.handleImport(c, "products", h.importService.ImportProducts)
}
