package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/supplyplan-backend/internal/logger"
)

// TemplateHandler serves example CSV files matching what the importers
// accept.
type TemplateHandler struct {
	log *logger.Logger
}

func NewTemplateHandler(log *logger.Logger) *TemplateHandler {
	return &TemplateHandler{log: log.With("handler", "TemplateHandler")}
}

type csvTemplate struct {
	filename string
	header   []string
	rows     [][]string
}

var csvTemplates = map[string]csvTemplate{
	"inventory-snapshots": {
		filename: "template_inventory_snapshots.csv",
		header:   []string{"week_start", "sku", "warehouse_code", "on_hand_qty"},
		rows: [][]string{
			{"2025-02-03", "SKU001", "WH1", "100"},
			{"2025-02-03", "SKU002", "WH1", "50"},
		},
	},
	"receipts": {
		filename: "template_receipts.csv",
		header:   []string{"week_start", "sku", "warehouse_code", "qty", "source_type"},
		rows: [][]string{
			{"2025-02-10", "SKU001", "WH1", "200", "PO"},
			{"2025-02-17", "SKU002", "WH1", "100", "TRANSFER"},
		},
	},
	"demand-actuals": {
		filename: "template_demand_actuals.csv",
		header:   []string{"week_start", "sku", "warehouse_code", "demand_type", "qty"},
		rows: [][]string{
			{"2025-02-03", "SKU001", "WH1", "CUSTOMER", "30"},
			{"2025-02-03", "SKU001", "WH1", "SAMPLES", "5"},
			{"2025-02-03", "SKU002", "WH1", "CUSTOMER", "20"},
		},
	},
	"samples-withdrawals": {
		filename: "template_samples_withdrawals.csv",
		header:   []string{"week_start", "sku", "warehouse_code", "qty"},
		rows: [][]string{
			{"2025-02-03", "SKU001", "WH1", "5"},
			{"2025-02-10", "SKU002", "WH1", "3"},
		},
	},
	"products": {
		filename: "template_products.csv",
		header:   []string{"sku", "name", "description"},
		rows: [][]string{
			{"SKU001", "Product A", "Description A"},
			{"SKU002", "Product B", "Description B"},
		},
	},
}

func (h *TemplateHandler) Get(c *gin.Context) {
	tmpl, ok := csvTemplates[c.Param("name")]
	if !ok {
		RespondError(c, http.StatusNotFound, "template_not_found", nil)
		return
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(tmpl.header)
	for _, row := range tmpl.rows {
		_ = w.Write(row)
	}
	w.Flush()
	respondCSV(c, tmpl.filename, &buf)
}
