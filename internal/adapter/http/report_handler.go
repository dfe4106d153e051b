package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"koperasi-backend/internal/usecase/report"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

// ExportSavingsReport streams the savings recap as a CSV attachment.
func (h *ReportHandler) ExportSavingsReport(c echo.Context) error {
	rows, err := h.uc.BuildSavingsReport(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, rows); err != nil {
		return writeDomainError(c, err)
	}

	filename := fmt.Sprintf("Rekap_Simpanan_Anggota_%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
