package search

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

// ExportSheet names the worksheet holding exported rows.
const ExportSheet = "Shipments"

const exportBatchSize = 500

// ExportColumns is the header row of the export workbook.
var ExportColumns = []string{
	"Date", "Mode", "Company", "Origin Country", "Origin City", "Destination Country",
	"Destination City", "HS Code", "Carrier", "Vessel", "BOL", "Weight (kg)", "Containers",
}

func exportRow(s domain.Shipment) []interface{} {
	return []interface{}{
		s.ShipmentDate, string(s.Mode), s.CompanyName, s.OriginCountry, s.OriginCity,
		s.DestinationCountry, s.DestinationCity, s.HSCode, s.Carrier, s.VesselName,
		s.BOLNumber, s.WeightKg, s.ContainerCount,
	}
}

// Export collects up to the plan's export row limit and writes them as an XLSX workbook.
// It returns the number of data rows written.
func (s *Service) Export(ctx context.Context, principal domain.Principal, values url.Values, w io.Writer) (int, error) {
	maxRows := s.config.Get().Limits(principal.Plan).MaxExportRows
	if maxRows <= 0 {
		return 0, appErrors.NewValidation("export is not available on this plan")
	}

	req := s.Request(principal, values)
	req.Offset = 0

	var rows []domain.Shipment
	for len(rows) < maxRows {
		req.Limit = exportBatchSize
		if remaining := maxRows - len(rows); remaining < req.Limit {
			req.Limit = remaining
		}
		items, total, err := s.repo.SearchUnified(ctx, req)
		if err != nil {
			s.metrics.RecordSearch(string(req.Mode), "error")
			return 0, appErrors.NewUpstream("export query failed", err)
		}
		rows = append(rows, items...)
		if len(items) == 0 || !domain.HasMore(req.Offset, len(items), total) {
			break
		}
		req.Offset += len(items)
	}
	s.metrics.RecordSearch(string(req.Mode), "export")

	if err := writeWorkbook(rows, w); err != nil {
		return 0, appErrors.NewInternal("failed to write export", err)
	}
	s.logger.Info("Search export written", zap.Int("rows", len(rows)), zap.String("plan", string(principal.Plan)))
	return len(rows), nil
}

func writeWorkbook(rows []domain.Shipment, w io.Writer) error {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", ExportSheet)

	header := make([]interface{}, len(ExportColumns))
	for i, c := range ExportColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, s := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := exportRow(s)
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return f.Write(w)
}
