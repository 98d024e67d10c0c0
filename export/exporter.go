package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/samenwerkt-wbd/members-backend/config"
	"github.com/samenwerkt-wbd/members-backend/mailer"
	"github.com/samenwerkt-wbd/members-backend/models"
	"github.com/xuri/excelize/v2"
)

// Table names accepted by Run.
const (
	TableMemberships = "memberships"
	TableCafe        = "cafe"
)

// Lister is the read-all side of the row store.
type Lister interface {
	ListMemberships() ([]models.Membership, error)
	ListCafeRegistrations() ([]models.CafeRegistration, error)
}

// Exporter reads all rows of one table, writes them to a spreadsheet and
// emails the file to the administrator. The file is deleted only after a
// successful send; a failed send leaves it on disk for manual recovery.
type Exporter struct {
	store    Lister
	sender   mailer.Sender
	settings *config.ExportSettings
	now      func() time.Time
}

// NewExporter creates a new exporter
func NewExporter(store Lister, sender mailer.Sender, settings *config.ExportSettings) *Exporter {
	return &Exporter{
		store:    store,
		sender:   sender,
		settings: settings,
		now:      time.Now,
	}
}

// Run executes one export of the named table. Any failure before the
// email step aborts the run; nothing is partially emailed.
func (e *Exporter) Run(table string) error {
	flat, count, err := e.read(table)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("samenwerkt_%s_export_%s.xlsx", exportName(table), e.now().Format("20060102_150405"))
	path := filepath.Join(e.settings.OutputDir, filename)

	if err := writeSpreadsheet(flat, e.settings.SheetName, path, e.settings.MaxColumnWidth); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	slog.Info("Created spreadsheet export", "path", path, "records", count)

	msg, err := mailer.NewExportMessage(e.settings.From, e.settings.Recipient, path, count, e.now())
	if err != nil {
		return fmt.Errorf("failed to build export email (file kept at %s): %w", path, err)
	}

	if err := e.sender.DialAndSend(msg); err != nil {
		slog.Error("Export email failed, keeping file for manual recovery", "path", path, "error", err)
		return fmt.Errorf("failed to send export email (file kept at %s): %w", path, err)
	}

	slog.Info("Export email sent", "recipient", e.settings.Recipient, "records", count)

	if err := os.Remove(path); err != nil {
		slog.Warn("Could not remove transient export file", "path", path, "error", err)
	}

	return nil
}

// read loads and flattens the requested table.
func (e *Exporter) read(table string) (*Table, int, error) {
	switch table {
	case TableCafe:
		rows, err := e.store.ListCafeRegistrations()
		if err != nil {
			return nil, 0, err
		}
		flat, err := FlattenCafeRegistrations(rows)
		return flat, len(rows), err
	case TableMemberships, "":
		rows, err := e.store.ListMemberships()
		if err != nil {
			return nil, 0, err
		}
		flat, err := FlattenMemberships(rows)
		return flat, len(rows), err
	default:
		return nil, 0, fmt.Errorf("unknown export table: %s", table)
	}
}

func exportName(table string) string {
	if table == TableCafe {
		return "cafe"
	}
	return "leden"
}

// writeSpreadsheet writes the table to a single-sheet .xlsx file with
// auto-sized columns.
func writeSpreadsheet(table *Table, sheetName, path string, maxWidth float64) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	widths := make([]float64, len(table.Headers))

	for col, header := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
		widths[col] = float64(len(header))
	}

	for rowIdx, row := range table.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
			if w := float64(len(value)); w > widths[col] {
				widths[col] = w
			}
		}
	}

	for col := range table.Headers {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		width := widths[col] + 2
		if width > maxWidth {
			width = maxWidth
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
