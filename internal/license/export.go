package license

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/atotto/clipboard"

	"github.com/licensedesk/licensedesk/internal/logging"
)

var csvHeader = []string{
	"ID", "Product", "Company", "Scope", "Type", "Total", "Perpetual",
	"Expiry", "Currency", "Billing", "Status",
}

// CSV renders rows as CSV with a header line.
func CSV(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.ID), r.Product, r.Company, r.Scope, r.Type,
			strconv.Itoa(r.Total), strconv.Itoa(r.Perpetual),
			r.Expiry, r.Currency, r.Billing, r.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", r.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportFileName returns the file name used for an export taken at t.
func ExportFileName(t time.Time) string {
	return "licenses-" + t.Format("20060102-150405") + ".csv"
}

// ExportFile writes rows as CSV into dir and returns the file path.
func ExportFile(dir string, rows []Row, now time.Time) (string, error) {
	data, err := CSV(rows)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, ExportFileName(now))

	logging.Time("export licenses csv", func() {
		err = os.WriteFile(path, data, 0o644)
	})
	if err != nil {
		return "", fmt.Errorf("write export %s: %w", path, err)
	}
	logging.Info("licenses exported", "path", path, "rows", len(rows))
	return path, nil
}

// ClipboardWriter copies text to the system clipboard. Replaced in tests.
var ClipboardWriter = clipboard.WriteAll

// ExportClipboard copies rows as CSV to the clipboard.
func ExportClipboard(rows []Row) error {
	data, err := CSV(rows)
	if err != nil {
		return err
	}
	if err := ClipboardWriter(string(data)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
