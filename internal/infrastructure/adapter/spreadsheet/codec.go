// Package spreadsheet is the tabular-file boundary: uploaded refund batches
// come in as xlsx/xls/csv, refund exports go out as xlsx.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
	errs "github.com/payless-tz/payment-reconciler/internal/domain/error"
)

// Upload ID column names, as produced by the channel back-offices.
const (
	ColumnOrderID          = "ORDERID"
	ColumnSalesOrderNumber = "SALES_ORDER_NUMBER"
)

// ExportSheetName is the sheet refund exports are written to.
const ExportSheetName = "Refunds"

// Row is one spreadsheet row keyed by upper-cased, trimmed column name.
type Row map[string]string

// Parse decodes an uploaded file into rows. The first row is the header.
// Supported extensions: .xlsx, .xls, .csv.
func Parse(data []byte, filename string) ([]Row, error) {
	if len(data) == 0 {
		return nil, errs.ErrEmptyFile
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return parseExcel(data)
	case ".csv":
		return parseCSV(data)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedFileType, filepath.Ext(filename))
	}
}

func parseExcel(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrFileParse, err.Error())
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errs.ErrEmptyFile
	}
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrFileParse, err.Error())
	}
	return tableToRows(cells)
}

func parseCSV(data []byte) ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	var cells [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrFileParse, err.Error())
		}
		cells = append(cells, record)
	}
	return tableToRows(cells)
}

func tableToRows(cells [][]string) ([]Row, error) {
	if len(cells) < 2 {
		return nil, errs.ErrEmptyFile
	}
	header := make([]string, len(cells[0]))
	for i, name := range cells[0] {
		header[i] = strings.ToUpper(strings.TrimSpace(name))
	}

	rows := make([]Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(line) {
				row[name] = strings.TrimSpace(line[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ExtractTransactionIDs pulls the external transaction IDs out of parsed
// rows. Each back-office names the ID column differently, so the lookup is
// method-specific with a fallback to any known column. Blank cells are
// skipped.
func ExtractTransactionIDs(rows []Row, method string) ([]string, error) {
	if len(rows) == 0 {
		return nil, errs.ErrEmptyFile
	}

	column := columnForMethod(method)
	if !hasColumn(rows, column) {
		column = ""
		for _, candidate := range []string{ColumnOrderID, ColumnSalesOrderNumber} {
			if hasColumn(rows, candidate) {
				column = candidate
				break
			}
		}
	}
	if column == "" {
		return nil, errs.ErrColumnNotFound
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if id := row[column]; id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, errs.ErrEmptyFile
	}
	return ids, nil
}

func columnForMethod(method string) string {
	switch entity.PaymentMethod(method) {
	case entity.MethodMPesa:
		return ColumnSalesOrderNumber
	default:
		return ColumnOrderID
	}
}

func hasColumn(rows []Row, column string) bool {
	for _, row := range rows {
		if _, ok := row[column]; ok {
			return true
		}
	}
	return false
}

// Serialize writes refund export rows into an xlsx workbook with the fixed
// header consumed by the finance side.
func Serialize(rows []entity.RefundExportRow, sheetName string) ([]byte, error) {
	if sheetName == "" {
		sheetName = ExportSheetName
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}

	header := []any{"TRANSACTION_ID", "MSISDN", "STATUS", "AMOUNT"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{row.TransactionID, row.MSISDN, row.Status, row.Amount}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
