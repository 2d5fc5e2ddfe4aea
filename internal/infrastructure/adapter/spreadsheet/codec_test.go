package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/payless-tz/payment-reconciler/internal/domain/entity"
	errs "github.com/payless-tz/payment-reconciler/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func xlsxFixture(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	t.Run("CSV upload", func(t *testing.T) {
		data := []byte("orderid,amount\nTX1,1000\nTX2,2000\n")

		rows, err := Parse(data, "batch.csv")

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "TX1", rows[0][ColumnOrderID])
		assert.Equal(t, "2000", rows[1]["AMOUNT"])
	})

	t.Run("CSV with ragged rows", func(t *testing.T) {
		data := []byte("ORDERID,AMOUNT\nTX1\nTX2,2000,extra\n")

		rows, err := Parse(data, "batch.csv")

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "TX1", rows[0][ColumnOrderID])
		assert.Equal(t, "", rows[0]["AMOUNT"])
	})

	t.Run("XLSX upload", func(t *testing.T) {
		data := xlsxFixture(t, [][]any{
			{" sales_order_number ", "Status"},
			{"TX-A", "failed"},
			{"TX-B", "failed"},
		})

		rows, err := Parse(data, "upload.xlsx")

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "TX-A", rows[0][ColumnSalesOrderNumber])
		assert.Equal(t, "failed", rows[1]["STATUS"])
	})

	t.Run("Empty payload rejected", func(t *testing.T) {
		_, err := Parse(nil, "batch.csv")
		assert.ErrorIs(t, err, errs.ErrEmptyFile)
	})

	t.Run("Header-only file rejected", func(t *testing.T) {
		_, err := Parse([]byte("ORDERID,AMOUNT\n"), "batch.csv")
		assert.ErrorIs(t, err, errs.ErrEmptyFile)
	})

	t.Run("Unknown extension rejected", func(t *testing.T) {
		_, err := Parse([]byte("whatever"), "batch.pdf")
		assert.ErrorIs(t, err, errs.ErrUnsupportedFileType)
	})

	t.Run("Corrupt xlsx rejected", func(t *testing.T) {
		_, err := Parse([]byte("this is not a workbook"), "batch.xlsx")
		assert.ErrorIs(t, err, errs.ErrFileParse)
	})
}

func TestExtractTransactionIDs(t *testing.T) {
	t.Run("M-PESA uses the sales order column", func(t *testing.T) {
		rows := []Row{
			{ColumnSalesOrderNumber: "TX1"},
			{ColumnSalesOrderNumber: "TX2"},
		}

		ids, err := ExtractTransactionIDs(rows, "M-PESA")

		require.NoError(t, err)
		assert.Equal(t, []string{"TX1", "TX2"}, ids)
	})

	t.Run("Other methods use the order ID column", func(t *testing.T) {
		rows := []Row{
			{ColumnOrderID: "TX1"},
			{ColumnOrderID: "TX2"},
		}

		ids, err := ExtractTransactionIDs(rows, "SELCOM")

		require.NoError(t, err)
		assert.Equal(t, []string{"TX1", "TX2"}, ids)
	})

	t.Run("Falls back to any known column", func(t *testing.T) {
		rows := []Row{
			{ColumnSalesOrderNumber: "TX1"},
		}

		ids, err := ExtractTransactionIDs(rows, "SELCOM")

		require.NoError(t, err)
		assert.Equal(t, []string{"TX1"}, ids)
	})

	t.Run("Blank cells skipped", func(t *testing.T) {
		rows := []Row{
			{ColumnOrderID: "TX1"},
			{ColumnOrderID: ""},
			{ColumnOrderID: "TX3"},
		}

		ids, err := ExtractTransactionIDs(rows, "SELCOM")

		require.NoError(t, err)
		assert.Equal(t, []string{"TX1", "TX3"}, ids)
	})

	t.Run("No known column", func(t *testing.T) {
		rows := []Row{{"REFERENCE": "TX1"}}

		_, err := ExtractTransactionIDs(rows, "SELCOM")
		assert.ErrorIs(t, err, errs.ErrColumnNotFound)
	})

	t.Run("All cells blank", func(t *testing.T) {
		rows := []Row{{ColumnOrderID: ""}}

		_, err := ExtractTransactionIDs(rows, "SELCOM")
		assert.ErrorIs(t, err, errs.ErrEmptyFile)
	})

	t.Run("No rows", func(t *testing.T) {
		_, err := ExtractTransactionIDs(nil, "SELCOM")
		assert.ErrorIs(t, err, errs.ErrEmptyFile)
	})
}

func TestSerialize(t *testing.T) {
	rows := []entity.RefundExportRow{
		{TransactionID: "TX1", MSISDN: "255712000001", Status: "NOT SUCCESFUL", Amount: 1500},
		{TransactionID: "N/A", MSISDN: "255712000002", Status: "PENDING", Amount: 0},
	}

	data, err := Serialize(rows, "")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, ExportSheetName, f.GetSheetName(0))

	cells, err := f.GetRows(ExportSheetName)
	require.NoError(t, err)
	require.Len(t, cells, 3)
	assert.Equal(t, []string{"TRANSACTION_ID", "MSISDN", "STATUS", "AMOUNT"}, cells[0])
	assert.Equal(t, "TX1", cells[1][0])
	assert.Equal(t, "NOT SUCCESFUL", cells[1][2])
	assert.Equal(t, "1500", cells[1][3])
	assert.Equal(t, "N/A", cells[2][0])
}

func TestSerializeEmpty(t *testing.T) {
	data, err := Serialize(nil, "Refunds")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows("Refunds")
	require.NoError(t, err)
	require.Len(t, cells, 1)
}
