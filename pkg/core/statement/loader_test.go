package statement

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestLoad(t *testing.T) {
	r := buildWorkbook(t, [][]interface{}{
		{"Header A", "Header B", "Header C"}, // dropped regardless of content
		{"TỔNG CỘNG TÀI SẢN", 1000, 1500},
		{"TÀI SẢN NGẮN HẠN", 400.5, 600},
	})

	rows, err := Load(r)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "TỔNG CỘNG TÀI SẢN", rows[0].Label)
	assert.Equal(t, 1000.0, rows[0].Prior)
	assert.Equal(t, 1500.0, rows[0].Current)
	assert.Equal(t, 400.5, rows[1].Prior)
}

func TestLoad_CoercesMalformedValuesToZero(t *testing.T) {
	r := buildWorkbook(t, [][]interface{}{
		{"Chỉ tiêu", "Năm trước", "Năm sau"},
		{"Tiền và tương đương tiền", "n/a", "1,234"},
		{"Phải thu khách hàng", "", 50},
	})

	rows, err := Load(r)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Unparseable text is absence, not an error.
	assert.Zero(t, rows[0].Prior)
	// Thousands separators in displayed values are tolerated.
	assert.Equal(t, 1234.0, rows[0].Current)
	assert.Zero(t, rows[1].Prior)
	assert.Equal(t, 50.0, rows[1].Current)
}

func TestLoad_SkipsEmptyRowsAndShortRows(t *testing.T) {
	r := buildWorkbook(t, [][]interface{}{
		{"Chỉ tiêu", "Năm trước", "Năm sau"},
		{"", "", ""},
		{"NỢ NGẮN HẠN"}, // value columns missing entirely
	})

	rows, err := Load(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "NỢ NGẮN HẠN", rows[0].Label)
	assert.Zero(t, rows[0].Prior)
	assert.Zero(t, rows[0].Current)
}

func TestLoad_RejectsNonWorkbook(t *testing.T) {
	_, err := Load(strings.NewReader("not a spreadsheet"))
	require.Error(t, err)
}

func TestLoad_RejectsHeaderOnly(t *testing.T) {
	r := buildWorkbook(t, [][]interface{}{
		{"Chỉ tiêu", "Năm trước", "Năm sau"},
	})
	_, err := Load(r)
	require.Error(t, err)
}
