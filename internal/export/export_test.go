package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"kas-dashboard-svc/internal/aggregate"
	"kas-dashboard-svc/internal/models"
)

func sampleRekapan() aggregate.Rekapan {
	members := []models.Member{
		{ID: "m1", Nama: "Budi", Status: models.MemberActive},
		{ID: "m2", Nama: `Siti "Ani"`, Status: models.MemberActive},
	}
	invoices := []models.Invoice{
		{ID: "i1", MemberID: "m1", Periode: "012025", Amount: 50000, Status: models.InvoicePaid},
		{ID: "i2", MemberID: "m1", Periode: "022025", Amount: 50000, Status: models.InvoiceUnpaid},
		{ID: "i3", MemberID: "m2", Periode: "022025", Amount: 1250000, Status: models.InvoicePaid},
	}
	return aggregate.BuildRekapan(members, invoices)
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	assert.Equal(t, "Rp 50.000", FormatRupiah(50000))
	assert.Equal(t, "Rp 1.250.000", FormatRupiah(1250000))
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, 3, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "Rekapan_Uang_Kas_2025-03-07.csv", FileName(now, FormatCSV))
	assert.Equal(t, "Rekapan_Uang_Kas_2025-03-07.xlsx", FileName(now, FormatXLSX))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestBuildCSV(t *testing.T) {
	data, err := BuildCSV(sampleRekapan())
	require.NoError(t, err)

	want := "Nama Member,012025,022025,Total Lunas,Total Belum,Total Bayar\n" +
		`"Budi",LUNAS,BELUM,1,1,"Rp 50.000"` + "\n" +
		`"Siti ""Ani""",BELUM,LUNAS,1,1,"Rp 1.250.000"` + "\n"
	assert.Equal(t, want, string(data))
}

func TestBuildCSVEmpty(t *testing.T) {
	data, err := BuildCSV(aggregate.BuildRekapan(nil, nil))
	require.NoError(t, err)
	assert.Equal(t, "Nama Member,Total Lunas,Total Belum,Total Bayar\n", string(data))
}

func TestBuildXLSX(t *testing.T) {
	data, err := Build(FormatXLSX, sampleRekapan())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Nama Member", "012025", "022025", "Total Lunas", "Total Belum", "Total Bayar"}, rows[0])
	assert.Equal(t, []string{"Budi", "LUNAS", "BELUM", "1", "1", "Rp 50.000"}, rows[1])

	width, err := f.GetColWidth(SheetName, "A")
	require.NoError(t, err)
	assert.Equal(t, float64(nameColWidth), width)
	width, err = f.GetColWidth(SheetName, "F")
	require.NoError(t, err)
	assert.Equal(t, float64(totalColWidth), width)
}
