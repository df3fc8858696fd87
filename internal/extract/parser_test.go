package extract_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/rebill/internal/extract"
)

var nominal = time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC)

func TestParser_Parse_CostDetailV2(t *testing.T) {
	csvData := strings.Join([]string{
		"ShipmentId,TrackingNumber,FulfillmentCost,TotalSurcharge",
		"12001,1Z999AA10123456784,10.50,1.25",
		"12002,1Z999AA10123456785,8.00,0.00",
	}, "\n")

	file, err := extract.NewParser().Parse(strings.NewReader(csvData), nominal)
	require.NoError(t, err)

	require.Len(t, file.Rows, 2)
	assert.Equal(t, extract.Row{
		ShipmentID:     "12001",
		TrackingNumber: "1Z999AA10123456784",
		BaseCents:      1050,
		SurchargeCents: 125,
	}, file.Rows[0])
}

func TestParser_Parse_LegacyProfileWithPreamble(t *testing.T) {
	csvData := strings.Join([]string{
		"Daily Shipping Cost Report",
		"Generated: 2024-12-23",
		"",
		"Shipment ID,Tracking #,Base Cost,Surcharge",
		`12001,1Z999AA10123456784,"1,050.00",$12.50`,
	}, "\n")

	file, err := extract.NewParser().Parse(strings.NewReader(csvData), nominal)
	require.NoError(t, err)

	require.Len(t, file.Rows, 1)
	assert.Equal(t, int64(105000), file.Rows[0].BaseCents)
	assert.Equal(t, int64(1250), file.Rows[0].SurchargeCents)
}

func TestParser_Parse_SkipsBlankAndFooterLines(t *testing.T) {
	csvData := strings.Join([]string{
		"ShipmentId,TrackingNumber,FulfillmentCost,TotalSurcharge",
		"12001,1Z999AA10123456784,10.50,1.25",
		",,,",
		"", // trailing blank
	}, "\n")

	file, err := extract.NewParser().Parse(strings.NewReader(csvData), nominal)
	require.NoError(t, err)
	assert.Len(t, file.Rows, 1)
}

func TestParser_Parse_Errors(t *testing.T) {
	type testCase struct {
		name    string
		csvData string
		wantErr string
	}

	tests := []testCase{
		{
			name:    "Unknown layout",
			csvData: "Foo,Bar\n1,2",
			wantErr: "no matching extract layout",
		},
		{
			name: "Missing tracking",
			csvData: strings.Join([]string{
				"ShipmentId,TrackingNumber,FulfillmentCost,TotalSurcharge",
				"12001,,10.50,1.25",
			}, "\n"),
			wantErr: "missing tracking number",
		},
		{
			name: "Bad amount",
			csvData: strings.Join([]string{
				"ShipmentId,TrackingNumber,FulfillmentCost,TotalSurcharge",
				"12001,1Z999,abc,1.25",
			}, "\n"),
			wantErr: "parsing base cost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extract.NewParser().Parse(strings.NewReader(tt.csvData), nominal)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParser_ParseFile_NominalDateFromFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shipping_costs_2024-12-23.csv")

	csvData := "ShipmentId,TrackingNumber,FulfillmentCost,TotalSurcharge\n12001,1Z999,10.00,0.00\n"
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o644))

	file, err := extract.NewParser().ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, nominal, file.NominalDate)
	// Rows apply to the charge date one day before the nominal date.
	assert.Equal(t, time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC), file.ChargeDate())
}

func TestParser_ParseFile_NoDateInFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shipping_costs.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := extract.NewParser().ParseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no nominal date")
}

func TestParser_Parse_Windows1252Encoding(t *testing.T) {
	// "Montréal" with a Latin-1 é byte; must survive transcoding.
	csvData := []byte("ShipmentId,TrackingNumber,FulfillmentCost,TotalSurcharge\n12001,1Z999-Montr\xe9al,10.00,0.00\n")

	file, err := extract.NewParser().Parse(strings.NewReader(string(csvData)), nominal)
	require.NoError(t, err)

	require.Len(t, file.Rows, 1)
	assert.Equal(t, "1Z999-Montréal", file.Rows[0].TrackingNumber)
}
