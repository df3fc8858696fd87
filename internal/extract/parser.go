package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Parser reads a daily cost-extract CSV and produces decomposition rows. It
// auto-detects which layout the supplier used by matching column headers
// against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// nominalDatePattern matches the date embedded in extract filenames, e.g.
// "shipping_costs_2024-12-23.csv".
var nominalDatePattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)

// ParseFile parses an extract file, deriving the nominal date from the
// filename.
func (p *Parser) ParseFile(path string) (*File, error) {
	m := nominalDatePattern.FindString(filepath.Base(path))
	if m == "" {
		return nil, fmt.Errorf("no nominal date in filename %q", filepath.Base(path))
	}

	nominalDate, err := time.Parse(time.DateOnly, m)
	if err != nil {
		return nil, fmt.Errorf("parsing nominal date %q: %w", m, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening extract: %w", err)
	}
	defer f.Close()

	return p.Parse(f, nominalDate)
}

func (p *Parser) Parse(r io.Reader, nominalDate time.Time) (*File, error) {
	utf8r, err := newUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching extract layout found")
	}

	parsed, err := parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
	if err != nil {
		return nil, err
	}

	return &File{NominalDate: nominalDate, Rows: parsed}, nil
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile. Some
// extracts carry preamble lines before the header.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]Row, error) {
	shipmentIdx := cols[p.ShipmentCol]
	trackingIdx := cols[p.TrackingCol]
	baseIdx := cols[p.BaseCol]
	surchargeIdx := cols[p.SurchargeCol]

	var out []Row

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		shipmentID := cellValue(row, shipmentIdx)
		if shipmentID == "" {
			// Footer or blank separator line.
			continue
		}

		tracking := cellValue(row, trackingIdx)
		if tracking == "" {
			return nil, fmt.Errorf("row %d: missing tracking number for shipment %s", rowNum, shipmentID)
		}

		baseCents, err := parseCents(cellValue(row, baseIdx))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing base cost: %w", rowNum, err)
		}

		surchargeCents, err := parseCents(cellValue(row, surchargeIdx))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing surcharge: %w", rowNum, err)
		}

		out = append(out, Row{
			ShipmentID:     shipmentID,
			TrackingNumber: tracking,
			BaseCents:      baseCents,
			SurchargeCents: surchargeCents,
		})
	}

	return out, nil
}

// parseCents parses a plain decimal amount ("12.34", "1,234.56") into cents.
func parseCents(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}

	clean := strings.ReplaceAll(s, ",", "")
	clean = strings.TrimPrefix(clean, "$")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
