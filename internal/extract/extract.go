// Package extract parses the secondary daily cost-extract files. One file
// arrives per calendar day and supplies the base/surcharge decomposition for
// shipping charges dated one day before the file's nominal date.
package extract

import "time"

// Row is one decomposition record. Matching downstream is by
// (shipment id, tracking number), never by date alone: a reshipment carries
// two shipping charges for the same shipment under different tracking
// numbers.
type Row struct {
	ShipmentID     string
	TrackingNumber string
	BaseCents      int64
	SurchargeCents int64
}

// File is one parsed daily extract.
type File struct {
	NominalDate time.Time
	Rows        []Row
}

// ChargeDate is the transaction charge date this file's rows apply to: one
// day before the extract's nominal "as of" date.
func (f *File) ChargeDate() time.Time {
	return f.NominalDate.AddDate(0, 0, -1)
}
