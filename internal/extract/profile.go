package extract

// Profile describes the column layout of one extract format. The supplier
// has changed layouts over time without notice; adding a format is adding a
// Profile here.
type Profile struct {
	Name         string
	ShipmentCol  string
	TrackingCol  string
	BaseCol      string
	SurchargeCol string
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	return []string{p.ShipmentCol, p.TrackingCol, p.BaseCol, p.SurchargeCol}
}

// profiles is the ordered list of known extract layouts. More specific
// profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:         "cost-detail-v2",
		ShipmentCol:  "ShipmentId",
		TrackingCol:  "TrackingNumber",
		BaseCol:      "FulfillmentCost",
		SurchargeCol: "TotalSurcharge",
	},
	{
		Name:         "legacy",
		ShipmentCol:  "Shipment ID",
		TrackingCol:  "Tracking #",
		BaseCol:      "Base Cost",
		SurchargeCol: "Surcharge",
	},
}
