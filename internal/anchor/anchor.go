// Package anchor holds the entities attribution joins against: shipments,
// returns, receiving orders, orders and inventory items. They are maintained
// by external sync jobs; this engine reads them and may trigger a point sync
// when resolution needs one that has not arrived yet.
package anchor

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("anchor not found")

type Shipment struct {
	ID             string
	ClientID       uuid.UUID
	TrackingNumber string
}

type Return struct {
	ID                 string
	ClientID           uuid.UUID
	OriginalShipmentID string
}

type ReceivingOrder struct {
	ID       string
	ClientID uuid.UUID
}

type Order struct {
	ID       string
	ClientID uuid.UUID
}

type InventoryItem struct {
	ID       string
	ClientID uuid.UUID
}
