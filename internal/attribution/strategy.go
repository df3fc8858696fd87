package attribution

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rebill/internal/anchor"
	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

// ErrMultiTenantInvoice means a settlement invoice carries transactions for
// more than one resolved tenant, which defeats sibling attribution. That is
// a data inconsistency to surface, never a guess to make.
var ErrMultiTenantInvoice = errors.New("settlement invoice spans multiple tenants")

//go:generate mockgen -source=strategy.go -destination=strategy_mock.go -package=attribution

// Anchors is the read snapshot strategies resolve against. Lookups return
// anchor.ErrNotFound on a miss; implementations may point-sync behind it.
type Anchors interface {
	Shipment(ctx context.Context, shipmentID string) (*anchor.Shipment, error)
	Return(ctx context.Context, returnID string) (*anchor.Return, error)
	ReceivingOrder(ctx context.Context, receivingID string) (*anchor.ReceivingOrder, error)
	Order(ctx context.Context, orderID string) (*anchor.Order, error)
	InventoryItem(ctx context.Context, inventoryItemID string) (*anchor.InventoryItem, error)
}

// Siblings answers which resolved tenants already appear on a settlement
// invoice.
type Siblings interface {
	ClientsOnProviderInvoice(ctx context.Context, providerInvoiceID string) ([]uuid.UUID, error)
}

// Strategy attempts to resolve the owning tenant of one transaction. It is
// pure with respect to the anchor snapshot: same snapshot, same answer. The
// bool reports whether resolution succeeded; false with a nil error simply
// passes the transaction to the next strategy.
type Strategy interface {
	Name() string
	Resolve(ctx context.Context, tx *transaction.Transaction) (uuid.UUID, bool, error)
}

// anchorStrategy interprets reference_id per reference_type and joins the
// matching anchor entity.
type anchorStrategy struct {
	anchors Anchors
}

func (anchorStrategy) Name() string { return "anchor" }

func (s anchorStrategy) Resolve(ctx context.Context, tx *transaction.Transaction) (uuid.UUID, bool, error) {
	if tx.ReferenceID == "" || tx.ReferenceID == "0" {
		return uuid.Nil, false, nil
	}

	switch tx.ReferenceType {
	case transaction.ReferenceShipment:
		return s.shipmentClient(ctx, tx.ReferenceID)

	case transaction.ReferenceReturn:
		return s.returnClient(ctx, tx.ReferenceID)

	case transaction.ReferenceWRO:
		ro, err := s.anchors.ReceivingOrder(ctx, tx.ReferenceID)
		if err != nil {
			return uuid.Nil, false, ignoreNotFound(err)
		}

		return ro.ClientID, true, nil

	case transaction.ReferenceFC:
		return s.storageClient(ctx, tx.ReferenceID)
	}

	return uuid.Nil, false, nil
}

func (s anchorStrategy) shipmentClient(ctx context.Context, shipmentID string) (uuid.UUID, bool, error) {
	sh, err := s.anchors.Shipment(ctx, shipmentID)
	if err != nil {
		return uuid.Nil, false, ignoreNotFound(err)
	}

	return sh.ClientID, true, nil
}

// returnClient resolves via the return anchor, falling back to the original
// shipment when the return row exists but has not learned its tenant yet.
func (s anchorStrategy) returnClient(ctx context.Context, returnID string) (uuid.UUID, bool, error) {
	ret, err := s.anchors.Return(ctx, returnID)
	if err != nil {
		return uuid.Nil, false, ignoreNotFound(err)
	}

	if ret.ClientID != uuid.Nil {
		return ret.ClientID, true, nil
	}

	if ret.OriginalShipmentID == "" {
		return uuid.Nil, false, nil
	}

	return s.shipmentClient(ctx, ret.OriginalShipmentID)
}

// storageClient handles the composite storage key
// "<facilityId>-<inventoryItemId>-<locationType>". The attribution join key
// is the middle portion; facility and location-type segments must never be
// read as an inventory id. Inventory ids can themselves contain hyphens, so
// the key is split on every hyphen and the outer segments stripped rather
// than assuming exactly three parts.
func (s anchorStrategy) storageClient(ctx context.Context, compositeKey string) (uuid.UUID, bool, error) {
	parts := strings.Split(compositeKey, "-")
	if len(parts) < 3 {
		return uuid.Nil, false, nil
	}

	inventoryItemID := strings.Join(parts[1:len(parts)-1], "-")
	if inventoryItemID == "" {
		return uuid.Nil, false, nil
	}

	item, err := s.anchors.InventoryItem(ctx, inventoryItemID)
	if err != nil {
		return uuid.Nil, false, ignoreNotFound(err)
	}

	return item.ClientID, true, nil
}

// siblingStrategy adopts the tenant of other transactions on the same
// settlement invoice. It only trusts single-tenant invoices; a multi-tenant
// match is a resolution failure, not a guess.
type siblingStrategy struct {
	siblings Siblings
}

func (siblingStrategy) Name() string { return "sibling-invoice" }

func (s siblingStrategy) Resolve(ctx context.Context, tx *transaction.Transaction) (uuid.UUID, bool, error) {
	if tx.ProviderInvoiceID == nil {
		return uuid.Nil, false, nil
	}

	clients, err := s.siblings.ClientsOnProviderInvoice(ctx, *tx.ProviderInvoiceID)
	if err != nil {
		return uuid.Nil, false, err
	}

	switch len(clients) {
	case 0:
		return uuid.Nil, false, nil
	case 1:
		return clients[0], true, nil
	default:
		return uuid.Nil, false, ErrMultiTenantInvoice
	}
}

// orderTokenPattern finds an embedded order id in the free-text annotation,
// e.g. "credit for order #4821" or "Order: 4821".
var orderTokenPattern = regexp.MustCompile(`(?i)\border[\s#:]*(\d+)`)

// freeTextStrategy parses an order-identifying token out of the transaction
// comment and resolves it against the order anchor.
type freeTextStrategy struct {
	anchors Anchors
}

func (freeTextStrategy) Name() string { return "free-text" }

func (s freeTextStrategy) Resolve(ctx context.Context, tx *transaction.Transaction) (uuid.UUID, bool, error) {
	if tx.Comment == "" {
		return uuid.Nil, false, nil
	}

	m := orderTokenPattern.FindStringSubmatch(tx.Comment)
	if m == nil {
		return uuid.Nil, false, nil
	}

	order, err := s.anchors.Order(ctx, m[1])
	if err != nil {
		return uuid.Nil, false, ignoreNotFound(err)
	}

	return order.ClientID, true, nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, anchor.ErrNotFound) {
		return nil
	}

	return err
}
