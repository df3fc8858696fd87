package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/rebill/internal/anchor"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Shipment(ctx context.Context, shipmentID string) (*anchor.Shipment, error) {
	query := `SELECT shipment_id, client_id, tracking_number FROM shipments WHERE shipment_id = $1`

	var sh anchor.Shipment

	var tracking sql.NullString

	err := s.db.QueryRowContext(ctx, query, shipmentID).Scan(&sh.ID, &sh.ClientID, &tracking)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, anchor.ErrNotFound
		}

		return nil, fmt.Errorf("getting shipment: %w", err)
	}

	sh.TrackingNumber = tracking.String

	return &sh, nil
}

func (s *Store) Return(ctx context.Context, returnID string) (*anchor.Return, error) {
	query := `SELECT return_id, client_id, original_shipment_id FROM returns WHERE return_id = $1`

	var ret anchor.Return

	var origShipment sql.NullString

	err := s.db.QueryRowContext(ctx, query, returnID).Scan(&ret.ID, &ret.ClientID, &origShipment)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, anchor.ErrNotFound
		}

		return nil, fmt.Errorf("getting return: %w", err)
	}

	ret.OriginalShipmentID = origShipment.String

	return &ret, nil
}

func (s *Store) ReceivingOrder(ctx context.Context, receivingID string) (*anchor.ReceivingOrder, error) {
	query := `SELECT receiving_id, client_id FROM receiving_orders WHERE receiving_id = $1`

	var ro anchor.ReceivingOrder

	err := s.db.QueryRowContext(ctx, query, receivingID).Scan(&ro.ID, &ro.ClientID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, anchor.ErrNotFound
		}

		return nil, fmt.Errorf("getting receiving order: %w", err)
	}

	return &ro, nil
}

func (s *Store) Order(ctx context.Context, orderID string) (*anchor.Order, error) {
	query := `SELECT order_id, client_id FROM orders WHERE order_id = $1`

	var o anchor.Order

	err := s.db.QueryRowContext(ctx, query, orderID).Scan(&o.ID, &o.ClientID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, anchor.ErrNotFound
		}

		return nil, fmt.Errorf("getting order: %w", err)
	}

	return &o, nil
}

func (s *Store) InventoryItem(ctx context.Context, inventoryItemID string) (*anchor.InventoryItem, error) {
	query := `SELECT inventory_item_id, client_id FROM inventory_items WHERE inventory_item_id = $1`

	var item anchor.InventoryItem

	err := s.db.QueryRowContext(ctx, query, inventoryItemID).Scan(&item.ID, &item.ClientID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, anchor.ErrNotFound
		}

		return nil, fmt.Errorf("getting inventory item: %w", err)
	}

	return &item, nil
}

func (s *Store) UpsertShipment(ctx context.Context, sh *anchor.Shipment) error {
	query := `
		INSERT INTO shipments (shipment_id, client_id, tracking_number)
		VALUES ($1, $2, $3)
		ON CONFLICT (shipment_id) DO UPDATE SET
			client_id = EXCLUDED.client_id,
			tracking_number = EXCLUDED.tracking_number
	`

	var tracking sql.NullString
	if sh.TrackingNumber != "" {
		tracking = sql.NullString{String: sh.TrackingNumber, Valid: true}
	}

	if _, err := s.db.ExecContext(ctx, query, sh.ID, sh.ClientID, tracking); err != nil {
		return fmt.Errorf("upserting shipment: %w", err)
	}

	return nil
}

func (s *Store) UpsertReturn(ctx context.Context, ret *anchor.Return) error {
	query := `
		INSERT INTO returns (return_id, client_id, original_shipment_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (return_id) DO UPDATE SET
			client_id = EXCLUDED.client_id,
			original_shipment_id = EXCLUDED.original_shipment_id
	`

	var origShipment sql.NullString
	if ret.OriginalShipmentID != "" {
		origShipment = sql.NullString{String: ret.OriginalShipmentID, Valid: true}
	}

	if _, err := s.db.ExecContext(ctx, query, ret.ID, ret.ClientID, origShipment); err != nil {
		return fmt.Errorf("upserting return: %w", err)
	}

	return nil
}
