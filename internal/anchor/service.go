package anchor

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=anchor
type Repository interface {
	Shipment(ctx context.Context, shipmentID string) (*Shipment, error)
	Return(ctx context.Context, returnID string) (*Return, error)
	ReceivingOrder(ctx context.Context, receivingID string) (*ReceivingOrder, error)
	Order(ctx context.Context, orderID string) (*Order, error)
	InventoryItem(ctx context.Context, inventoryItemID string) (*InventoryItem, error)

	UpsertShipment(ctx context.Context, sh *Shipment) error
	UpsertReturn(ctx context.Context, ret *Return) error
}

// Syncer triggers a point sync against the external anchor-sync collaborator
// when a lookup misses. Implementations live outside this engine.
type Syncer interface {
	SyncShipment(ctx context.Context, shipmentID string) (*Shipment, error)
	SyncReturn(ctx context.Context, returnID string) (*Return, error)
}

// NopSyncer is used when no sync collaborator is configured; misses stay
// misses.
type NopSyncer struct{}

func (NopSyncer) SyncShipment(_ context.Context, _ string) (*Shipment, error) {
	return nil, ErrNotFound
}

func (NopSyncer) SyncReturn(_ context.Context, _ string) (*Return, error) {
	return nil, ErrNotFound
}

type Service struct {
	repo   Repository
	syncer Syncer
}

func NewService(repo Repository, syncer Syncer) *Service {
	if syncer == nil {
		syncer = NopSyncer{}
	}

	return &Service{repo: repo, syncer: syncer}
}

// Shipment looks up a shipment, falling back to a point sync on a miss.
// A synced shipment is persisted so the next resolution hits the table.
func (s *Service) Shipment(ctx context.Context, shipmentID string) (*Shipment, error) {
	sh, err := s.repo.Shipment(ctx, shipmentID)
	if err == nil {
		return sh, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	sh, err = s.syncer.SyncShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpsertShipment(ctx, sh); err != nil {
		return nil, fmt.Errorf("backfilling shipment %s: %w", shipmentID, err)
	}

	return sh, nil
}

// Return looks up a return, syncing and backfilling it on a miss. Resolution
// and anchor completeness are often discovered at the same moment, so the
// backfill happens here rather than in a separate repair pass.
func (s *Service) Return(ctx context.Context, returnID string) (*Return, error) {
	ret, err := s.repo.Return(ctx, returnID)
	if err == nil {
		return ret, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	ret, err = s.syncer.SyncReturn(ctx, returnID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpsertReturn(ctx, ret); err != nil {
		return nil, fmt.Errorf("backfilling return %s: %w", returnID, err)
	}

	return ret, nil
}

func (s *Service) ReceivingOrder(ctx context.Context, receivingID string) (*ReceivingOrder, error) {
	return s.repo.ReceivingOrder(ctx, receivingID)
}

func (s *Service) Order(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.Order(ctx, orderID)
}

func (s *Service) InventoryItem(ctx context.Context, inventoryItemID string) (*InventoryItem, error) {
	return s.repo.InventoryItem(ctx, inventoryItemID)
}
