// Package normalize converges ingested costs to billable pre-tax amounts and
// fills the shipping base/surcharge decomposition from the daily extract.
// Both passes are idempotent: corrected and decomposed rows are no-ops on
// re-runs.
package normalize

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MrJamesThe3rd/rebill/internal/extract"
	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=store_mock.go -package=normalize
type Store interface {
	List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
	SetCost(ctx context.Context, id string, costCents int64) error
	FillDecomposition(ctx context.Context, params transaction.DecompositionParams) (bool, error)
}

// TaxResult summarizes one tax-correction pass. Confirmed counts rows whose
// category ingests pre-tax already: their cost is stamped unchanged so the
// policy decision is recorded on the row.
type TaxResult struct {
	Corrected int
	Confirmed int
}

// ExtractResult summarizes the application of one daily extract.
type ExtractResult struct {
	Matched   int
	Unmatched int
}

type Service struct {
	store Store
	log   zerolog.Logger
}

func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{
		store: store,
		log:   log.With().Str("component", "normalize").Logger(),
	}
}

// CorrectTaxes rewrites cost to pre-tax for every uncorrected row in the
// window whose fee category ingests tax-inclusive. Rows in pre-tax categories
// keep their cost but are stamped corrected all the same, so every taxed row
// ends the pass with the policy applied exactly once.
func (s *Service) CorrectTaxes(ctx context.Context, clientID *uuid.UUID, from, to time.Time) (*TaxResult, error) {
	txs, err := s.store.List(ctx, transaction.ListFilter{
		ClientID:           clientID,
		From:               &from,
		To:                 &to,
		NeedsTaxCorrection: true,
	})
	if err != nil {
		return nil, fmt.Errorf("listing uncorrected transactions: %w", err)
	}

	var result TaxResult

	for _, tx := range txs {
		cost := tx.RawCostCents
		if TaxInclusive(tx.FeeType) {
			cost -= tx.TotalTaxCents()
		}

		if err := s.store.SetCost(ctx, tx.ID, cost); err != nil {
			return nil, fmt.Errorf("correcting transaction %s: %w", tx.ID, err)
		}

		if cost != tx.RawCostCents {
			result.Corrected++
		} else {
			result.Confirmed++
		}
	}

	s.log.Info().
		Int("corrected", result.Corrected).
		Int("confirmed", result.Confirmed).
		Msg("tax correction pass done")

	return &result, nil
}

// ApplyExtract fills shipping decompositions from one daily extract file.
// Each row targets the charge date one day before the file's nominal date,
// matched by (shipment, tracking). Rows already decomposed, or whose split
// does not sum to the ingested cost, stay unmatched.
func (s *Service) ApplyExtract(ctx context.Context, file *extract.File) (*ExtractResult, error) {
	chargeDate := file.ChargeDate()

	var result ExtractResult

	for _, row := range file.Rows {
		matched, err := s.store.FillDecomposition(ctx, transaction.DecompositionParams{
			ReferenceID:    row.ShipmentID,
			TrackingNumber: row.TrackingNumber,
			ChargeDate:     chargeDate,
			BaseCents:      row.BaseCents,
			SurchargeCents: row.SurchargeCents,
		})
		if err != nil {
			return nil, fmt.Errorf("applying extract row for shipment %s: %w", row.ShipmentID, err)
		}

		if matched {
			result.Matched++
		} else {
			result.Unmatched++
		}
	}

	s.log.Info().
		Time("nominal_date", file.NominalDate).
		Time("charge_date", chargeDate).
		Int("matched", result.Matched).
		Int("unmatched", result.Unmatched).
		Msg("extract applied")

	return &result, nil
}
