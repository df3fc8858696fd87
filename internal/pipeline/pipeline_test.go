package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/rebill/internal/attribution"
	"github.com/MrJamesThe3rd/rebill/internal/extract"
	"github.com/MrJamesThe3rd/rebill/internal/ingest"
	"github.com/MrJamesThe3rd/rebill/internal/invoice"
	"github.com/MrJamesThe3rd/rebill/internal/normalize"
	"github.com/MrJamesThe3rd/rebill/internal/pipeline"
)

var (
	from = time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	ingestor   *pipeline.MockIngestor
	attributor *pipeline.MockAttributor
	normalizer *pipeline.MockNormalizer
	assembler  *pipeline.MockAssembler
	clients    *pipeline.MockClients
	runner     *pipeline.Runner
}

func newFixture(ctrl *gomock.Controller) *fixture {
	f := &fixture{
		ingestor:   pipeline.NewMockIngestor(ctrl),
		attributor: pipeline.NewMockAttributor(ctrl),
		normalizer: pipeline.NewMockNormalizer(ctrl),
		assembler:  pipeline.NewMockAssembler(ctrl),
		clients:    pipeline.NewMockClients(ctrl),
	}

	f.runner = pipeline.NewRunner(
		f.ingestor,
		extract.NewParser(),
		f.normalizer,
		f.attributor,
		f.assembler,
		f.clients,
		zerolog.Nop(),
	)

	return f
}

func TestRunner_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	billable := uuid.New()
	quiet := uuid.New()

	f.ingestor.EXPECT().
		IngestWindow(gomock.Any(), from, to).
		Return(&ingest.Result{Pages: 2, Inserted: 8, Updated: 2}, nil)
	f.attributor.EXPECT().
		ResolveWindow(gomock.Any(), from, to).
		Return(&attribution.Result{Resolved: 7, Unresolved: 1}, nil)
	f.clients.EXPECT().
		BillableClients(gomock.Any(), from, to).
		Return([]uuid.UUID{billable, quiet}, nil)

	f.normalizer.EXPECT().
		CorrectTaxes(gomock.Any(), gomock.Any(), from, to).
		DoAndReturn(func(_ context.Context, clientID *uuid.UUID, _, _ time.Time) (*normalize.TaxResult, error) {
			require.NotNil(t, clientID)
			return &normalize.TaxResult{Corrected: 2, Confirmed: 1}, nil
		}).
		Times(2)

	assembled := &invoice.Invoice{ID: uuid.New(), ClientID: billable}

	f.assembler.EXPECT().
		Assemble(gomock.Any(), gomock.Any(), invoice.Selection{PeriodStart: from, PeriodEnd: to}).
		DoAndReturn(func(_ context.Context, clientID uuid.UUID, _ invoice.Selection) (*invoice.Invoice, error) {
			if clientID == quiet {
				return nil, invoice.ErrNothingToBill
			}
			return assembled, nil
		}).
		Times(2)

	result, err := f.runner.Run(context.Background(), pipeline.Options{From: from, To: to, Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, 8, result.Ingest.Inserted)
	assert.Equal(t, 7, result.Attribution.Resolved)

	// Per-tenant counters aggregate across the fan-out.
	assert.Equal(t, 4, result.Taxes.Corrected)
	assert.Equal(t, 2, result.Taxes.Confirmed)

	require.Len(t, result.Invoices, 1)
	assert.Same(t, assembled, result.Invoices[0])
	assert.Equal(t, 1, result.EmptySelection)
}

func TestRunner_Run_RequiresWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	_, err := f.runner.Run(context.Background(), pipeline.Options{From: from})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "charge window is required")
}

func TestRunner_Run_SkipAssembly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	f.ingestor.EXPECT().IngestWindow(gomock.Any(), from, to).Return(&ingest.Result{}, nil)
	f.attributor.EXPECT().ResolveWindow(gomock.Any(), from, to).Return(&attribution.Result{}, nil)
	f.clients.EXPECT().BillableClients(gomock.Any(), from, to).Return([]uuid.UUID{uuid.New()}, nil)
	f.normalizer.EXPECT().
		CorrectTaxes(gomock.Any(), gomock.Any(), from, to).
		Return(&normalize.TaxResult{Confirmed: 3}, nil)

	// No Assemble expectation: the stage must not run.
	result, err := f.runner.Run(context.Background(), pipeline.Options{From: from, To: to, SkipAssembly: true})
	require.NoError(t, err)

	assert.Empty(t, result.Invoices)
	assert.Equal(t, 3, result.Taxes.Confirmed)
}

func TestRunner_Run_AppliesExtractsInNameOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	dir := t.TempDir()

	csvData := "ShipmentId,TrackingNumber,FulfillmentCost,TotalSurcharge\n12001,1Z999,10.00,0.00\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "costs_2024-12-03.csv"), []byte(csvData), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "costs_2024-12-02.csv"), []byte(csvData), 0o644))
	// Unparseable layouts are skipped, not fatal.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes_2024-12-02.csv"), []byte("Foo,Bar\n1,2\n"), 0o644))
	// Non-CSV files are ignored outright.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("x"), 0o644))

	f.ingestor.EXPECT().IngestWindow(gomock.Any(), from, to).Return(&ingest.Result{}, nil)
	f.attributor.EXPECT().ResolveWindow(gomock.Any(), from, to).Return(&attribution.Result{}, nil)
	f.clients.EXPECT().BillableClients(gomock.Any(), from, to).Return(nil, nil)

	dec02 := f.normalizer.EXPECT().
		ApplyExtract(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, file *extract.File) (*normalize.ExtractResult, error) {
			assert.Equal(t, time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC), file.NominalDate)
			return &normalize.ExtractResult{Matched: 1}, nil
		})
	f.normalizer.EXPECT().
		ApplyExtract(gomock.Any(), gomock.Any()).
		After(dec02).
		DoAndReturn(func(_ context.Context, file *extract.File) (*normalize.ExtractResult, error) {
			assert.Equal(t, time.Date(2024, 12, 3, 0, 0, 0, 0, time.UTC), file.NominalDate)
			return &normalize.ExtractResult{Unmatched: 1}, nil
		})

	result, err := f.runner.Run(context.Background(), pipeline.Options{From: from, To: to, ExtractDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Extracts.Matched)
	assert.Equal(t, 1, result.Extracts.Unmatched)
}

func TestRunner_Run_StageErrorsAbort(t *testing.T) {
	type testCase struct {
		name    string
		prepare func(f *fixture)
		wantErr string
	}

	tests := []testCase{
		{
			name: "Ingest failure",
			prepare: func(f *fixture) {
				f.ingestor.EXPECT().IngestWindow(gomock.Any(), from, to).Return(nil, errors.New("api down"))
			},
			wantErr: "ingest stage",
		},
		{
			name: "Attribution failure",
			prepare: func(f *fixture) {
				f.ingestor.EXPECT().IngestWindow(gomock.Any(), from, to).Return(&ingest.Result{}, nil)
				f.attributor.EXPECT().ResolveWindow(gomock.Any(), from, to).Return(nil, errors.New("db down"))
			},
			wantErr: "attribution stage",
		},
		{
			name: "Assembly failure",
			prepare: func(f *fixture) {
				f.ingestor.EXPECT().IngestWindow(gomock.Any(), from, to).Return(&ingest.Result{}, nil)
				f.attributor.EXPECT().ResolveWindow(gomock.Any(), from, to).Return(&attribution.Result{}, nil)
				f.clients.EXPECT().BillableClients(gomock.Any(), from, to).Return([]uuid.UUID{uuid.New()}, nil)
				f.normalizer.EXPECT().CorrectTaxes(gomock.Any(), gomock.Any(), from, to).Return(&normalize.TaxResult{}, nil)
				f.assembler.EXPECT().Assemble(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("lock timeout"))
			},
			wantErr: "assembling invoice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			tt.prepare(f)

			_, err := f.runner.Run(context.Background(), pipeline.Options{From: from, To: to})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
