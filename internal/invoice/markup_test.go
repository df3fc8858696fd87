package invoice

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

func TestPickRule(t *testing.T) {
	clientID := uuid.New()

	shippingDefault := MarkupRule{ID: uuid.New(), ClientID: clientID, FeeType: transaction.FeeShipping, Kind: MarkupPercentage, BasisPoints: 1500}
	shippingCA := MarkupRule{ID: uuid.New(), ClientID: clientID, FeeType: transaction.FeeShipping, Kind: MarkupPercentage, BasisPoints: 2000, FacilityCountry: "CA"}
	storageFlat := MarkupRule{ID: uuid.New(), ClientID: clientID, FeeType: transaction.FeeStorage, Kind: MarkupFlat, FlatCents: 25}

	rules := []MarkupRule{shippingCA, shippingDefault, storageFlat}

	type testCase struct {
		name    string
		fee     transaction.FeeType
		country string
		want    *MarkupRule
	}

	tests := []testCase{
		{name: "Country sub-rule wins", fee: transaction.FeeShipping, country: "CA", want: &shippingCA},
		{name: "Default for other countries", fee: transaction.FeeShipping, country: "US", want: &shippingDefault},
		{name: "Default without country", fee: transaction.FeeShipping, want: &shippingDefault},
		{name: "Other category", fee: transaction.FeeStorage, want: &storageFlat},
		{name: "No rule passes through", fee: transaction.FeeCredit, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickRule(rules, tt.fee, tt.country)

			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.want.ID, got.ID)
		})
	}
}

func TestMarkupCents(t *testing.T) {
	type testCase struct {
		name      string
		rule      *MarkupRule
		costCents int64
		want      int64
	}

	tests := []testCase{
		{name: "No rule", rule: nil, costCents: 1000, want: 0},
		{
			name:      "Flat per transaction",
			rule:      &MarkupRule{Kind: MarkupFlat, FlatCents: 25},
			costCents: 1000,
			want:      25,
		},
		{
			name:      "Percentage exact",
			rule:      &MarkupRule{Kind: MarkupPercentage, BasisPoints: 1500},
			costCents: 1000,
			want:      150,
		},
		{
			name:      "Percentage rounds down",
			rule:      &MarkupRule{Kind: MarkupPercentage, BasisPoints: 1500},
			costCents: 1001, // 150.15
			want:      150,
		},
		{
			name:      "Percentage rounds half up",
			rule:      &MarkupRule{Kind: MarkupPercentage, BasisPoints: 1500},
			costCents: 1010, // 151.5
			want:      152,
		},
		{
			name:      "Negative cost on credits",
			rule:      &MarkupRule{Kind: MarkupPercentage, BasisPoints: 1500},
			costCents: -1000,
			want:      -150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markupCents(tt.rule, tt.costCents))
		})
	}
}

func TestMarkupCents_Deterministic(t *testing.T) {
	rule := &MarkupRule{Kind: MarkupPercentage, BasisPoints: 1375}

	first := markupCents(rule, 3333)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, markupCents(rule, 3333))
	}
}
