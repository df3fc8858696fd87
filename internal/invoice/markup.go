package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/rebill/internal/transaction"
)

// pickRule selects the markup rule for one transaction: an exact
// (category, facility country) sub-rule wins over the category default. No
// matching rule means the charge passes through at cost.
func pickRule(rules []MarkupRule, fee transaction.FeeType, facilityCountry string) *MarkupRule {
	var categoryDefault *MarkupRule

	for i := range rules {
		rule := &rules[i]
		if rule.FeeType != fee {
			continue
		}

		if rule.FacilityCountry != "" {
			if rule.FacilityCountry == facilityCountry {
				return rule
			}

			continue
		}

		if categoryDefault == nil {
			categoryDefault = rule
		}
	}

	return categoryDefault
}

var bpDivisor = decimal.NewFromInt(10000)

// markupCents computes the markup for a single transaction cost. Percentage
// rules round half-up per transaction so repeated assembly of the same rows
// always produces identical totals.
func markupCents(rule *MarkupRule, costCents int64) int64 {
	if rule == nil {
		return 0
	}

	switch rule.Kind {
	case MarkupFlat:
		return rule.FlatCents
	case MarkupPercentage:
		return decimal.NewFromInt(costCents).
			Mul(decimal.NewFromInt(rule.BasisPoints)).
			Div(bpDivisor).
			Round(0).
			IntPart()
	}

	return 0
}
