package normalize

import "github.com/MrJamesThe3rd/rebill/internal/transaction"

// taxInclusiveCategories pins, per fee category, whether the provider's
// ingested cost includes tax. The policy is deliberately a static table
// validated against reference totals: applying the correction uniformly
// across categories has caused double-adjustment in the past, and inferring
// the policy from transaction age is not reliable.
var taxInclusiveCategories = map[transaction.FeeType]bool{
	transaction.FeeShipping:     true,
	transaction.FeeWROReceiving: true,

	// Storage, warehousing and credits arrive pre-tax and must not be
	// touched.
	transaction.FeeStorage:     false,
	transaction.FeeWarehousing: false,
	transaction.FeeCredit:      false,
}

// TaxInclusive reports whether the ingested cost for a fee category includes
// tax. Unknown categories default to pre-tax (no correction): silently
// shrinking an unknown charge is worse than billing its taxes through to
// review.
func TaxInclusive(fee transaction.FeeType) bool {
	return taxInclusiveCategories[fee]
}
