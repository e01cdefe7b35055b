package quote

import (
	"github.com/matzehuels/quotefit/pkg/errors"
)

// MaxTermsCount is the number of optional terms sections a quote can carry.
const MaxTermsCount = 4

// Content summarizes how much of each kind of content a quote carries.
// Every combination is valid input to the layout engine, including zero items.
type Content struct {
	ItemCount             int  `json:"item_count" toml:"item_count"`
	HasDeliveryTerm       bool `json:"has_delivery_term" toml:"has_delivery_term"`
	HasPaymentConditions  bool `json:"has_payment_conditions" toml:"has_payment_conditions"`
	HasGuarantee          bool `json:"has_guarantee" toml:"has_guarantee"`
	HasDiscount           bool `json:"has_discount" toml:"has_discount"`
	HasInvoiceToCustomers bool `json:"has_invoice_to_customers" toml:"has_invoice_to_customers"`
}

// TermsCount returns how many terms sections are present (0 to 4).
// The discount flag selects the totals variant and is not a terms section.
func (c Content) TermsCount() int {
	n := 0
	for _, present := range []bool{
		c.HasInvoiceToCustomers,
		c.HasDeliveryTerm,
		c.HasPaymentConditions,
		c.HasGuarantee,
	} {
		if present {
			n++
		}
	}
	return n
}

// Validate checks externally supplied content. The engine itself accepts
// anything; this only guards decoded input.
func (c Content) Validate() error {
	return errors.ValidateItemCount(c.ItemCount)
}
