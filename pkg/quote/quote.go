package quote

import "strings"

// Service is one priced line item on a quote.
type Service struct {
	Description string  `json:"description" toml:"description"`
	Price       float64 `json:"price" toml:"price"`
}

// Quote is a quote document as stored in a quote file.
//
// ItemCount is only consulted when Services is empty, so a file can describe
// a layout by volume alone without listing every service.
type Quote struct {
	Customer           string    `json:"customer,omitempty" toml:"customer"`
	Services           []Service `json:"services,omitempty" toml:"services"`
	ItemCount          int       `json:"item_count,omitempty" toml:"item_count"`
	DeliveryTerm       string    `json:"delivery_term,omitempty" toml:"delivery_term"`
	PaymentConditions  string    `json:"payment_conditions,omitempty" toml:"payment_conditions"`
	Guarantee          string    `json:"guarantee,omitempty" toml:"guarantee"`
	Discount           float64   `json:"discount,omitempty" toml:"discount"`
	InvoiceToCustomers []string  `json:"invoice_to_customers,omitempty" toml:"invoice_to_customers"`
}

// Content reduces the quote to the summary the layout engine consumes.
func (q Quote) Content() Content {
	n := q.ItemCount
	if len(q.Services) > 0 {
		n = len(q.Services)
	}
	return Content{
		ItemCount:             n,
		HasDeliveryTerm:       present(q.DeliveryTerm),
		HasPaymentConditions:  present(q.PaymentConditions),
		HasGuarantee:          present(q.Guarantee),
		HasDiscount:           q.Discount > 0,
		HasInvoiceToCustomers: hasAny(q.InvoiceToCustomers),
	}
}

// Subtotal returns the sum of all service prices.
func (q Quote) Subtotal() float64 {
	var sum float64
	for _, s := range q.Services {
		sum += s.Price
	}
	return sum
}

// Total returns the subtotal with the discount (a percentage) applied.
func (q Quote) Total() float64 {
	sub := q.Subtotal()
	if q.Discount <= 0 {
		return sub
	}
	return sub - sub*q.Discount/100
}

func present(s string) bool { return strings.TrimSpace(s) != "" }

func hasAny(list []string) bool {
	for _, s := range list {
		if present(s) {
			return true
		}
	}
	return false
}
