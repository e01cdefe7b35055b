// Package quote describes the content of a printable quote document.
//
// # Overview
//
// The layout engine only needs to know how much content a quote carries, not
// what it says. [Content] is that summary: the number of service line items
// plus five presence flags for the optional blocks. [Content.TermsCount]
// counts the labeled terms sections that will appear under the totals.
//
// A richer [Quote] mirrors what a real quote holds (customer, priced
// services, term texts, discount, invoice-to list). [Quote.Content] reduces
// it to the [Content] summary the engine consumes.
//
// # Quote Files
//
// Quotes can be stored as TOML or JSON. [Load] picks the decoder from the
// file extension; [Decode] reads from any [io.Reader]:
//
//	q, err := quote.Load("quote.toml")
//	if err != nil {
//	    return err
//	}
//	c := q.Content()
//
// A minimal TOML quote:
//
//	customer = "Garage Nord"
//	delivery_term = "4 weeks after order"
//	discount = 5
//
//	[[services]]
//	description = "Full body wrap, matte black"
//	price = 2450
package quote
