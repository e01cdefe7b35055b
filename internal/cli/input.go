package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/quotefit/pkg/errors"
	"github.com/matzehuels/quotefit/pkg/quote"
)

// contentFlags describes quote content on the command line, as an
// alternative to a quote file.
type contentFlags struct {
	items     int
	delivery  bool
	payment   bool
	guarantee bool
	discount  bool
	invoiceTo bool
}

// register adds the content flags to cmd.
func (f *contentFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.items, "items", "n", 0, "number of service rows")
	cmd.Flags().BoolVar(&f.delivery, "delivery", false, "include a delivery term section")
	cmd.Flags().BoolVar(&f.payment, "payment", false, "include a payment conditions section")
	cmd.Flags().BoolVar(&f.guarantee, "guarantee", false, "include a guarantee section")
	cmd.Flags().BoolVar(&f.discount, "discount", false, "include a discount row in the totals")
	cmd.Flags().BoolVar(&f.invoiceTo, "invoice-to", false, "include an invoice-to section")
}

func (f *contentFlags) content() quote.Content {
	return quote.Content{
		ItemCount:             f.items,
		HasDeliveryTerm:       f.delivery,
		HasPaymentConditions:  f.payment,
		HasGuarantee:          f.guarantee,
		HasDiscount:           f.discount,
		HasInvoiceToCustomers: f.invoiceTo,
	}
}

// args returns the command-line flags that reproduce f.
func (f *contentFlags) args() []string {
	out := []string{"-n", strconv.Itoa(f.items)}
	for _, flag := range []struct {
		name string
		set  bool
	}{
		{"delivery", f.delivery},
		{"payment", f.payment},
		{"guarantee", f.guarantee},
		{"discount", f.discount},
		{"invoice-to", f.invoiceTo},
	} {
		if flag.set {
			out = append(out, "--"+flag.name)
		}
	}
	return out
}

// resolveContent returns the content from the quote file in args, or from
// the flags when no file is given. It also returns a name for the source.
func (f *contentFlags) resolveContent(cmd *cobra.Command, args []string) (quote.Content, string, error) {
	if len(args) == 0 {
		c := f.content()
		if err := c.Validate(); err != nil {
			return quote.Content{}, "", err
		}
		return c, "flags", nil
	}

	for _, name := range []string{"items", "delivery", "payment", "guarantee", "discount", "invoice-to"} {
		if cmd.Flags().Changed(name) {
			return quote.Content{}, "", errors.New(errors.ErrCodeInvalidInput,
				"--%s cannot be combined with a quote file", name)
		}
	}

	q, err := quote.Load(args[0])
	if err != nil {
		return quote.Content{}, "", err
	}
	return q.Content(), args[0], nil
}
