package quote

import (
	"testing"

	"github.com/matzehuels/quotefit/pkg/errors"
)

func TestContentTermsCount(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		want    int
	}{
		{"none", Content{}, 0},
		{"discount only", Content{HasDiscount: true}, 0},
		{"delivery", Content{HasDeliveryTerm: true}, 1},
		{"invoice and guarantee", Content{HasInvoiceToCustomers: true, HasGuarantee: true}, 2},
		{"all terms", Content{
			HasDeliveryTerm:       true,
			HasPaymentConditions:  true,
			HasGuarantee:          true,
			HasInvoiceToCustomers: true,
		}, 4},
		{"everything", Content{
			ItemCount:             12,
			HasDeliveryTerm:       true,
			HasPaymentConditions:  true,
			HasGuarantee:          true,
			HasDiscount:           true,
			HasInvoiceToCustomers: true,
		}, MaxTermsCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.content.TermsCount(); got != tt.want {
				t.Errorf("TermsCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContentValidate(t *testing.T) {
	if err := (Content{}).Validate(); err != nil {
		t.Errorf("Validate() on zero content = %v, want nil", err)
	}
	if err := (Content{ItemCount: 40}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	err := Content{ItemCount: -1}.Validate()
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestQuoteContent(t *testing.T) {
	tests := []struct {
		name  string
		quote Quote
		want  Content
	}{
		{
			name:  "empty",
			quote: Quote{},
			want:  Content{},
		},
		{
			name:  "explicit item count",
			quote: Quote{ItemCount: 25},
			want:  Content{ItemCount: 25},
		},
		{
			name: "services win over item count",
			quote: Quote{
				ItemCount: 99,
				Services:  []Service{{Description: "Wrap", Price: 100}, {Description: "Tint", Price: 50}},
			},
			want: Content{ItemCount: 2},
		},
		{
			name: "blank texts are absent",
			quote: Quote{
				DeliveryTerm:       "   ",
				PaymentConditions:  "",
				InvoiceToCustomers: []string{"", " "},
			},
			want: Content{},
		},
		{
			name: "all blocks present",
			quote: Quote{
				ItemCount:          3,
				DeliveryTerm:       "4 weeks",
				PaymentConditions:  "30 days net",
				Guarantee:          "2 years",
				Discount:           10,
				InvoiceToCustomers: []string{"Fleet Co."},
			},
			want: Content{
				ItemCount:             3,
				HasDeliveryTerm:       true,
				HasPaymentConditions:  true,
				HasGuarantee:          true,
				HasDiscount:           true,
				HasInvoiceToCustomers: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.quote.Content(); got != tt.want {
				t.Errorf("Content() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestQuoteTotals(t *testing.T) {
	q := Quote{
		Services: []Service{{Price: 1000}, {Price: 500}},
		Discount: 10,
	}
	if got := q.Subtotal(); got != 1500 {
		t.Errorf("Subtotal() = %v, want 1500", got)
	}
	if got := q.Total(); got != 1350 {
		t.Errorf("Total() = %v, want 1350", got)
	}

	q.Discount = 0
	if got := q.Total(); got != 1500 {
		t.Errorf("Total() without discount = %v, want 1500", got)
	}
}
