package quote

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/quotefit/pkg/errors"
)

const sampleTOML = `
customer = "Garage Nord"
delivery_term = "4 weeks after order"
guarantee = "24 months on paint"
discount = 5
invoice_to_customers = ["Fleet Leasing GmbH"]

[[services]]
description = "Full body wrap, matte black"
price = 2450

[[services]]
description = "Window tint"
price = 380
`

const sampleJSON = `{
  "customer": "Garage Nord",
  "item_count": 18,
  "payment_conditions": "30 days net"
}`

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		want   Content
	}{
		{
			name:   "toml",
			input:  sampleTOML,
			format: FormatTOML,
			want: Content{
				ItemCount:             2,
				HasDeliveryTerm:       true,
				HasGuarantee:          true,
				HasDiscount:           true,
				HasInvoiceToCustomers: true,
			},
		},
		{
			name:   "json",
			input:  sampleJSON,
			format: FormatJSON,
			want:   Content{ItemCount: 18, HasPaymentConditions: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Decode(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if q.Customer != "Garage Nord" {
				t.Errorf("Customer = %q, want %q", q.Customer, "Garage Nord")
			}
			if got := q.Content(); got != tt.want {
				t.Errorf("Content() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"bad toml", "customer = ", FormatTOML},
		{"bad json", "{", FormatJSON},
		{"unknown json field", `{"items": 3}`, FormatJSON},
		{"negative item count", `{"item_count": -4}`, FormatJSON},
		{"unknown format", "", Format("yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.input), tt.format); err == nil {
				t.Error("Decode() expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quote.toml")
	if err := os.WriteFile(path, []byte(sampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	q, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(q.Services) != 2 {
		t.Errorf("len(Services) = %d, want 2", len(q.Services))
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing", filepath.Join(dir, "missing.toml"), errors.ErrCodeFileNotFound},
		{"wrong extension", filepath.Join(dir, "quote.yaml"), errors.ErrCodeInvalidQuote},
		{"malformed", bad, errors.ErrCodeInvalidQuote},
		{"empty path", "", errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Load() code = %v, want %v (err=%v)", got, tt.code, err)
			}
		})
	}
}

func TestEncodeDecodeTOML(t *testing.T) {
	in := Quote{
		Customer:           "Garage Nord",
		Services:           []Service{{Description: "Wrap", Price: 2450}},
		DeliveryTerm:       "4 weeks",
		PaymentConditions:  "30 days",
		Guarantee:          "2 years",
		Discount:           5,
		InvoiceToCustomers: []string{"Fleet Co."},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, in, FormatTOML); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	out, err := Decode(&buf, FormatTOML)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if out.Content() != in.Content() {
		t.Errorf("Content() after round trip = %+v, want %+v", out.Content(), in.Content())
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.toml", FormatTOML, false},
		{"A.JSON", FormatJSON, false},
		{"a.yml", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestLoadExampleQuotes(t *testing.T) {
	tests := []struct {
		file string
		want Content
	}{
		{"short.toml", Content{ItemCount: 3}},
		{"proportional.toml", Content{
			ItemCount:             40,
			HasDeliveryTerm:       true,
			HasPaymentConditions:  true,
			HasGuarantee:          true,
			HasDiscount:           true,
			HasInvoiceToCustomers: true,
		}},
		{"long.json", Content{ItemCount: 90, HasPaymentConditions: true, HasDiscount: true}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			q, err := Load(filepath.Join("..", "..", "examples", "quotes", tt.file))
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if got := q.Content(); got != tt.want {
				t.Errorf("Content() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
