// Package enrichsvc - tests for domain extraction.
package enrichsvc

import (
	"testing"
)

func TestExtractDomain(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.example.com/shop?ref=x", "example.com"},
		{"http://example.com", "example.com"},
		{"www.example.com", "example.com"},
		{"EXAMPLE.com/Category/item", "example.com"},
		{"  example.com  ", "example.com"},
		{"shop.example.co.uk/it", "shop.example.co.uk"},
		{"example.com#section", "example.com"},
		{"https://example.com:8080/shop", "example.com"},
		{"example.com:443", "example.com"},
	}
	for _, tc := range cases {
		if got := ExtractDomain(tc.in); got != tc.want {
			t.Errorf("ExtractDomain(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateDomain(t *testing.T) {
	valid := []string{"a.b", "example.com", "shop.example.co.uk"}
	for _, d := range valid {
		if err := ValidateDomain(d); err != nil {
			t.Errorf("ValidateDomain(%q) = %v, want nil", d, err)
		}
	}

	invalid := []string{"", "ab", "localhost", "x."}
	for _, d := range invalid {
		if err := ValidateDomain(d); err == nil {
			t.Errorf("ValidateDomain(%q) = nil, want error", d)
		}
	}
}
