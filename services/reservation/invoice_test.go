package reservation

import (
	"errors"
	"testing"
	"time"
)

type stubInvoiceSource struct {
	last string
	err  error
}

func (s stubInvoiceSource) LastInvoiceCode(prefix string) (string, error) {
	return s.last, s.err
}

func TestNextInvoiceCode(t *testing.T) {
	day := time.Date(2025, 1, 20, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		last string
		want string
	}{
		{"first of the day", "", "FAC-20250120-001"},
		{"increments", "FAC-20250120-007", "FAC-20250120-008"},
		{"rolls into three digits", "FAC-20250120-099", "FAC-20250120-100"},
		{"widens past 999", "FAC-20250120-999", "FAC-20250120-1000"},
		{"keeps widening", "FAC-20250120-1042", "FAC-20250120-1043"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := nextInvoiceCode(stubInvoiceSource{last: tc.last}, day)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestNextInvoiceCodeDateScoped(t *testing.T) {
	// Yesterday's sequence does not leak into today: the lookup prefix is
	// date-scoped, so a store with no codes for today starts at 001.
	got, err := nextInvoiceCode(stubInvoiceSource{}, time.Date(2025, 1, 21, 0, 0, 1, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "FAC-20250121-001" {
		t.Errorf("got %s, want FAC-20250121-001", got)
	}
}

func TestNextInvoiceCodePropagatesStoreError(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := nextInvoiceCode(stubInvoiceSource{err: boom}, time.Now())
	if !errors.Is(err, boom) {
		t.Errorf("expected store error, got %v", err)
	}
}
