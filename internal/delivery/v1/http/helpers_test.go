package http

import (
	"errors"
	"testing"

	"github.com/maison-aurelle/storefront/pkg/e"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{"whole dollars", "600", 60000, nil},
		{"dollars and cents", "599.99", 59999, nil},
		{"one decimal place", "12.5", 1250, nil},
		{"zero", "0", 0, nil},
		{"whitespace around number", "  42.00", 0, e.ErrInvalidPrice},
		{"three decimal places", "10.999", 0, e.ErrPricePrecision},
		{"negative", "-5", 0, e.ErrInvalidPrice},
		{"not a number", "abc", 0, e.ErrInvalidPrice},
		{"over limit", "100000000001", 0, e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePriceToCents(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d cents, got %d", tt.want, got)
			}
		})
	}
}

func TestParsePriceToCentsEmpty(t *testing.T) {
	if _, err := parsePriceToCents("   "); err == nil {
		t.Error("expected error for blank price")
	}
}
