package pricing

import (
	"testing"

	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

func testOptions(includeTax bool) Options {
	return Options{
		ShippingFeeCents: 599,
		TaxRate:          decimal.RequireFromString("0.08"),
		IncludeTax:       includeTax,
	}
}

func line(productID int64, price int64, qty int64) domain.CartLine {
	return domain.CartLine{
		ProductID: productID,
		Name:      "item",
		Price:     price,
		Color:     domain.DefaultColor,
		Size:      domain.DefaultSize,
		Quantity:  qty,
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name            string
		lines           []domain.CartLine
		discountPercent int64
		includeTax      bool
		want            Totals
	}{
		{
			name:  "empty cart has zero shipping",
			lines: nil,
			want:  Totals{},
		},
		{
			name:            "one item price 50 qty 2 with 10 percent discount",
			lines:           []domain.CartLine{line(1, 5000, 2)},
			discountPercent: 10,
			want:            Totals{Subtotal: 10000, Discount: 1000, Shipping: 599, Total: 9599},
		},
		{
			name:  "subtotal is the sum over all lines",
			lines: []domain.CartLine{line(1, 2500, 3), line(2, 19999, 1)},
			want:  Totals{Subtotal: 27499, Shipping: 599, Total: 28098},
		},
		{
			name:            "full discount never exceeds subtotal",
			lines:           []domain.CartLine{line(1, 1000, 1)},
			discountPercent: 100,
			want:            Totals{Subtotal: 1000, Discount: 1000, Shipping: 599, Total: 599},
		},
		{
			name:       "checkout variant adds tax",
			lines:      []domain.CartLine{line(1, 5000, 2)},
			includeTax: true,
			want:       Totals{Subtotal: 10000, Shipping: 599, Tax: 800, Total: 11399},
		},
		{
			name:            "checkout variant with discount and tax",
			lines:           []domain.CartLine{line(1, 5000, 2)},
			discountPercent: 10,
			includeTax:      true,
			want:            Totals{Subtotal: 10000, Discount: 1000, Shipping: 599, Tax: 800, Total: 10399},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.lines, tt.discountPercent, testOptions(tt.includeTax))
			if got != tt.want {
				t.Errorf("ComputeTotals() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAddOrMergeLine(t *testing.T) {
	t.Run("same variant added twice merges into one line", func(t *testing.T) {
		lines := AddOrMergeLine(nil, line(1, 5000, 1))
		lines = AddOrMergeLine(lines, line(1, 5000, 1))

		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
		if lines[0].Quantity != 2 {
			t.Errorf("expected quantity 2, got %d", lines[0].Quantity)
		}
	})

	t.Run("different color appends a new line", func(t *testing.T) {
		first := line(1, 5000, 1)
		second := line(1, 5000, 1)
		second.Color = "Onyx"

		lines := AddOrMergeLine([]domain.CartLine{first}, second)

		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if lines[1].Color != "Onyx" {
			t.Errorf("candidate must be appended at the end, got %+v", lines[1])
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		input := []domain.CartLine{line(1, 5000, 1)}
		AddOrMergeLine(input, line(1, 5000, 4))

		if input[0].Quantity != 1 {
			t.Errorf("input quantity changed to %d", input[0].Quantity)
		}
	})
}

func TestUpdateQuantity(t *testing.T) {
	input := []domain.CartLine{line(1, 5000, 2), line(2, 900, 1)}

	tests := []struct {
		name    string
		idx     int
		qty     int64
		wantQty []int64
	}{
		{"normal update", 1, 5, []int64{2, 5}},
		{"zero is a no-op, floor at 1", 0, 0, []int64{2, 1}},
		{"negative is a no-op", 0, -3, []int64{2, 1}},
		{"index out of range is a no-op", 7, 2, []int64{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpdateQuantity(input, tt.idx, tt.qty)
			for i, want := range tt.wantQty {
				if got[i].Quantity != want {
					t.Errorf("line %d quantity = %d, want %d", i, got[i].Quantity, want)
				}
			}
		})
	}

	t.Run("no-op returns the input unchanged", func(t *testing.T) {
		got := UpdateQuantity(input, 0, 0)
		if &got[0] != &input[0] {
			t.Error("expected the exact input slice back on no-op")
		}
	})
}

func TestRemoveLine(t *testing.T) {
	input := []domain.CartLine{line(1, 100, 1), line(2, 200, 2), line(3, 300, 3)}

	t.Run("removes exactly one line by position", func(t *testing.T) {
		got := RemoveLine(input, 1)

		if len(got) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(got))
		}
		if got[0].ProductID != 1 || got[1].ProductID != 3 {
			t.Errorf("later lines must shift down, got %v", got)
		}
		if got[1].Quantity != 3 {
			t.Errorf("remaining quantities must be untouched, got %d", got[1].Quantity)
		}
	})

	t.Run("index out of range is a no-op", func(t *testing.T) {
		got := RemoveLine(input, 10)
		if len(got) != 3 {
			t.Errorf("expected 3 lines, got %d", len(got))
		}
	})
}
