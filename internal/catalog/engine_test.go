package catalog

import (
	"testing"
	"time"

	"github.com/maison-aurelle/storefront/internal/domain"
)

// fixtureProducts returns a small catalog with known ordering characteristics
func fixtureProducts() []domain.Product {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	return []domain.Product{
		{ID: 1, Name: "Heritage Chronograph", Description: "steel automatic watch", Price: 450000, Category: domain.CategoryWatches, Status: domain.StatusPublished, SalesCount: 12, CreatedAt: base},
		{ID: 2, Name: "Silk Evening Bag", Description: "hand-stitched clutch", Price: 120000, Category: domain.CategoryBags, Status: domain.StatusPublished, SalesCount: 40, CreatedAt: base.Add(24 * time.Hour)},
		{ID: 3, Name: "Noir Eau de Parfum", Description: "amber and oud fragrance", Price: 28000, Category: domain.CategoryFragrance, Status: domain.StatusDraft, SalesCount: 3, CreatedAt: base.Add(48 * time.Hour)},
		{ID: 4, Name: "Gold Rope Necklace", Description: "18k gold chain", Price: 120000, Category: domain.CategoryJewelry, Status: domain.StatusPublished, SalesCount: 25, CreatedAt: base.Add(72 * time.Hour)},
		{ID: 5, Name: "Travel Watch Roll", Description: "leather watch accessory", Price: 45000, Category: domain.CategoryAccessories, Status: domain.StatusPublished, SalesCount: 40, CreatedAt: base.Add(96 * time.Hour)},
	}
}

func ids(products []domain.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a []int64, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterAndSort_EmptyCriteriaReturnsAll(t *testing.T) {
	products := fixtureProducts()

	got := FilterAndSort(products, Criteria{SortKey: SortNewest})

	if len(got) != len(products) {
		t.Fatalf("expected all %d products, got %d", len(products), len(got))
	}
	if want := []int64{5, 4, 3, 2, 1}; !equalIDs(ids(got), want) {
		t.Errorf("newest order: got %v, want %v", ids(got), want)
	}
}

func TestFilterAndSort_Matching(t *testing.T) {
	products := fixtureProducts()

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []int64
	}{
		{
			name:     "query matches name case-insensitively",
			criteria: Criteria{Query: "heritage"},
			wantIDs:  []int64{1},
		},
		{
			name:     "query matches description",
			criteria: Criteria{Query: "OUD"},
			wantIDs:  []int64{3},
		},
		{
			name:     "query with surrounding whitespace",
			criteria: Criteria{Query: "  gold  "},
			wantIDs:  []int64{4},
		},
		{
			name:     "category exact match",
			criteria: Criteria{Category: domain.CategoryBags},
			wantIDs:  []int64{2},
		},
		{
			name:     "status filter",
			criteria: Criteria{Status: domain.StatusDraft},
			wantIDs:  []int64{3},
		},
		{
			name:     "conjunctive: query and category must both hold",
			criteria: Criteria{Query: "watch", Category: domain.CategoryWatches},
			wantIDs:  []int64{1},
		},
		{
			name:     "no match yields empty result",
			criteria: Criteria{Query: "porcelain"},
			wantIDs:  []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAndSort(products, tt.criteria)
			if !equalIDs(ids(got), tt.wantIDs) {
				t.Errorf("got %v, want %v", ids(got), tt.wantIDs)
			}
		})
	}
}

func TestFilterAndSort_SortOrders(t *testing.T) {
	products := fixtureProducts()

	tests := []struct {
		name    string
		key     SortKey
		wantIDs []int64
	}{
		{"newest first", SortNewest, []int64{5, 4, 3, 2, 1}},
		{"oldest first", SortOldest, []int64{1, 2, 3, 4, 5}},
		{"price high to low, ties keep input order", SortPriceHigh, []int64{1, 2, 4, 5, 3}},
		{"price low to high", SortPriceLow, []int64{3, 5, 2, 4, 1}},
		{"best selling, ties keep input order", SortBestSelling, []int64{2, 5, 4, 1, 3}},
		{"unknown key keeps input order", SortKey("trending"), []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAndSort(products, Criteria{SortKey: tt.key})
			if !equalIDs(ids(got), tt.wantIDs) {
				t.Errorf("got %v, want %v", ids(got), tt.wantIDs)
			}
		})
	}
}

func TestFilterAndSort_Idempotent(t *testing.T) {
	criteria := Criteria{Query: "watch", Status: domain.StatusPublished, SortKey: SortPriceLow}

	once := FilterAndSort(fixtureProducts(), criteria)
	twice := FilterAndSort(once, criteria)

	if !equalIDs(ids(once), ids(twice)) {
		t.Errorf("re-filtering changed the sequence: %v -> %v", ids(once), ids(twice))
	}
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()

	FilterAndSort(products, Criteria{SortKey: SortPriceHigh})

	if want := []int64{1, 2, 3, 4, 5}; !equalIDs(ids(products), want) {
		t.Errorf("input was reordered: %v", ids(products))
	}
}
