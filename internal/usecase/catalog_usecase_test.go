package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/pkg/e"
)

type fakeImagesInfra struct {
	uploadErr error
	cleaned   [][]string
}

func (f *fakeImagesInfra) UploadImages(_ context.Context, req *UploadImagesReq) (*UploadImagesRes, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	keys := make([]string, 0, len(req.Images))
	for i := range req.Images {
		keys = append(keys, fmt.Sprintf("products/%s-%d.jpg", req.Name, i))
	}
	return NewUploadImagesRes(keys), nil
}

func (f *fakeImagesInfra) CleanupImages(keys []string) {
	f.cleaned = append(f.cleaned, keys)
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Chronograph Royale", Category: domain.CategoryWatches, Status: domain.StatusPublished, Price: 5000},
		{ID: 2, Name: "Sapphire Pendant", Category: domain.CategoryJewelry, Status: domain.StatusPublished, Price: 3200},
		{ID: 3, Name: "Atelier Tote", Category: domain.CategoryBags, Status: domain.StatusDraft, Price: 2100},
	}
}

func TestCatalogBrowse(t *testing.T) {
	uc := NewCatalogUC(newFakeProductRepo(seedProducts()...), &fakeImagesInfra{}, nopLogger{})
	ctx := context.Background()

	res, err := uc.Browse(ctx, NewBrowseReq("", "all", "all", "", 0, 0))
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if res.Total != 3 {
		t.Errorf("expected total 3, got %d", res.Total)
	}

	res, err = uc.Browse(ctx, NewBrowseReq("", string(domain.CategoryWatches), "", "", 0, 0))
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if res.Total != 1 || res.Products[0].ID != 1 {
		t.Errorf("expected only the watch, got %+v", res.Products)
	}

	if _, err := uc.Browse(ctx, NewBrowseReq("", "Cutlery", "", "", 0, 0)); !errors.Is(err, e.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
	if _, err := uc.Browse(ctx, NewBrowseReq("", "", "", "cheapest", 0, 0)); !errors.Is(err, e.ErrUnknownSortKey) {
		t.Errorf("expected ErrUnknownSortKey, got %v", err)
	}
}

func TestCatalogBrowsePagination(t *testing.T) {
	uc := NewCatalogUC(newFakeProductRepo(seedProducts()...), &fakeImagesInfra{}, nopLogger{})
	ctx := context.Background()

	res, err := uc.Browse(ctx, NewBrowseReq("", "", "", "priceLow", 2, 0))
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if res.Total != 3 {
		t.Errorf("total must count before slicing, got %d", res.Total)
	}
	if len(res.Products) != 2 || res.Products[0].ID != 3 {
		t.Errorf("unexpected first page: %+v", res.Products)
	}

	res, err = uc.Browse(ctx, NewBrowseReq("", "", "", "priceLow", 2, 2))
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if len(res.Products) != 1 || res.Products[0].ID != 1 {
		t.Errorf("unexpected second page: %+v", res.Products)
	}

	res, err = uc.Browse(ctx, NewBrowseReq("", "", "", "", 2, 10))
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if len(res.Products) != 0 {
		t.Errorf("offset past the end must give empty page, got %+v", res.Products)
	}
}

func TestCatalogCreateProduct(t *testing.T) {
	repo := newFakeProductRepo()
	infra := &fakeImagesInfra{}
	uc := NewCatalogUC(repo, infra, nopLogger{})
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, &CreateProductReq{
		Name:     "Heritage Clutch",
		Price:    15000,
		Stock:    3,
		Category: string(domain.CategoryBags),
		Images:   []ProductImage{{Data: []byte{0xFF}, MimeType: "image/jpeg", Size: 1}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.StatusDraft {
		t.Errorf("blank status must default to draft, got %s", created.Status)
	}
	if created.ImageKey == "" {
		t.Error("expected image key from upload")
	}
}

func TestCatalogCreateProductValidation(t *testing.T) {
	uc := NewCatalogUC(newFakeProductRepo(), &fakeImagesInfra{}, nopLogger{})
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *CreateProductReq
		wantErr error
	}{
		{"blank name", &CreateProductReq{Name: "  ", Price: 100, Category: "Bags"}, e.ErrProductNameRequired},
		{"zero price", &CreateProductReq{Name: "X", Price: 0, Category: "Bags"}, e.ErrPriceMustBePositive},
		{"bad category", &CreateProductReq{Name: "X", Price: 100, Category: "Cutlery"}, e.ErrUnknownCategory},
		{"bad status", &CreateProductReq{Name: "X", Price: 100, Category: "Bags", Status: "hidden"}, e.ErrStatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.CreateProduct(ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCatalogUpdateAndArchive(t *testing.T) {
	repo := newFakeProductRepo(seedProducts()...)
	uc := NewCatalogUC(repo, &fakeImagesInfra{}, nopLogger{})
	ctx := context.Background()

	updated, err := uc.UpdateProduct(ctx, &UpdateProductReq{
		ID: 3, Name: "Atelier Tote", Price: 2500,
		Category: string(domain.CategoryBags), Status: string(domain.StatusPublished),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 2500 || updated.Status != domain.StatusPublished {
		t.Errorf("unexpected update result: %+v", updated)
	}

	if err := uc.ArchiveProduct(ctx, 3); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if !repo.products[3].IsArchived {
		t.Error("product 3 must be archived")
	}

	if err := uc.ArchiveProduct(ctx, 99); !errors.Is(err, e.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
