package usecase

import (
	"context"

	"github.com/maison-aurelle/storefront/internal/domain"
)

type CatalogUC interface {
	Browse(ctx context.Context, req *BrowseReq) (*BrowseRes, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	ArchiveProduct(ctx context.Context, id int64) error
}

type CartUC interface {
	GetCart(ctx context.Context, userID string) (*CartView, error)
	AddLine(ctx context.Context, req *AddLineReq) (*CartView, error)
	UpdateQuantity(ctx context.Context, userID string, lineIndex int, quantity int64) (*CartView, error)
	RemoveLine(ctx context.Context, userID string, lineIndex int) (*CartView, error)
	ApplyCoupon(ctx context.Context, userID, code string) (*CartView, error)
}

type CheckoutUC interface {
	Preview(ctx context.Context, userID string) (*CartView, error)
	PlaceOrder(ctx context.Context, userID string) (*domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
	ListRecentOrders(ctx context.Context) ([]domain.Order, error)
}

type FavoritesUC interface {
	Toggle(ctx context.Context, userID string, productID int64) (bool, error)
	List(ctx context.Context, userID string) ([]int64, error)
}

type ProfileUC interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, req *UpdateProfileReq) (*domain.Profile, error)
}

type SessionUC interface {
	Login(ctx context.Context, req *CredentialsReq) (*domain.Session, error)
	Register(ctx context.Context, req *CredentialsReq) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}
