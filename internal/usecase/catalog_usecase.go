package usecase

import (
	"context"
	"strings"

	"github.com/maison-aurelle/storefront/internal/catalog"
	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/maison-aurelle/storefront/pkg/logger"
)

// CatalogUseCase реализует просмотр витрины и управление товарами продавца.
type CatalogUseCase struct {
	productRepo ProductRepository
	imagesInfra ImagesInfra
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, imagesInfra ImagesInfra, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		imagesInfra: imagesInfra,
		logger:      logger,
	}
}

// Browse возвращает страницу каталога: полный список из репозитория
// прогоняется через движок фильтрации, нарезка — уже по его результату.
func (c *CatalogUseCase) Browse(ctx context.Context, req *BrowseReq) (*BrowseRes, error) {
	const op = "CatalogUseCase.Browse"

	criteria, err := buildCriteria(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := c.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filtered := catalog.FilterAndSort(products, criteria)
	total := len(filtered)

	return NewBrowseRes(slicePage(filtered, req.Limit, req.Offset), total), nil
}

// GetProduct возвращает товар по идентификатору.
// Отсутствующий id — e.ErrProductNotFound, не сбой.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// CreateProduct добавляет товар продавца: валидация, загрузка изображений
// в MinIO, запись в репозиторий. При ошибке записи загруженные изображения
// зачищаются в фоне.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.CreateProduct"

	category, status, err := c.validateProduct(req.Name, req.Price, req.Category, req.Status)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var imageKey string
	var uploaded *UploadImagesRes
	if len(req.Images) > 0 {
		uploaded, err = c.imagesInfra.UploadImages(ctx, NewUploadImagesReq(req.Name, req.Images))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		imageKey = uploaded.ImagesKeys[0]
	}

	product := domain.NewProduct(req.Name, req.Description, req.Price, req.Stock, category, status)
	product.ImageKey = imageKey

	created, err := c.productRepo.Create(ctx, product)
	if err != nil {
		if uploaded != nil {
			c.logger.Warnf("Cleaning up orphaned images after create failure. product_name: %s, error: %v",
				req.Name, e.Wrap(op, err))
			c.imagesInfra.CleanupImages(uploaded.ImagesKeys)
		}
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// UpdateProduct правит существующий товар целиком (явное редактирование).
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UpdateProduct"

	category, status, err := c.validateProduct(req.Name, req.Price, req.Category, req.Status)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	current, err := c.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	current.Name = req.Name
	current.Description = req.Description
	current.Price = req.Price
	current.Stock = req.Stock
	current.Category = category
	current.Status = status

	updated, err := c.productRepo.Update(ctx, current)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// ArchiveProduct скрывает товар из каталога. Ссылки на него в корзинах и
// избранном не зачищаются: устаревшие ссылки допустимы.
func (c *CatalogUseCase) ArchiveProduct(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.ArchiveProduct"

	if err := c.productRepo.Archive(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// validateProduct проверяет корректность входных данных товара.
func (c *CatalogUseCase) validateProduct(name string, price int64, category, status string) (domain.Category, domain.Status, error) {
	if strings.TrimSpace(name) == "" {
		return "", "", e.ErrProductNameRequired
	}

	if price <= 0 {
		return "", "", e.ErrPriceMustBePositive
	}

	cat := domain.Category(category)
	if !domain.ValidCategory(cat) {
		return "", "", e.ErrUnknownCategory
	}

	st := domain.Status(status)
	if st == "" {
		st = domain.StatusDraft
	}
	if !domain.ValidStatus(st) {
		return "", "", e.ErrStatusBadRequest
	}

	return cat, st, nil
}

// buildCriteria переводит строковые параметры запроса в критерии движка.
// "all" и пустая строка означают отсутствие фильтра.
func buildCriteria(req *BrowseReq) (catalog.Criteria, error) {
	var criteria catalog.Criteria

	criteria.Query = req.Query

	if req.Category != "" && req.Category != "all" {
		cat := domain.Category(req.Category)
		if !domain.ValidCategory(cat) {
			return criteria, e.ErrUnknownCategory
		}
		criteria.Category = cat
	}

	if req.Status != "" && req.Status != "all" {
		st := domain.Status(req.Status)
		if !domain.ValidStatus(st) {
			return criteria, e.ErrStatusBadRequest
		}
		criteria.Status = st
	}

	if req.SortKey != "" {
		key := catalog.SortKey(req.SortKey)
		if !catalog.ValidSortKey(key) {
			return criteria, e.ErrUnknownSortKey
		}
		criteria.SortKey = key
	}

	return criteria, nil
}

// slicePage нарезает страницу из готовой выдачи движка.
func slicePage(products []domain.Product, limit, offset int) []domain.Product {
	if offset >= len(products) {
		return []domain.Product{}
	}
	page := products[offset:]
	if limit > 0 && limit < len(page) {
		page = page[:limit]
	}
	return page
}
