package postgres

import (
	"context"

	"snapcase/internal/domain/entity"
	domainerrors "snapcase/internal/domain/errors"
	"snapcase/internal/domain/repository"
	"snapcase/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sortColumns whitelists the sortable listing columns. Anything outside this
// map falls back to creation time so arbitrary column names can never reach
// the ORDER BY clause.
var sortColumns = map[string]string{
	"createdAt": "products.created_at",
	"price":     "products.price",
	"name":      "products.name",
}

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
// It returns the repository as a domain.ProductRepository interface, adhering to dependency inversion.
//
// The catalog's filter trees are composed dynamically per request, so this
// repository builds its conditions with gorm's clause API rather than the
// generated query builder, which only covers statically known predicates.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product together with its nested variants.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductCreationFailed.WrapMessage("duplicate variant SKU")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrProductCreationFailed.WrapMessage("variant stock must not be negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductCreationFailed.WrapMessage("missing required product information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Propagate generated IDs and timestamps back to the entity.
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	for i, variantM := range productM.Variants {
		if i < len(product.Variants) {
			product.Variants[i].ID = variantM.ID
			product.Variants[i].ProductID = variantM.ProductID
		}
	}

	return nil
}

// Update modifies an existing product and reconciles its variant set with
// the submitted one. Variants matching an existing (phone model, color) pair
// are updated in place so their IDs and SKUs survive the edit and cart
// entries keyed on them stay valid; pairs absent from the update are removed
// together with the cart entries that reference them.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ProductModel{}).
			Where("id = ?", product.ID).
			Updates(map[string]any{
				"name":            productM.Name,
				"description":     productM.Description,
				"price":           productM.Price,
				"discount":        productM.Discount,
				"category":        productM.Category,
				"tag":             productM.Tag,
				"available_model": productM.AvailableModel,
			})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
		}
		if result.RowsAffected == 0 {
			return repository.ErrProductNotFound
		}

		var existingMs []*model.ProductVariantModel
		if err := tx.Where("product_id = ?", product.ID).
			Find(&existingMs).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to load product variants")
		}

		diff := diffVariants(existingMs, productM.Variants)

		for _, variantM := range diff.toUpdate {
			err := tx.Model(&model.ProductVariantModel{}).
				Where("id = ?", variantM.ID).
				Updates(map[string]any{
					"stock": variantM.Stock,
					"image": variantM.Image,
				}).Error
			if err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to update product variant")
			}
		}

		if len(diff.toDeleteIDs) > 0 {
			// Cart entries keyed on removed variants would otherwise dangle.
			if err := tx.Where("variant_id IN ?", diff.toDeleteIDs).
				Delete(&model.CartEntryModel{}).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to remove cart entries of dropped variants")
			}
			if err := tx.Where("id IN ?", diff.toDeleteIDs).
				Delete(&model.ProductVariantModel{}).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to remove dropped variants")
			}
		}

		for _, variantM := range diff.toCreate {
			variantM.ProductID = product.ID
		}
		if len(diff.toCreate) > 0 {
			if err := tx.Create(diff.toCreate).Error; err != nil {
				if isUniqueConstraintViolation(err) {
					return domainerrors.ErrProductCreationFailed.WrapMessage("duplicate variant SKU")
				}
				return domainerrors.NewDatabaseExecuteError(err, "failed to create product variants")
			}
		}

		return nil
	})
}

// variantKey is the natural identity of a variant within a product. Updates
// carry no variant IDs, so in-place matching keys on this pair.
type variantKey struct {
	phoneModel string
	color      string
}

// variantDiff partitions a submitted variant set against the stored one.
type variantDiff struct {
	toUpdate    []*model.ProductVariantModel
	toCreate    []*model.ProductVariantModel
	toDeleteIDs []uuid.UUID
}

// diffVariants matches desired variants to existing rows by (phone model,
// color). Matched rows keep their ID and SKU and take the desired stock and
// image; unmatched desired variants become inserts; existing rows no desired
// variant claims become deletes.
func diffVariants(existing, desired []*model.ProductVariantModel) variantDiff {
	remaining := make(map[variantKey]*model.ProductVariantModel, len(existing))
	for _, variantM := range existing {
		remaining[variantKey{variantM.PhoneModel, variantM.Color}] = variantM
	}

	var diff variantDiff
	for _, variantM := range desired {
		key := variantKey{variantM.PhoneModel, variantM.Color}
		existingM, ok := remaining[key]
		if !ok {
			diff.toCreate = append(diff.toCreate, variantM)

			continue
		}
		delete(remaining, key)

		diff.toUpdate = append(diff.toUpdate, &model.ProductVariantModel{
			ID:         existingM.ID,
			ProductID:  existingM.ProductID,
			Color:      existingM.Color,
			Stock:      variantM.Stock,
			Image:      variantM.Image,
			PhoneModel: existingM.PhoneModel,
			SKU:        existingM.SKU,
		})
	}

	for _, existingM := range remaining {
		diff.toDeleteIDs = append(diff.toDeleteIDs, existingM.ID)
	}

	return diff
}

// Delete soft-deletes a product by its ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// FindByID retrieves a single product with all of its variants and reviews.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Variants").
		Preload("Reviews").
		Where("products.id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}
		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Search executes the filtered, sorted, paginated listing query together with
// a count query under the same filter.
func (repo *productRepository) Search(ctx context.Context, query repository.ProductQuery) ([]*entity.Product, int64, error) {
	condition, args := buildFilterSQL(query.Filter)

	base := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if condition != "" {
		base = base.Where(condition, args...)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = sortColumns["createdAt"]
	}
	direction := "DESC"
	if query.Order == "asc" {
		direction = "ASC"
	}

	var productMs []*model.ProductModel
	err := base.Session(&gorm.Session{}).
		Preload("Variants").
		Preload("Reviews").
		Order(column + " " + direction).
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&productMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search products")
	}

	return toProductDomains(productMs), total, nil
}

// FindRecent retrieves the most recently created products.
func (repo *productRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productMs []*model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Variants").
		Preload("Reviews").
		Order("products.created_at DESC").
		Limit(limit).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent products")
	}

	return toProductDomains(productMs), nil
}

// FindByFacets retrieves products matching any of the given categories or
// phone models, excluding the given IDs, ordered by descending review count.
func (repo *productRepository) FindByFacets(ctx context.Context, categories []entity.Category, phoneModels []entity.PhoneModel, excludeIDs []uuid.UUID, limit int) ([]*entity.Product, error) {
	facetChildren := make([]repository.ProductFilter, 0, 2)
	if len(categories) > 0 {
		facetChildren = append(facetChildren, repository.CategoryIn{Values: categories})
	}
	if len(phoneModels) > 0 {
		facetChildren = append(facetChildren, repository.PhoneModelIn{Values: phoneModels})
	}
	if len(facetChildren) == 0 {
		return []*entity.Product{}, nil
	}

	condition, args := buildFilterSQL(repository.Or{Filters: facetChildren})

	db := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("products.*").
		Joins("LEFT JOIN reviews ON reviews.product_id = products.id").
		Where(condition, args...)
	if len(excludeIDs) > 0 {
		db = db.Where("products.id NOT IN ?", excludeIDs)
	}

	var productMs []*model.ProductModel
	err := db.Group("products.id").
		Order("COUNT(reviews.id) DESC, products.created_at DESC").
		Limit(limit).
		Preload("Variants").
		Preload("Reviews").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by facets")
	}

	return toProductDomains(productMs), nil
}

// FindVariantByID retrieves a single product variant.
func (repo *productRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error) {
	var variantM model.ProductVariantModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&variantM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}
		return nil, errors.Wrap(err, "failed to find variant by id")
	}

	return toVariantDomain(&variantM), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	variants := make([]*entity.ProductVariant, 0, len(data.Variants))
	for _, variantM := range data.Variants {
		variants = append(variants, toVariantDomain(variantM))
	}

	reviews := make([]*entity.Review, 0, len(data.Reviews))
	for _, reviewM := range data.Reviews {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return &entity.Product{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		Discount:       data.Discount,
		Category:       entity.Category(data.Category),
		Tag:            entity.Tag(data.Tag),
		AvailableModel: data.AvailableModel,
		Variants:       variants,
		Reviews:        reviews,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toProductDomains(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel for persistence.
// Derived rating fields are intentionally not mapped; they only exist at read time.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	variants := make([]*model.ProductVariantModel, 0, len(data.Variants))
	for _, variant := range data.Variants {
		variants = append(variants, fromVariantDomain(variant))
	}

	return &model.ProductModel{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		Discount:       data.Discount,
		Category:       string(data.Category),
		Tag:            string(data.Tag),
		AvailableModel: data.AvailableModel,
		Variants:       variants,
	}
}

// toVariantDomain converts a GORM ProductVariantModel to a domain ProductVariant entity.
func toVariantDomain(data *model.ProductVariantModel) *entity.ProductVariant {
	if data == nil {
		return nil
	}

	return &entity.ProductVariant{
		ID:         data.ID,
		ProductID:  data.ProductID,
		Color:      data.Color,
		Stock:      data.Stock,
		Image:      data.Image,
		PhoneModel: entity.PhoneModel(data.PhoneModel),
		SKU:        data.SKU,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromVariantDomain converts a domain ProductVariant entity to a GORM ProductVariantModel.
func fromVariantDomain(data *entity.ProductVariant) *model.ProductVariantModel {
	if data == nil {
		return nil
	}

	return &model.ProductVariantModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		Color:      data.Color,
		Stock:      data.Stock,
		Image:      data.Image,
		PhoneModel: string(data.PhoneModel),
		SKU:        data.SKU,
	}
}
