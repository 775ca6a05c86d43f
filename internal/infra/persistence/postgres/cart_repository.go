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

// cartRepository implements the domain.CartRepository interface using GORM.
//
// The stock guard lives inside the SQL statements themselves. Checking the
// stock in application code and then writing would leave a window between the
// read and the write where another request could drain the stock; a single
// conditional statement closes that window.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// The guard statements check the variant's stock and its product's liveness
// inside the write itself. A soft-deleted product keeps its variant rows, so
// the liveness predicate is what stops carts from accumulating entries for
// products no longer in the catalog.
const (
	addItemSQL = `
		INSERT INTO cart_entries (user_id, variant_id, quantity, created_at, updated_at)
		SELECT ?, pv.id, ?, NOW(), NOW()
		FROM product_variants pv
		WHERE pv.id = ?
		  AND EXISTS (
			SELECT 1 FROM products p
			WHERE p.id = pv.product_id AND p.deleted_at IS NULL
		  )
		  AND pv.stock >= ? + COALESCE((
			SELECT ce.quantity FROM cart_entries ce
			WHERE ce.user_id = ? AND ce.variant_id = ?
		  ), 0)
		ON CONFLICT (user_id, variant_id)
		DO UPDATE SET quantity = cart_entries.quantity + EXCLUDED.quantity, updated_at = NOW()`

	updateQuantitySQL = `
		UPDATE cart_entries
		SET quantity = ?, updated_at = NOW()
		FROM product_variants pv
		WHERE cart_entries.user_id = ?
		  AND cart_entries.variant_id = ?
		  AND pv.id = cart_entries.variant_id
		  AND EXISTS (
			SELECT 1 FROM products p
			WHERE p.id = pv.product_id AND p.deleted_at IS NULL
		  )
		  AND pv.stock >= ?`
)

// AddItem inserts a new entry or merges the quantity into the existing
// (user, variant) entry. The stock predicate accounts for the quantity
// already in the cart, so both the insert and the merge path are guarded by
// the same condition inside one atomic statement.
func (repo *cartRepository) AddItem(ctx context.Context, entry *entity.CartEntry) error {
	result := repo.db.WithContext(ctx).Exec(addItemSQL,
		entry.UserID, entry.Quantity,
		entry.VariantID,
		entry.Quantity, entry.UserID, entry.VariantID,
	)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add cart entry")
	}

	if result.RowsAffected == 0 {
		// Either the variant is not purchasable or the stock guard rejected
		// the quantity. Distinguish the two for the caller.
		live, err := repo.variantIsLive(ctx, entry.VariantID)
		if err != nil {
			return err
		}
		if !live {
			return repository.ErrVariantNotFound
		}

		return repository.ErrStockExceeded
	}

	return nil
}

// UpdateQuantity sets the quantity of an existing entry, guarded against
// exceeding the variant's stock by the same single-statement approach.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, userID, variantID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).Exec(updateQuantitySQL,
		quantity, userID, variantID, quantity,
	)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart quantity")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.CartEntryModel{}).
			Where("user_id = ? AND variant_id = ?", userID, variantID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check cart entry existence")
		}
		if count == 0 {
			return repository.ErrCartEntryNotFound
		}

		live, err := repo.variantIsLive(ctx, variantID)
		if err != nil {
			return err
		}
		if !live {
			return repository.ErrVariantNotFound
		}

		return repository.ErrStockExceeded
	}

	return nil
}

// variantIsLive reports whether the variant exists and belongs to a product
// that has not been soft-deleted.
func (repo *cartRepository) variantIsLive(ctx context.Context, variantID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{}).
		Joins("JOIN products ON products.id = product_variants.product_id AND products.deleted_at IS NULL").
		Where("product_variants.id = ?", variantID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check variant existence")
	}

	return count > 0, nil
}

// RemoveItem deletes the (user, variant) entry.
func (repo *cartRepository) RemoveItem(ctx context.Context, userID, variantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND variant_id = ?", userID, variantID).
		Delete(&model.CartEntryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove cart entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartEntryNotFound
	}

	return nil
}

// FindEntriesByUser retrieves all cart entries for a user with their variants
// and owning products loaded.
func (repo *cartRepository) FindEntriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartEntry, error) {
	var entryMs []*model.CartEntryModel

	err := repo.db.WithContext(ctx).
		Preload("Variant").
		Preload("Variant.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart entries by user")
	}

	entries := make([]*entity.CartEntry, 0, len(entryMs))
	for _, entryM := range entryMs {
		entries = append(entries, toCartEntryDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toCartEntryDomain converts a GORM CartEntryModel to a domain CartEntry entity.
func toCartEntryDomain(data *model.CartEntryModel) *entity.CartEntry {
	if data == nil {
		return nil
	}

	entry := &entity.CartEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		VariantID: data.VariantID,
		Quantity:  data.Quantity,
		Variant:   toVariantDomain(data.Variant),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Variant != nil {
		entry.Product = toProductDomain(data.Variant.Product)
	}

	return entry
}
