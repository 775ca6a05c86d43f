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

// wishlistRepository implements the domain.WishlistRepository interface using GORM.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// Add persists a new wishlist entry. The (user, product) unique index turns
// repeated adds into ErrDuplicateWishlistEntry.
func (repo *wishlistRepository) Add(ctx context.Context, entry *entity.WishlistEntry) error {
	entryM := &model.WishlistEntryModel{
		UserID:    entry.UserID,
		ProductID: entry.ProductID,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWishlistEntry
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// Remove deletes the (user, product) entry.
func (repo *wishlistRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistEntryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove wishlist entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistEntryNotFound
	}

	return nil
}

// FindByUser retrieves all wishlist entries for a user with their products loaded.
func (repo *wishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistEntry, error) {
	var entryMs []*model.WishlistEntryModel

	err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Variants").
		Preload("Product.Reviews").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find wishlist entries by user")
	}

	entries := make([]*entity.WishlistEntry, 0, len(entryMs))
	for _, entryM := range entryMs {
		entries = append(entries, &entity.WishlistEntry{
			ID:        entryM.ID,
			UserID:    entryM.UserID,
			ProductID: entryM.ProductID,
			Product:   toProductDomain(entryM.Product),
			CreatedAt: entryM.CreatedAt,
		})
	}

	return entries, nil
}
