package impl

import (
	"context"
	"log/slog"

	deliverycontext "snapcase/internal/delivery/context"
	"snapcase/internal/domain/entity"
	domainerrors "snapcase/internal/domain/errors"
	"snapcase/internal/domain/repository"
	"snapcase/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	cache     repository.Cache
	logger    *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Cache     repository.Cache
	Logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager: params.TxManager,
		cache:     params.Cache,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview posts a review. The product existence check and the insert
// run in one transaction so a concurrent product deletion cannot leave an
// orphaned review.
func (srv *reviewService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Stars < 1 || input.Stars > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("stars must be between 1 and 5")
	}

	review := &entity.Review{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Message:   input.Message,
		Stars:     input.Stars,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		reviewRepo := repoFactory.NewReviewRepository()

		if _, err := productRepo.FindByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product for review")
		}

		return reviewRepo.Create(ctx, review)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create review", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Review created", slog.Any("reviewID", review.ID), slog.Any("productID", input.ProductID))

	// A new review changes derived ratings and recommendation ordering, so
	// cached catalog payloads are stale from here on.
	if err := srv.cache.DeleteByPattern(ctx, catalogCachePrefix+"*"); err != nil {
		srv.log(ctx).Warn("Catalog cache invalidation failed after review", slog.Any("error", err))
	}

	return review, nil
}
