package repository

import (
	"context"

	"app/internal/domain/model"
)

type ReviewRepository interface {
	FindByID(ctx context.Context, reviewID int64) (model.Review, error)
	FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.Review, error)
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	Create(ctx context.Context, review model.Review) (model.Review, error)
	Update(ctx context.Context, review model.Review) error
	Delete(ctx context.Context, reviewID int64) error
}
