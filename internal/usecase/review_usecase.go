package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ReviewUsecase はレビューのCRUD。
// 作成は「その商品を含むPAID注文を持っている」ことが条件。
type ReviewUsecase struct {
	reviewRepo  repo.ReviewRepository
	productRepo repo.ProductRepository
	orderRepo   repo.OrderRepository
}

func NewReviewUsecase(
	reviewRepo repo.ReviewRepository,
	productRepo repo.ProductRepository,
	orderRepo repo.OrderRepository,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

type ReviewInput struct {
	Rating  int
	Comment string
}

func (u *ReviewUsecase) ListForProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	if productID <= 0 {
		return []model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return []model.Review{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return []model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	//非公開商品は詳細と同じく存在しない扱い
	if !p.IsActive {
		return []model.Review{}, NewHTTPError(http.StatusNotFound, "product not found")
	}

	items, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return []model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ReviewUsecase) Create(ctx context.Context, userID int64, productID int64, in ReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	//購入済み商品だけレビュー可。削除済み・非公開商品は対象外。
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "product not found")
	}

	purchased, err := u.orderRepo.HasPaidProduct(ctx, userID, productID)
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !purchased {
		return model.Review{}, NewHTTPError(http.StatusForbidden, "product not purchased")
	}

	//同じ商品への2件目は409
	if _, err := u.reviewRepo.FindByUserAndProduct(ctx, userID, productID); err == nil {
		return model.Review{}, NewHTTPError(http.StatusConflict, "review already exists")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.reviewRepo.Create(ctx, model.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	})
	if err != nil {
		// unique制約のバックストップ（同時作成）。その他のDB障害は500。
		if errors.Is(err, repo.ErrDuplicateKey) {
			return model.Review{}, NewHTTPError(http.StatusConflict, "review already exists")
		}
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *ReviewUsecase) Update(ctx context.Context, userID int64, reviewID int64, in ReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if reviewID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	rv, err := u.reviewRepo.FindByID(ctx, reviewID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "review not found")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//他人のレビューは「存在しない扱い」
	if rv.UserID != userID {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "review not found")
	}

	rv.Rating = in.Rating
	rv.Comment = in.Comment

	if err := u.reviewRepo.Update(ctx, rv); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Review{}, NewHTTPError(http.StatusNotFound, "review not found")
		}
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rv, nil
}

func (u *ReviewUsecase) Delete(ctx context.Context, userID int64, reviewID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if reviewID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	rv, err := u.reviewRepo.FindByID(ctx, reviewID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "review not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if rv.UserID != userID {
		return NewHTTPError(http.StatusNotFound, "review not found")
	}

	if err := u.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "review not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
