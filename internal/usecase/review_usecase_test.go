package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReviewUsecaseForTest() (*usecase.ReviewUsecase, *MockReviewRepo, *MockProductRepo, *MockOrderRepo) {
	reviews := new(MockReviewRepo)
	products := new(MockProductRepo)
	orders := new(MockOrderRepo)
	return usecase.NewReviewUsecase(reviews, products, orders), reviews, products, orders
}

func TestReviewUsecase_Create_InvalidRating(t *testing.T) {
	uc, _, _, _ := newReviewUsecaseForTest()

	_, err := uc.Create(context.Background(), 1, 1, usecase.ReviewInput{Rating: 0})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	_, err = uc.Create(context.Background(), 1, 1, usecase.ReviewInput{Rating: 6})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestReviewUsecase_Create_ProductNotFound(t *testing.T) {
	uc, _, products, _ := newReviewUsecaseForTest()

	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Create(context.Background(), 1, 99, usecase.ReviewInput{Rating: 4})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

// 未購入の商品にはレビュー不可（403）
func TestReviewUsecase_Create_NotPurchased(t *testing.T) {
	uc, reviews, products, orders := newReviewUsecaseForTest()

	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, IsActive: true}, nil)
	orders.On("HasPaidProduct", mock.Anything, int64(1), int64(1)).Return(false, nil)

	_, err := uc.Create(context.Background(), 1, 1, usecase.ReviewInput{Rating: 4, Comment: "good"})
	assertHTTPStatus(t, err, http.StatusForbidden)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 同一商品への2件目は409
func TestReviewUsecase_Create_Duplicate(t *testing.T) {
	uc, reviews, products, orders := newReviewUsecaseForTest()

	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, IsActive: true}, nil)
	orders.On("HasPaidProduct", mock.Anything, int64(1), int64(1)).Return(true, nil)
	reviews.On("FindByUserAndProduct", mock.Anything, int64(1), int64(1)).
		Return(model.Review{ID: 3, UserID: 1, ProductID: 1, Rating: 5}, nil)

	_, err := uc.Create(context.Background(), 1, 1, usecase.ReviewInput{Rating: 4})
	assertHTTPStatus(t, err, http.StatusConflict)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewUsecase_Create_Success(t *testing.T) {
	uc, reviews, products, orders := newReviewUsecaseForTest()

	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, IsActive: true}, nil)
	orders.On("HasPaidProduct", mock.Anything, int64(1), int64(1)).Return(true, nil)
	reviews.On("FindByUserAndProduct", mock.Anything, int64(1), int64(1)).Return(model.Review{}, repo.ErrNotFound)
	reviews.On("Create", mock.Anything, mock.Anything).
		Return(model.Review{ID: 7, UserID: 1, ProductID: 1, Rating: 4, Comment: "good"}, nil)

	out, err := uc.Create(context.Background(), 1, 1, usecase.ReviewInput{Rating: 4, Comment: "good"})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, 4, out.Rating)
}

// 同時作成でunique制約に当たった場合だけ409へ丸める
func TestReviewUsecase_Create_UniqueConflictBackstop(t *testing.T) {
	uc, reviews, products, orders := newReviewUsecaseForTest()

	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, IsActive: true}, nil)
	orders.On("HasPaidProduct", mock.Anything, int64(1), int64(1)).Return(true, nil)
	reviews.On("FindByUserAndProduct", mock.Anything, int64(1), int64(1)).Return(model.Review{}, repo.ErrNotFound)
	reviews.On("Create", mock.Anything, mock.Anything).Return(model.Review{}, repo.ErrDuplicateKey)

	_, err := uc.Create(context.Background(), 1, 1, usecase.ReviewInput{Rating: 4})
	assertHTTPStatus(t, err, http.StatusConflict)
}

// その他のDB障害は409に見せず500
func TestReviewUsecase_Create_DBErrorIsNotConflict(t *testing.T) {
	uc, reviews, products, orders := newReviewUsecaseForTest()

	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, IsActive: true}, nil)
	orders.On("HasPaidProduct", mock.Anything, int64(1), int64(1)).Return(true, nil)
	reviews.On("FindByUserAndProduct", mock.Anything, int64(1), int64(1)).Return(model.Review{}, repo.ErrNotFound)
	reviews.On("Create", mock.Anything, mock.Anything).Return(model.Review{}, assert.AnError)

	_, err := uc.Create(context.Background(), 1, 1, usecase.ReviewInput{Rating: 4})
	assertHTTPStatus(t, err, http.StatusInternalServerError)
}

// 非公開商品は詳細と同じく存在しない扱い
func TestReviewUsecase_Create_InactiveProductHidden(t *testing.T) {
	uc, reviews, products, orders := newReviewUsecaseForTest()

	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, IsActive: false}, nil)

	_, err := uc.Create(context.Background(), 1, 1, usecase.ReviewInput{Rating: 4})
	assertHTTPStatus(t, err, http.StatusNotFound)
	orders.AssertNotCalled(t, "HasPaidProduct", mock.Anything, mock.Anything, mock.Anything)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewUsecase_ListForProduct_InactiveProductHidden(t *testing.T) {
	uc, reviews, products, _ := newReviewUsecaseForTest()

	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, IsActive: false}, nil)

	_, err := uc.ListForProduct(context.Background(), 1)
	assertHTTPStatus(t, err, http.StatusNotFound)
	reviews.AssertNotCalled(t, "ListByProductID", mock.Anything, mock.Anything)
}

func TestReviewUsecase_Update_HidesOtherUsersReview(t *testing.T) {
	uc, reviews, _, _ := newReviewUsecaseForTest()

	reviews.On("FindByID", mock.Anything, int64(3)).
		Return(model.Review{ID: 3, UserID: 2, ProductID: 1, Rating: 5}, nil)

	_, err := uc.Update(context.Background(), 1, 3, usecase.ReviewInput{Rating: 4})
	assertHTTPStatus(t, err, http.StatusNotFound)
	reviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReviewUsecase_Update_Success(t *testing.T) {
	uc, reviews, _, _ := newReviewUsecaseForTest()

	reviews.On("FindByID", mock.Anything, int64(3)).
		Return(model.Review{ID: 3, UserID: 1, ProductID: 1, Rating: 5, Comment: "old"}, nil)
	reviews.On("Update", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.Update(context.Background(), 1, 3, usecase.ReviewInput{Rating: 2, Comment: "changed my mind"})
	assert.NoError(t, err)
	assert.Equal(t, 2, out.Rating)
	assert.Equal(t, "changed my mind", out.Comment)
}

func TestReviewUsecase_Delete_HidesOtherUsersReview(t *testing.T) {
	uc, reviews, _, _ := newReviewUsecaseForTest()

	reviews.On("FindByID", mock.Anything, int64(3)).
		Return(model.Review{ID: 3, UserID: 2, ProductID: 1}, nil)

	err := uc.Delete(context.Background(), 1, 3)
	assertHTTPStatus(t, err, http.StatusNotFound)
	reviews.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestReviewUsecase_ListForProduct_ProductNotFound(t *testing.T) {
	uc, _, products, _ := newReviewUsecaseForTest()

	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.ListForProduct(context.Background(), 99)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
