package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")
	// unique制約違反（email重複・レビュー重複など）
	ErrDuplicateKey = errors.New("duplicate key")
)

// 公開一覧の検索条件
type ProductListQuery struct {
	Page       int
	Limit      int
	CategoryID *int64
}

// 商品の永続化（保存・取得）だけを約束。
// Content列もここを通るが、JSONへ出すかはusecase/handler側の責任。
type ProductRepository interface {
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error
}
