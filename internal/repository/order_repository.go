package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	ListPaidByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)

	// PENDINGの時だけPAIDへ更新する条件付きUPDATE。
	// 対象0行なら遷移済みとしてErrNotFoundを返す（read-then-writeはしない）。
	MarkPaid(ctx context.Context, orderID int64, paymentID string) error

	// 支払い済み注文にその商品が含まれるか（レビュー資格の判定）
	HasPaidProduct(ctx context.Context, userID int64, productID int64) (bool, error)
}
