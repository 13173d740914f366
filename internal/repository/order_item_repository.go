package repository

import (
	"context"

	"app/internal/domain/model"
)

// 注文内の商品ごとのコンテンツ（購入済みのみ返す用途）
type OrderItemContent struct {
	ProductID   int64
	ProductName string
	Content     string
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	// order_items×productsをJOINしてコンテンツ本体を取り出す
	ListContentByOrderID(ctx context.Context, orderID int64) ([]OrderItemContent, error)
}
