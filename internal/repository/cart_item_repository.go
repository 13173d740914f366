package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	ListBySessionID(ctx context.Context, sessionID string) ([]model.CartItem, error)
	// 注文確定用の行ロック付き読み取り。同一セッションの同時確定を直列化する。
	ListBySessionIDForUpdate(ctx context.Context, sessionID string) ([]model.CartItem, error)
	// 同一商品は数量プラス
	UpsertBySessionAndProduct(ctx context.Context, sessionID string, productID int64, addQty int64) (model.CartItem, error)
	// session_idまで一致した行だけ消す（idだけでは消させない）
	DeleteByIDAndSession(ctx context.Context, cartItemID int64, sessionID string) error
	ClearBySessionID(ctx context.Context, sessionID string) error
}
