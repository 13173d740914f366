package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

func (r *CartItemGormRepository) ListBySessionID(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

// SELECT ... FOR UPDATE版。呼び出し側のトランザクション内で使う。
// 2本目の注文確定はここで待たされ、クリア済みカートを見る。
func (r *CartItemGormRepository) ListBySessionIDForUpdate(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("session_id = ?", sessionID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

// 同一(session, product)は数量を加算、無ければ新規行。
// 同時追加に備えて行ロックで読む。
func (r *CartItemGormRepository) UpsertBySessionAndProduct(ctx context.Context, sessionID string, productID int64, addQty int64) (model.CartItem, error) {
	var item model.CartItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("session_id = ? AND product_id = ?", sessionID, productID).
			First(&item).Error

		if findErr == nil {
			item.Quantity += addQty
			return tx.Model(&model.CartItem{}).
				Where("id = ?", item.ID).
				Update("quantity", item.Quantity).Error
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// 無ければ作る
		item = model.CartItem{
			SessionID: sessionID,
			ProductID: productID,
			Quantity:  addQty,
		}
		return tx.Create(&item).Error
	})

	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// idとsession_idの両方が一致した行だけ削除する
func (r *CartItemGormRepository) DeleteByIDAndSession(ctx context.Context, cartItemID int64, sessionID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", cartItemID, sessionID).
		Delete(&model.CartItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// セッションの明細を全削除
func (r *CartItemGormRepository) ClearBySessionID(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.CartItem{}).Error
}
