package model

import "time"

// カートはsession_idを共有する明細の集合。
// session_idは持っていること自体が権限（bearer capability）。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string    `gorm:"type:varchar(100);not null;index:idx_cart_session_product,unique" json:"session_id"`
	ProductID int64     `gorm:"not null;index:idx_cart_session_product,unique" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
