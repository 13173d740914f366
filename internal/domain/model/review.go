package model

import "time"

// 1ユーザーにつき同じ商品へのレビューは1件（DB側でもunique）
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_review_user_product,unique" json:"user_id"`
	ProductID int64     `gorm:"not null;index:idx_review_user_product,unique" json:"product_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
