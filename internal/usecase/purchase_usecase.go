package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// PurchaseUsecase は購入履歴とコンテンツ解放。
// Product.Contentを返せるのはここのGetContentだけ。
type PurchaseUsecase struct {
	tx repo.TransactionManager
}

func NewPurchaseUsecase(tx repo.TransactionManager) *PurchaseUsecase {
	return &PurchaseUsecase{tx: tx}
}

type PurchaseContentOutput struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Content     string `json:"content"`
}

// 購入履歴＝自分のPAID注文
func (u *PurchaseUsecase) ListPurchases(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListPaidByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// GetContent は「自分の注文」かつ「PAID」の時だけコンテンツを返す。
// 他人の注文は404、未払いは409。
func (u *PurchaseUsecase) GetContent(ctx context.Context, userID int64, orderID int64) ([]PurchaseContentOutput, error) {
	if userID <= 0 {
		return []PurchaseContentOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return []PurchaseContentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var outs []PurchaseContentOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if o.Status != model.OrderStatusPaid {
			return NewHTTPError(http.StatusConflict, "order not paid")
		}

		rows, err := r.OrderItems().ListContentByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]PurchaseContentOutput, 0, len(rows))
		for _, row := range rows {
			outs = append(outs, PurchaseContentOutput{
				ProductID:   row.ProductID,
				ProductName: row.ProductName,
				Content:     row.Content,
			})
		}
		return nil
	})

	if err != nil {
		return []PurchaseContentOutput{}, err
	}
	return outs, nil
}
