package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	repo "app/internal/repository"

	"github.com/google/uuid"
)

// CartUsecase は /cart の業務ロジック。
// カートは認証ではなくsession_id（bearer capability）で守る。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartItemResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type CartResponse struct {
	SessionID string             `json:"session_id"`
	Items     []CartItemResponse `json:"items"`
	Total     int64              `json:"total"`
}

type AddCartInput struct {
	SessionID string
	ProductID int64
	Quantity  int64
}

// 追加結果。session_idは新規発行の場合もここで返る。
type AddCartOutput struct {
	SessionID string           `json:"session_id"`
	Item      CartItemResponse `json:"item"`
}

func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	return u.buildCartResponse(ctx, sessionID)
}

// AddToCart はカートに追加（同一商品は数量加算）。
// session_id未指定なら新規発行して返す。
func (u *CartUsecase) AddToCart(ctx context.Context, in AddCartInput) (AddCartOutput, error) {
	if in.ProductID <= 0 {
		return AddCartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return AddCartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	//商品チェック（公開のみ）
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return AddCartOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return AddCartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return AddCartOutput{}, NewHTTPError(http.StatusBadRequest, "product not available")
	}

	item, err := u.cartItemRepo.UpsertBySessionAndProduct(ctx, sessionID, in.ProductID, in.Quantity)
	if err != nil {
		return AddCartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AddCartOutput{
		SessionID: sessionID,
		Item: CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  item.Quantity,
		},
	}, nil
}

// 明細削除。session_idが一致しない行は存在しない扱い。
func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, cartItemID int64) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	if cartItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.cartItemRepo.DeleteByIDAndSession(ctx, cartItemID, sessionID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CartUsecase) ClearCart(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return NewHTTPError(http.StatusBadRequest, "session_id is required")
	}

	if err := u.cartItemRepo.ClearBySessionID(ctx, sessionID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// セッションの明細をまとめてCartResponseを作る。
// 価格は現在の商品価格（確定はcreateOrder時のスナップショット）。
func (u *CartUsecase) buildCartResponse(ctx context.Context, sessionID string) (CartResponse, error) {
	items, err := u.cartItemRepo.ListBySessionID(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var total int64 = 0

	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			//削除済み商品の明細だけ読み飛ばす
			continue
		}
		if err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !p.IsActive {
			continue
		}

		respItems = append(respItems, CartItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  it.Quantity,
		})

		total += p.Price * it.Quantity
	}

	return CartResponse{SessionID: sessionID, Items: respItems, Total: total}, nil
}
