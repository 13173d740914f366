package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	catalogH *handler.CatalogHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
	purchaseH *handler.PurchaseHandler,
	reviewH *handler.ReviewHandler,
) {
	authH.RegisterRoutes(e)
	userH.RegisterRoutes(e, cfg)
	catalogH.RegisterRoutes(e, cfg)
	cartH.RegisterRoutes(e)
	orderH.RegisterRoutes(e, cfg)
	purchaseH.RegisterRoutes(e, cfg)
	reviewH.RegisterRoutes(e, cfg)
}
