package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func Start(
	addr string,
	cfg config.Config,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	catalogH *handler.CatalogHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
	purchaseH *handler.PurchaseHandler,
	reviewH *handler.ReviewHandler,
) error {
	e := echo.New()
	e.HideBanner = true

	//アクセスログとpanic回復
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	RegisterRoutes(e, cfg, authH, userH, catalogH, cartH, orderH, purchaseH, reviewH)

	return e.Start(addr)
}
