package controller

import (
	"github.com/aevohorology/storefront-service/internal/dto"
	"github.com/aevohorology/storefront-service/internal/service"
	"github.com/aevohorology/storefront-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service service.StorefrontService
}

func CreateStorefrontController(e *echo.Group, service service.StorefrontService, adminOnly echo.MiddlewareFunc) {
	c := Controller{
		service: service,
	}

	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProduct)
	e.GET("/banners", c.GetBanners)
	e.GET("/categories", c.GetCategories)
	e.GET("/wishlist", c.GetWishlist)
	e.POST("/wishlist/:productId/toggle", c.ToggleWishlist)
	e.POST("/orders", c.Checkout)
	e.GET("/status", c.GetStatus)

	e.POST("/auth/login", c.Login)
	e.POST("/auth/logout", c.Logout)
	e.GET("/auth/session", c.GetStatus)

	admin := e.Group("/admin", adminOnly)
	admin.POST("/products", c.UpsertProduct)
	admin.DELETE("/products/:id", c.DeleteProduct)
	admin.POST("/banners", c.UpsertBanner)
	admin.DELETE("/banners/:id", c.DeleteBanner)
	admin.POST("/categories", c.UpsertCategory)
	admin.DELETE("/categories/:id", c.DeleteCategory)
	admin.GET("/orders", c.GetOrders)
	admin.PATCH("/orders/:id/status", c.UpdateOrderStatus)
}

func (c *Controller) GetProducts(e echo.Context) error {
	filter := dto.ProductFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	data := c.service.GetProducts(e.Request().Context(), filter)

	return response.WriteSuccessResponse(e, "successfully retrieved products", data)
}

func (c *Controller) GetProduct(e echo.Context) error {
	data, err := c.service.GetProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *Controller) GetBanners(e echo.Context) error {
	data := c.service.GetBanners(e.Request().Context())

	return response.WriteSuccessResponse(e, "successfully retrieved banners", data)
}

func (c *Controller) GetCategories(e echo.Context) error {
	data := c.service.GetCategories(e.Request().Context())

	return response.WriteSuccessResponse(e, "successfully retrieved categories", data)
}

func (c *Controller) GetWishlist(e echo.Context) error {
	data := c.service.GetWishlist(e.Request().Context())

	return response.WriteSuccessResponse(e, "", data)
}

func (c *Controller) ToggleWishlist(e echo.Context) error {
	data := c.service.ToggleWishlist(e.Request().Context(), e.Param("productId"))

	return response.WriteSuccessResponse(e, "", data)
}

func (c *Controller) Checkout(e echo.Context) error {
	payload := dto.CheckoutRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Checkout").Msg("")
	}

	resp, err := c.service.Checkout(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "order placed", resp)
}

func (c *Controller) GetStatus(e echo.Context) error {
	resp := c.service.SessionStatus(e.Request().Context())

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) Logout(e echo.Context) error {
	err := c.service.Logout(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "signed out", nil)
}

func (c *Controller) UpsertProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpsertProduct").Msg("")
	}

	resp, err := c.service.UpsertProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) DeleteProduct(e echo.Context) error {
	resp, err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) UpsertBanner(e echo.Context) error {
	payload := dto.BannerRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpsertBanner").Msg("")
	}

	resp, err := c.service.UpsertBanner(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) DeleteBanner(e echo.Context) error {
	resp, err := c.service.DeleteBanner(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) UpsertCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpsertCategory").Msg("")
	}

	resp, err := c.service.UpsertCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) DeleteCategory(e echo.Context) error {
	resp, err := c.service.DeleteCategory(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) GetOrders(e echo.Context) error {
	data := c.service.GetOrders(e.Request().Context())

	return response.WriteSuccessResponse(e, "successfully retrieved orders", data)
}

func (c *Controller) UpdateOrderStatus(e echo.Context) error {
	payload := dto.OrderStatusRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
	}

	err = c.service.UpdateOrderStatus(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "order status updated", nil)
}
