package service

import (
	"context"

	"github.com/aevohorology/storefront-service/internal/domain"
	"github.com/aevohorology/storefront-service/internal/dto"
)

type StorefrontService interface {
	GetProducts(ctx context.Context, filter dto.ProductFilter) (data []domain.Product)
	GetProduct(ctx context.Context, id string) (data domain.Product, err error)
	GetBanners(ctx context.Context) (data []domain.Banner)
	GetCategories(ctx context.Context) (data []domain.Category)

	GetWishlist(ctx context.Context) (data dto.WishlistResponse)
	ToggleWishlist(ctx context.Context, productID string) (data dto.WishlistResponse)

	Checkout(ctx context.Context, req dto.CheckoutRequest) (resp dto.CheckoutResponse, err error)

	UpsertProduct(ctx context.Context, req dto.ProductRequest) (resp dto.MutationResponse, err error)
	DeleteProduct(ctx context.Context, id string) (resp dto.MutationResponse, err error)
	UpsertBanner(ctx context.Context, req dto.BannerRequest) (resp dto.MutationResponse, err error)
	DeleteBanner(ctx context.Context, id string) (resp dto.MutationResponse, err error)
	UpsertCategory(ctx context.Context, req dto.CategoryRequest) (resp dto.MutationResponse, err error)
	DeleteCategory(ctx context.Context, id string) (resp dto.MutationResponse, err error)

	GetOrders(ctx context.Context) (data []domain.Order)
	UpdateOrderStatus(ctx context.Context, id string, req dto.OrderStatusRequest) (err error)

	Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error)
	Logout(ctx context.Context) (err error)
	SessionStatus(ctx context.Context) (resp dto.StatusResponse)
}
