package repository

import (
	"context"

	"github.com/aevohorology/storefront-service/internal/domain"
)

// RemoteRepository is the row-oriented contract of the remote data
// service. List orderings are fixed: products and orders by creation
// time descending, banners by display order ascending, categories by
// name ascending.
type RemoteRepository interface {
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	UpsertProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)

	GetBanners(ctx context.Context) (data []domain.Banner, err error)
	UpsertBanner(ctx context.Context, data domain.Banner) (err error)
	DeleteBanner(ctx context.Context, id string) (err error)

	GetCategories(ctx context.Context) (data []domain.Category, err error)
	UpsertCategory(ctx context.Context, data domain.Category) (err error)
	DeleteCategory(ctx context.Context, id string) (err error)

	GetOrders(ctx context.Context) (data []domain.Order, err error)
	AddOrder(ctx context.Context, data domain.Order) (err error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (err error)
}

// AuthRepository fronts the remote authentication sub-service. A session
// with an empty access token means nobody is signed in; that is not an
// error.
type AuthRepository interface {
	SignIn(ctx context.Context, email string, password string) (sess domain.Session, user domain.User, err error)
	SignOut(ctx context.Context) (err error)
	GetSession(ctx context.Context) (sess domain.Session, user domain.User, err error)
	IsAdmin(ctx context.Context, userID string) (isAdmin bool, err error)
}
