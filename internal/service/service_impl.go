package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aevohorology/storefront-service/config"
	"github.com/aevohorology/storefront-service/internal/domain"
	"github.com/aevohorology/storefront-service/internal/dto"
	"github.com/aevohorology/storefront-service/internal/repository"
	"github.com/aevohorology/storefront-service/internal/store"
	"github.com/aevohorology/storefront-service/pkg/errs"
	"github.com/aevohorology/storefront-service/pkg/utils"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// SessionNotifier triggers an immediate auth session poll so the store
// hears about sign-in/sign-out without waiting a watcher interval.
type SessionNotifier interface {
	Poll()
}

type StorefrontServiceImpl struct {
	store          *store.Store
	authRepo       repository.AuthRepository
	midtransClient *coreapi.Client
	notifier       SessionNotifier
	config         *config.Config
}

func CreateNewStorefrontService(store *store.Store, authRepo repository.AuthRepository, midtransClient *coreapi.Client, notifier SessionNotifier, config *config.Config) StorefrontService {
	return &StorefrontServiceImpl{
		store:          store,
		authRepo:       authRepo,
		midtransClient: midtransClient,
		notifier:       notifier,
		config:         config,
	}
}

func (s *StorefrontServiceImpl) GetProducts(ctx context.Context, filter dto.ProductFilter) (data []domain.Product) {
	data = s.store.Products()

	if filter.Category == "" && filter.Tag == "" && filter.Q == "" {
		return
	}

	q := strings.ToLower(filter.Q)
	filtered := make([]domain.Product, 0, len(data))
	for _, product := range data {
		if filter.Category != "" && !strings.EqualFold(product.Category, filter.Category) {
			continue
		}
		if filter.Tag != "" && string(product.Tag) != filter.Tag {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(product.Name), q) &&
			!strings.Contains(strings.ToLower(product.Description), q) {
			continue
		}
		filtered = append(filtered, product)
	}

	return filtered
}

func (s *StorefrontServiceImpl) GetProduct(ctx context.Context, id string) (data domain.Product, err error) {
	data, found := s.store.ProductByID(id)
	if !found {
		return data, errs.ErrNotFound
	}

	return data, nil
}

func (s *StorefrontServiceImpl) GetBanners(ctx context.Context) (data []domain.Banner) {
	return s.store.Banners()
}

func (s *StorefrontServiceImpl) GetCategories(ctx context.Context) (data []domain.Category) {
	return s.store.Categories()
}

func (s *StorefrontServiceImpl) GetWishlist(ctx context.Context) (data dto.WishlistResponse) {
	return dto.WishlistResponse{ProductIDs: s.store.Wishlist()}
}

func (s *StorefrontServiceImpl) ToggleWishlist(ctx context.Context, productID string) (data dto.WishlistResponse) {
	s.store.ToggleWishlist(productID)
	return dto.WishlistResponse{ProductIDs: s.store.Wishlist()}
}

func (s *StorefrontServiceImpl) Checkout(ctx context.Context, req dto.CheckoutRequest) (resp dto.CheckoutResponse, err error) {
	if len(req.Items) == 0 {
		return resp, errs.ErrEmptyOrder
	}

	order := domain.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        domain.OrderStatusPending,
		CreatedAt:     time.Now().Unix(),
	}

	orderID, err := uuid.NewV7()
	if err != nil {
		return resp, fmt.Errorf("error generating order id: %v", err)
	}
	order.ID = orderID.String()
	order.TransactionNumber = ulid.Make().String()

	// Prices come from the catalog, never from the request.
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return resp, errs.ErrClient
		}

		product, found := s.store.ProductByID(item.ProductID)
		if !found {
			return resp, errs.ErrNotFound
		}

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		order.Items = append(order.Items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Image:     image,
		})
		order.Total += product.Price * float64(item.Quantity)
	}

	resp.Synced = s.store.AddOrder(ctx, order)
	resp.Order = order
	resp.QRCodeURL = s.chargePayment(order)

	return resp, nil
}

// chargePayment requests a QRIS charge for the order. A failed charge
// leaves the order Pending; it never fails the checkout.
func (s *StorefrontServiceImpl) chargePayment(order domain.Order) string {
	if s.midtransClient == nil || s.config.MidtransConfig.ServerKey == "" {
		return ""
	}

	chargeItems := make([]midtrans.ItemDetails, len(order.Items))
	for i, item := range order.Items {
		chargeItems[i] = midtrans.ItemDetails{
			ID:    item.ProductID,
			Name:  item.Name,
			Price: int64(item.Price),
			Qty:   int32(item.Quantity),
		}
	}

	chargeResp, chargeErr := s.midtransClient.ChargeTransaction(&coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeQris,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.TransactionNumber,
			GrossAmt: int64(order.Total),
		},
		Items: &chargeItems,
	})
	if chargeErr != nil {
		log.Error().Err(chargeErr).Str("component", "chargePayment").Str("order", order.ID).Msg("")
		return ""
	}

	for _, action := range chargeResp.Actions {
		if action.Name == "generate-qr-code" {
			return action.URL
		}
	}

	return ""
}

func (s *StorefrontServiceImpl) UpsertProduct(ctx context.Context, req dto.ProductRequest) (resp dto.MutationResponse, err error) {
	if req.Name == "" {
		return resp, errs.ErrClient
	}

	product := domain.Product{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      req.Category,
		Images:        req.Images,
		Specs:         req.Specs,
		Features:      req.Features,
		Tag:           domain.ProductTag(req.Tag),
		Stock:         req.Stock,
		Rating:        req.Rating,
		ReviewCount:   req.ReviewCount,
	}

	if product.Stock < 0 || product.ReviewCount < 0 {
		return resp, errs.ErrClient
	}

	if product.Tag == "" {
		product.Tag = domain.TagNone
	}

	if product.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return resp, fmt.Errorf("error generating product id: %v", err)
		}
		product.ID = id.String()
	}

	if existing, found := s.store.ProductByID(product.ID); found {
		product.CreatedAt = existing.CreatedAt
	} else {
		product.CreatedAt = time.Now().Unix()
	}

	resp.Synced = s.store.UpsertProduct(ctx, product)
	resp.Data = product
	return resp, nil
}

func (s *StorefrontServiceImpl) DeleteProduct(ctx context.Context, id string) (resp dto.MutationResponse, err error) {
	resp.Synced = s.store.DeleteProduct(ctx, id)
	return resp, nil
}

func (s *StorefrontServiceImpl) UpsertBanner(ctx context.Context, req dto.BannerRequest) (resp dto.MutationResponse, err error) {
	if req.Title == "" {
		return resp, errs.ErrClient
	}

	banner := domain.Banner{
		ID:           req.ID,
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		ImageURL:     req.ImageURL,
		Tag:          req.Tag,
		DisplayOrder: req.DisplayOrder,
	}

	if banner.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return resp, fmt.Errorf("error generating banner id: %v", err)
		}
		banner.ID = id.String()
	}

	resp.Synced = s.store.UpsertBanner(ctx, banner)
	resp.Data = banner
	return resp, nil
}

func (s *StorefrontServiceImpl) DeleteBanner(ctx context.Context, id string) (resp dto.MutationResponse, err error) {
	resp.Synced = s.store.DeleteBanner(ctx, id)
	return resp, nil
}

func (s *StorefrontServiceImpl) UpsertCategory(ctx context.Context, req dto.CategoryRequest) (resp dto.MutationResponse, err error) {
	if req.Name == "" {
		return resp, errs.ErrClient
	}

	category := domain.Category{ID: req.ID, Name: req.Name}

	if category.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return resp, fmt.Errorf("error generating category id: %v", err)
		}
		category.ID = id.String()
	}

	// Category names are unique display labels.
	for _, existing := range s.store.Categories() {
		if existing.ID != category.ID && strings.EqualFold(existing.Name, category.Name) {
			return resp, errs.ErrDuplicateName
		}
	}

	resp.Synced = s.store.UpsertCategory(ctx, category)
	resp.Data = category
	return resp, nil
}

func (s *StorefrontServiceImpl) DeleteCategory(ctx context.Context, id string) (resp dto.MutationResponse, err error) {
	resp.Synced = s.store.DeleteCategory(ctx, id)
	return resp, nil
}

func (s *StorefrontServiceImpl) GetOrders(ctx context.Context) (data []domain.Order) {
	return s.store.Orders()
}

func (s *StorefrontServiceImpl) UpdateOrderStatus(ctx context.Context, id string, req dto.OrderStatusRequest) (err error) {
	if req.Status == "" {
		return errs.ErrClient
	}

	status := domain.OrderStatus(req.Status)
	if !s.store.UpdateOrderStatus(ctx, id, status) {
		return errs.ErrRemoteUnavailable
	}

	if status == domain.OrderStatusShipped {
		s.sendShippingNotification(id)
	}

	return nil
}

func (s *StorefrontServiceImpl) sendShippingNotification(orderID string) {
	if s.config.SMTPConfig.Host == "" {
		return
	}

	var order domain.Order
	found := false
	for _, candidate := range s.store.Orders() {
		if candidate.ID == orderID {
			order = candidate
			found = true
			break
		}
	}

	if !found || order.CustomerEmail == "" {
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.config.SMTPConfig.Sender)
	message.SetHeader("To", order.CustomerEmail)
	message.SetHeader("Subject", fmt.Sprintf("Your AEVO order %s has shipped", order.TransactionNumber))
	message.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nYour order %s is on its way.\n\nAEVO Horology",
		order.CustomerName, order.TransactionNumber,
	))

	if err := utils.SendEmail(message, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port); err != nil {
		log.Error().Err(err).Str("component", "sendShippingNotification").Str("order", orderID).Msg("")
	}
}

func (s *StorefrontServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error) {
	if req.Email == "" || req.Password == "" {
		return resp, errs.ErrClient
	}

	sess, user, err := s.authRepo.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return resp, err
	}

	// The store learns about the new session through the subscription.
	if s.notifier != nil {
		s.notifier.Poll()
	}

	resp.AccessToken = sess.AccessToken
	resp.ExpiresAt = sess.ExpiresAt
	resp.Email = user.Email
	return resp, nil
}

func (s *StorefrontServiceImpl) Logout(ctx context.Context) (err error) {
	s.store.SignOut(ctx)

	if s.notifier != nil {
		s.notifier.Poll()
	}

	return nil
}

func (s *StorefrontServiceImpl) SessionStatus(ctx context.Context) (resp dto.StatusResponse) {
	auth := s.store.Auth()

	resp.Connectivity = string(s.store.Status())
	resp.Loaded = s.store.Loaded()
	resp.SignedIn = auth.Session.AccessToken != ""
	resp.IsAdmin = auth.IsAdmin
	resp.Email = auth.User.Email
	return resp
}
