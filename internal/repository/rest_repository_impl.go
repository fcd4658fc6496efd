package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/aevohorology/storefront-service/config"
	"github.com/aevohorology/storefront-service/internal/domain"
	"github.com/aevohorology/storefront-service/pkg/errs"
	"github.com/aevohorology/storefront-service/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// RestRemoteRepositoryImpl talks to the remote data service's row API.
// Every call goes through a shared circuit breaker so a dead remote
// fails fast instead of stacking up 10s timeouts.
type RestRemoteRepositoryImpl struct {
	config *config.Config
	cb     *gobreaker.CircuitBreaker[[]byte]
}

func CreateNewRestRemoteRepository(config *config.Config, cb *gobreaker.CircuitBreaker[[]byte]) RemoteRepository {
	return &RestRemoteRepositoryImpl{config: config, cb: cb}
}

func (r *RestRemoteRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	body, err := r.do(ctx, "GET", "/rest/v1/products?select=*&order=created_at.desc", nil, "")
	if err != nil {
		return
	}

	err = json.Unmarshal(body, &data)
	return
}

func (r *RestRemoteRepositoryImpl) UpsertProduct(ctx context.Context, data domain.Product) (err error) {
	return r.upsert(ctx, "products", data)
}

func (r *RestRemoteRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	return r.delete(ctx, "products", id)
}

func (r *RestRemoteRepositoryImpl) GetBanners(ctx context.Context) (data []domain.Banner, err error) {
	body, err := r.do(ctx, "GET", "/rest/v1/banners?select=*&order=display_order.asc", nil, "")
	if err != nil {
		return
	}

	err = json.Unmarshal(body, &data)
	return
}

func (r *RestRemoteRepositoryImpl) UpsertBanner(ctx context.Context, data domain.Banner) (err error) {
	return r.upsert(ctx, "banners", data)
}

func (r *RestRemoteRepositoryImpl) DeleteBanner(ctx context.Context, id string) (err error) {
	return r.delete(ctx, "banners", id)
}

func (r *RestRemoteRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	body, err := r.do(ctx, "GET", "/rest/v1/categories?select=*&order=name.asc", nil, "")
	if err != nil {
		return
	}

	err = json.Unmarshal(body, &data)
	return
}

func (r *RestRemoteRepositoryImpl) UpsertCategory(ctx context.Context, data domain.Category) (err error) {
	return r.upsert(ctx, "categories", data)
}

func (r *RestRemoteRepositoryImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	return r.delete(ctx, "categories", id)
}

func (r *RestRemoteRepositoryImpl) GetOrders(ctx context.Context) (data []domain.Order, err error) {
	body, err := r.do(ctx, "GET", "/rest/v1/orders?select=*&order=created_at.desc", nil, "")
	if err != nil {
		return
	}

	err = json.Unmarshal(body, &data)
	return
}

func (r *RestRemoteRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (err error) {
	return r.upsert(ctx, "orders", data)
}

func (r *RestRemoteRepositoryImpl) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (err error) {
	payload, err := json.Marshal(map[string]domain.OrderStatus{"status": status})
	if err != nil {
		return
	}

	_, err = r.do(ctx, "PATCH", fmt.Sprintf("/rest/v1/orders?id=eq.%s", url.QueryEscape(id)), payload, "")
	return
}

func (r *RestRemoteRepositoryImpl) upsert(ctx context.Context, resource string, record interface{}) (err error) {
	// Rows are posted one at a time; merge-duplicates turns the insert
	// into an upsert keyed on the primary key.
	payload, err := json.Marshal([]interface{}{record})
	if err != nil {
		return
	}

	_, err = r.do(ctx, "POST", fmt.Sprintf("/rest/v1/%s", resource), payload, "resolution=merge-duplicates,return=minimal")
	return
}

func (r *RestRemoteRepositoryImpl) delete(ctx context.Context, resource string, id string) (err error) {
	_, err = r.do(ctx, "DELETE", fmt.Sprintf("/rest/v1/%s?id=eq.%s", resource, url.QueryEscape(id)), nil, "")
	return
}

func (r *RestRemoteRepositoryImpl) do(ctx context.Context, method string, path string, body []byte, prefer string) ([]byte, error) {
	responseBody, err := r.cb.Execute(func() ([]byte, error) {
		headers := map[string]string{
			"Content-Type":  "application/json",
			"apikey":        r.config.RemoteConfig.ServiceKey,
			"Authorization": fmt.Sprintf("Bearer %s", r.config.RemoteConfig.ServiceKey),
		}
		if prefer != "" {
			headers["Prefer"] = prefer
		}

		statusCode, responseBody, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:     r.config.RemoteConfig.BaseURL + path,
			Method:  method,
			Body:    body,
			Headers: headers,
		})
		if err != nil {
			return nil, err
		}

		if statusCode < 200 || statusCode > 299 {
			return nil, fmt.Errorf("remote data service returned status %d", statusCode)
		}

		return responseBody, nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "RestRemoteRepository").Str("path", path).Msg("")
		return nil, errs.ErrRemoteUnavailable
	}

	return responseBody, nil
}
