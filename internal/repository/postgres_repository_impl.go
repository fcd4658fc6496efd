package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/aevohorology/storefront-service/internal/domain"
	"github.com/aevohorology/storefront-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// PostgresRemoteRepositoryImpl speaks to the remote data service over a
// direct database connection. Nested product fields (images, specs,
// features) and order items live in jsonb columns.
type PostgresRemoteRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewPostgresRemoteRepository(db *sqlx.DB) RemoteRepository {
	return &PostgresRemoteRepositoryImpl{db: db}
}

type productRow struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	Price         float64         `db:"price"`
	OriginalPrice sql.NullFloat64 `db:"original_price"`
	Category      string          `db:"category"`
	Images        []byte          `db:"images"`
	Specs         []byte          `db:"specs"`
	Features      []byte          `db:"features"`
	Tag           string          `db:"tag"`
	Stock         int             `db:"stock"`
	Rating        float64         `db:"rating"`
	ReviewCount   int             `db:"review_count"`
	CreatedAt     int64           `db:"created_at"`
}

type orderRow struct {
	ID                string  `db:"id"`
	TransactionNumber string  `db:"transaction_number"`
	CustomerName      string  `db:"customer_name"`
	CustomerEmail     string  `db:"customer_email"`
	Items             []byte  `db:"items"`
	Total             float64 `db:"total"`
	Status            string  `db:"status"`
	CreatedAt         int64   `db:"created_at"`
}

func (r *PostgresRemoteRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	var rows []productRow
	err = r.db.SelectContext(ctx, &rows, "SELECT * FROM products ORDER BY created_at DESC")
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrRemoteUnavailable
	}

	for _, row := range rows {
		product, err := row.toDomain()
		if err != nil {
			log.Error().Err(err).Str("component", "GetProducts").Msg("")
			return nil, err
		}
		data = append(data, product)
	}

	return
}

func (r *PostgresRemoteRepositoryImpl) UpsertProduct(ctx context.Context, data domain.Product) (err error) {
	row, err := toProductRow(data)
	if err != nil {
		return
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO products (id, name, description, price, original_price, category, images, specs, features, tag, stock, rating, review_count, created_at)
		VALUES (:id, :name, :description, :price, :original_price, :category, :images, :specs, :features, :tag, :stock, :rating, :review_count, :created_at)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, description = EXCLUDED.description, price = EXCLUDED.price,
			original_price = EXCLUDED.original_price, category = EXCLUDED.category, images = EXCLUDED.images,
			specs = EXCLUDED.specs, features = EXCLUDED.features, tag = EXCLUDED.tag,
			stock = EXCLUDED.stock, rating = EXCLUDED.rating, review_count = EXCLUDED.review_count`, row)
	if err != nil {
		log.Error().Err(err).Str("component", "UpsertProduct").Msg("")
		return errs.ErrRemoteUnavailable
	}

	return nil
}

func (r *PostgresRemoteRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	return r.deleteByID(ctx, "DELETE FROM products WHERE id = $1", id, "DeleteProduct")
}

func (r *PostgresRemoteRepositoryImpl) GetBanners(ctx context.Context) (data []domain.Banner, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM banners ORDER BY display_order ASC")
	if err != nil {
		log.Error().Err(err).Str("component", "GetBanners").Msg("")
		return nil, errs.ErrRemoteUnavailable
	}

	return
}

func (r *PostgresRemoteRepositoryImpl) UpsertBanner(ctx context.Context, data domain.Banner) (err error) {
	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO banners (id, title, subtitle, image_url, tag, display_order)
		VALUES (:id, :title, :subtitle, :image_url, :tag, :display_order)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, subtitle = EXCLUDED.subtitle, image_url = EXCLUDED.image_url,
			tag = EXCLUDED.tag, display_order = EXCLUDED.display_order`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpsertBanner").Msg("")
		return errs.ErrRemoteUnavailable
	}

	return nil
}

func (r *PostgresRemoteRepositoryImpl) DeleteBanner(ctx context.Context, id string) (err error) {
	return r.deleteByID(ctx, "DELETE FROM banners WHERE id = $1", id, "DeleteBanner")
}

func (r *PostgresRemoteRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM categories ORDER BY name ASC")
	if err != nil {
		log.Error().Err(err).Str("component", "GetCategories").Msg("")
		return nil, errs.ErrRemoteUnavailable
	}

	return
}

func (r *PostgresRemoteRepositoryImpl) UpsertCategory(ctx context.Context, data domain.Category) (err error) {
	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO categories (id, name) VALUES (:id, :name)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpsertCategory").Msg("")
		return errs.ErrRemoteUnavailable
	}

	return nil
}

func (r *PostgresRemoteRepositoryImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	return r.deleteByID(ctx, "DELETE FROM categories WHERE id = $1", id, "DeleteCategory")
}

func (r *PostgresRemoteRepositoryImpl) GetOrders(ctx context.Context) (data []domain.Order, err error) {
	var rows []orderRow
	err = r.db.SelectContext(ctx, &rows, "SELECT * FROM orders ORDER BY created_at DESC")
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrders").Msg("")
		return nil, errs.ErrRemoteUnavailable
	}

	for _, row := range rows {
		order := domain.Order{
			ID:                row.ID,
			TransactionNumber: row.TransactionNumber,
			CustomerName:      row.CustomerName,
			CustomerEmail:     row.CustomerEmail,
			Total:             row.Total,
			Status:            domain.OrderStatus(row.Status),
			CreatedAt:         row.CreatedAt,
		}
		if len(row.Items) > 0 {
			if err := json.Unmarshal(row.Items, &order.Items); err != nil {
				log.Error().Err(err).Str("component", "GetOrders").Msg("")
				return nil, err
			}
		}
		data = append(data, order)
	}

	return
}

func (r *PostgresRemoteRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (err error) {
	items, err := json.Marshal(data.Items)
	if err != nil {
		return
	}

	row := orderRow{
		ID:                data.ID,
		TransactionNumber: data.TransactionNumber,
		CustomerName:      data.CustomerName,
		CustomerEmail:     data.CustomerEmail,
		Items:             items,
		Total:             data.Total,
		Status:            string(data.Status),
		CreatedAt:         data.CreatedAt,
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO orders (id, transaction_number, customer_name, customer_email, items, total, status, created_at)
		VALUES (:id, :transaction_number, :customer_name, :customer_email, :items, :total, :status, :created_at)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status`, row)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return errs.ErrRemoteUnavailable
	}

	return nil
}

func (r *PostgresRemoteRepositoryImpl) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (err error) {
	result, err := r.db.ExecContext(ctx, "UPDATE orders SET status = $1 WHERE id = $2", string(status), id)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
		return errs.ErrRemoteUnavailable
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *PostgresRemoteRepositoryImpl) deleteByID(ctx context.Context, query string, id string, component string) (err error) {
	_, err = r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error().Err(err).Str("component", component).Msg("")
		return errs.ErrRemoteUnavailable
	}

	return nil
}

func (row productRow) toDomain() (domain.Product, error) {
	product := domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Category:    row.Category,
		Tag:         domain.ProductTag(row.Tag),
		Stock:       row.Stock,
		Rating:      row.Rating,
		ReviewCount: row.ReviewCount,
		CreatedAt:   row.CreatedAt,
	}

	if row.OriginalPrice.Valid {
		original := row.OriginalPrice.Float64
		product.OriginalPrice = &original
	}

	if len(row.Images) > 0 {
		if err := json.Unmarshal(row.Images, &product.Images); err != nil {
			return product, err
		}
	}
	if len(row.Specs) > 0 {
		if err := json.Unmarshal(row.Specs, &product.Specs); err != nil {
			return product, err
		}
	}
	if len(row.Features) > 0 {
		if err := json.Unmarshal(row.Features, &product.Features); err != nil {
			return product, err
		}
	}

	return product, nil
}

func toProductRow(product domain.Product) (productRow, error) {
	row := productRow{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Tag:         string(product.Tag),
		Stock:       product.Stock,
		Rating:      product.Rating,
		ReviewCount: product.ReviewCount,
		CreatedAt:   product.CreatedAt,
	}

	if product.OriginalPrice != nil {
		row.OriginalPrice = sql.NullFloat64{Float64: *product.OriginalPrice, Valid: true}
	}

	var err error
	if row.Images, err = json.Marshal(product.Images); err != nil {
		return row, err
	}
	if row.Specs, err = json.Marshal(product.Specs); err != nil {
		return row, err
	}
	if row.Features, err = json.Marshal(product.Features); err != nil {
		return row, err
	}

	return row, nil
}
