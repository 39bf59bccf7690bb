package repository

import (
	"context"
	"fmt"
	"strconv"

	"digisure/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	FetchAll(ctx context.Context) ([]domain.Product, error)
	Count(ctx context.Context) (int, error)
	Seed(ctx context.Context, products []domain.Product) error
}

type productRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &productRepository{db: db}
}

// FetchAll reads the whole products table in insertion order and maps
// each row back to the catalog shape. Rating is persisted as DECIMAL
// and comes back as text, so it is parsed here; tags map from the
// native text[] column.
func (r *productRepository) FetchAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ext_id, title, description, price, original_price, thumbnail,
		       rating::text, reviews_count, author, type, tags,
		       duration, lectures, level,
		       file_format, file_size, version,
		       grade, subject, format
		FROM products
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var (
			p             domain.Product
			originalPrice *int
			ratingText    string
			duration      *string
			lectures      *int
			level         *string
			fileFormat    *string
			fileSize      *string
			version       *string
			grade         *string
			subject       *string
			format        *string
		)

		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.Price,
			&originalPrice,
			&p.Thumbnail,
			&ratingText,
			&p.ReviewsCount,
			&p.Author,
			&p.Type,
			&p.Tags,
			&duration,
			&lectures,
			&level,
			&fileFormat,
			&fileSize,
			&version,
			&grade,
			&subject,
			&format,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}

		rating, err := strconv.ParseFloat(ratingText, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rating %q for product %s: %w", ratingText, p.ID, err)
		}
		p.Rating = rating

		if originalPrice != nil {
			p.OriginalPrice = *originalPrice
		}
		if duration != nil {
			p.Duration = *duration
		}
		if lectures != nil {
			p.Lectures = *lectures
		}
		if level != nil {
			p.Level = *level
		}
		if fileFormat != nil {
			p.FileFormat = *fileFormat
		}
		if fileSize != nil {
			p.FileSize = *fileSize
		}
		if version != nil {
			p.Version = *version
		}
		if grade != nil {
			p.Grade = *grade
		}
		if subject != nil {
			p.Subject = *subject
		}
		if format != nil {
			p.Format = *format
		}

		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Count returns the number of rows in the products table.
func (r *productRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// Seed inserts the given products, skipping any whose external id is
// already present. The ON CONFLICT clause makes a racing second
// seeder a no-op rather than a duplication.
func (r *productRepository) Seed(ctx context.Context, products []domain.Product) error {
	query := `
		INSERT INTO products (ext_id, title, description, price, original_price, thumbnail,
		                      rating, reviews_count, author, type, tags,
		                      duration, lectures, level,
		                      file_format, file_size, version,
		                      grade, subject, format)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (ext_id) DO NOTHING
	`

	for _, p := range products {
		_, err := r.db.Exec(
			ctx,
			query,
			p.ID,
			p.Title,
			p.Description,
			p.Price,
			nullableInt(p.OriginalPrice),
			p.Thumbnail,
			p.Rating,
			p.ReviewsCount,
			p.Author,
			p.Type,
			p.Tags,
			nullableString(p.Duration),
			nullableInt(p.Lectures),
			nullableString(p.Level),
			nullableString(p.FileFormat),
			nullableString(p.FileSize),
			nullableString(p.Version),
			nullableString(p.Grade),
			nullableString(p.Subject),
			nullableString(p.Format),
		)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}

	return nil
}

func nullableInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func nullableString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
