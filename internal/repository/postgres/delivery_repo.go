package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"recruitmail/internal/domain"
)

type deliveryRepository struct {
	DB *sql.DB
}

// NewDeliveryRepository returns a domain.DeliveryRepository implemented with Postgres.
func NewDeliveryRepository(db *sql.DB) domain.DeliveryRepository {
	return &deliveryRepository{DB: db}
}

func (r *deliveryRepository) Create(ctx context.Context, d *domain.EmailDelivery) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO email_deliveries (id, template_id, recipient, subject, status, error, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.TemplateID, d.Recipient, d.Subject, d.Status, sql.NullString{String: d.Error, Valid: d.Error != ""}, d.CreatedAt)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return fmt.Errorf("delivery %s already recorded", d.ID)
		}
		return err
	}
	return nil
}

func (r *deliveryRepository) GetByID(ctx context.Context, id string) (*domain.EmailDelivery, error) {
	var d domain.EmailDelivery
	var errMsg sql.NullString
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, template_id, recipient, subject, status, error, created_at
		 FROM email_deliveries WHERE id = $1`, id).
		Scan(&d.ID, &d.TemplateID, &d.Recipient, &d.Subject, &d.Status, &errMsg, &d.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	d.Error = errMsg.String
	return &d, nil
}

func (r *deliveryRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.EmailDelivery, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, template_id, recipient, subject, status, error, created_at
		 FROM email_deliveries
		 ORDER BY created_at DESC, id
		 LIMIT $1 OFFSET $2`, params.PageSize, params.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.EmailDelivery
	for rows.Next() {
		var d domain.EmailDelivery
		var errMsg sql.NullString
		if err := rows.Scan(&d.ID, &d.TemplateID, &d.Recipient, &d.Subject, &d.Status, &errMsg, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.Error = errMsg.String
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *deliveryRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM email_deliveries`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
