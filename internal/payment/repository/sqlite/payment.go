package sqlite

import (
	"context"
	"database/sql"
	"time"

	"insurance-renewal-assistant/internal/model"
	repo "insurance-renewal-assistant/internal/payment/repository"
)

const paymentColumns = `id, session_id, transaction_ref, status, method, insurer, plate,
	insurance, addons, roadtax, total, failure_reason, created_at, updated_at, expires_at, confirmed_at`

// Create inserts a new pending payment row.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Payment, error) {
	const query = `
		INSERT INTO payments (id, session_id, transaction_ref, status, method, insurer, plate,
			insurance, addons, roadtax, total, failure_reason, created_at, updated_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '', ?, ?, ?)`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.SessionID, opt.TransactionRef, string(model.PaymentStatusPending), opt.Method,
		opt.Insurer, opt.Plate, opt.Insurance, opt.AddOns, opt.RoadTax, opt.Total,
		now.UnixMilli(), now.UnixMilli(), opt.ExpiresAt.UnixMilli(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.Payment{}, repo.ErrFailedToInsert
	}
	return r.Get(ctx, opt.ID)
}

// Get retrieves a payment by ID. Zero-value Payment when not found.
func (r *implRepository) Get(ctx context.Context, id string) (model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = ? LIMIT 1`

	p, err := r.scanPayment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Payment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return model.Payment{}, repo.ErrFailedToGet
	}
	return p, nil
}

// UpdateStatus applies a status transition and returns the updated row.
func (r *implRepository) UpdateStatus(ctx context.Context, opt repo.UpdateStatusOptions) (model.Payment, error) {
	const query = `
		UPDATE payments
		SET status = ?,
			updated_at = ?,
			transaction_ref = CASE WHEN ? != '' THEN ? ELSE transaction_ref END,
			failure_reason = CASE WHEN ? != '' THEN ? ELSE failure_reason END,
			confirmed_at = COALESCE(?, confirmed_at)
		WHERE id = ?`

	var confirmedAt interface{}
	if opt.ConfirmedAt != nil {
		confirmedAt = opt.ConfirmedAt.UnixMilli()
	}

	res, err := r.db.ExecContext(ctx, query,
		string(opt.Status), time.Now().UnixMilli(),
		opt.TransactionRef, opt.TransactionRef,
		opt.FailureReason, opt.FailureReason,
		confirmedAt, opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStatus"), err)
		return model.Payment{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Payment{}, nil
	}
	return r.Get(ctx, opt.ID)
}

// ListBySession returns a session's payments, newest first.
func (r *implRepository) ListBySession(ctx context.Context, sessionID string) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE session_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBySession"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		p, err := r.scanPayment(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBySession"), err)
			return nil, repo.ErrFailedToList
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// CleanupExpired deletes rows created before the cutoff.
func (r *implRepository) CleanupExpired(ctx context.Context, cutoff time.Time) (int, error) {
	const query = `DELETE FROM payments WHERE created_at < ?`

	res, err := r.db.ExecContext(ctx, query, cutoff.UnixMilli())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CleanupExpired"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanPayment(row rowScanner) (model.Payment, error) {
	var (
		p           model.Payment
		status      string
		createdAt   int64
		updatedAt   int64
		expiresAt   int64
		confirmedAt sql.NullInt64
	)
	err := row.Scan(
		&p.ID, &p.SessionID, &p.TransactionRef, &status, &p.Method, &p.Insurer, &p.Plate,
		&p.Insurance, &p.AddOns, &p.RoadTax, &p.Total, &p.FailureReason,
		&createdAt, &updatedAt, &expiresAt, &confirmedAt,
	)
	if err != nil {
		return model.Payment{}, err
	}

	p.Status = model.PaymentStatus(status)
	p.CreatedAt = time.UnixMilli(createdAt)
	p.UpdatedAt = time.UnixMilli(updatedAt)
	p.ExpiresAt = time.UnixMilli(expiresAt)
	if confirmedAt.Valid {
		t := time.UnixMilli(confirmedAt.Int64)
		p.ConfirmedAt = &t
	}
	return p, nil
}
