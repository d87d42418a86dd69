package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"tradeup/internal/domain"
)

const deviceColumns = `id::text, os, brand, model, storage, color, condition, price::text, stock, created_at, updated_at`

func scanDevice(row pgx.Row) (domain.Device, error) {
	var d domain.Device
	var price string
	var created, updated time.Time
	if err := row.Scan(&d.ID, &d.OS, &d.Brand, &d.Model, &d.Storage, &d.Color, &d.Condition, &price, &d.Stock, &created, &updated); err != nil {
		return d, err
	}
	d.Price = num(price)
	d.CreatedAt = &created
	d.UpdatedAt = &updated
	return d, nil
}

// DeviceRepository
func (db *DB) ListDevices(ctx context.Context, limit, offset int) ([]domain.Device, error) {
	limit, offset = pageBounds(limit, offset)
	rows, err := db.Pool.Query(ctx, `
        SELECT `+deviceColumns+`
        FROM devices
        ORDER BY brand, model, price
        LIMIT $1 OFFSET $2
    `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (db *DB) GetDevice(ctx context.Context, id string) (domain.Device, error) {
	d, err := scanDevice(db.Pool.QueryRow(ctx, `SELECT `+deviceColumns+` FROM devices WHERE id = $1`, id))
	return d, notFound(err)
}

func (db *DB) CreateDevice(ctx context.Context, d domain.Device) (domain.Device, error) {
	return scanDevice(db.Pool.QueryRow(ctx, `
        INSERT INTO devices (os, brand, model, storage, color, condition, price, stock)
        VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8)
        RETURNING `+deviceColumns,
		d.OS, d.Brand, d.Model, d.Storage, d.Color, d.Condition, d.Price.String(), d.Stock))
}

func (db *DB) UpdateDevice(ctx context.Context, d domain.Device) (domain.Device, error) {
	out, err := scanDevice(db.Pool.QueryRow(ctx, `
        UPDATE devices
        SET os=$2, brand=$3, model=$4, storage=$5, color=$6, condition=$7, price=$8::numeric, stock=$9, updated_at=now()
        WHERE id=$1
        RETURNING `+deviceColumns,
		d.ID, d.OS, d.Brand, d.Model, d.Storage, d.Color, d.Condition, d.Price.String(), d.Stock))
	return out, notFound(err)
}

func (db *DB) DeleteDevice(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM devices WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const referralColumns = `id::text, code, owner, active, max_uses, uses, created_at, updated_at`

func scanReferral(row pgx.Row) (domain.ReferralCode, error) {
	var r domain.ReferralCode
	err := row.Scan(&r.ID, &r.Code, &r.Owner, &r.Active, &r.MaxUses, &r.Uses, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// ReferralRepository
func (db *DB) ListReferrals(ctx context.Context, limit, offset int) ([]domain.ReferralCode, error) {
	limit, offset = pageBounds(limit, offset)
	rows, err := db.Pool.Query(ctx, `SELECT `+referralColumns+` FROM referral_codes ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.ReferralCode
	for rows.Next() {
		r, err := scanReferral(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (db *DB) GetReferral(ctx context.Context, id string) (domain.ReferralCode, error) {
	r, err := scanReferral(db.Pool.QueryRow(ctx, `SELECT `+referralColumns+` FROM referral_codes WHERE id=$1`, id))
	return r, notFound(err)
}

func (db *DB) CreateReferral(ctx context.Context, r domain.ReferralCode) (domain.ReferralCode, error) {
	out, err := scanReferral(db.Pool.QueryRow(ctx, `
        INSERT INTO referral_codes (code, owner, active, max_uses)
        VALUES ($1, $2, $3, $4)
        RETURNING `+referralColumns,
		r.Code, r.Owner, r.Active, r.MaxUses))
	return out, uniqueViolation(err)
}

func (db *DB) UpdateReferral(ctx context.Context, r domain.ReferralCode) (domain.ReferralCode, error) {
	out, err := scanReferral(db.Pool.QueryRow(ctx, `
        UPDATE referral_codes
        SET code=$2, owner=$3, active=$4, max_uses=$5, updated_at=now()
        WHERE id=$1
        RETURNING `+referralColumns,
		r.ID, r.Code, r.Owner, r.Active, r.MaxUses))
	if err != nil {
		return out, uniqueViolation(notFound(err))
	}
	return out, nil
}

func (db *DB) DeleteReferral(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM referral_codes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Redeem increments uses in a single guarded UPDATE so concurrent
// submissions cannot exceed max_uses.
func (db *DB) Redeem(ctx context.Context, code string) (domain.ReferralCode, error) {
	r, err := scanReferral(db.Pool.QueryRow(ctx, `
        UPDATE referral_codes
        SET uses = uses + 1, updated_at = now()
        WHERE code = $1 AND active AND (max_uses = 0 OR uses < max_uses)
        RETURNING `+referralColumns, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return r, domain.ErrReferralInvalid
	}
	return r, err
}
