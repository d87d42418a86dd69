package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tradeup/internal/domain"
)

const orderColumns = `id::text, kind, customer_name, customer_email, customer_phone, trade_in, upgrade, faults,
    base_price::text, deduction::text, final_value::text, upgrade_price::text, price_difference::text,
    shipping_surcharge::text, total_due::text, currency, exchange_rate::text, referral_code, status, created_at, updated_at`

func scanOrder(row pgx.Row) (domain.Order, error) {
	var o domain.Order
	var tradeIn, upgrade []byte
	var kind, status string
	var base, ded, final, upPrice, diff, surcharge, total, rate string
	err := row.Scan(&o.ID, &kind, &o.Customer.Name, &o.Customer.Email, &o.Customer.Phone, &tradeIn, &upgrade, &o.Faults,
		&base, &ded, &final, &upPrice, &diff, &surcharge, &total, &o.Currency, &rate, &o.ReferralCode, &status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return o, err
	}
	o.Kind = domain.OrderKind(kind)
	o.Status = domain.OrderStatus(status)
	o.Pricing = domain.Pricing{
		BasePrice:         num(base),
		Deduction:         num(ded),
		FinalValue:        num(final),
		UpgradePrice:      num(upPrice),
		PriceDifference:   num(diff),
		ShippingSurcharge: num(surcharge),
		TotalDue:          num(total),
	}
	o.ExchangeRate = num(rate)
	if o.TradeIn, err = decodeDevice(tradeIn); err != nil {
		return o, err
	}
	if o.Upgrade, err = decodeDevice(upgrade); err != nil {
		return o, err
	}
	return o, nil
}

func decodeDevice(raw []byte) (*domain.Device, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var d domain.Device
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode device: %w", err)
	}
	return &d, nil
}

func encodeDevice(d *domain.Device) ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// execer is satisfied by both the pool and a transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertOrder(ctx context.Context, q execer, o domain.Order) error {
	tradeIn, err := encodeDevice(o.TradeIn)
	if err != nil {
		return err
	}
	upgrade, err := encodeDevice(o.Upgrade)
	if err != nil {
		return err
	}
	faults := o.Faults
	if faults == nil {
		faults = []string{}
	}
	p := o.Pricing
	_, err = q.Exec(ctx, `
        INSERT INTO orders (id, kind, customer_name, customer_email, customer_phone, trade_in, upgrade, faults,
            base_price, deduction, final_value, upgrade_price, price_difference, shipping_surcharge, total_due,
            currency, exchange_rate, referral_code, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
            $9::numeric, $10::numeric, $11::numeric, $12::numeric, $13::numeric, $14::numeric, $15::numeric,
            $16, $17::numeric, $18, $19, $20, $21)
    `, o.ID, string(o.Kind), o.Customer.Name, o.Customer.Email, o.Customer.Phone, tradeIn, upgrade, faults,
		p.BasePrice.String(), p.Deduction.String(), p.FinalValue.String(), p.UpgradePrice.String(),
		p.PriceDifference.String(), p.ShippingSurcharge.String(), p.TotalDue.String(),
		o.Currency, o.ExchangeRate.String(), o.ReferralCode, string(o.Status), o.CreatedAt, o.UpdatedAt)
	return err
}

// OrderRepository
func (db *DB) CreateOrder(ctx context.Context, o domain.Order) error {
	return insertOrder(ctx, db.Pool, o)
}

// CreateOrders inserts the batch in one transaction; any failure rolls back
// every row.
func (db *DB) CreateOrders(ctx context.Context, batch []domain.Order) (err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()
	for _, o := range batch {
		if err = insertOrder(ctx, tx, o); err != nil {
			return fmt.Errorf("insert order %s: %w", o.ID, err)
		}
	}
	return tx.Commit(ctx)
}

func (db *DB) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	o, err := scanOrder(db.Pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	return o, notFound(err)
}

func (db *DB) ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	limit, offset := pageBounds(f.Limit, f.Offset)
	rows, err := db.Pool.Query(ctx, `
        SELECT `+orderColumns+`
        FROM orders
        WHERE ($1 = '' OR status = $1) AND ($2 = '' OR kind = $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `, string(f.Status), string(f.Kind), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// UpdateOrderStatus only moves the order if it is still in status from, so a
// concurrent admin edit cannot skip a transition check.
func (db *DB) UpdateOrderStatus(ctx context.Context, id string, from, to domain.OrderStatus) (domain.Order, error) {
	o, err := scanOrder(db.Pool.QueryRow(ctx, `
        UPDATE orders SET status=$3, updated_at=now()
        WHERE id=$1 AND status=$2
        RETURNING `+orderColumns, id, string(from), string(to)))
	if errors.Is(err, pgx.ErrNoRows) {
		return o, domain.ErrInvalidTransition
	}
	return o, err
}

func (db *DB) DeleteOrder(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
