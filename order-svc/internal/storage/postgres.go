package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"repartoya/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const orderColumns = `id, client_id, restaurant_id, COALESCE(delivery_id, ''), total,
	delivery_fee, COALESCE(delivery_phone, ''), address, pay_method, status,
	prep_time, COALESCE(commission_rate, 0), created_at`

func (r *PostgresRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, client_id, restaurant_id, total, delivery_fee, address, pay_method, status, prep_time, created_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6, $7, $8, $9)
	`, order.ID, order.ClientID, order.RestaurantID, order.Total, order.Address,
		string(order.PayMethod), string(order.Status), order.PrepTime, order.CreatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, item_id, name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.ItemID, item.Name, item.Quantity, item.UnitPrice); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders WHERE id = $1
	`, id).Scan(&order.ID, &order.ClientID, &order.RestaurantID, &order.DeliveryID,
		&order.Total, &order.DeliveryFee, &order.DeliveryPhone, &order.Address,
		&order.PayMethod, &order.Status, &order.PrepTime, &order.CommissionRate, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

// UpdateStatus only writes when the row still holds the status the caller
// observed. RowsAffected 0 means another session moved the order first.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, from, to domain.Status) (bool, error) {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE id = $2 AND status = $3",
		string(to), id, string(from))
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func (r *PostgresRepository) CompleteOrder(ctx context.Context, id string, rate float64) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET status = 'delivered', commission_rate = $1
		WHERE id = $2 AND status = 'delivering'
	`, rate, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

// ClaimForPickup is the compare-and-swap for the contested pickup pool:
// first courier to land here wins, everyone else gets zero rows.
func (r *PostgresRepository) ClaimForPickup(ctx context.Context, id, courierID string, fee float64, phone string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET status = 'picked', delivery_id = $1, delivery_fee = $2, delivery_phone = $3
		WHERE id = $4 AND status = 'ready' AND delivery_id IS NULL
	`, courierID, fee, phone, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func (r *PostgresRepository) SetPrepTime(ctx context.Context, id string, minutes int) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET prep_time = $1
		WHERE id = $2 AND status NOT IN ('delivered', 'rejected', 'cancelled')
	`, minutes, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func (r *PostgresRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	return r.listWhere(ctx, "client_id = $1", clientID)
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return r.listWhere(ctx, "restaurant_id = $1", restaurantID)
}

func (r *PostgresRepository) ListByCourier(ctx context.Context, courierID string) ([]domain.Order, error) {
	return r.listWhere(ctx, "delivery_id = $1", courierID)
}

func (r *PostgresRepository) ListPickupPool(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = 'ready' AND delivery_id IS NULL
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	return r.collectOrders(ctx, rows)
}

func (r *PostgresRepository) listWhere(ctx context.Context, where string, arg string) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC`, arg)
	if err != nil {
		return nil, err
	}
	return r.collectOrders(ctx, rows)
}

func (r *PostgresRepository) collectOrders(ctx context.Context, rows *sql.Rows) ([]domain.Order, error) {
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.ClientID, &order.RestaurantID, &order.DeliveryID,
			&order.Total, &order.DeliveryFee, &order.DeliveryPhone, &order.Address,
			&order.PayMethod, &order.Status, &order.PrepTime, &order.CommissionRate, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.loadItems(ctx, orders[i].ID)
		if err != nil {
			continue
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT item_id, name, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, role, COALESCE(name, ''), COALESCE(phone, ''), COALESCE(address, ''), COALESCE(payment_link, '')
		FROM profiles WHERE id = $1
	`, id).Scan(&profile.ID, &profile.Role, &profile.Name, &profile.Phone, &profile.Address, &profile.PaymentLink)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// RestaurantIDForOwner maps a restaurant owner's user id to their
// restaurant row. Empty when the owner has not registered one.
func (r *PostgresRepository) RestaurantIDForOwner(ctx context.Context, ownerID string) (string, error) {
	var id string
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM restaurants WHERE owner_id = $1", ownerID).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// CommissionRate reads the live platform percentage. It is only consulted
// at the delivered transition, where its value is snapshotted onto the row.
func (r *PostgresRepository) CommissionRate(ctx context.Context) (float64, error) {
	var value string
	err := r.DB.QueryRowContext(ctx,
		"SELECT value FROM app_config WHERE key = 'commission_rate'").Scan(&value)
	if err == sql.ErrNoRows {
		return 10, nil
	}
	if err != nil {
		return 0, err
	}
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("bad commission_rate config value %q: %w", value, err)
	}
	return rate, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			client_id TEXT NOT NULL,
			restaurant_id TEXT NOT NULL,
			delivery_id TEXT,
			total NUMERIC NOT NULL,
			delivery_fee NUMERIC NOT NULL DEFAULT 0,
			delivery_phone TEXT,
			address TEXT NOT NULL,
			pay_method TEXT NOT NULL DEFAULT 'cash',
			status TEXT NOT NULL DEFAULT 'pending',
			prep_time INTEGER NOT NULL DEFAULT 30,
			commission_rate NUMERIC,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id),
			item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			unit_price NUMERIC NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_pool ON orders (status) WHERE delivery_id IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders (restaurant_id)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
