package storage

import (
	"database/sql"
	"fmt"

	"repartoya/store-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const restaurantColumns = `id, owner_id, name, COALESCE(description, ''), COALESCE(address, ''),
	COALESCE(phone, ''), COALESCE(photo_url, ''), approved, active, created_at`

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(`
		INSERT INTO restaurants (id, owner_id, name, description, address, phone, approved, active)
		VALUES ($1, $2, $3, $4, $5, $6, false, true)
		RETURNING created_at`,
		rest.ID, rest.OwnerID, rest.Name, rest.Description, rest.Address, rest.Phone,
	).Scan(&rest.CreatedAt)
}

// ListVisibleRestaurants is the client storefront view: approved by an
// admin and switched on by the owner.
func (r *PostgresRepository) ListVisibleRestaurants() ([]domain.Restaurant, error) {
	return r.listRestaurants("approved = true AND active = true")
}

func (r *PostgresRepository) ListPendingApproval() ([]domain.Restaurant, error) {
	return r.listRestaurants("approved = false")
}

func (r *PostgresRepository) listRestaurants(where string) ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE ` + where + `
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Description, &rest.Address,
			&rest.Phone, &rest.PhotoURL, &rest.Approved, &rest.Active, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(id string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Description, &rest.Address,
			&rest.Phone, &rest.PhotoURL, &rest.Approved, &rest.Active, &rest.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurantByOwner(ownerID string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE owner_id = $1`, ownerID).
		Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Description, &rest.Address,
			&rest.Phone, &rest.PhotoURL, &rest.Approved, &rest.Active, &rest.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	_, err := r.DB.Exec(`
		UPDATE restaurants SET name = $1, description = $2, address = $3, phone = $4
		WHERE id = $5`,
		rest.Name, rest.Description, rest.Address, rest.Phone, rest.ID)
	return err
}

func (r *PostgresRepository) SetRestaurantApproved(id string, approved bool) (bool, error) {
	result, err := r.DB.Exec("UPDATE restaurants SET approved = $1 WHERE id = $2", approved, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func (r *PostgresRepository) SetRestaurantActive(id, ownerID string, active bool) (bool, error) {
	result, err := r.DB.Exec(
		"UPDATE restaurants SET active = $1 WHERE id = $2 AND owner_id = $3", active, id, ownerID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func (r *PostgresRepository) UpdateRestaurantPhoto(id, photoURL string) error {
	_, err := r.DB.Exec("UPDATE restaurants SET photo_url = $1 WHERE id = $2", photoURL, id)
	return err
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (id, restaurant_id, name, description, price, available, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		item.ID, item.RestaurantID, item.Name, item.Description, item.Price, item.Available, item.ImageURL,
	).Scan(&item.CreatedAt)
}

func (r *PostgresRepository) ListMenu(restaurantID string, availableOnly bool) ([]domain.MenuItem, error) {
	query := `
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, available, COALESCE(image_url, ''), created_at
		FROM menu_items
		WHERE restaurant_id = $1`
	if availableOnly {
		query += " AND available = true"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description,
			&item.Price, &item.Available, &item.ImageURL, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) (bool, error) {
	result, err := r.DB.Exec(`
		UPDATE menu_items SET name = $1, description = $2, price = $3, available = $4
		WHERE id = $5 AND restaurant_id = $6`,
		item.Name, item.Description, item.Price, item.Available, item.ID, item.RestaurantID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func (r *PostgresRepository) DeleteMenuItem(restaurantID, itemID string) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id = $1 AND restaurant_id = $2", itemID, restaurantID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func (r *PostgresRepository) UpdateMenuItemImage(restaurantID, itemID, imageURL string) error {
	_, err := r.DB.Exec("UPDATE menu_items SET image_url = $1 WHERE id = $2 AND restaurant_id = $3",
		imageURL, itemID, restaurantID)
	return err
}

func (r *PostgresRepository) GetProfile(id string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.DB.QueryRow(`
		SELECT id, role, COALESCE(name, ''), COALESCE(phone, ''), COALESCE(address, ''), COALESCE(payment_link, ''), created_at
		FROM profiles WHERE id = $1`, id).
		Scan(&profile.ID, &profile.Role, &profile.Name, &profile.Phone, &profile.Address,
			&profile.PaymentLink, &profile.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresRepository) UpdateProfile(profile *domain.Profile) error {
	// role is immutable after registration; it is deliberately absent here
	_, err := r.DB.Exec(`
		UPDATE profiles SET name = $1, phone = $2, address = $3, payment_link = $4
		WHERE id = $5`,
		profile.Name, profile.Phone, profile.Address, profile.PaymentLink, profile.ID)
	return err
}

func (r *PostgresRepository) GetPlatformStats() (*domain.PlatformStats, error) {
	var stats domain.PlatformStats
	err := r.DB.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM profiles WHERE role = 'client'),
			(SELECT COUNT(*) FROM profiles WHERE role = 'restaurant'),
			(SELECT COUNT(*) FROM profiles WHERE role = 'delivery'),
			(SELECT COUNT(*) FROM restaurants WHERE approved = false),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = 'delivered')`).
		Scan(&stats.Clients, &stats.Restaurants, &stats.Couriers,
			&stats.PendingApproval, &stats.Orders, &stats.DeliveredOrders)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *PostgresRepository) GetCommissionRate() (float64, error) {
	var rate float64
	err := r.DB.QueryRow(
		"SELECT value::numeric FROM app_config WHERE key = 'commission_rate'").Scan(&rate)
	if err == sql.ErrNoRows {
		return 10, nil
	}
	if err != nil {
		return 0, err
	}
	return rate, nil
}

func (r *PostgresRepository) SetCommissionRate(rate float64) error {
	_, err := r.DB.Exec(`
		INSERT INTO app_config (key, value) VALUES ('commission_rate', $1::text)
		ON CONFLICT (key) DO UPDATE SET value = $1::text`, rate)
	return err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			address TEXT,
			phone TEXT,
			photo_url TEXT,
			approved BOOLEAN NOT NULL DEFAULT false,
			active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC NOT NULL,
			available BOOLEAN NOT NULL DEFAULT true,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			role TEXT NOT NULL,
			name TEXT,
			phone TEXT,
			address TEXT,
			payment_link TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS app_config (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`INSERT INTO app_config (key, value) VALUES ('commission_rate', '10')
			ON CONFLICT (key) DO NOTHING`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
