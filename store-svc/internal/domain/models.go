package domain

import "time"

type Restaurant struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	PhotoURL    string    `json:"photo_url"`
	Approved    bool      `json:"approved"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type MenuItem struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Available    bool      `json:"available"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type Profile struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	PaymentLink string    `json:"payment_link,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	Clients         int `json:"clients"`
	Restaurants     int `json:"restaurants"`
	Couriers        int `json:"couriers"`
	PendingApproval int `json:"pending_approval"`
	Orders          int `json:"orders"`
	DeliveredOrders int `json:"delivered_orders"`
}
