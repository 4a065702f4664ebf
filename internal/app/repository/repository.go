package repository

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) (*Repository, error) {
	if db == nil {
		return nil, errors.New("nil gorm DB passed to repository")
	}
	return &Repository{db: db}, nil
}

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptyCart        = errors.New("cart is empty")
)

// Group names mirror the auth groups of the original deployment.
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery crew"
)

// Public DTOs used by handlers (kept for compatibility)
type Category struct {
	ID    int64  `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type MenuItem struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Price       float64    `json:"price"`
	Featured    bool       `json:"featured"`
	Category    *Category  `json:"category"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageURL"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

type CartItem struct {
	ID            int64   `json:"id"`
	MenuItemID    int64   `json:"menuitem"`
	MenuItemTitle string  `json:"menuitemTitle"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	Price         float64 `json:"price"`
}

type OrderItem struct {
	ID            int64   `json:"id"`
	MenuItemID    int64   `json:"menuitem"`
	MenuItemTitle string  `json:"menuitemTitle"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	Price         float64 `json:"price"`
}

type Order struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"user"`
	Username      string      `json:"username"`
	DeliveryCrew  *int64      `json:"deliveryCrew"`
	CrewUsername  *string     `json:"crewUsername"`
	Status        bool        `json:"status"` // false=pending, true=delivered
	Total         float64     `json:"total"`
	Date          time.Time   `json:"date"`
	OrderItems    []OrderItem `json:"orderItems"`
}

type Reservation struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user"`
	Username        string     `json:"username"`
	Name            string     `json:"name"`
	NumberOfGuests  int        `json:"numberOfGuests"`
	ReservationDate string     `json:"reservationDate"` // YYYY-MM-DD
	ReservationTime string     `json:"reservationTime"` // HH:MM
	SpecialRequests string     `json:"specialRequests"`
	CreatedAt       *time.Time `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}

// GORM models mapping DB tables
type user struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	Username  string `gorm:"column:username"`
	Password  string `gorm:"column:password_hash"`
	Email     string `gorm:"column:email"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	IsStaff   bool   `gorm:"column:is_staff"`
}

func (user) TableName() string { return "users" }

type group struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (group) TableName() string { return "groups" }

type userGroup struct {
	UserID  int64 `gorm:"column:user_id;primaryKey"`
	GroupID int64 `gorm:"column:group_id;primaryKey"`
}

func (userGroup) TableName() string { return "user_groups" }

type category struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Slug  string `gorm:"column:slug"`
	Title string `gorm:"column:title"`
}

func (category) TableName() string { return "categories" }

type menuItem struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	Title       string     `gorm:"column:title"`
	Price       float64    `gorm:"column:price"`
	Featured    bool       `gorm:"column:featured"`
	CategoryID  *int64     `gorm:"column:category_id"`
	Description string     `gorm:"column:description"`
	ImageURL    string     `gorm:"column:image_url"`
	IsDeleted   bool       `gorm:"column:is_deleted"`
	CreatedAt   *time.Time `gorm:"column:created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at"`
}

func (menuItem) TableName() string { return "menu_items" }

type cartItem struct {
	ID         int64   `gorm:"column:id;primaryKey"`
	UserID     int64   `gorm:"column:user_id"`
	MenuItemID int64   `gorm:"column:menu_item_id"`
	Quantity   int     `gorm:"column:quantity"`
	UnitPrice  float64 `gorm:"column:unit_price"`
	Price      float64 `gorm:"column:price"`
}

func (cartItem) TableName() string { return "cart_items" }

type order struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	UserID         int64     `gorm:"column:user_id"`
	DeliveryCrewID *int64    `gorm:"column:delivery_crew_id"`
	Status         bool      `gorm:"column:status"`
	Total          float64   `gorm:"column:total"`
	Date           time.Time `gorm:"column:date"`
}

func (order) TableName() string { return "orders" }

type orderItem struct {
	ID         int64   `gorm:"column:id;primaryKey"`
	OrderID    int64   `gorm:"column:order_id"`
	MenuItemID int64   `gorm:"column:menu_item_id"`
	Quantity   int     `gorm:"column:quantity"`
	UnitPrice  float64 `gorm:"column:unit_price"`
	Price      float64 `gorm:"column:price"`
}

func (orderItem) TableName() string { return "order_items" }

type reservation struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	UserID          int64      `gorm:"column:user_id"`
	Name            string     `gorm:"column:name"`
	NumberOfGuests  int        `gorm:"column:number_of_guests"`
	ReservationDate string     `gorm:"column:reservation_date"`
	ReservationTime string     `gorm:"column:reservation_time"`
	SpecialRequests string     `gorm:"column:special_requests"`
	CreatedAt       *time.Time `gorm:"column:created_at"`
	UpdatedAt       *time.Time `gorm:"column:updated_at"`
}

func (reservation) TableName() string { return "reservations" }

// roundCents normalizes money values after multiplication.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
