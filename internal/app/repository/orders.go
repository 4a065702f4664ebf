package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// OrderFilter собирает параметры списка заказов
type OrderFilter struct {
	Status  *bool
	Date    *string // YYYY-MM-DD
	OrderBy string  // "date", "-date", "total", "-total"
}

// OrderScope restricts listing to the caller's role.
type OrderScope struct {
	UserID           int64
	IsManagerOrStaff bool
	IsDeliveryCrew   bool
}

// CreateOrderFromCart creates an order from the user's cart in one
// transaction: total is the sum of cart prices, order items copy the cart
// rows, the cart is emptied. Empty cart yields ErrEmptyCart.
func (r *Repository) CreateOrderFromCart(userID int64) (Order, error) {
	var created order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var items []cartItem
		if err := tx.Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		total := 0.0
		for _, ci := range items {
			total += ci.Price
		}

		created = order{
			UserID: userID,
			Status: false,
			Total:  roundCents(total),
			Date:   time.Now(),
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		for _, ci := range items {
			oi := orderItem{
				OrderID:    created.ID,
				MenuItemID: ci.MenuItemID,
				Quantity:   ci.Quantity,
				UnitPrice:  ci.UnitPrice,
				Price:      ci.Price,
			}
			if err := tx.Create(&oi).Error; err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&cartItem{}).Error
	})
	if err != nil {
		return Order{}, err
	}
	return r.GetOrder(int(created.ID))
}

// GetOrder returns one order with its items and user logins.
func (r *Repository) GetOrder(id int) (Order, error) {
	type row struct {
		ID             int64
		UserID         int64
		Username       string
		DeliveryCrewID *int64
		CrewUsername   *string
		Status         bool
		Total          float64
		Date           time.Time
	}
	var o row
	err := r.db.Table("orders o").
		Select("o.id, o.user_id, u.username, o.delivery_crew_id, dc.username as crew_username, o.status, o.total, o.date").
		Joins("JOIN users u ON u.id = o.user_id").
		Joins("LEFT JOIN users dc ON dc.id = o.delivery_crew_id").
		Where("o.id = ?", id).
		Scan(&o).Error
	if err != nil {
		return Order{}, err
	}
	if o.ID == 0 {
		return Order{}, gorm.ErrRecordNotFound
	}

	items, err := r.getOrderItems(o.ID)
	if err != nil {
		return Order{}, err
	}
	return Order{
		ID:           o.ID,
		UserID:       o.UserID,
		Username:     o.Username,
		DeliveryCrew: o.DeliveryCrewID,
		CrewUsername: o.CrewUsername,
		Status:       o.Status,
		Total:        o.Total,
		Date:         o.Date,
		OrderItems:   items,
	}, nil
}

func (r *Repository) getOrderItems(orderID int64) ([]OrderItem, error) {
	type row struct {
		ID         int64
		MenuItemID int64
		Title      string
		Quantity   int
		UnitPrice  float64
		Price      float64
	}
	var rows []row
	if err := r.db.Table("order_items oi").
		Select("oi.id, oi.menu_item_id, mi.title, oi.quantity, oi.unit_price, oi.price").
		Joins("JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]OrderItem, 0, len(rows))
	for _, rr := range rows {
		items = append(items, OrderItem{
			ID:            rr.ID,
			MenuItemID:    rr.MenuItemID,
			MenuItemTitle: rr.Title,
			Quantity:      rr.Quantity,
			UnitPrice:     rr.UnitPrice,
			Price:         rr.Price,
		})
	}
	return items, nil
}

// ListOrders returns orders visible to the caller: customers see their own,
// delivery crew see assigned ones, managers and staff see everything.
func (r *Repository) ListOrders(scope OrderScope, f OrderFilter) ([]Order, error) {
	q := r.db.Table("orders o").
		Select("o.id").
		Joins("JOIN users u ON u.id = o.user_id")
	switch {
	case scope.IsManagerOrStaff:
		// no extra filter
	case scope.IsDeliveryCrew:
		q = q.Where("o.delivery_crew_id = ?", scope.UserID)
	default:
		q = q.Where("o.user_id = ?", scope.UserID)
	}
	if f.Status != nil {
		q = q.Where("o.status = ?", *f.Status)
	}
	if f.Date != nil && *f.Date != "" {
		q = q.Where("DATE(o.date) = ?", *f.Date)
	}
	switch f.OrderBy {
	case "date":
		q = q.Order("o.date")
	case "total":
		q = q.Order("o.total")
	case "-total":
		q = q.Order("o.total DESC")
	default:
		q = q.Order("o.date DESC")
	}

	var ids []int64
	if err := q.Scan(&ids).Error; err != nil {
		return nil, err
	}
	result := make([]Order, 0, len(ids))
	for _, id := range ids {
		o, err := r.GetOrder(int(id))
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}

// UpdateOrderStatus переводит заказ в доставленный/ожидающий
func (r *Repository) UpdateOrderStatus(id int, status bool) error {
	res := r.db.Model(&order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AssignDeliveryCrew assigns the order to a Delivery crew member. The target
// user must belong to the group, otherwise gorm.ErrRecordNotFound.
func (r *Repository) AssignDeliveryCrew(orderID int, crewUserID int64) error {
	in, err := r.userInGroup(crewUserID, GroupDeliveryCrew)
	if err != nil {
		return err
	}
	if !in {
		return gorm.ErrRecordNotFound
	}
	res := r.db.Model(&order{}).Where("id = ?", orderID).Update("delivery_crew_id", crewUserID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// allows reports whether the scope may touch an order owned by ownerID and
// assigned to crewID: customers only their own, crew only assigned ones,
// managers and staff everything.
func (s OrderScope) allows(ownerID int64, crewID *int64) bool {
	if s.IsManagerOrStaff {
		return true
	}
	if s.IsDeliveryCrew {
		return crewID != nil && *crewID == s.UserID
	}
	return ownerID == s.UserID
}

// IsOrderVisible reports whether the caller may read the order.
func (r *Repository) IsOrderVisible(scope OrderScope, orderID int) (bool, error) {
	var o order
	if err := r.db.Where("id = ?", orderID).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return scope.allows(o.UserID, o.DeliveryCrewID), nil
}
