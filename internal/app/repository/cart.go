package repository

import (
	"errors"

	"gorm.io/gorm"
)

// GetCartItems returns the user's cart with menu item titles joined in.
func (r *Repository) GetCartItems(userID int64) ([]CartItem, error) {
	type row struct {
		ID         int64
		MenuItemID int64
		Title      string
		Quantity   int
		UnitPrice  float64
		Price      float64
	}
	var rows []row
	if err := r.db.Table("cart_items ci").
		Select("ci.id, ci.menu_item_id, mi.title, ci.quantity, ci.unit_price, ci.price").
		Joins("JOIN menu_items mi ON mi.id = ci.menu_item_id").
		Where("ci.user_id = ?", userID).
		Order("ci.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]CartItem, 0, len(rows))
	for _, rr := range rows {
		result = append(result, CartItem{
			ID:            rr.ID,
			MenuItemID:    rr.MenuItemID,
			MenuItemTitle: rr.Title,
			Quantity:      rr.Quantity,
			UnitPrice:     rr.UnitPrice,
			Price:         rr.Price,
		})
	}
	return result, nil
}

// AddToCart adds a menu item to the user's cart. One row per (user, menu
// item): re-adding replaces the quantity. unit_price is snapshotted from the
// menu item, price is recalculated here.
func (r *Repository) AddToCart(userID int64, menuItemID int, quantity int) (CartItem, error) {
	if quantity < 1 {
		return CartItem{}, errors.New("quantity must be at least 1")
	}

	var out CartItem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var m menuItem
		if err := tx.Where("id = ? AND is_deleted = ?", menuItemID, false).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuItemNotFound
			}
			return err
		}

		unitPrice := m.Price
		price := roundCents(unitPrice * float64(quantity))

		var existing cartItem
		err := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			existing = cartItem{
				UserID:     userID,
				MenuItemID: m.ID,
				Quantity:   quantity,
				UnitPrice:  unitPrice,
				Price:      price,
			}
			if err := tx.Create(&existing).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			existing.Quantity = quantity
			existing.UnitPrice = unitPrice
			existing.Price = price
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}

		out = CartItem{
			ID:            existing.ID,
			MenuItemID:    existing.MenuItemID,
			MenuItemTitle: m.Title,
			Quantity:      existing.Quantity,
			UnitPrice:     existing.UnitPrice,
			Price:         existing.Price,
		}
		return nil
	})
	if err != nil {
		return CartItem{}, err
	}
	return out, nil
}

// UpdateCartItemQuantity recalculates price from the snapshotted unit_price.
func (r *Repository) UpdateCartItemQuantity(userID int64, cartItemID int, quantity int) error {
	if quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	var ci cartItem
	if err := r.db.Where("id = ? AND user_id = ?", cartItemID, userID).First(&ci).Error; err != nil {
		return err
	}
	return r.db.Model(&cartItem{}).Where("id = ?", ci.ID).Updates(map[string]interface{}{
		"quantity": quantity,
		"price":    roundCents(ci.UnitPrice * float64(quantity)),
	}).Error
}

// DeleteCartItem removes one row from the user's cart.
func (r *Repository) DeleteCartItem(userID int64, cartItemID int) error {
	res := r.db.Where("id = ? AND user_id = ?", cartItemID, userID).Delete(&cartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearCart удаляет все позиции корзины пользователя
func (r *Repository) ClearCart(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&cartItem{}).Error
}

// CountCartItems returns the number of cart rows for the menu page badge.
func (r *Repository) CountCartItems(userID int64) (int, error) {
	var cnt int64
	if err := r.db.Model(&cartItem{}).Where("user_id = ?", userID).Count(&cnt).Error; err != nil {
		return 0, err
	}
	return int(cnt), nil
}
