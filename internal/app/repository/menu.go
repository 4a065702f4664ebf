package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Categories

func (r *Repository) GetCategories() ([]Category, error) {
	var rows []category
	if err := r.db.Order("title").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]Category, 0, len(rows))
	for _, c := range rows {
		result = append(result, Category{ID: c.ID, Slug: c.Slug, Title: c.Title})
	}
	return result, nil
}

func (r *Repository) GetCategory(id int) (Category, error) {
	var c category
	if err := r.db.Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Category{}, ErrCategoryNotFound
		}
		return Category{}, err
	}
	return Category{ID: c.ID, Slug: c.Slug, Title: c.Title}, nil
}

func (r *Repository) CreateCategory(slug, title string) (int, error) {
	row := category{Slug: strings.TrimSpace(slug), Title: strings.TrimSpace(title)}
	if row.Slug == "" || row.Title == "" {
		return 0, errors.New("invalid input")
	}
	var exists int64
	if err := r.db.Model(&category{}).Where("slug = ?", row.Slug).Count(&exists).Error; err != nil {
		return 0, err
	}
	if exists > 0 {
		return 0, errors.New("slug taken")
	}
	if err := r.db.Create(&row).Error; err != nil {
		return 0, err
	}
	return int(row.ID), nil
}

func (r *Repository) UpdateCategory(id int, slug, title *string) error {
	updates := map[string]interface{}{}
	if slug != nil {
		updates["slug"] = strings.TrimSpace(*slug)
	}
	if title != nil {
		updates["title"] = strings.TrimSpace(*title)
	}
	if len(updates) == 0 {
		return nil
	}
	res := r.db.Model(&category{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCategory removes the category; menu items keep working with a nil
// category (Django used PROTECT, here items are detached first).
func (r *Repository) DeleteCategory(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&menuItem{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&category{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Menu items

// MenuFilter собирает все параметры списка меню в одном месте
type MenuFilter struct {
	CategoryID *int
	Featured   *bool
	Search     string // substring over title/description
	OrderBy    string // "price", "-price", "title", "-title"
	Page       int
	PageSize   int
}

func (r *Repository) toMenuItem(m menuItem) MenuItem {
	item := MenuItem{
		ID:          m.ID,
		Title:       m.Title,
		Price:       m.Price,
		Featured:    m.Featured,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.CategoryID != nil {
		if c, err := r.GetCategory(int(*m.CategoryID)); err == nil {
			item.Category = &c
		}
	}
	return item
}

// GetMenuItems returns active menu items with filtering, search, ordering and
// pagination. Total is the pre-pagination count.
func (r *Repository) GetMenuItems(f MenuFilter) ([]MenuItem, int64, error) {
	q := r.db.Model(&menuItem{}).Where("is_deleted = ?", false)
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.OrderBy {
	case "price":
		q = q.Order("price")
	case "-price":
		q = q.Order("price DESC")
	case "-title":
		q = q.Order("title DESC")
	default:
		q = q.Order("title")
	}

	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * f.PageSize).Limit(f.PageSize)
	}

	var rows []menuItem
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	result := make([]MenuItem, 0, len(rows))
	for _, m := range rows {
		result = append(result, r.toMenuItem(m))
	}
	return result, total, nil
}

func (r *Repository) GetMenuItem(id int) (MenuItem, error) {
	var m menuItem
	if err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MenuItem{}, ErrMenuItemNotFound
		}
		return MenuItem{}, err
	}
	return r.toMenuItem(m), nil
}

func (r *Repository) CreateMenuItem(title, description string, price float64, categoryID *int64, featured bool) (int, error) {
	if price <= 0 {
		return 0, errors.New("price must be greater than 0")
	}
	if categoryID != nil {
		if _, err := r.GetCategory(int(*categoryID)); err != nil {
			return 0, err
		}
	}
	row := menuItem{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Price:       roundCents(price),
		CategoryID:  categoryID,
		Featured:    featured,
		IsDeleted:   false,
		ImageURL:    "",
	}
	if err := r.db.Create(&row).Error; err != nil {
		return 0, err
	}
	return int(row.ID), nil
}

// UpdateMenuItem updates allowed fields only
func (r *Repository) UpdateMenuItem(id int, title, description *string, price *float64, categoryID *int64, featured *bool) error {
	updates := map[string]interface{}{}
	if title != nil {
		updates["title"] = strings.TrimSpace(*title)
	}
	if description != nil {
		updates["description"] = strings.TrimSpace(*description)
	}
	if price != nil {
		if *price <= 0 {
			return errors.New("price must be greater than 0")
		}
		updates["price"] = roundCents(*price)
	}
	if categoryID != nil {
		if _, err := r.GetCategory(int(*categoryID)); err != nil {
			return err
		}
		updates["category_id"] = *categoryID
	}
	if featured != nil {
		updates["featured"] = *featured
	}
	if len(updates) == 0 {
		return nil
	}
	res := r.db.Model(&menuItem{}).Where("id = ? AND is_deleted = ?", id, false).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateFeatured переключает "блюдо дня" (менеджер)
func (r *Repository) UpdateFeatured(id int, featured bool) error {
	res := r.db.Model(&menuItem{}).Where("id = ? AND is_deleted = ?", id, false).Update("featured", featured)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetMenuItemImageURL returns current image_url for the menu item
func (r *Repository) GetMenuItemImageURL(id int) (string, error) {
	var m menuItem
	if err := r.db.Select("image_url").Where("id = ?", id).First(&m).Error; err != nil {
		return "", err
	}
	return m.ImageURL, nil
}

// UpdateMenuItemImageURL updates image_url for the menu item
func (r *Repository) UpdateMenuItemImageURL(id int, url string) error {
	res := r.db.Model(&menuItem{}).Where("id = ? AND is_deleted = ?", id, false).Update("image_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDeleteMenuItem marks the item deleted and clears image_url (actual
// MinIO deletion handled in handler)
func (r *Repository) SoftDeleteMenuItem(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var m menuItem
		if err := tx.Where("id = ? AND is_deleted = ?", id, false).First(&m).Error; err != nil {
			return err
		}
		if err := tx.Model(&menuItem{}).Where("id = ?", id).Updates(map[string]interface{}{
			"is_deleted": true,
			"image_url":  "",
		}).Error; err != nil {
			return err
		}
		return nil
	})
}
