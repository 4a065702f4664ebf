package main

import (
	"fmt"
	"os"

	appcfg "littlelemon/internal/app/config"
	appdb "littlelemon/internal/app/db"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := appcfg.Load("config/config.toml")
	if err == nil {
		os.Setenv("DB_HOST", cfg.DB.Host)
		os.Setenv("DB_PORT", cfg.DB.Port)
		os.Setenv("DB_USER", cfg.DB.User)
		os.Setenv("DB_PASS", cfg.DB.Pass)
		os.Setenv("DB_NAME", cfg.DB.Name)
		os.Setenv("DB_SSLMODE", cfg.DB.SSLMode)
	}
	db, err := appdb.Connect()
	if err != nil {
		logrus.Fatalf("db connect error: %v", err)
		return
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id bigserial PRIMARY KEY,
			username text UNIQUE NOT NULL,
			password_hash text NOT NULL,
			email text NOT NULL DEFAULT '',
			first_name text NOT NULL DEFAULT '',
			last_name text NOT NULL DEFAULT '',
			is_staff boolean NOT NULL DEFAULT false
		)`,
		`CREATE TABLE IF NOT EXISTS groups (
			id bigserial PRIMARY KEY,
			name text UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_groups (
			user_id bigint NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			group_id bigint NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, group_id)
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id bigserial PRIMARY KEY,
			slug text UNIQUE NOT NULL,
			title text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id bigserial PRIMARY KEY,
			title text NOT NULL,
			price numeric(10,2) NOT NULL CHECK (price > 0),
			featured boolean NOT NULL DEFAULT false,
			category_id bigint REFERENCES categories(id),
			description text NOT NULL DEFAULT '',
			image_url text NOT NULL DEFAULT '',
			is_deleted boolean NOT NULL DEFAULT false,
			created_at timestamp,
			updated_at timestamp
		)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_title ON menu_items (title)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_featured ON menu_items (featured)`,
		`CREATE TABLE IF NOT EXISTS cart_items (
			id bigserial PRIMARY KEY,
			user_id bigint NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			menu_item_id bigint NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
			quantity smallint NOT NULL CHECK (quantity >= 1),
			unit_price numeric(10,2) NOT NULL,
			price numeric(10,2) NOT NULL,
			UNIQUE (user_id, menu_item_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id bigserial PRIMARY KEY,
			user_id bigint NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			delivery_crew_id bigint REFERENCES users(id) ON DELETE SET NULL,
			status boolean NOT NULL DEFAULT false,
			total numeric(10,2) NOT NULL,
			date timestamp NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_date ON orders (date)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id bigserial PRIMARY KEY,
			order_id bigint NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id bigint NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
			quantity smallint NOT NULL CHECK (quantity >= 1),
			unit_price numeric(10,2) NOT NULL,
			price numeric(10,2) NOT NULL,
			UNIQUE (order_id, menu_item_id)
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id bigserial PRIMARY KEY,
			user_id bigint NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name text NOT NULL,
			number_of_guests integer NOT NULL CHECK (number_of_guests >= 1),
			reservation_date text NOT NULL,
			reservation_time text NOT NULL,
			special_requests text NOT NULL DEFAULT '',
			created_at timestamp,
			updated_at timestamp,
			UNIQUE (user_id, reservation_date, reservation_time)
		)`,
		// auth groups
		`INSERT INTO groups (name) VALUES ('Manager') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO groups (name) VALUES ('Delivery crew') ON CONFLICT (name) DO NOTHING`,
		// seed categories
		`INSERT INTO categories (slug, title) VALUES
			('appetizers', 'Appetizers'),
			('main-courses', 'Main Courses'),
			('desserts', 'Desserts'),
			('beverages', 'Beverages')
			ON CONFLICT (slug) DO NOTHING`,
		// seed menu
		`INSERT INTO menu_items (title, price, featured, category_id, description, created_at, updated_at)
			SELECT v.title, v.price, v.featured, c.id, v.description, now(), now()
			FROM (VALUES
				('Greek Salad', 12.99::numeric, false, 'appetizers', 'Fresh mixed greens with feta cheese, olives, and Mediterranean dressing'),
				('Bruschetta', 8.99::numeric, false, 'appetizers', 'Grilled bread with fresh tomatoes, garlic, and basil'),
				('Grilled Salmon', 24.99::numeric, true, 'main-courses', 'Atlantic salmon with lemon butter sauce and seasonal vegetables'),
				('Pasta Carbonara', 18.99::numeric, false, 'main-courses', 'Classic Italian pasta with bacon, eggs, and Parmesan cheese'),
				('Lemon Dessert', 7.99::numeric, true, 'desserts', 'Our signature lemon cake with mascarpone cream'),
				('Tiramisu', 8.99::numeric, false, 'desserts', 'Traditional Italian coffee-flavored dessert'),
				('Fresh Lemonade', 4.99::numeric, false, 'beverages', 'House-made lemonade with fresh lemons'),
				('Italian Coffee', 3.99::numeric, false, 'beverages', 'Premium espresso or cappuccino')
			) AS v(title, price, featured, category_slug, description)
			JOIN categories c ON c.slug = v.category_slug
			WHERE NOT EXISTS (SELECT 1 FROM menu_items mi WHERE mi.title = v.title)`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			logrus.Fatalf("migration failed on '%s': %v", s, err)
			return
		}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("db unwrap error: %v", err)
		return
	}
	defer sqlDB.Close()
	fmt.Println("DB migration and seed OK")
}
