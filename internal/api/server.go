package api

import (
	"context"
	"log"
	"os"

	"littlelemon/internal/app/assets"
	appcfg "littlelemon/internal/app/config"
	appdb "littlelemon/internal/app/db"
	appdsn "littlelemon/internal/app/dsn"
	"littlelemon/internal/app/handler"
	"littlelemon/internal/app/redis"
	"littlelemon/internal/app/repository"

	_ "littlelemon/docs" // импорт сгенерированной документации

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func StartServer() {
	log.Println("Starting server")

	// load config if present, otherwise fallback to env/defaults
	cfg, err := appcfg.Load("config/config.toml")
	if err != nil {
		logrus.Warnf("config load failed, using env/defaults: %v", err)
		cfg.Redis.Host = "localhost"
		cfg.Redis.Port = 6379
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	} else {
		// set envs so db.Connect picks them up (keeps single place for DSN open)
		os.Setenv("DB_HOST", cfg.DB.Host)
		os.Setenv("DB_PORT", cfg.DB.Port)
		os.Setenv("DB_USER", cfg.DB.User)
		os.Setenv("DB_PASS", cfg.DB.Pass)
		os.Setenv("DB_NAME", cfg.DB.Name)
		os.Setenv("DB_SSLMODE", cfg.DB.SSLMode)
		// also provide a complete DB_DSN for convenience
		d := appdsn.Postgres{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, SSLMode: cfg.DB.SSLMode}
		os.Setenv("DB_DSN", d.String())
		if cfg.Minio.Endpoint != "" {
			os.Setenv("MINIO_ENDPOINT", cfg.Minio.Endpoint)
			os.Setenv("MINIO_ACCESS_KEY", cfg.Minio.AccessKey)
			os.Setenv("MINIO_SECRET_KEY", cfg.Minio.SecretKey)
			os.Setenv("MINIO_BUCKET", cfg.Minio.Bucket)
			os.Setenv("MINIO_PUBLIC_ENDPOINT", cfg.Minio.PublicEndpoint)
		}
	}

	// init DB
	gormDB, err := appdb.Connect()
	if err != nil {
		logrus.Fatalf("db connect error: %v", err)
		return
	}

	repo, err := repository.NewRepository(gormDB)
	if err != nil {
		logrus.Fatalf("repository init error: %v", err)
		return
	}

	// init Redis
	ctx := context.Background()
	redisClient, err := redis.New(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Redis connect error: %v", err)
		return
	}
	defer redisClient.Close()

	handler := handler.NewHandler(repo, redisClient, cfg.JWT.Secret)

	// где лежит статика сайта (картинки кладутся вручную)
	staticRoot := cfg.Assets.StaticRoot
	if staticRoot == "" {
		staticRoot = "restaurant/static"
	}
	// missing images are a warning only, the site serves broken links
	assets.WarnMissing(staticRoot)

	r := gin.Default()
	// добавляем наш html/шаблон
	r.LoadHTMLGlob("templates/*")
	r.Static("/static", staticRoot)
	// слева путь в URL, справа папка со статикой на диске

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// HTML pages: мягкая авторизация, чтобы показать счётчик корзины
	pages := r.Group("")
	pages.Use(handler.WithOptionalAuth())
	{
		pages.GET("/", handler.GetMenuPage)
		pages.GET("/menu/:id", handler.GetMenuItemPage)
	}

	// REST API under /api
	api := r.Group("/api")
	{
		// Public endpoints (no auth required)
		api.POST("/auth/register", handler.ApiRegister)
		api.POST("/auth/login", handler.ApiLogin)
		api.GET("/categories", handler.ApiListCategories)
		api.GET("/categories/:id", handler.ApiGetCategory)
		api.GET("/menu-items", handler.ApiListMenuItems)
		api.GET("/menu-items/:id", handler.ApiGetMenuItem)

		// User endpoints (auth required)
		userAPI := api.Group("")
		userAPI.Use(handler.WithAuthCheck())
		{
			userAPI.POST("/auth/logout", handler.ApiLogout)
			userAPI.GET("/me", handler.ApiGetMe)
			userAPI.PUT("/me", handler.ApiUpdateMe)

			userAPI.GET("/cart/menu-items", handler.ApiGetCart)
			userAPI.POST("/cart/menu-items", handler.ApiAddToCart)
			userAPI.DELETE("/cart/menu-items", handler.ApiClearCart)
			userAPI.PUT("/cart/menu-items/:id", handler.ApiUpdateCartItem)
			userAPI.DELETE("/cart/menu-items/:id", handler.ApiDeleteCartItem)

			userAPI.GET("/orders", handler.ApiListOrders)
			userAPI.POST("/orders", handler.ApiCreateOrder)
			userAPI.GET("/orders/:id", handler.ApiGetOrder)

			userAPI.GET("/reservations", handler.ApiListReservations)
			userAPI.POST("/reservations", handler.ApiCreateReservation)
			userAPI.GET("/reservations/:id", handler.ApiGetReservation)
			userAPI.PUT("/reservations/:id", handler.ApiUpdateReservation)
			userAPI.DELETE("/reservations/:id", handler.ApiDeleteReservation)
		}

		// Delivery crew and managers may update orders
		crewAPI := api.Group("")
		crewAPI.Use(handler.WithDeliveryCrewCheck())
		{
			crewAPI.PUT("/orders/:id", handler.ApiUpdateOrder)
		}

		// Manager endpoints
		managerAPI := api.Group("")
		managerAPI.Use(handler.WithManagerCheck())
		{
			managerAPI.PATCH("/menu-items/:id/update-featured", handler.ApiUpdateFeatured)
			managerAPI.POST("/menu-items/:id/image", handler.ApiMenuItemUploadImage)
			managerAPI.PATCH("/orders/:id/assign-delivery-crew", handler.ApiAssignDeliveryCrew)
			managerAPI.GET("/groups/delivery-crew/users", handler.ApiListDeliveryCrew)
			managerAPI.POST("/groups/delivery-crew/users", handler.ApiAddDeliveryCrew)
			managerAPI.DELETE("/groups/delivery-crew/users/:id", handler.ApiRemoveDeliveryCrew)
		}

		// Staff (admin) endpoints
		staffAPI := api.Group("")
		staffAPI.Use(handler.WithStaffCheck())
		{
			staffAPI.POST("/categories", handler.ApiCreateCategory)
			staffAPI.PUT("/categories/:id", handler.ApiUpdateCategory)
			staffAPI.DELETE("/categories/:id", handler.ApiDeleteCategory)
			staffAPI.POST("/menu-items", handler.ApiCreateMenuItem)
			staffAPI.PUT("/menu-items/:id", handler.ApiUpdateMenuItem)
			staffAPI.DELETE("/menu-items/:id", handler.ApiDeleteMenuItem)
			staffAPI.GET("/groups/manager/users", handler.ApiListManagers)
			staffAPI.POST("/groups/manager/users", handler.ApiAddManager)
			staffAPI.DELETE("/groups/manager/users/:id", handler.ApiRemoveManager)
		}
	}

	addr := cfg.Server.Addr
	if addr == "" {
		addr = "127.0.0.1:8000"
	}
	r.Run(addr)
	log.Println("Server down")
}
