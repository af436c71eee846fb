package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/salesdist/sales-dist-backend/internal/auth"
	"github.com/salesdist/sales-dist-backend/internal/config"
	"github.com/salesdist/sales-dist-backend/internal/database"
	"github.com/salesdist/sales-dist-backend/internal/logger"
	"github.com/salesdist/sales-dist-backend/internal/migrate"
	"github.com/salesdist/sales-dist-backend/internal/order"
	"github.com/salesdist/sales-dist-backend/internal/product"
	"github.com/salesdist/sales-dist-backend/internal/user"
)

func main() {
	cfg := config.Load()
	logger.Init()
	defer logger.Sync()

	if err := migrate.Up(cfg.Database.URL); err != nil {
		logger.Error("migrations failed", "error", err)
		panic(err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		panic(err)
	}
	defer db.Close()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	authHandler := auth.NewHandler(auth.NewService(auth.NewPostgresRepository(db), cfg.JWT))
	userHandler := user.NewHandler(user.NewService(user.NewPostgresRepository(db)))
	productHandler := product.NewHandler(product.NewService(product.NewPostgresRepository(db)))
	orderHandler := order.NewHandler(order.NewService(order.NewPostgresRepository(db)))

	// public routes first; everything registered after the JWT middleware
	// requires a bearer token
	authHandler.RegisterPublicRoutes(app)
	userHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWT.Secret),
	}))

	productHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	logger.Info("starting server", "port", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		logger.Error("server stopped", "error", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	logger.Info("request",
		"method", c.Method(),
		"path", c.OriginalURL(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
	)
	return err
}
