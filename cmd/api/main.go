package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harshit1314/ecommerce-api/internal/config"
	"github.com/harshit1314/ecommerce-api/internal/order"
	"github.com/harshit1314/ecommerce-api/internal/product"
	"github.com/harshit1314/ecommerce-api/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := storage.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoName)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	if err := ensureIndexes(db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the E-commerce API!"})
	})

	productService := product.NewService(product.NewMongoRepository(db))
	productHandler := product.NewHandler(productService)
	productHandler.RegisterRoutes(app)

	orderService := order.NewService(order.NewMongoRepository(db), productService)
	orderHandler := order.NewHandler(orderService)
	orderHandler.RegisterRoutes(app)

	go func() {
		if err := app.Listen(cfg.Addr); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer disconnectCancel()
	if err := db.Client().Disconnect(disconnectCtx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}

func ensureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	type indexer interface {
		CreateIndexes(ctx context.Context) error
	}

	for _, repo := range []indexer{
		product.NewMongoRepository(db).(indexer),
		order.NewMongoRepository(db).(indexer),
	} {
		if err := repo.CreateIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}
