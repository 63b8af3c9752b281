package main

import (
	"context"
	"gin-heyvankala/controllers"
	"gin-heyvankala/infra"
	"gin-heyvankala/middlewares"
	"gin-heyvankala/repositories"
	"gin-heyvankala/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func setupRouter(store repositories.IStore) *gin.Engine {
	controllers.RegisterJSONFieldNames()

	vendorService := services.NewVendorService(store)
	vendorController := controllers.NewVendorController(vendorService)

	productService := services.NewProductService(store)
	productController := controllers.NewProductController(productService)

	cartService := services.NewCartService(store)
	cartController := controllers.NewCartController(cartService)

	r := gin.New()
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.Recovery())
	r.Use(cors.Default())

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	r.GET("/", health)
	r.GET("/health", health)

	api := r.Group("/api")
	authRouter := api.Group("/auth")
	productRouter := api.Group("/products")
	cartRouter := api.Group("/cart")

	authRouter.POST("/vendor-signup", vendorController.Signup)

	productRouter.GET("", productController.FindAll)
	productRouter.GET("/:id", productController.FindById)
	productRouter.POST("", productController.Create)

	cartRouter.GET("", cartController.GetCart)
	cartRouter.DELETE("", cartController.Clear)
	cartRouter.POST("/items", cartController.AddItem)
	cartRouter.PUT("/items/:product_id", cartController.UpdateItem)
	cartRouter.DELETE("/items/:product_id", cartController.RemoveItem)

	api.GET("/search", productController.Search)

	return r
}

func main() {
	cfg := infra.Initialize()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	store, err := infra.SetupStore(cfg)
	if err != nil {
		log.Fatalf("Failed to set up store: %v", err)
	}
	r := setupRouter(store)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s (store: %s)", cfg.Port, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
