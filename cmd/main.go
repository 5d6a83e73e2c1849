package main

import (
	"net/http"

	accountapp "github.com/bekzodm/minibazar/application/account"
	adminpanelapp "github.com/bekzodm/minibazar/application/adminpanel"
	checkoutapp "github.com/bekzodm/minibazar/application/checkout"
	listingapp "github.com/bekzodm/minibazar/application/listing"
	premiumapp "github.com/bekzodm/minibazar/application/premium"
	"github.com/bekzodm/minibazar/cmd/config"
	redisclient "github.com/bekzodm/minibazar/cmd/redis"
	_ "github.com/bekzodm/minibazar/docs"
	"github.com/bekzodm/minibazar/storage"
	adminstore "github.com/bekzodm/minibazar/store/admin"
	cartstore "github.com/bekzodm/minibazar/store/cart"
	langstore "github.com/bekzodm/minibazar/store/language"
	productstore "github.com/bekzodm/minibazar/store/product"
	shopstore "github.com/bekzodm/minibazar/store/shop"
	userstore "github.com/bekzodm/minibazar/store/user"
	wishliststore "github.com/bekzodm/minibazar/store/wishlist"
	"github.com/bekzodm/minibazar/thirdparty/rabbitmq"
	"github.com/bekzodm/minibazar/transport"
	"github.com/bekzodm/minibazar/utils/logger"
	"go.uber.org/zap"
)

// @title MINIBAZAR API
// @version 1.0
// @description Telegram Mini App storefront API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Pick the snapshot provider
	var provider storage.Provider
	switch cfg.Storage.Backend {
	case "redis":
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
		provider = storage.NewRedisProvider(redisclient.Get())
	default:
		fp, err := storage.NewFileProvider(cfg.Storage.DataDir)
		if err != nil {
			logger.Fatal("err init file storage", zap.Error(err))
		}
		provider = fp
	}

	// Initialize stores
	userStore := userstore.New(provider)
	shopStore := shopstore.New(provider)
	productStore := productstore.New(provider)
	cartStore := cartstore.New(provider)
	wishlistStore := wishliststore.New(provider)
	adminStore := adminstore.New(provider)
	languageStore := langstore.New(provider)

	// Bot notification publisher; nil means notifications are skipped
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Error("err connect rabbitmq, notifications disabled", zap.Error(err))
		} else {
			publisher = p
			defer func() {
				_ = publisher.Close()
			}()
		}
	}

	// Initialize application layers
	accountApp := accountapp.NewAccountApp(userStore, shopStore)
	listingApp := listingapp.NewListingApp(userStore, shopStore, productStore)
	checkoutApp := checkoutapp.NewCheckoutApp(cartStore, adminStore, publisher)
	premiumApp := premiumapp.NewPremiumApp(userStore, shopStore, adminStore, publisher)
	adminPanelApp := adminpanelapp.NewAdminPanelApp(cfg, adminStore)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		AccountApp:    accountApp,
		ListingApp:    listingApp,
		CheckoutApp:   checkoutApp,
		PremiumApp:    premiumApp,
		AdminPanelApp: adminPanelApp,
		ShopStore:     shopStore,
		CartStore:     cartStore,
		WishlistStore: wishlistStore,
		LanguageStore: languageStore,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
