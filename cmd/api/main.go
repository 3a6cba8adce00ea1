package main

import (
	"context"
	"log"

	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/category"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/config"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/db"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/notify"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/order"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/product"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/user"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/wishlist"
)

func main() {
	cfg := config.Load()

	pool, err := db.NewPool(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[db] %v", err)
	}
	defer pool.Close()

	tg, err := notify.New(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Fatalf("[notify] %v", err)
	}

	users := user.NewPGRepo(pool)
	categories := category.NewPGRepo(pool)
	products := product.NewPGRepo(pool)
	orders := order.NewPGRepo(pool)
	wishes := wishlist.NewPGRepo(pool)

	var notifier order.Notifier
	if tg != nil {
		notifier = tg
	}
	orderSvc := order.NewService(orders, products, notifier)

	r := newRouter(routerDeps{
		jwtSecret:  cfg.JWTSecret,
		users:      users,
		categories: categories,
		products:   products,
		orders:     orders,
		orderSvc:   orderSvc,
		wishes:     wishes,
	})

	log.Printf("api listening on %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}
