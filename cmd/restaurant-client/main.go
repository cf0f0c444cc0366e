package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"restaurant-client/internal/api"
	"restaurant-client/internal/cart"
	"restaurant-client/internal/common/config"
	"restaurant-client/internal/common/logger"
	"restaurant-client/internal/common/storage"
	"restaurant-client/internal/domain"
	"restaurant-client/internal/notify"
	"restaurant-client/internal/services/auth"
	"restaurant-client/internal/services/catalog"
	"restaurant-client/internal/services/ordering"
	"restaurant-client/internal/tracking"
)

func main() {
	mode := flag.String("mode", "", "login | menu | order | track")
	email := flag.String("email", "", "login: account email")
	password := flag.String("password", "", "login: account password")
	restaurantID := flag.Int64("restaurant", 0, "menu/order: restaurant id")
	orderID := flag.Int64("order", 0, "track: order id")
	tableNumber := flag.Int("table", 0, "order: table number for dine-in")
	customer := flag.String("customer", "", "order: customer name")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(".env")
	if err != nil {
		lg.Error("config_failed", err, nil)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		lg.Error("storage_failed", err, nil)
		os.Exit(1)
	}
	defer store.Close()

	creds := api.NewCredentials(store)
	client := api.New(cfg.API, creds, logger.New("api"))

	authSvc := auth.NewAuthService(client, creds)
	catalogSvc := catalog.NewCatalogService(client, store)
	orderSvc := ordering.NewOrderingService(client)
	tracker := tracking.New(orderSvc, tracking.Options{
		InitialInterval: cfg.Tracking.InitialInterval,
		MinInterval:     cfg.Tracking.MinInterval,
		MaxInterval:     cfg.Tracking.MaxInterval,
	}, logger.New("tracking"))
	basket := cart.NewManager(store, logger.New("cart"))
	toasts := notify.NewCenter()

	switch *mode {
	case "login":
		if err := runLogin(ctx, authSvc, *email, *password); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "menu":
		if err := runMenu(ctx, catalogSvc, *restaurantID); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "order":
		if err := runOrder(ctx, orderSvc, basket, *restaurantID, *customer, *tableNumber); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "track":
		if *orderID == 0 {
			fmt.Fprintln(os.Stderr, "--order is required for track")
			os.Exit(2)
		}
		if err := runTrack(ctx, tracker, toasts, *orderID); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: login | menu | order | track")
		os.Exit(2)
	}
}

func runLogin(ctx context.Context, svc *auth.AuthService, email, password string) error {
	resp, err := svc.Login(ctx, domain.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", resp.User.Name, resp.User.Email)
	return nil
}

func runMenu(ctx context.Context, svc *catalog.CatalogService, restaurantID int64) error {
	if restaurantID == 0 {
		return fmt.Errorf("--restaurant is required for menu")
	}
	categories, err := svc.ListCategories(ctx, restaurantID)
	if err != nil {
		return err
	}
	items, err := svc.ListMenuItems(ctx, restaurantID)
	if err != nil {
		return err
	}
	for _, c := range categories {
		fmt.Printf("== %s\n", c.Name)
		for _, it := range items {
			if it.CategoryID != c.ID || !it.IsAvailable {
				continue
			}
			fmt.Printf("  %-30s %8.2f\n", it.Name, it.Price)
		}
	}
	return nil
}

func runOrder(ctx context.Context, svc *ordering.OrderingService, basket *cart.Manager, restaurantID int64, customer string, tableNumber int) error {
	lines := basket.Items()
	if len(lines) == 0 {
		return fmt.Errorf("cart is empty")
	}
	if restaurantID == 0 {
		restaurantID = basket.RestaurantID()
	}
	req := domain.CreateOrderRequest{
		RestaurantID: restaurantID,
		CustomerName: customer,
		OrderType:    "dine_in",
	}
	if tableNumber > 0 {
		req.TableNumber = &tableNumber
	}
	for _, line := range lines {
		req.Items = append(req.Items, domain.CreateOrderItem{
			MenuItemID:          line.MenuItemID,
			Quantity:            line.Quantity,
			SpecialInstructions: line.SpecialInstructions,
		})
	}
	order, err := svc.CreateOrder(ctx, req)
	if err != nil {
		return err
	}
	basket.Clear()
	fmt.Printf("order %d created, status=%s, total=%.2f\n", order.ID, order.Status, order.TotalAmount)
	return nil
}

func runTrack(ctx context.Context, tracker *tracking.Tracker, toasts *notify.Center, orderID int64) error {
	done := make(chan struct{})

	toasts.Subscribe(func(list []notify.Notification) {
		for _, n := range list {
			if !n.Leaving {
				fmt.Printf("[%s] %s: %s\n", n.Type, n.Title, n.Message)
			}
		}
	})

	unsubscribe := tracker.Subscribe(orderID, func(p domain.OrderProgress) {
		fmt.Printf("order %d: %.0f%% (%s)\n", orderID, p.GlobalProgress, p.Status)
		if remaining, ok := tracker.PredictRemainingTime(orderID, p); ok {
			fmt.Printf("  estimated %.1f min remaining\n", remaining)
		}
		if slow, ok := tracking.SlowestCategory(p); ok {
			fmt.Printf("  slowest: %s (%.0f%%)\n", slow.Category, slow.Progress)
		}
		if p.Status == domain.OrderStatusServed || p.GlobalProgress >= 100 {
			toasts.Push(notify.Notification{Type: "success", Title: "Order ready", Message: "Enjoy your meal!"})
			close(done)
		}
	}, tracking.Options{})
	defer unsubscribe()

	select {
	case <-ctx.Done():
		return nil
	case <-done:
		return nil
	}
}
