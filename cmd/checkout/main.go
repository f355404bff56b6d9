package main

import (
	"context"
	"fmt"

	"github.com/aazhiproducts/checkout/internal/adapter/auth"
	"github.com/aazhiproducts/checkout/internal/adapter/client/phonepe"
	"github.com/aazhiproducts/checkout/internal/adapter/client/resend"
	"github.com/aazhiproducts/checkout/internal/adapter/config"
	"github.com/aazhiproducts/checkout/internal/adapter/handler/http"
	"github.com/aazhiproducts/checkout/internal/adapter/logger"
	"github.com/aazhiproducts/checkout/internal/adapter/storage"
	"github.com/aazhiproducts/checkout/internal/adapter/storage/repository"
	"github.com/aazhiproducts/checkout/internal/core/service"
	"go.uber.org/zap"
)

const pollWorkers = 5

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	gateway, err := phonepe.NewClient(conf.PhonePe, log.Named("PhonePe"))
	if err != nil {
		log.Error("gateway client creating error", zap.Error(err))
		return
	}

	poller, err := phonepe.NewPoller(gateway, log.Named("Poller"))
	if err != nil {
		log.Error("status poller creating error", zap.Error(err))
		return
	}

	mailer, err := resend.NewMailer(conf.Email, log.Named("Mailer"))
	if err != nil {
		log.Error("mailer creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, gateway, poller, mailer, tokenService,
		conf.Admin.Key, log.Named("Service"))
	if err != nil {
		log.Error("checkout service creating error", zap.Error(err))
		return
	}

	poller.Run(ctx, svc, pollWorkers)

	err = phonepe.RequeueOrders(ctx, repo, poller)
	if err != nil {
		log.Error("requeue pending orders error", zap.Error(err))
		return
	}

	checkoutHandler, err := http.NewCheckoutHandler(svc, log.Named("Checkout handler"))
	if err != nil {
		log.Error("checkout handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	adminHandler, err := http.NewAdminHandler(svc, log.Named("Admin handler"))
	if err != nil {
		log.Error("admin handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.Webhook, tokenService, checkoutHandler,
		paymentHandler, adminHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
