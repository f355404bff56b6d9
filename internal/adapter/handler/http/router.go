package http

import (
	"github.com/aazhiproducts/checkout/internal/adapter/config"
	"github.com/aazhiproducts/checkout/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.Webhook,
	tokenService port.TokenService,
	checkoutHandler *CheckoutHandler,
	paymentHandler *PaymentHandler,
	adminHandler *AdminHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	webhookDigest := WebhookDigest(conf.Username, conf.Password)

	api := router.Group("/api")
	{
		api.POST("/checkout", checkoutHandler.Checkout)

		payment := api.Group("/payment")
		{
			payment.POST("/status", paymentHandler.CheckStatus)
		}

		webhook := api.Group("/webhook")
		{
			webhook.Use(webhookAuth(webhookDigest, NewHandler(logger)))
			webhook.POST("/phonepe", paymentHandler.Webhook)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)

			orders := admin.Group("/orders")
			{
				orders.Use(adminAuthCheck(tokenService, NewHandler(logger)))
				orders.GET("", adminHandler.ListOrders)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
