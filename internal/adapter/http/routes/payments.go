package routes

import (
	"momo_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathAccounts = "/accounts"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.StartPayment)
		payments.GET("/:reference_id", paymentHandler.GetPaymentStatus)
		payments.POST("/:reference_id/await", paymentHandler.AwaitPayment)
	}

	accounts := rg.Group(PathAccounts)
	{
		accounts.GET("/balance", paymentHandler.GetBalance)
		accounts.GET("/:payer/active", paymentHandler.ValidateAccountHolder)
	}
}
