package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ecom/backend/internal/account"
	"github.com/ecom/backend/internal/customer"
	"github.com/ecom/backend/internal/httpx"
	"github.com/ecom/backend/internal/order"
	"github.com/ecom/backend/internal/product"
)

// registerValidators adds the "money" rule: a decimal string that is not
// negative, e.g. "199.90".
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			return err == nil && !d.IsNegative()
		})
	}
}

func newRouter(
	log *zap.Logger,
	customers customer.Repository,
	accounts account.Repository,
	products product.Repository,
	orders *order.Service,
) *gin.Engine {
	registerValidators()

	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(log), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/customers", listCustomersHandler(customers))
	r.POST("/customers", createCustomerHandler(customers))
	r.GET("/customers/:id", getCustomerHandler(customers))
	r.PUT("/customers/:id", updateCustomerHandler(customers))
	r.DELETE("/customers/:id", deleteCustomerHandler(customers))

	r.GET("/products", listProductsHandler(products))
	r.POST("/products", createProductHandler(products))
	r.GET("/products/:id", getProductHandler(products))
	r.PUT("/products/:id", updateProductHandler(products))
	r.DELETE("/products/:id", deleteProductHandler(products))

	r.GET("/customer_accounts", listAccountsHandler(accounts))
	r.POST("/customer_accounts", createAccountHandler(accounts))
	r.GET("/customer_accounts/:id", getAccountHandler(accounts))
	r.PUT("/customer_accounts/:id", updateAccountHandler(accounts))
	r.DELETE("/customer_accounts/:id", deleteAccountHandler(accounts))

	r.GET("/orders", listOrdersHandler(orders))
	r.POST("/orders", placeOrderHandler(orders))
	r.GET("/orders/:id", getOrderHandler(orders))
	r.GET("/orders/:id/items", getOrderItemsHandler(orders))
	r.DELETE("/orders/:id", deleteOrderHandler(orders))

	return r
}
