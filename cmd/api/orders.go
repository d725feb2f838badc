package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecom/backend/internal/httpx"
	"github.com/ecom/backend/internal/order"
)

// listOrdersHandler godoc
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	order.Order
//	@Router		/orders [get]
func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "list orders")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// placeOrderHandler godoc
//
//	@Summary		Place an order
//	@Description	Resolves the customer and every product reference, then
//	@Description	persists the order and its line items atomically. Any
//	@Description	unresolved reference aborts the whole placement.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		order.PlaceOrderRequest	true	"order"
//	@Success		201		{object}	order.Order
//	@Failure		400		{object}	httpx.HTTPError
//	@Router			/orders [post]
func placeOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		o, err := svc.Place(c.Request.Context(), req)
		if err != nil {
			if placementRejected(err) {
				httpx.Error(c, http.StatusBadRequest, err.Error())
				return
			}
			httpx.Error(c, http.StatusInternalServerError, "place order")
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

func placementRejected(err error) bool {
	return errors.Is(err, order.ErrNoItems) ||
		errors.Is(err, order.ErrBadQuantity) ||
		errors.Is(err, order.ErrDuplicateProduct) ||
		errors.Is(err, order.ErrCustomerNotFound) ||
		errors.Is(err, order.ErrProductNotFound)
}

// getOrderHandler godoc
//
//	@Summary	Get an order with its items
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"order id"
//	@Success	200	{object}	order.Order
//	@Failure	404	{object}	httpx.HTTPError
//	@Router		/orders/{id} [get]
func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, http.StatusNotFound, "order not found")
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// getOrderItemsHandler godoc
//
//	@Summary	List the items of an order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path	string	true	"order id"
//	@Success	200	{array}	order.Item
//	@Failure	404	{object}	httpx.HTTPError
//	@Router		/orders/{id}/items [get]
func getOrderItemsHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ItemsOf(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, http.StatusNotFound, "order not found")
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// deleteOrderHandler godoc
//
//	@Summary	Delete an order and its items
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"order id"
//	@Success	200	{object}	map[string]bool
//	@Failure	404	{object}	httpx.HTTPError
//	@Router		/orders/{id} [delete]
func deleteOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := svc.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "delete order")
			return
		}
		if !ok {
			httpx.Error(c, http.StatusNotFound, "order not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
