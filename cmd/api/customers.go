package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecom/backend/internal/customer"
	"github.com/ecom/backend/internal/httpx"
	"github.com/ecom/backend/internal/store"
)

// listCustomersHandler godoc
//
//	@Summary	List customers
//	@Tags		customers
//	@Produce	json
//	@Success	200	{array}	customer.Customer
//	@Router		/customers [get]
func listCustomersHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "list customers")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// getCustomerHandler godoc
//
//	@Summary	Get a customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		string	true	"customer id"
//	@Success	200	{object}	customer.Customer
//	@Failure	404	{object}	httpx.HTTPError
//	@Router		/customers/{id} [get]
func getCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, http.StatusNotFound, "customer not found")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// createCustomerHandler godoc
//
//	@Summary	Create a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		customer.CreateCustomerRequest	true	"customer"
//	@Success	201		{object}	customer.Customer
//	@Failure	400		{object}	httpx.HTTPError
//	@Router		/customers [post]
func createCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customer.CreateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		cust := &customer.Customer{
			ID:    uuid.NewString(),
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		}
		if err := repo.Create(c.Request.Context(), cust); err != nil {
			httpx.Error(c, http.StatusInternalServerError, "create customer")
			return
		}
		created, err := repo.GetByID(c.Request.Context(), cust.ID)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "create customer")
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// updateCustomerHandler godoc
//
//	@Summary	Update a customer (partial)
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"customer id"
//	@Param		payload	body		customer.UpdateCustomerRequest	true	"fields to change"
//	@Success	200		{object}	customer.Customer
//	@Failure	400		{object}	httpx.HTTPError
//	@Failure	404		{object}	httpx.HTTPError
//	@Router		/customers/{id} [put]
func updateCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customer.UpdateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		id := c.Param("id")
		if err := repo.Update(c.Request.Context(), id, req.Patch()); err != nil {
			if errors.Is(err, customer.ErrNotFound) {
				httpx.Error(c, http.StatusNotFound, "customer not found")
				return
			}
			httpx.Error(c, http.StatusInternalServerError, "update customer")
			return
		}
		out, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "update customer")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// deleteCustomerHandler godoc
//
//	@Summary	Delete a customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		string	true	"customer id"
//	@Success	200	{object}	map[string]bool
//	@Failure	404	{object}	httpx.HTTPError
//	@Failure	409	{object}	httpx.HTTPError
//	@Router		/customers/{id} [delete]
func deleteCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			if store.IsForeignKeyViolation(err) {
				httpx.Error(c, http.StatusConflict, "customer has orders")
				return
			}
			httpx.Error(c, http.StatusInternalServerError, "delete customer")
			return
		}
		if !ok {
			httpx.Error(c, http.StatusNotFound, "customer not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
