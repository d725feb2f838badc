package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecom/backend/internal/httpx"
	"github.com/ecom/backend/internal/product"
	"github.com/ecom/backend/internal/store"
)

// listProductsHandler godoc
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	product.Product
//	@Router		/products [get]
func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "list products")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// getProductHandler godoc
//
//	@Summary	Get a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"product id"
//	@Success	200	{object}	product.Product
//	@Failure	404	{object}	httpx.HTTPError
//	@Router		/products/{id} [get]
func getProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, http.StatusNotFound, "product not found")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// createProductHandler godoc
//
//	@Summary	Create a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		product.CreateProductRequest	true	"product"
//	@Success	201		{object}	product.Product
//	@Failure	400		{object}	httpx.HTTPError
//	@Router		/products [post]
func createProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		p := &product.Product{
			ID:    uuid.NewString(),
			Name:  req.Name,
			Price: req.Price,
			Stock: req.Stock,
		}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			httpx.Error(c, http.StatusInternalServerError, "create product")
			return
		}
		created, err := repo.GetByID(c.Request.Context(), p.ID)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "create product")
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// updateProductHandler godoc
//
//	@Summary	Update a product (partial)
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"product id"
//	@Param		payload	body		product.UpdateProductRequest	true	"fields to change"
//	@Success	200		{object}	product.Product
//	@Failure	400		{object}	httpx.HTTPError
//	@Failure	404		{object}	httpx.HTTPError
//	@Router		/products/{id} [put]
func updateProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		id := c.Param("id")
		if err := repo.Update(c.Request.Context(), id, req.Patch()); err != nil {
			if errors.Is(err, product.ErrNotFound) {
				httpx.Error(c, http.StatusNotFound, "product not found")
				return
			}
			httpx.Error(c, http.StatusInternalServerError, "update product")
			return
		}
		out, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "update product")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// deleteProductHandler godoc
//
//	@Summary	Delete a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"product id"
//	@Success	200	{object}	map[string]bool
//	@Failure	404	{object}	httpx.HTTPError
//	@Failure	409	{object}	httpx.HTTPError
//	@Router		/products/{id} [delete]
func deleteProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			if store.IsForeignKeyViolation(err) {
				httpx.Error(c, http.StatusConflict, "product appears in orders")
				return
			}
			httpx.Error(c, http.StatusInternalServerError, "delete product")
			return
		}
		if !ok {
			httpx.Error(c, http.StatusNotFound, "product not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
