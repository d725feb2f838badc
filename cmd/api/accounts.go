package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecom/backend/internal/account"
	"github.com/ecom/backend/internal/httpx"
)

// listAccountsHandler godoc
//
//	@Summary	List customer accounts
//	@Tags		accounts
//	@Produce	json
//	@Success	200	{array}	account.CustomerAccount
//	@Router		/customer_accounts [get]
func listAccountsHandler(repo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "list accounts")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// getAccountHandler godoc
//
//	@Summary	Get a customer account
//	@Tags		accounts
//	@Produce	json
//	@Param		id	path		string	true	"account id"
//	@Success	200	{object}	account.CustomerAccount
//	@Failure	404	{object}	httpx.HTTPError
//	@Router		/customer_accounts/{id} [get]
func getAccountHandler(repo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, http.StatusNotFound, "account not found")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// createAccountHandler godoc
//
//	@Summary	Create a customer account
//	@Tags		accounts
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		account.CreateAccountRequest	true	"account"
//	@Success	201		{object}	account.CustomerAccount
//	@Failure	400		{object}	httpx.HTTPError
//	@Failure	409		{object}	httpx.HTTPError
//	@Router		/customer_accounts [post]
func createAccountHandler(repo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.CreateAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		hash, err := account.HashPassword(req.Password)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "hash password")
			return
		}
		a := &account.CustomerAccount{
			ID:           uuid.NewString(),
			CustomerID:   req.CustomerID,
			Username:     req.Username,
			PasswordHash: hash,
		}
		if err := repo.Create(c.Request.Context(), a); err != nil {
			switch {
			case errors.Is(err, account.ErrUsernameTaken):
				httpx.Error(c, http.StatusConflict, "username already in use")
			case errors.Is(err, account.ErrCustomerMissing):
				httpx.Error(c, http.StatusBadRequest, "customer does not exist")
			default:
				httpx.Error(c, http.StatusInternalServerError, "create account")
			}
			return
		}
		created, err := repo.GetByID(c.Request.Context(), a.ID)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "create account")
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// updateAccountHandler godoc
//
//	@Summary	Update a customer account (partial)
//	@Tags		accounts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"account id"
//	@Param		payload	body		account.UpdateAccountRequest	true	"fields to change"
//	@Success	200		{object}	account.CustomerAccount
//	@Failure	400		{object}	httpx.HTTPError
//	@Failure	404		{object}	httpx.HTTPError
//	@Failure	409		{object}	httpx.HTTPError
//	@Router		/customer_accounts/{id} [put]
func updateAccountHandler(repo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.UpdateAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		p := account.Patch{Username: req.Username}
		if req.Password != nil {
			hash, err := account.HashPassword(*req.Password)
			if err != nil {
				httpx.Error(c, http.StatusInternalServerError, "hash password")
				return
			}
			p.PasswordHash = &hash
		}
		id := c.Param("id")
		if err := repo.Update(c.Request.Context(), id, p); err != nil {
			switch {
			case errors.Is(err, account.ErrNotFound):
				httpx.Error(c, http.StatusNotFound, "account not found")
			case errors.Is(err, account.ErrUsernameTaken):
				httpx.Error(c, http.StatusConflict, "username already in use")
			default:
				httpx.Error(c, http.StatusInternalServerError, "update account")
			}
			return
		}
		out, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "update account")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// deleteAccountHandler godoc
//
//	@Summary	Delete a customer account
//	@Tags		accounts
//	@Produce	json
//	@Param		id	path		string	true	"account id"
//	@Success	200	{object}	map[string]bool
//	@Failure	404	{object}	httpx.HTTPError
//	@Router		/customer_accounts/{id} [delete]
func deleteAccountHandler(repo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "delete account")
			return
		}
		if !ok {
			httpx.Error(c, http.StatusNotFound, "account not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
