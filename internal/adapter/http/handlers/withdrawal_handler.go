package handlers

import (
	"errors"
	"net/http"

	request "gestao_servicos/internal/adapter/http/dto/request"
	response "gestao_servicos/internal/adapter/http/dto/response"
	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWithdrawalPayload = pkg.NewDomainErrorSimple("INVALID_WITHDRAWAL_INPUT", "Invalid withdrawal payload", http.StatusBadRequest)

// WithdrawalHandler handles HTTP requests for cash withdrawals.

type WithdrawalHandler struct {
	usecase usecase.IWithdrawalUseCase
}

func NewWithdrawalHandler(uc usecase.IWithdrawalUseCase) *WithdrawalHandler {
	return &WithdrawalHandler{usecase: uc}
}

// CreateWithdrawal godoc
//
//	@Summary	Record a cash withdrawal
//	@Tags		withdrawals
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.WithdrawalRequest	true	"Withdrawal form"
//	@Success	201		{object}	response.WithdrawalResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/withdrawals [post]
func (h *WithdrawalHandler) CreateWithdrawal(c *gin.Context) {
	w, ok := h.bindWithdrawal(c)
	if !ok {
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), w)
	if err != nil {
		appErr := mapWithdrawalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWithdrawal(created))
}

// UpdateWithdrawal godoc
//
//	@Summary	Replace a withdrawal
//	@Tags		withdrawals
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Withdrawal ID"
//	@Param		payload	body		request.WithdrawalRequest	true	"Withdrawal form"
//	@Success	200		{object}	response.WithdrawalResponse
//	@Failure	404		{object}	pkg.HTTPError
//	@Router		/withdrawals/{id} [put]
func (h *WithdrawalHandler) UpdateWithdrawal(c *gin.Context) {
	w, ok := h.bindWithdrawal(c)
	if !ok {
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), w)
	if err != nil {
		appErr := mapWithdrawalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWithdrawal(updated))
}

// GetWithdrawal godoc
//
//	@Summary	Get a withdrawal by ID
//	@Tags		withdrawals
//	@Produce	json
//	@Param		id	path		string	true	"Withdrawal ID"
//	@Success	200	{object}	response.WithdrawalResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/withdrawals/{id} [get]
func (h *WithdrawalHandler) GetWithdrawal(c *gin.Context) {
	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWithdrawalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWithdrawal(w))
}

// DeleteWithdrawal godoc
//
//	@Summary	Delete a withdrawal
//	@Tags		withdrawals
//	@Param		id	path	string	true	"Withdrawal ID"
//	@Success	204
//	@Router		/withdrawals/{id} [delete]
func (h *WithdrawalHandler) DeleteWithdrawal(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWithdrawalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ListWithdrawals godoc
//
//	@Summary	List withdrawals, most recent first, with the month running total
//	@Tags		withdrawals
//	@Produce	json
//	@Success	200	{object}	response.WithdrawalListResponse
//	@Router		/withdrawals [get]
func (h *WithdrawalHandler) ListWithdrawals(c *gin.Context) {
	page, monthTotal, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapWithdrawalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWithdrawalPage(page, monthTotal))
}

func (h *WithdrawalHandler) bindWithdrawal(c *gin.Context) (w entities.Withdrawal, ok bool) {
	var payload request.WithdrawalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWithdrawalPayload.HTTPStatus, errInvalidWithdrawalPayload.ToHTTPError())
		return w, false
	}
	w, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidWithdrawalPayload.HTTPStatus, errInvalidWithdrawalPayload.ToHTTPError())
		return w, false
	}
	return w, true
}

func mapWithdrawalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWithdrawalID),
		errors.Is(err, usecase.ErrInvalidWithdrawalDesc),
		errors.Is(err, usecase.ErrInvalidWithdrawalAmount),
		errors.Is(err, usecase.ErrWithdrawalAmountTooFine),
		errors.Is(err, usecase.ErrInvalidWithdrawalDate),
		errors.Is(err, usecase.ErrInvalidWithdrawalFields):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWithdrawalNotFound):
		return pkg.NewDomainErrorSimple("WITHDRAWAL_NOT_FOUND", "Withdrawal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
