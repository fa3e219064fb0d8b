package handlers

import (
	"errors"
	"net/http"

	request "gestao_servicos/internal/adapter/http/dto/request"
	response "gestao_servicos/internal/adapter/http/dto/response"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/pkg"

	"github.com/gin-gonic/gin"
)

// ChargeHandler forwards deposit charges to the payment provider.

type ChargeHandler struct {
	usecase usecase.IChargeUseCase
}

func NewChargeHandler(uc usecase.IChargeUseCase) *ChargeHandler {
	return &ChargeHandler{usecase: uc}
}

// ChargeDeposit godoc
//
//	@Summary	Charge a launch deposit through the payment provider
//	@Tags		launches
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Launch ID"
//	@Param		payload	body		request.ChargeRequest	false	"Provider payload"
//	@Success	200		{object}	response.ChargeResponse
//	@Failure	404		{object}	pkg.HTTPError
//	@Router		/launches/{id}/charge [post]
func (h *ChargeHandler) ChargeDeposit(c *gin.Context) {
	// The body is optional; an absent one charges with server-side defaults.
	var payload request.ChargeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_CHARGE_INPUT", "Invalid charge payload", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	result, err := h.usecase.ChargeDeposit(c.Request.Context(), c.Param("id"), payload.Payload)
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChargeResult(result))
}

func mapChargeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLaunchID), errors.Is(err, usecase.ErrInvalidChargePayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLaunchNotFound):
		return pkg.NewDomainErrorSimple("LAUNCH_NOT_FOUND", "Launch not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLaunchNotChargeable):
		return pkg.NewDomainErrorSimple("LAUNCH_NOT_CHARGEABLE", "Launch has no deposit to charge", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeGatewayMissing):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
