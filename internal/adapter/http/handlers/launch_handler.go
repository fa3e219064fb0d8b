package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "gestao_servicos/internal/adapter/http/dto/request"
	response "gestao_servicos/internal/adapter/http/dto/response"
	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/listing"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLaunchPayload = pkg.NewDomainErrorSimple("INVALID_LAUNCH_INPUT", "Invalid launch payload", http.StatusBadRequest)

// LaunchHandler handles HTTP requests for service launches: the form CRUD,
// the filtered list, the installment plan and the work log.

type LaunchHandler struct {
	usecase usecase.ILaunchUseCase
}

func NewLaunchHandler(uc usecase.ILaunchUseCase) *LaunchHandler {
	return &LaunchHandler{usecase: uc}
}

// CreateLaunch godoc
//
//	@Summary	Create a launch
//	@Tags		launches
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.LaunchRequest	true	"Launch form"
//	@Success	201		{object}	response.LaunchResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/launches [post]
func (h *LaunchHandler) CreateLaunch(c *gin.Context) {
	var payload request.LaunchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLaunchPayload.HTTPStatus, errInvalidLaunchPayload.ToHTTPError())
		return
	}

	l, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidLaunchPayload.HTTPStatus, errInvalidLaunchPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), l)
	if err != nil {
		appErr := mapLaunchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLaunch(created))
}

// UpdateLaunch godoc
//
//	@Summary	Replace a launch from the form
//	@Tags		launches
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Launch ID"
//	@Param		payload	body		request.LaunchRequest	true	"Launch form"
//	@Success	200		{object}	response.LaunchResponse
//	@Failure	404		{object}	pkg.HTTPError
//	@Router		/launches/{id} [put]
func (h *LaunchHandler) UpdateLaunch(c *gin.Context) {
	var payload request.LaunchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLaunchPayload.HTTPStatus, errInvalidLaunchPayload.ToHTTPError())
		return
	}

	l, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidLaunchPayload.HTTPStatus, errInvalidLaunchPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), l)
	if err != nil {
		appErr := mapLaunchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLaunch(updated))
}

// GetLaunch godoc
//
//	@Summary	Get a launch by ID
//	@Tags		launches
//	@Produce	json
//	@Param		id	path		string	true	"Launch ID"
//	@Success	200	{object}	response.LaunchResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/launches/{id} [get]
func (h *LaunchHandler) GetLaunch(c *gin.Context) {
	l, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLaunchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLaunch(l))
}

// DeleteLaunch godoc
//
//	@Summary	Delete a launch
//	@Tags		launches
//	@Param		id	path	string	true	"Launch ID"
//	@Success	204
//	@Router		/launches/{id} [delete]
func (h *LaunchHandler) DeleteLaunch(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapLaunchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ListLaunches godoc
//
//	@Summary	List launches filtered, sorted and truncated for display
//	@Tags		launches
//	@Produce	json
//	@Param		status	query		string	false	"Status filter code, or all"
//	@Param		sort	query		string	false	"Sort mode"
//	@Success	200		{object}	response.LaunchListResponse
//	@Router		/launches [get]
func (h *LaunchHandler) ListLaunches(c *gin.Context) {
	status := c.DefaultQuery("status", listing.StatusFilterAll)
	mode := listing.SortMode(c.DefaultQuery("sort", string(listing.SortDefault)))

	page, err := h.usecase.List(c.Request.Context(), status, mode)
	if err != nil {
		appErr := mapLaunchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLaunchPage(page))
}

// AttachInstallmentPlan godoc
//
//	@Summary	Attach an installment plan to a launch
//	@Tags		launches
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Launch ID"
//	@Param		payload	body		request.InstallmentPlanRequest	true	"Plan parameters"
//	@Success	200		{object}	response.LaunchResponse
//	@Failure	404		{object}	pkg.HTTPError
//	@Router		/launches/{id}/installment-plan [post]
func (h *LaunchHandler) AttachInstallmentPlan(c *gin.Context) {
	var payload request.InstallmentPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLaunchPayload.HTTPStatus, errInvalidLaunchPayload.ToHTTPError())
		return
	}

	firstDue, err := payload.ParseFirstDueDate()
	if err != nil {
		c.JSON(errInvalidLaunchPayload.HTTPStatus, errInvalidLaunchPayload.ToHTTPError())
		return
	}

	l, err := h.usecase.AttachInstallmentPlan(
		c.Request.Context(),
		c.Param("id"),
		entities.PaymentMethod(payload.PaymentMethod),
		payload.InstallmentCount,
		firstDue,
	)
	if err != nil {
		appErr := mapLaunchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLaunch(l))
}

// OverrideInstallment godoc
//
//	@Summary	Override one installment's base value
//	@Tags		launches
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string								true	"Launch ID"
//	@Param		payload	body		request.InstallmentOverrideRequest	true	"Override"
//	@Success	200		{object}	response.LaunchResponse
//	@Failure	404		{object}	pkg.HTTPError
//	@Router		/launches/{id}/installment-plan [patch]
func (h *LaunchHandler) OverrideInstallment(c *gin.Context) {
	var payload request.InstallmentOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLaunchPayload.HTTPStatus, errInvalidLaunchPayload.ToHTTPError())
		return
	}

	l, err := h.usecase.OverrideInstallment(c.Request.Context(), c.Param("id"), payload.Number, payload.BaseValue)
	if err != nil {
		appErr := mapLaunchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLaunch(l))
}

// AddWorkEntry godoc
//
//	@Summary	Log a unit of labor on a launch
//	@Tags		launches
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Launch ID"
//	@Param		payload	body		request.WorkEntryRequest	true	"Work entry"
//	@Success	200		{object}	response.LaunchResponse
//	@Failure	404		{object}	pkg.HTTPError
//	@Router		/launches/{id}/work-entries [post]
func (h *LaunchHandler) AddWorkEntry(c *gin.Context) {
	entry, ok := h.bindWorkEntry(c)
	if !ok {
		return
	}

	l, err := h.usecase.AddWorkEntry(c.Request.Context(), c.Param("id"), entry)
	if err != nil {
		appErr := mapLaunchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLaunch(l))
}

// UpdateWorkEntry godoc
//
//	@Summary	Replace a logged work entry
//	@Tags		launches
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Launch ID"
//	@Param		index	path		int						true	"Entry index"
//	@Param		payload	body		request.WorkEntryRequest	true	"Work entry"
//	@Success	200		{object}	response.LaunchResponse
//	@Failure	404		{object}	pkg.HTTPError
//	@Router		/launches/{id}/work-entries/{index} [put]
func (h *LaunchHandler) UpdateWorkEntry(c *gin.Context) {
	index, ok := h.entryIndex(c)
	if !ok {
		return
	}
	entry, ok := h.bindWorkEntry(c)
	if !ok {
		return
	}

	l, err := h.usecase.UpdateWorkEntry(c.Request.Context(), c.Param("id"), index, entry)
	if err != nil {
		appErr := mapLaunchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLaunch(l))
}

// RemoveWorkEntry godoc
//
//	@Summary	Remove a logged work entry
//	@Tags		launches
//	@Produce	json
//	@Param		id		path		string	true	"Launch ID"
//	@Param		index	path		int		true	"Entry index"
//	@Success	200		{object}	response.LaunchResponse
//	@Failure	404		{object}	pkg.HTTPError
//	@Router		/launches/{id}/work-entries/{index} [delete]
func (h *LaunchHandler) RemoveWorkEntry(c *gin.Context) {
	index, ok := h.entryIndex(c)
	if !ok {
		return
	}

	l, err := h.usecase.RemoveWorkEntry(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		appErr := mapLaunchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLaunch(l))
}

func (h *LaunchHandler) bindWorkEntry(c *gin.Context) (entities.WorkEntry, bool) {
	var payload request.WorkEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLaunchPayload.HTTPStatus, errInvalidLaunchPayload.ToHTTPError())
		return entities.WorkEntry{}, false
	}
	entry, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidLaunchPayload.HTTPStatus, errInvalidLaunchPayload.ToHTTPError())
		return entities.WorkEntry{}, false
	}
	return entry, true
}

func (h *LaunchHandler) entryIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(errInvalidLaunchPayload.HTTPStatus, errInvalidLaunchPayload.ToHTTPError())
		return 0, false
	}
	return index, true
}

func mapLaunchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLaunchID),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidDeposit),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrReasonRequired),
		errors.Is(err, usecase.ErrInvalidInstallments),
		errors.Is(err, usecase.ErrInvalidInstallmentVal),
		errors.Is(err, usecase.ErrInvalidWorkEntry):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLaunchNotFound):
		return pkg.NewDomainErrorSimple("LAUNCH_NOT_FOUND", "Launch not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Installment plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkEntryNotFound):
		return pkg.NewDomainErrorSimple("WORK_ENTRY_NOT_FOUND", "Work entry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
