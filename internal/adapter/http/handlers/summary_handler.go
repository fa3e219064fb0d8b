package handlers

import (
	"errors"
	"net/http"
	"time"

	response "gestao_servicos/internal/adapter/http/dto/response"
	"gestao_servicos/internal/domain/listing"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/pkg"

	"github.com/gin-gonic/gin"
)

const summaryDayLayout = "2006-01-02"

// SummaryHandler handles the financial summary endpoint.

type SummaryHandler struct {
	usecase usecase.ISummaryUseCase
}

func NewSummaryHandler(uc usecase.ISummaryUseCase) *SummaryHandler {
	return &SummaryHandler{usecase: uc}
}

// GetSummary godoc
//
//	@Summary	Financial summary of a reporting period
//	@Tags		summary
//	@Produce	json
//	@Param		period	query		string	false	"current or previous month shortcut"
//	@Param		start	query		string	false	"Period start, YYYY-MM-DD"
//	@Param		end		query		string	false	"Period end, YYYY-MM-DD"
//	@Success	200		{object}	response.SummaryResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	start, end, err := resolvePeriod(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PERIOD", "Invalid summary period", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	s, err := h.usecase.Summarize(c.Request.Context(), start, end)
	if err != nil {
		appErr := mapSummaryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(s))
}

// resolvePeriod accepts either a month shortcut or explicit bounds. With
// nothing given it defaults to the current month, the screen's initial view.
func resolvePeriod(c *gin.Context) (time.Time, time.Time, error) {
	switch c.Query("period") {
	case "current", "":
		if c.Query("start") == "" && c.Query("end") == "" {
			start, end := listing.CurrentMonth(time.Now())
			return start, end, nil
		}
	case "previous":
		start, end := listing.PreviousMonth(time.Now())
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, usecase.ErrInvalidPeriod
	}

	start, err := time.Parse(summaryDayLayout, c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(summaryDayLayout, c.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func mapSummaryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", "Invalid summary period", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
