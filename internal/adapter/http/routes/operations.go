package routes

import (
	"gestao_servicos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLaunches    = "/launches"
	PathWithdrawals = "/withdrawals"
	PathSummary     = "/summary"
)

func addOperationRoutes(
	rg *gin.RouterGroup,
	launchHandler *handlers.LaunchHandler,
	withdrawalHandler *handlers.WithdrawalHandler,
	summaryHandler *handlers.SummaryHandler,
	chargeHandler *handlers.ChargeHandler,
) {
	launches := rg.Group(PathLaunches)
	{
		launches.POST("", launchHandler.CreateLaunch)
		launches.GET("", launchHandler.ListLaunches)
		launches.GET("/:id", launchHandler.GetLaunch)
		launches.PUT("/:id", launchHandler.UpdateLaunch)
		launches.DELETE("/:id", launchHandler.DeleteLaunch)

		launches.POST("/:id/installment-plan", launchHandler.AttachInstallmentPlan)
		launches.PATCH("/:id/installment-plan", launchHandler.OverrideInstallment)

		launches.POST("/:id/work-entries", launchHandler.AddWorkEntry)
		launches.PUT("/:id/work-entries/:index", launchHandler.UpdateWorkEntry)
		launches.DELETE("/:id/work-entries/:index", launchHandler.RemoveWorkEntry)

		launches.POST("/:id/charge", chargeHandler.ChargeDeposit)
	}

	withdrawals := rg.Group(PathWithdrawals)
	{
		withdrawals.POST("", withdrawalHandler.CreateWithdrawal)
		withdrawals.GET("", withdrawalHandler.ListWithdrawals)
		withdrawals.GET("/:id", withdrawalHandler.GetWithdrawal)
		withdrawals.PUT("/:id", withdrawalHandler.UpdateWithdrawal)
		withdrawals.DELETE("/:id", withdrawalHandler.DeleteWithdrawal)
	}

	rg.GET(PathSummary, summaryHandler.GetSummary)
}
