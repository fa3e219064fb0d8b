package routes

import (
	"log"
	"os"
	"strconv"

	_ "gestao_servicos/docs" // This will be auto-generated
	"gestao_servicos/internal/adapter/http/handlers"
	"gestao_servicos/internal/adapter/http/middleware"
	repository2 "gestao_servicos/internal/adapter/persistence/repository"
	"gestao_servicos/internal/infrastructure/database"
	"gestao_servicos/internal/infrastructure/payments"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	launchRepo := repository2.NewLaunchDynamoRepository(ddb)
	withdrawalRepo := repository2.NewWithdrawalDynamoRepository(ddb)

	launchUseCase := usecase.NewLaunchUseCase(launchRepo)
	withdrawalUseCase := usecase.NewWithdrawalUseCase(withdrawalRepo)
	summaryUseCase := usecase.NewSummaryUseCase(launchRepo, withdrawalRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	chargeUseCase := usecase.NewChargeUseCase(launchRepo, paymentGateway)

	launchHandler := handlers.NewLaunchHandler(launchUseCase)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalUseCase)
	summaryHandler := handlers.NewSummaryHandler(summaryUseCase)
	chargeHandler := handlers.NewChargeHandler(chargeUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	v1.Use(middleware.Session())
	addOperationRoutes(v1, launchHandler, withdrawalHandler, summaryHandler, chargeHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
