package main

import (
	"context"
	"log"

	"gauth-backend/internal/app"
	"gauth-backend/pkg/config"
	"gauth-backend/pkg/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type proxyHandler func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// newProxyHandler serves API Gateway HTTP API (payload v2) events through engine.
func newProxyHandler(engine *gin.Engine) proxyHandler {
	adapter := ginadapter.NewV2(engine)
	return adapter.ProxyWithContext
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	appLogger := logger.New(cfg.LogLevel)

	application, err := app.New(context.Background(), cfg, appLogger)
	if err != nil {
		appLogger.Fatal("failed to initialize application", "error", err)
	}

	lambda.Start(newProxyHandler(application.Handler.Engine()))
}
