// Command lambda serves the API behind API Gateway HTTP APIs.
package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/di"
)

var (
	// chiLambda wraps the Chi router for AWS Lambda integration
	chiLambda *chiadapter.ChiLambdaV2

	app *di.App
)

// init runs during cold start
func init() {
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN, Environment: string(cfg.Environment)}); err != nil {
			log.Printf("Sentry disabled: %v", err)
		}
	}

	// The forwarder subscription lives as long as the execution environment.
	app, _, err = di.InitializeApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	chiLambda = chiadapter.NewV2(app.Router)
	app.Logger.Info("Cold start complete", zap.Duration("took", time.Since(start)))
}

// Handler proxies one API Gateway v2 request through the router.
func Handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	resp, err := chiLambda.ProxyWithContextV2(ctx, req)
	sentry.Flush(time.Second)
	return resp, err
}

func main() {
	lambda.Start(Handler)
}
