package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/soapdogg/travel-personal-assistant/internal/api"
	"github.com/soapdogg/travel-personal-assistant/internal/assistant"
	"github.com/soapdogg/travel-personal-assistant/internal/auth"
	"github.com/soapdogg/travel-personal-assistant/internal/config"
	"github.com/soapdogg/travel-personal-assistant/internal/persistence/dynamo"
	"github.com/soapdogg/travel-personal-assistant/internal/workout"
)

func main() {
	cfg := config.Load()

	zapCfg := zap.NewProductionConfig()
	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if cfg.AWSRegion != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.AWSRegion))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		logger.Fatal("failed to load AWS config", zap.Error(err))
	}

	// Clients are created once per process and shared read-only across warm
	// invocations.
	dynamoClient := dynamodb.NewFromConfig(awsCfg)
	bedrockClient := bedrockruntime.NewFromConfig(awsCfg)

	handler := api.NewHandler(
		auth.NewVerifier(dynamo.NewCredentialRepository(dynamoClient, cfg.UsersTable)),
		workout.NewService(dynamo.NewWorkoutRepository(dynamoClient, cfg.WorkoutsTable)),
		assistant.NewInvoker(bedrockClient, cfg.ModelID, assistant.InferenceConfig{
			MaxTokens:   int32(cfg.MaxTokens),
			Temperature: float32(cfg.Temperature),
		}, logger),
		logger,
	)

	lambda.Start(handler.Handle)
}
