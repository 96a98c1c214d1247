package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	_ "travel-weather-api/configs"
	"travel-weather-api/internal/application/controller"
	"travel-weather-api/internal/application/middleware"
	"travel-weather-api/internal/application/processor"
	"travel-weather-api/internal/application/schedule"
	"travel-weather-api/internal/domain/gateway/api"
	"travel-weather-api/internal/domain/gateway/cache"
	"travel-weather-api/internal/domain/gateway/queue"
	"travel-weather-api/internal/domain/usecase/activity"
	"travel-weather-api/internal/domain/usecase/health"
	"travel-weather-api/internal/domain/usecase/weather"
	infraaws "travel-weather-api/internal/infra/aws"
	"travel-weather-api/pkg/log"
	"travel-weather-api/pkg/msg"
	pkgredis "travel-weather-api/pkg/redis"
	"travel-weather-api/pkg/resource"
	"travel-weather-api/pkg/sqs"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx := context.Background()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	// Init cache backend
	var store cache.Store
	var cacheHealthGateway cache.HealthGateway
	var redisClient *pkgredis.Client

	if resource.GetString("app.cache.backend") == "memory" {
		store = cache.NewMemoryStore()
		cacheHealthGateway = cache.NewMemoryHealthGateway()
	} else {
		redisConfig := pkgredis.NewRedisConfig().
			WithHost(resource.GetString("app.cache.redis.host")).
			WithPort(resource.GetInt("app.cache.redis.port")).
			WithPassword(resource.GetString("app.cache.redis.password")).
			WithDatabase(resource.GetInt("app.cache.redis.database"))

		redisClient = pkgredis.NewClient(redisConfig)
		store = cache.NewRedisStore(redisClient)
		cacheHealthGateway = cache.NewRedisHealthGateway(redisClient)
	}

	// Init provider gateway
	weatherGateway := api.NewWeatherGateway(api.GatewayConfig{
		BaseURL:      resource.GetString("app.weather.base-url"),
		FetchTimeout: time.Duration(resource.GetInt("app.weather.fetch-timeout-seconds")) * time.Second,
		PlaceIDTTL:   time.Duration(resource.GetInt("app.weather.place-id-ttl-seconds")) * time.Second,
	}, store)

	// Init queue infra
	queueEnabled := resource.GetBool("app.queue.enabled")
	queueName := resource.GetString("app.queue.refresh-queue-name")

	var queueSender queue.Sender
	var sqsWorkerClient sqs.WorkerClient
	if queueEnabled {
		awsConfig := infraaws.LoadConfig(ctx)
		client := infraaws.NewSqsClient(awsConfig)
		queueSender = infraaws.NewSQSSenderAdapter(client)
		sqsWorkerClient = client
	}

	// Init UseCase
	snapshotTTL := time.Duration(resource.GetInt("app.weather.snapshot-ttl-seconds")) * time.Second
	weatherUseCase := weather.NewWeatherUseCase(queueName, snapshotTTL, weatherGateway, store, queueSender)
	activityUseCase := activity.NewActivityUseCase(weatherUseCase)
	healthUseCase := health.NewHealthUseCase(cacheHealthGateway)

	// Init Controller
	weatherController := controller.NewWeatherController(apiGroup, weatherUseCase)
	activityController := controller.NewActivityController(apiGroup, activityUseCase)
	healthController := controller.NewHealthController(apiGroup, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	activityController.InitActivityRoutes()
	healthController.InitHealthRoutes()

	// Init Worker
	if queueEnabled {
		refreshProcessor := processor.NewRefreshProcessor(weatherUseCase)
		worker, err := sqs.NewWorker(ctx, sqsWorkerClient, queueName, refreshProcessor, &sqs.WorkerConfig{
			MaxNumberOfMessages: int32(resource.GetInt("app.queue.max-messages")),
			WaitTimeSeconds:     int32(resource.GetInt("app.queue.wait-time-seconds")),
			PoolSize:            resource.GetInt("app.queue.worker-pool-size"),
		})
		if err != nil {
			log.Fatalf("Failed to create refresh worker: %v", err)
		}
		go worker.Start(ctx)
	}

	// Init Schedule
	if resource.GetBool("app.prewarm.enabled") {
		prewarmScheduler := schedule.NewPrewarmScheduler(weatherUseCase, redisClient, &schedule.PrewarmSchedulerConfig{
			CronExpression:  resource.GetString("app.prewarm.cron"),
			Cities:          resource.GetStringSlice("app.prewarm.cities"),
			UseQueue:        queueEnabled,
			LockTTL:         time.Duration(resource.GetInt("app.prewarm.lock-ttl-seconds")) * time.Second,
			RefreshInterval: time.Duration(resource.GetInt("app.prewarm.lock-refresh-seconds")) * time.Second,
		})
		prewarmScheduler.InitPrewarmScheduleTasks(ctx)
	}

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
