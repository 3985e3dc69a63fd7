package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"alertdesk-backend/config"
	_ "alertdesk-backend/docs"
	"alertdesk-backend/internal/controller"
	"alertdesk-backend/internal/elasticsearch"
	"alertdesk-backend/internal/evesource"
	"alertdesk-backend/internal/filestate"
	"alertdesk-backend/internal/kafka"
	"alertdesk-backend/internal/metrics"
	"alertdesk-backend/internal/middleware"
	"alertdesk-backend/internal/scheduler"
	"alertdesk-backend/internal/service"
	"alertdesk-backend/internal/store"
	"alertdesk-backend/internal/timescaledb"
)

// @title           AlertDesk API
// @version         1.0
// @description     IDS alert dashboard (aggregated eve.json views), form validation and submission sessions, and an optional archive of ingested alerts.

// @contact.name   API Support Team
// @contact.url    http://www.example.com/support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @tag.name         alerts
// @tag.description  Aggregated views over the live alert log
// @tag.name         forms
// @tag.description  Form schemas, validation and submission sessions
// @tag.name         archive
// @tag.description  Ingested alert search and history (INGEST_ENABLED)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	var wg sync.WaitGroup
	options := []fx.Option{
		fx.Supply(cfg),
		fx.Provide(
			NewGinEngine,
			evesource.NewAlertSource,
			service.NewAlertDashboardService,
			controller.NewAlertController,
			store.NewInMemorySessionStore,
			service.NewQuestionService,
			service.NewFormService,
			controller.NewFormController,
			middleware.NewFormRateLimiter,
		),
		fx.Invoke(
			RegisterAPIRoutes,
			RegisterFormServiceShutdown,
		),
	}
	if cfg.Ingest.Enabled {
		options = append(options, ingestOptions(&wg))
	} else {
		log.Info().Msg("Alert ingestion disabled, archive routes not mounted")
	}

	app := fx.New(options...)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}
	<-app.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStop()
	log.Info().Msg("Shutting down application...")
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown due to error or timeout")
	}

	log.Info().Msg("Waiting for background goroutines to finish...")
	wg.Wait()
	log.Info().Msg("All background processes finished. Exiting.")
}

// ingestOptions wires the eve tailer -> Kafka -> Elasticsearch/TimescaleDB
// pipeline and the archive API on top of it.
func ingestOptions(wg *sync.WaitGroup) fx.Option {
	return fx.Options(
		fx.Provide(
			NewFileStateManager,
			kafka.NewKafkaAlertProducer,
			kafka.NewKafkaAlertConsumer,
			elasticsearch.ProvideAlertStore,
			timescaledb.ProvideTimescaleDBPool,
			metrics.NewEveExtractor,
			service.NewAlertProducerService,
			service.NewAlertConsumerService,
			elasticsearch.NewElasticsearchAlertRepository,
			timescaledb.NewTimescaleAlertRepository,
			service.NewAlertArchiveService,
			controller.NewArchiveController,
			scheduler.NewScheduler,
		),
		fx.Invoke(
			RegisterArchiveRoutes,
			func(*cron.Cron) {},
			func(lc fx.Lifecycle, consumerService service.AlertConsumerService) {
				startAlertConsumer(lc, wg, consumerService)
			},
		),
	)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Prometheus())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	alertController *controller.AlertController,
	formController *controller.FormController,
	limiter *middleware.RateLimiter,
) {
	controller.RegisterAlertRoutes(router, alertController)
	controller.RegisterFormRoutes(router, formController, middleware.RateLimitByIP(limiter))

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Starting HTTP server on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server ListenAndServe error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}

func RegisterArchiveRoutes(router *gin.Engine, archiveController *controller.ArchiveController) {
	controller.RegisterArchiveRoutes(router, archiveController)
}

// RegisterFormServiceShutdown cancels pending follow-up fetches on stop.
func RegisterFormServiceShutdown(lc fx.Lifecycle, formService service.FormService) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			formService.Shutdown()
			return nil
		},
	})
}

// --- Factory Functions ---

func NewFileStateManager(cfg *config.Config) filestate.Manager {
	return filestate.NewManager(cfg.FileState.FilePath)
}

// --- Invoker Functions ---

// startAlertConsumer runs the consumer loop in a goroutine tied to the fx lifecycle.
func startAlertConsumer(lc fx.Lifecycle, wg *sync.WaitGroup, consumerService service.AlertConsumerService) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info().Msg("Starting alert consumer goroutine")
			wg.Add(1)
			go consumerService.Run(ctx, wg)
			return nil
		},
		OnStop: func(context.Context) error {
			log.Info().Msg("Signaling alert consumer goroutine to stop...")
			cancel()
			return nil
		},
	})
}
