package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/RakshithaNagaraju74/MedWell/ai"
	"github.com/RakshithaNagaraju74/MedWell/auth"
	"github.com/RakshithaNagaraju74/MedWell/config"
	"github.com/RakshithaNagaraju74/MedWell/documents"
	"github.com/RakshithaNagaraju74/MedWell/errors"
	"github.com/RakshithaNagaraju74/MedWell/lifestyle"
	"github.com/RakshithaNagaraju74/MedWell/logger"
	"github.com/RakshithaNagaraju74/MedWell/medicines"
	"github.com/RakshithaNagaraju74/MedWell/prescriptions"
	"github.com/RakshithaNagaraju74/MedWell/reminders"
	"github.com/RakshithaNagaraju74/MedWell/store"
	"github.com/RakshithaNagaraju74/MedWell/symptomlog"
	"github.com/RakshithaNagaraju74/MedWell/users"
	"github.com/RakshithaNagaraju74/MedWell/vitals"
)

func Start(e *echo.Echo, cfg *config.Config, log *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	address := fmt.Sprintf(":%d", cfg.Port)
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(address); err != nil && err != http.ErrServerClosed {
					log.Errorw("server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func NewServer(handler *Handler, healthCheck *HealthCheck, cfg *config.Config, storage *documents.Storage, zapLogger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(echozap.ZapLogger(zapLogger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowCredentials: true,
	}))

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/", healthCheck.Live)
	e.GET("/ready", healthCheck.Ready)
	e.Static("/uploads", storage.Dir())
	RegisterRoutes(e, handler)

	return e, nil
}

func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api")

	g.GET("/user/profile", h.GetProfile)
	g.POST("/user/profile", h.UpsertProfile)
	g.PUT("/user/profile", h.UpdateProfile)

	g.GET("/reminders", h.ListReminders)
	g.POST("/reminders", h.CreateReminder)

	g.POST("/symptom-checker/identify", h.IdentifySymptoms)
	g.POST("/chat", h.Chat)

	g.GET("/prescriptions", h.ListPrescriptions)
	g.POST("/prescriptions", h.CreatePrescription)
	g.DELETE("/prescriptions/:id", h.DeletePrescription)

	g.GET("/medicines", h.ListMedicines)
	g.POST("/medicines", h.CreateMedicine)
	g.PUT("/medicines/:id", h.UpdateMedicine)
	g.DELETE("/medicines/:id", h.DeleteMedicine)

	g.GET("/documents", h.ListDocuments)
	g.POST("/documents", h.UploadDocument)

	g.POST("/auth/register", h.Register)
	g.POST("/auth/login", h.Login)

	g.GET("/vitalsigns", h.ListVitals)
	g.POST("/vitalsigns", h.CreateVital)

	g.GET("/symptoms", h.ListSymptomLogs)
	g.POST("/symptoms", h.CreateSymptomLog)

	g.GET("/lifestyle/activity", h.ListActivityLogs)
	g.POST("/lifestyle/activity", h.CreateActivityLog)
	g.GET("/lifestyle/sleep", h.ListSleepLogs)
	g.POST("/lifestyle/sleep", h.CreateSleepLog)
}

func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			config.New,
			store.NewConfig,
			store.GetConnectionString,
			store.NewClient,
			store.NewDatabase,
			users.NewRepository,
			users.NewService,
			reminders.NewRepository,
			reminders.NewService,
			prescriptions.NewRepository,
			prescriptions.NewService,
			medicines.NewRepository,
			medicines.NewService,
			documents.NewRepository,
			documents.NewService,
			documents.NewStorageConfig,
			documents.NewStorage,
			vitals.NewRepository,
			vitals.NewService,
			symptomlog.NewRepository,
			symptomlog.NewService,
			lifestyle.NewRepository,
			lifestyle.NewService,
			auth.NewConfig,
			auth.NewRepository,
			auth.NewService,
			ai.NewConfig,
			ai.NewCompletionAPI,
			ai.NewClient,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	options := append(
		Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(options...).Run()
}
