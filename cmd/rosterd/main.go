package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/campusops/roster/internal/config"
	"github.com/campusops/roster/internal/infra/database"
	"github.com/campusops/roster/internal/infra/repository"
	"github.com/campusops/roster/internal/infra/tracing"
	"github.com/campusops/roster/internal/present/rest"
	restmw "github.com/campusops/roster/internal/present/rest/middleware"
	"github.com/campusops/roster/internal/service"
	"github.com/campusops/roster/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		slog.Error("failed to connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := database.MigratePostgres(db); err != nil {
		slog.Error("failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var sessions service.SessionSource
	if conf.Server.RedisAddr != "" {
		rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
		sessions = repository.NewSessionRepository(rdb)
	}

	format := service.NewFormatService(nil)
	if conf.Server.MemcachedAddr != "" {
		format = service.NewFormatService(database.NewMemcached(conf.Server.MemcachedAddr))
	}

	report := usecase.NewReportUsecase(
		repository.NewUserRepository(db),
		repository.NewCourseRepository(db),
		repository.NewEnrollmentRepository(db),
		repository.NewGradeRepository(db),
		format.FormatText,
		conf.Service.MaxLimit,
	)

	auth := service.NewAuthService(
		[]byte(conf.Service.Secret),
		repository.NewCapabilityRepository(db),
		sessions,
	)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	if conf.Server.EnableTrace {
		shutdown, err := tracing.Setup(context.Background(), conf.Server.TraceEndpoint, "rosterd")
		if err != nil {
			slog.Error("failed to set up tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer shutdown(context.Background())
		e.Use(otelecho.Middleware("rosterd"))
	}

	e.Use(restmw.NewAuthMiddleware(auth).IdentifyRequester)

	rest.NewHandler(report).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.Addr))
}
