package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/mdjurovic/kratos/internal/catalog"
	"github.com/mdjurovic/kratos/internal/config"
	"github.com/mdjurovic/kratos/internal/keeper"
	"github.com/mdjurovic/kratos/internal/middleware"
	"github.com/mdjurovic/kratos/internal/plans"
	"github.com/mdjurovic/kratos/internal/telemetry/metrics"
	"github.com/mdjurovic/kratos/internal/workouts"
	"github.com/mdjurovic/kratos/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	redisClient  *redis.Client
	workoutStore *workouts.Store
	planStore    *plans.Store

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
}

type NewServerParams struct {
	Config        *config.Config
	RedisPassword string
	VersionInfo   string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("kratos", "backend", promRegistry)

	s := &Server{
		config:         params.Config,
		versionInfo:    params.VersionInfo,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
	}

	workoutsKeeper, plansKeeper, err := s.keepersSetup(ctx, params.RedisPassword)
	if err != nil {
		return nil, err
	}

	s.workoutStore = workouts.NewStore(ctx, workoutsKeeper)
	s.planStore = plans.NewStore(ctx, plansKeeper)

	return s, nil
}

// keepersSetup builds one keeper per persisted collection, both backed
// by the storage backend selected in config.
func (s *Server) keepersSetup(
	ctx context.Context,
	redisPassword string,
) (workoutsKeeper, plansKeeper keeper.Keeper, err error) {
	switch s.config.StorageBackend {
	case config.StorageBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(s.config.RedisHost, s.config.RedisPort),
			Password: redisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
		s.redisClient = rdb

		workoutsKeeper, err = keeper.NewRedisKeeper(rdb, s.config.WorkoutLogsNamespace)
		if err != nil {
			return nil, nil, fmt.Errorf("new workouts redis keeper: %w", err)
		}
		plansKeeper, err = keeper.NewRedisKeeper(rdb, s.config.PlansNamespace)
		if err != nil {
			return nil, nil, fmt.Errorf("new plans redis keeper: %w", err)
		}
	case config.StorageBackendFile:
		workoutsKeeper, err = keeper.NewFileKeeper(s.config.DataDirPath, s.config.WorkoutLogsNamespace)
		if err != nil {
			return nil, nil, fmt.Errorf("new workouts file keeper: %w", err)
		}
		plansKeeper, err = keeper.NewFileKeeper(s.config.DataDirPath, s.config.PlansNamespace)
		if err != nil {
			return nil, nil, fmt.Errorf("new plans file keeper: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", s.config.StorageBackend)
	}

	return workoutsKeeper, plansKeeper, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	workoutsHandler := workouts.NewHandler(s.workoutStore, s.metricsManager)
	workoutsHandler.SetupRoutes(r)

	plansHandler := plans.NewHandler(s.planStore, s.metricsManager)
	plansHandler.SetupRoutes(r)

	catalogHandler := catalog.NewHandler()
	catalogHandler.SetupRoutes(r)

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteResponse(w, pkg.ContentType.Text, s.versionInfo, http.StatusOK)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	var closeErr error
	if s.redisClient != nil {
		closeErr = multierr.Append(closeErr, s.redisClient.Close())
	}
	if closeErr != nil {
		log.Errorf("failed to close server resources: %s", closeErr)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}
