package server

import (
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/herbalogix/labelspec/modules/labeling/domain/compliance"
	"github.com/herbalogix/labelspec/modules/labeling/domain/suggest"
	"github.com/herbalogix/labelspec/modules/labeling/infrastructure/persistence"
	"github.com/herbalogix/labelspec/modules/labeling/presentation/controllers"
	"github.com/herbalogix/labelspec/modules/labeling/services"
	"github.com/herbalogix/labelspec/pkg/configuration"
	"github.com/herbalogix/labelspec/pkg/constants"
	"github.com/herbalogix/labelspec/pkg/eventbus"
	"github.com/herbalogix/labelspec/pkg/metrics"
	"github.com/herbalogix/labelspec/pkg/middleware"
	"github.com/herbalogix/labelspec/pkg/server"
)

type DefaultOptions struct {
	Logger   *logrus.Logger
	Conf     *configuration.Configuration
	Pool     *pgxpool.Pool
	Renderer services.Renderer
}

// Default assembles the production server: middleware stack, labeling
// services on the Postgres repository and the route controllers.
func Default(options *DefaultOptions) *server.HTTPServer {
	middlewares := []mux.MiddlewareFunc{
		middleware.Cors(options.Conf.AllowedOrigins...),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.RequestParams(options.Conf),
		middleware.WithLogger(options.Logger, options.Conf),
		middleware.ProvideActor(options.Conf),
	}

	repo := persistence.NewLabelSpecRepository()
	tables := compliance.DefaultTables()
	engine := suggest.NewEngine(tables)
	publisher := eventbus.NewEventPublisher(options.Logger)
	registerEventListeners(publisher, options.Logger)

	specs := services.NewLabelSpecService(repo, tables, engine, options.Renderer, publisher)
	recalls := services.NewRecallReportService(repo)

	serverControllers := []server.Controller{
		controllers.NewLabelSpecAPIController(specs, recalls),
	}
	if options.Conf.Prometheus.Enabled {
		serverControllers = append(serverControllers, metrics.NewPrometheusController(options.Conf.Prometheus.Path))
	}

	return &server.HTTPServer{
		Controllers: serverControllers,
		Middlewares: middlewares,
	}
}

// registerEventListeners attaches the server-level listeners for lifecycle
// events. Exports are the one mutating surface the activity log does not
// record, so the listener is their only trace.
func registerEventListeners(publisher eventbus.EventBus, logger *logrus.Logger) {
	publisher.Subscribe(func(event services.SpecExportedEvent) {
		logger.WithField("spec_id", event.SpecID).
			WithField("format", event.Format).
			Info("label spec exported")
	})
	publisher.Subscribe(func(event services.SpecApprovedEvent) {
		logger.WithField("spec_id", event.Spec.ID).
			WithField("product_id", event.Spec.ProductID).
			WithField("version", event.Spec.Version).
			Info("label spec released for production")
	})
	publisher.Subscribe(func(event services.SpecRetiredEvent) {
		logger.WithField("spec_id", event.Spec.ID).
			WithField("product_id", event.Spec.ProductID).
			WithField("version", event.Spec.Version).
			Info("label spec pulled from production")
	})
}
