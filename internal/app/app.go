package app

import (
	"context"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/techbucket/techbucket-web/config"
	"github.com/techbucket/techbucket-web/internal/apiclient"
	"github.com/techbucket/techbucket-web/internal/content"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/leads"
	"github.com/techbucket/techbucket-web/internal/oplog"
	"github.com/techbucket/techbucket-web/internal/workspace"
)

type Application struct {
	appConfig *config.AppConfig
	catalog   *content.Catalog
	node      *snowflake.Node
	bus       EventBus.Bus
	oplog     *oplog.Recorder
	backend   *apiclient.Client
	store     *workspace.Store
	submitter *leads.Submitter
	sched     *cron.Cron
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ ContentProvider   = (*Application)(nil)
	_ WorkspaceProvider = (*Application)(nil)
	_ LeadsProvider     = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ OplogProvider     = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig { return a.appConfig }

func (a *Application) Catalog() *content.Catalog { return a.catalog }

func (a *Application) Workspaces() *workspace.Store { return a.store }

func (a *Application) Leads() *leads.Submitter { return a.submitter }

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron { return a.sched }

// Oplog returns the audit recorder, nil when no DSN is configured.
func (a *Application) Oplog() *oplog.Recorder { return a.oplog }

// Init sets up logging and every long lived component, then starts the
// background jobs.
func (a *Application) Init() error {
	cfg := a.appConfig
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	if err := initLogger(cfg); err != nil {
		return err
	}

	a.node, err = snowflake.NewNode(cfg.System.NodeID)
	if err != nil {
		return errors.Wrap(err, "snowflake node")
	}

	if cfg.Content.File != "" {
		a.catalog, err = content.Load(cfg.Content.File)
	} else {
		a.catalog, err = content.Default()
	}
	if err != nil {
		return err
	}

	a.bus = EventBus.New()
	if cfg.Oplog.DSN != "" {
		a.oplog, err = oplog.Open(cfg.Oplog.DSN, a.node, cfg.System.Debug)
		if err != nil {
			// the site keeps working without an audit trail
			zap.S().Errorf("oplog disabled: %v", err)
			a.oplog = nil
		} else if err := a.oplog.Subscribe(a.bus); err != nil {
			return errors.Wrap(err, "subscribe oplog")
		}
	}

	apiCfg := apiclient.Config{BaseURL: cfg.Backend.BaseURL, Timeout: cfg.BackendTimeout()}
	a.backend = apiclient.New(apiCfg, nil)
	a.submitter = leads.NewSubmitter(a.backend, a.node, cfg.ConfirmHold())
	a.store = workspace.NewStore(func(id string) *workspace.Workspace {
		return workspace.New(id, apiCfg, a.publish)
	})
	zap.S().Infof("backend api: %s", a.backend.BaseURL())

	a.initJob()
	return nil
}

func initLogger(cfg *config.AppConfig) error {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			return errors.Wrap(err, "build logger")
		}
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// publish hands a confirmed back office write to the bus.
func (a *Application) publish(m domain.Mutation) {
	zap.L().Info("admin mutation",
		zap.String("kind", string(m.Kind)),
		zap.String("action", m.Action),
		zap.Int64("id", m.ID),
		zap.String("operator", m.Operator))
	a.bus.Publish(oplog.Topic, m)
}

// CheckBackend asks the backend for the anonymous session state. Any
// decoded answer means the API is reachable.
func (a *Application) CheckBackend(ctx context.Context) (apiclient.AuthStatus, error) {
	return a.backend.CheckAuth(ctx)
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		<-a.sched.Stop().Done()
	}
	if a.bus != nil {
		a.bus.WaitAsync()
	}
	if a.oplog != nil {
		a.oplog.Unsubscribe(a.bus)
		if err := a.oplog.Close(); err != nil {
			zap.S().Warn("close oplog:", err)
		}
	}
	_ = zap.L().Sync()
}
