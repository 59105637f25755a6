package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultRetentionDays = 365

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, err := time.LoadLocation(a.appConfig.System.Location)
	if err != nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	_, err = a.sched.AddFunc("@every 5m", a.SchedSweepWorkspaces)
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	if a.oplog != nil {
		_, err = a.sched.AddFunc("@daily", a.SchedPurgeOplog)
		if err != nil {
			zap.S().Errorf("init job error %s", err.Error())
		}
	}

	a.sched.Start()
}

// SchedSweepWorkspaces drops admin workspaces idle for longer than the
// configured session lifetime.
func (a *Application) SchedSweepWorkspaces() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()
	idle := a.appConfig.SessionIdle()
	if idle <= 0 {
		return
	}
	if n := a.store.Sweep(idle); n > 0 {
		zap.L().Info("swept idle workspaces", zap.Int("removed", n), zap.Int("live", a.store.Len()))
	}
}

// SchedPurgeOplog removes audit entries past the retention window.
func (a *Application) SchedPurgeOplog() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()
	if a.oplog == nil {
		return
	}
	days := a.appConfig.Oplog.RetentionDays
	if days <= 0 {
		days = defaultRetentionDays
	}
	n, err := a.oplog.Purge(time.Now().Add(-time.Hour * 24 * time.Duration(days)))
	if err != nil {
		zap.S().Errorf("purge oplog: %v", err)
		return
	}
	zap.L().Info("purged oplog", zap.Int64("rows", n))
}
