package app

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/techbucket/techbucket-web/config"
	"github.com/techbucket/techbucket-web/internal/apiclient"
	"github.com/techbucket/techbucket-web/internal/content"
	"github.com/techbucket/techbucket-web/internal/leads"
	"github.com/techbucket/techbucket-web/internal/oplog"
	"github.com/techbucket/techbucket-web/internal/workspace"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// ContentProvider provides the public catalog
type ContentProvider interface {
	Catalog() *content.Catalog
}

// WorkspaceProvider provides the admin workspace store
type WorkspaceProvider interface {
	Workspaces() *workspace.Store
}

// LeadsProvider provides the public lead submitter
type LeadsProvider interface {
	Leads() *leads.Submitter
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// OplogProvider provides the operator audit log
type OplogProvider interface {
	Oplog() *oplog.Recorder
}

// AppContext combines all provider interfaces for full application context
type AppContext interface {
	ConfigProvider
	ContentProvider
	WorkspaceProvider
	LeadsProvider
	SchedulerProvider
	OplogProvider

	CheckBackend(ctx context.Context) (apiclient.AuthStatus, error)
}
