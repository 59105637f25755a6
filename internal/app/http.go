package app

import (
	"github.com/techbucket/techbucket-web/internal/adminapi"
	"github.com/techbucket/techbucket-web/internal/site"
	"github.com/techbucket/techbucket-web/internal/webserver"
)

// Mount registers the public site and the back office on srv.
func (a *Application) Mount(srv *webserver.Server) {
	site.Register(srv, a.catalog, a.submitter)
	var audit adminapi.AuditLog
	if a.oplog != nil {
		audit = a.oplog
	}
	adminapi.Register(srv, a.store, audit)
}
