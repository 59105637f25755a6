package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/techbucket/techbucket-web/config"
	"github.com/techbucket/techbucket-web/internal/apiclient/apitest"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/webserver"
)

func testConfig(t *testing.T, backendURL string) *config.AppConfig {
	t.Helper()
	cfg := config.DefaultAppConfig()
	cfg.System.Workdir = t.TempDir()
	cfg.Backend.BaseURL = backendURL
	cfg.Web.Secret = "app-test-secret"
	cfg.Logger.FileEnable = false
	cfg.Oplog.DSN = ""
	return cfg
}

func TestInitAndRelease(t *testing.T) {
	backend := apitest.NewBackend()
	defer backend.Close()

	a := NewApplication(testConfig(t, backend.URL()))
	if err := a.Init(); err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	if a.Catalog() == nil || len(a.Catalog().Products) == 0 {
		t.Error("catalog not loaded")
	}
	if a.Workspaces() == nil || a.Leads() == nil {
		t.Error("workspace store or submitter missing")
	}
	if a.Oplog() != nil {
		t.Error("oplog opened without a DSN")
	}
	if n := len(a.Scheduler().Entries()); n != 1 {
		t.Errorf("scheduled %d jobs, want 1", n)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	st, err := a.CheckBackend(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Authenticated {
		t.Error("anonymous check reported a signed in session")
	}
}

func TestMountServesBothSurfaces(t *testing.T) {
	backend := apitest.NewBackend()
	defer backend.Close()

	cfg := testConfig(t, backend.URL())
	a := NewApplication(cfg)
	if err := a.Init(); err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	srv, err := webserver.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	a.Mount(srv)

	for target, want := range map[string]int{
		"/":               http.StatusOK,
		"/products":       http.StatusOK,
		"/admin/login":    http.StatusOK,
		"/admin/products": http.StatusSeeOther,
	} {
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != want {
			t.Errorf("GET %s = %d, want %d", target, rec.Code, want)
		}
	}
	if n := a.Workspaces().Len(); n != 2 {
		t.Errorf("%d workspaces created, want one per admin request without a cookie", n)
	}
}

func TestPublishWithoutOplog(t *testing.T) {
	backend := apitest.NewBackend()
	defer backend.Close()

	a := NewApplication(testConfig(t, backend.URL()))
	if err := a.Init(); err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	// no subscriber; must not block or panic
	a.publish(domain.Mutation{Kind: domain.KindBrand, Action: domain.ActionDelete, ID: 4})
	a.SchedSweepWorkspaces()
	a.SchedPurgeOplog()
}

func TestOplogDisabledWhenUnreachable(t *testing.T) {
	backend := apitest.NewBackend()
	defer backend.Close()

	cfg := testConfig(t, backend.URL())
	cfg.Oplog.DSN = "host=127.0.0.1 port=1 user=techbucket dbname=techbucket sslmode=disable connect_timeout=1"
	a := NewApplication(cfg)
	if err := a.Init(); err != nil {
		t.Fatal(err)
	}
	defer a.Release()
	if a.Oplog() != nil {
		t.Error("oplog should be disabled when the database is unreachable")
	}
}
