// Package workspace holds the server side state of one admin browser
// session: its backend cookie jar, session gate, drafts and list views.
package workspace

import (
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/techbucket/techbucket-web/internal/apiclient"
	"github.com/techbucket/techbucket-web/internal/crud"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/draft"
	"github.com/techbucket/techbucket-web/internal/session"
	"github.com/techbucket/techbucket-web/internal/workflow"
)

type Workspace struct {
	ID     string
	Client *apiclient.Client
	Gate   *session.Gate

	Products   *crud.Manager[domain.Product, draft.ProductDraft]
	Brands     *crud.Manager[domain.Brand, draft.BrandDraft]
	Categories *crud.Manager[domain.Category, draft.CategoryDraft]
	Services   *crud.Manager[domain.Service, draft.ServiceDraft]
	Events     *crud.Manager[domain.Event, draft.EventDraft]

	Quotes        *workflow.Controller[domain.QuoteRequest]
	Support       *workflow.Controller[domain.SupportCase]
	Inquiries     *workflow.Controller[domain.Inquiry]
	Registrations workflow.Registrations

	mu       sync.Mutex
	lastSeen time.Time
	remote   string
}

// Publisher receives confirmed mutations, stamped with the operator.
type Publisher func(domain.Mutation)

// New builds a workspace whose backend client keeps its own cookies.
func New(id string, cfg apiclient.Config, publish Publisher) *Workspace {
	jar, _ := cookiejar.New(nil)
	w := &Workspace{ID: id, lastSeen: time.Now()}
	w.Client = apiclient.New(cfg, jar)
	w.Gate = session.NewGate(w.Client)
	w.Client.OnUnauthorized = w.Gate.Invalidate

	notify := func(m domain.Mutation) {
		if publish == nil {
			return
		}
		m.Operator = w.Gate.Operator()
		m.Remote = w.remote
		publish(m)
	}

	w.Brands = crud.NewManager(crud.Config[domain.Brand, draft.BrandDraft]{
		Kind:     domain.KindBrand,
		Store:    apiclient.NewCollection[domain.Brand](w.Client, domain.KindBrand),
		Defaults: draft.NewBrand,
		ToDraft:  draft.BrandFrom,
		Identity: domain.Brand.Identity,
		Notify:   notify,
	})
	w.Categories = crud.NewManager(crud.Config[domain.Category, draft.CategoryDraft]{
		Kind:     domain.KindCategory,
		Store:    apiclient.NewCollection[domain.Category](w.Client, domain.KindCategory),
		Defaults: draft.NewCategory,
		ToDraft:  draft.CategoryFrom,
		Identity: domain.Category.Identity,
		Notify:   notify,
	})
	w.Products = crud.NewManager(crud.Config[domain.Product, draft.ProductDraft]{
		Kind:     domain.KindProduct,
		Store:    apiclient.NewCollection[domain.Product](w.Client, domain.KindProduct),
		Defaults: draft.NewProduct,
		ToDraft:  draft.ProductFrom,
		Identity: domain.Product.Identity,
		Related:  []crud.Refresher{w.Brands.View(), w.Categories.View()},
		Notify:   notify,
	})
	w.Services = crud.NewManager(crud.Config[domain.Service, draft.ServiceDraft]{
		Kind:     domain.KindService,
		Store:    apiclient.NewCollection[domain.Service](w.Client, domain.KindService),
		Defaults: draft.NewService,
		ToDraft:  draft.ServiceFrom,
		Identity: domain.Service.Identity,
		Notify:   notify,
	})
	w.Events = crud.NewManager(crud.Config[domain.Event, draft.EventDraft]{
		Kind:     domain.KindEvent,
		Store:    apiclient.NewCollection[domain.Event](w.Client, domain.KindEvent),
		Defaults: draft.NewEvent,
		ToDraft:  draft.EventFrom,
		Identity: domain.Event.Identity,
		Notify:   notify,
	})

	w.Quotes = workflow.NewController[domain.QuoteRequest](domain.KindQuote,
		apiclient.NewCollection[domain.QuoteRequest](w.Client, domain.KindQuote),
		domain.QuoteRequest.Identity, notify)
	w.Support = workflow.NewController[domain.SupportCase](domain.KindSupportCase,
		apiclient.NewCollection[domain.SupportCase](w.Client, domain.KindSupportCase),
		domain.SupportCase.Identity, notify)
	w.Inquiries = workflow.NewController[domain.Inquiry](domain.KindInquiry,
		apiclient.NewCollection[domain.Inquiry](w.Client, domain.KindInquiry),
		domain.Inquiry.Identity, notify)
	w.Registrations = workflow.Registrations{Controller: workflow.NewController[domain.EventRegistration](domain.KindRegistration,
		apiclient.NewCollection[domain.EventRegistration](w.Client, domain.KindRegistration),
		domain.EventRegistration.Identity, notify)}
	return w
}

// Lock serializes requests of the same browser session.
func (w *Workspace) Lock()   { w.mu.Lock() }
func (w *Workspace) Unlock() { w.mu.Unlock() }

// SetRemote records the client address of the request holding the lock.
func (w *Workspace) SetRemote(ip string) { w.remote = ip }
