package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tenancy/internal/auth/service"
	"github.com/aussiebroadwan/tenancy/internal/auth/store"
	"github.com/aussiebroadwan/tenancy/pkg/httpx"
	"github.com/aussiebroadwan/tenancy/pkg/jwtx"
	"github.com/aussiebroadwan/tenancy/pkg/slogx"

	_ "github.com/aussiebroadwan/tenancy/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// ReadinessChecker is implemented by token services that can report whether
// they are able to sign.
type ReadinessChecker interface {
	IsReady() bool
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	signer       ReadinessChecker
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	AccountService      *service.AccountService
	OrganisationService *service.OrganisationService
	UserService         *service.UserService
}

func NewRouter(
	verifier jwtx.Verifier,
	signer ReadinessChecker,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerOrganisations()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Tenancy Identity Service API
//	@version		0.1.0
//	@description	Registration, login and organisation membership for multi-tenant applications.
//	@description
//	@description				Access tokens are HS256 JWTs valid for one hour.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/tenancy
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /auth/register", &RegisterHandler{AccountService: r.AccountService})
	r.Mux.Handle("POST /auth/login", &LoginHandler{AccountService: r.AccountService})
}

func (r *Router) registerOrganisations() {
	h := &OrganisationsHandler{OrganisationService: r.OrganisationService}
	authn := httpx.AuthnMiddleware(r.verifier)

	r.Mux.Handle("GET /api/organisations", httpx.Chain(http.HandlerFunc(h.List), authn))
	r.Mux.Handle("POST /api/organisations", httpx.Chain(http.HandlerFunc(h.Create), authn))
	r.Mux.Handle("GET /api/organisations/{orgId}", httpx.Chain(http.HandlerFunc(h.Get), authn))
	r.Mux.Handle("POST /api/organisations/{orgId}/users", httpx.Chain(http.HandlerFunc(h.AddMember), authn))
	r.Mux.Handle("GET /api/organisations/{orgId}/users", httpx.Chain(http.HandlerFunc(h.ListMembers), authn))
}

func (r *Router) registerUsers() {
	h := &UserHandler{UserService: r.UserService}

	r.Mux.Handle("GET /api/users/{id}", httpx.Chain(h, httpx.AuthnMiddleware(r.verifier)))
}

func (r *Router) registerSystem() {
	h := &HealthHandler{
		StartTime: r.startTime,
		Version:   r.buildVersion,
		DB:        r.store,
		Signer:    r.signer,
	}

	r.Mux.HandleFunc("GET /livez", h.Live)
	r.Mux.HandleFunc("GET /readyz", h.Ready)
}
