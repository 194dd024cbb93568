package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tenancy/pkg/authsdk"
	"github.com/aussiebroadwan/tenancy/pkg/httpx"
	"github.com/aussiebroadwan/tenancy/pkg/slogx"
)

const readinessTimeout = 2 * time.Second

// Pinger is the part of the store readiness depends on.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	StartTime time.Time
	Version   string
	DB        Pinger
	Signer    ReadinessChecker
}

// Live godoc
//
//	@Summary		Liveness probe
//	@Description	Returns uptime and version. Always 200 while the process runs.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, authsdk.HealthResponse{
		Status:  "ok",
		Uptime:  time.Since(h.StartTime).String(),
		Version: h.Version,
	})
}

// Ready godoc
//
//	@Summary		Readiness probe
//	@Description	Reports whether the database answers and a signing secret is loaded.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	authsdk.HealthResponse	"one or more checks failed"
//	@Router			/readyz [get].
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := &authsdk.HealthChecks{Database: "ok", Signer: "ok"}
	status, code := "ok", http.StatusOK

	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if h.DB == nil {
		checks.Database = "error: not configured"
	} else if err := h.DB.Ping(ctx); err != nil {
		slogx.FromContext(r.Context()).Warn("readiness: database ping failed", "error", err)
		checks.Database = "error"
	}
	if h.Signer == nil || !h.Signer.IsReady() {
		checks.Signer = "error: no signing secret"
	}
	if checks.Database != "ok" || checks.Signer != "ok" {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	httpx.WriteJSON(w, code, authsdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(h.StartTime).String(),
		Version: h.Version,
		Checks:  checks,
	})
}
