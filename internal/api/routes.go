package api

import (
	"net/http"

	"github.com/redlinehq/redline/internal/config"
	"github.com/redlinehq/redline/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Prompts.Handler().Routes(),
		domain.Comparisons.Handler().Routes(),
	)
}
