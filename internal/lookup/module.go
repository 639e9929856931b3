package lookup

import (
	directoryclient "whocallsme_backend/internal/directory/client"
	apphttp "whocallsme_backend/internal/http"
	reputationclient "whocallsme_backend/internal/reputation/client"
	"whocallsme_backend/internal/whatsapp"
	"whocallsme_backend/platform/config"
	"whocallsme_backend/platform/logger"
	"whocallsme_backend/platform/validator"
)

// Module wires the lookup HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.RegistryConfig, log *logger.Logger) *Module {
	directory := directoryclient.New(log)
	reputation := reputationclient.New(log)
	registry := whatsapp.NewClient(cfg, log)

	svc := NewService(directory, reputation, log)
	h := NewHandler(svc, directory, registry, validator.New())

	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "lookup"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/lookup")
	group.GET("", m.handler.Lookup)
	group.GET("/comments", m.handler.Comments)
	group.GET("/whatsapp", m.handler.WhatsApp)
}

var _ apphttp.Module = (*Module)(nil)
