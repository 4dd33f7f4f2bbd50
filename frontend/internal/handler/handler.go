package handler

import (
	"html/template"

	"github.com/equipbook/equipbook/frontend/internal/apiclient"
	"github.com/equipbook/equipbook/frontend/internal/favorites"
	"github.com/equipbook/equipbook/frontend/internal/markdown"
	"github.com/equipbook/equipbook/frontend/internal/notify"
	"github.com/equipbook/equipbook/shared/config"
)

type Handler struct {
	Templates     map[string]*template.Template
	Public        config.Public
	TextProcessor *markdown.TextProcessor
	APIClient     *apiclient.APIClient
	Favorites     *favorites.Controller
	Documents     *favorites.Documents
	Notifier      *notify.Presenter
}

func New(
	templates map[string]*template.Template,
	publicCfg config.Public,
	textProcessor *markdown.TextProcessor,
	apiClient *apiclient.APIClient,
	controller *favorites.Controller,
	notifier *notify.Presenter,
) *Handler {
	return &Handler{
		Templates:     templates,
		Public:        publicCfg,
		TextProcessor: textProcessor,
		APIClient:     apiClient,
		Favorites:     controller,
		Documents:     favorites.NewDocuments(),
		Notifier:      notifier,
	}
}
