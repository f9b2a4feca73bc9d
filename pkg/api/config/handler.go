package config

import (
	"net/http"
	"os"

	"github.com/go-chi/render"

	coreconfig "finsight/pkg/core/config"
)

type Response struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	// CredentialConfigured tells the UI whether AI features are usable;
	// the key itself is never echoed back.
	CredentialConfigured bool `json:"credential_configured"`
}

// Handler holds dependencies for config endpoints
type Handler struct {
	Model coreconfig.Model
}

// NewHandler creates a new config handler
func NewHandler(model coreconfig.Model) *Handler {
	return &Handler{Model: model}
}

func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, Response{
		Provider:             h.Model.Provider,
		Model:                h.Model.Name,
		CredentialConfigured: os.Getenv("GEMINI_API_KEY") != "",
	})
}
