package narrative

import (
	"net/http"

	"github.com/go-chi/render"

	"finsight/pkg/api/apierror"
	corenarrative "finsight/pkg/core/narrative"
	"finsight/pkg/core/session"
)

// Handler serves the on-demand AI commentary.
type Handler struct {
	store      *session.Store
	summarizer *corenarrative.Summarizer
}

func NewHandler(store *session.Store, summarizer *corenarrative.Summarizer) *Handler {
	return &Handler{store: store, summarizer: summarizer}
}

type Request struct {
	SessionID string `json:"session_id"`
}

type Response struct {
	Commentary string `json:"commentary"`
}

// HandleGenerate submits the session's analysis to the provider and returns
// the commentary. Once an analysis exists this always answers 200: AI
// failures arrive as displayable text in place of the commentary.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, apierror.ErrInvalidRequest)
		return
	}

	st, ok := h.store.Get(req.SessionID)
	if !ok {
		render.Render(w, r, apierror.ErrNoSession)
		return
	}
	rows, liq, ok := st.Analysis()
	if !ok {
		render.Render(w, r, apierror.ErrNoAnalysis)
		return
	}

	render.JSON(w, r, Response{Commentary: h.summarizer.Commentary(r.Context(), rows, liq)})
}
