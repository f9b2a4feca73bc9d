package chat

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"finsight/pkg/api/apierror"
	"finsight/pkg/core/assistant"
	"finsight/pkg/core/session"
)

// Handler serves the conversational assistant. Chat works with or without an
// uploaded statement: without one, the dialogue is seeded with a no-data
// notice instead of an analysis context.
type Handler struct {
	store *session.Store
}

func NewHandler(store *session.Store) *Handler {
	return &Handler{store: store}
}

type MessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type MessageResponse struct {
	SessionID  string              `json:"session_id"`
	Reply      string              `json:"reply"`
	Transcript []assistant.Message `json:"transcript"`
}

type TranscriptResponse struct {
	SessionID  string              `json:"session_id"`
	Transcript []assistant.Message `json:"transcript"`
}

// HandleMessage forwards one user utterance to the session's assistant.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, apierror.ErrInvalidRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		render.Render(w, r, apierror.New(http.StatusBadRequest, "EMPTY_MESSAGE", "Tin nhắn không được để trống."))
		return
	}

	st := h.store.GetOrCreate(req.SessionID)
	reply := st.Assistant.Ask(r.Context(), req.Message, st.Context())

	render.JSON(w, r, MessageResponse{
		SessionID:  st.ID,
		Reply:      reply,
		Transcript: st.Assistant.Transcript(),
	})
}

// HandleHistory returns the visible transcript.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store.Get(r.URL.Query().Get("session_id"))
	if !ok {
		render.Render(w, r, apierror.ErrNoSession)
		return
	}
	render.JSON(w, r, TranscriptResponse{SessionID: st.ID, Transcript: st.Assistant.Transcript()})
}

type ResetRequest struct {
	SessionID string `json:"session_id"`
}

// HandleReset discards the dialogue handle and the transcript. The next
// message starts a fresh conversation seeded with whatever analysis context
// is current at that time.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, apierror.ErrInvalidRequest)
		return
	}

	st, ok := h.store.Get(req.SessionID)
	if !ok {
		render.Render(w, r, apierror.ErrNoSession)
		return
	}
	st.Assistant.Reset()

	render.JSON(w, r, TranscriptResponse{SessionID: st.ID, Transcript: st.Assistant.Transcript()})
}
