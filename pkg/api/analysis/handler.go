package analysis

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/render"

	"finsight/pkg/api/apierror"
	"finsight/pkg/core/narrative"
	"finsight/pkg/core/ratio"
	"finsight/pkg/core/session"
	"finsight/pkg/core/statement"
)

// maxUploadBytes bounds the multipart form kept in memory.
const maxUploadBytes = 32 << 20

// Handler serves statement upload and retrieval for one session.
type Handler struct {
	store *session.Store
}

func NewHandler(store *session.Store) *Handler {
	return &Handler{store: store}
}

// Response is the analysis payload handed back after an upload and from GET.
type Response struct {
	SessionID string          `json:"session_id"`
	Rows      []ratio.Row     `json:"rows"`
	Liquidity ratio.Liquidity `json:"liquidity"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// HandleUpload ingests a spreadsheet, runs the ratio engine, and stores the
// result in the caller's session. Structural failures return 422 with no
// partial results stored.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		render.Render(w, r, apierror.ErrInvalidRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		render.Render(w, r, apierror.ErrInvalidRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		render.Render(w, r, apierror.New(http.StatusBadRequest, "UNSUPPORTED_FORMAT",
			"Chỉ hỗ trợ file Excel (.xlsx, .xls)."))
		return
	}

	rows, err := statement.Load(file)
	if err != nil {
		slog.Warn("upload rejected", slog.String("file", header.Filename), slog.String("error", err.Error()))
		render.Render(w, r, apierror.Structural(err))
		return
	}

	annotated, err := ratio.Annotate(rows)
	if err != nil {
		render.Render(w, r, apierror.Structural(err))
		return
	}
	liq := ratio.ComputeLiquidity(rows)

	var warnings []string
	if !liq.Available {
		warnings = append(warnings, "Thiếu chỉ tiêu 'TÀI SẢN NGẮN HẠN' hoặc 'NỢ NGẮN HẠN' để tính chỉ số.")
	}

	st := h.store.GetOrCreate(r.Header.Get("X-Session-ID"))
	st.SetAnalysis(annotated, liq, narrative.ContextBlock(annotated, liq))

	slog.Info("analysis stored",
		slog.String("session_id", st.ID),
		slog.Int("line_items", len(annotated)),
		slog.Bool("liquidity_available", liq.Available))

	render.JSON(w, r, Response{
		SessionID: st.ID,
		Rows:      annotated,
		Liquidity: liq,
		Warnings:  warnings,
	})
}

// HandleCurrent returns the session's current analysis.
func (h *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store.Get(r.URL.Query().Get("session_id"))
	if !ok {
		render.Render(w, r, apierror.ErrNoSession)
		return
	}

	rows, liq, ok := st.Analysis()
	if !ok {
		render.Render(w, r, apierror.ErrNoAnalysis)
		return
	}

	render.JSON(w, r, Response{SessionID: st.ID, Rows: rows, Liquidity: liq})
}
