package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
	"github.com/heartmarshall/wordsnap-backend/internal/service/library"
)

type libraryService interface {
	SaveSet(ctx context.Context, input library.SaveSetInput) (*domain.SavedSet, error)
	ListSets(ctx context.Context) ([]domain.SetSummary, error)
	GetSet(ctx context.Context, setID uuid.UUID) (*domain.SavedSet, error)
	RenameSet(ctx context.Context, input library.RenameSetInput) (*domain.SavedSet, error)
	DeleteSet(ctx context.Context, setID uuid.UUID) error
	ToggleKnown(ctx context.Context, input library.ToggleKnownInput) (*domain.SavedWord, error)
	ResetProgress(ctx context.Context, setID uuid.UUID) (int, error)
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte, mode library.ImportMode) (*library.ImportResult, error)
}

// LibraryHandler serves the saved set endpoints.
type LibraryHandler struct {
	svc            libraryService
	log            *slog.Logger
	maxImportBytes int64
	now            func() time.Time
}

// NewLibraryHandler creates a LibraryHandler. maxImportBytes caps the body
// of import and save requests.
func NewLibraryHandler(svc libraryService, logger *slog.Logger, maxImportBytes int64) *LibraryHandler {
	return &LibraryHandler{
		svc:            svc,
		log:            logger.With("handler", "library"),
		maxImportBytes: maxImportBytes,
		now:            time.Now,
	}
}

type wordRequest struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

type saveSetRequest struct {
	Name  string        `json:"name"`
	Words []wordRequest `json:"words"`
}

type renameSetRequest struct {
	Name string `json:"name"`
}

type wordResponse struct {
	Position int    `json:"position"`
	Word     string `json:"word"`
	Meaning  string `json:"meaning"`
	Known    bool   `json:"known"`
}

type setResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Known     int            `json:"known"`
	Total     int            `json:"total"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Words     []wordResponse `json:"words"`
}

type setSummaryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Known     int       `json:"known"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListSets handles GET /api/sets.
func (h *LibraryHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.svc.ListSets(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]setSummaryResponse, len(sets))
	for i, s := range sets {
		resp[i] = setSummaryResponse{
			ID:        s.ID.String(),
			Name:      s.Name,
			Known:     s.Known,
			Total:     s.Total,
			CreatedAt: s.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"sets": resp})
}

// SaveSet handles POST /api/sets.
func (h *LibraryHandler) SaveSet(w http.ResponseWriter, r *http.Request) {
	if h.maxImportBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxImportBytes)
	}

	var req saveSetRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words := make([]library.WordInput, len(req.Words))
	for i, wr := range req.Words {
		words[i] = library.WordInput{Word: wr.Word, Meaning: wr.Meaning}
	}

	set, err := h.svc.SaveSet(r.Context(), library.SaveSetInput{Name: req.Name, Words: words})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSetResponse(set))
}

// GetSet handles GET /api/sets/{id}.
func (h *LibraryHandler) GetSet(w http.ResponseWriter, r *http.Request) {
	id, err := pathSetID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	set, err := h.svc.GetSet(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSetResponse(set))
}

// RenameSet handles PATCH /api/sets/{id}.
func (h *LibraryHandler) RenameSet(w http.ResponseWriter, r *http.Request) {
	id, err := pathSetID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req renameSetRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	set, err := h.svc.RenameSet(r.Context(), library.RenameSetInput{SetID: id, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSetResponse(set))
}

// DeleteSet handles DELETE /api/sets/{id}.
func (h *LibraryHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	id, err := pathSetID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteSet(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleKnown handles POST /api/sets/{id}/words/{position}/known.
func (h *LibraryHandler) ToggleKnown(w http.ResponseWriter, r *http.Request) {
	id, err := pathSetID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	position, err := strconv.Atoi(r.PathValue("position"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("position", "must be an integer"))
		return
	}

	word, err := h.svc.ToggleKnown(r.Context(), library.ToggleKnownInput{SetID: id, Position: position})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// ResetProgress handles POST /api/sets/{id}/reset.
func (h *LibraryHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathSetID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.ResetProgress(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"reset": n})
}

func pathSetID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

func toSetResponse(set *domain.SavedSet) setResponse {
	words := make([]wordResponse, len(set.Words))
	for i, w := range set.Words {
		words[i] = toWordResponse(w)
	}
	return setResponse{
		ID:        set.ID.String(),
		Name:      set.Name,
		Known:     set.KnownCount(),
		Total:     len(set.Words),
		CreatedAt: set.CreatedAt,
		UpdatedAt: set.UpdatedAt,
		Words:     words,
	}
}

func toWordResponse(w domain.SavedWord) wordResponse {
	return wordResponse{
		Position: w.Position,
		Word:     w.Word,
		Meaning:  w.Meaning,
		Known:    w.Known,
	}
}
