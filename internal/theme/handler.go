package theme

import (
	"encoding/json"
	"errors"
	"net/http"

	"dapuribu-be/internal/cart"
	"dapuribu-be/internal/logger"
	"dapuribu-be/internal/utils"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type Handler struct {
	persister Persister
}

func NewHandler(persister Persister) *Handler {
	return &Handler{persister: persister}
}

type themeView struct {
	Mode Mode `json:"mode"`
}

// load resolves the identity key and rehydrates the store, with a
// cookie subscriber attached so every change reaches the browser.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*Store, bool) {
	key, err := cart.KeyFromContext(r.Context())
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	store, err := LoadStore(r.Context(), key, h.persister)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to load theme", zap.Error(err))
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}

	store.Subscribe(func(mode Mode) {
		http.SetCookie(w, &http.Cookie{
			Name:     "theme",
			Value:    string(mode),
			Path:     "/",
			MaxAge:   365 * 24 * 60 * 60,
			SameSite: http.SameSiteLaxMode,
		})
	})
	return store, true
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, ok := h.load(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, themeView{Mode: store.Mode()})
}

type setRequest struct {
	Mode Mode `json:"mode"`
}

func (h *Handler) Set(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req setRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	store, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := store.Set(r.Context(), req.Mode); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidMode) {
			code = http.StatusBadRequest
		}
		utils.WriteJSONError(w, err.Error(), code)
		return
	}

	utils.WriteJSON(w, http.StatusOK, themeView{Mode: store.Mode()})
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, ok := h.load(w, r)
	if !ok {
		return
	}

	mode, err := store.Toggle(r.Context())
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, themeView{Mode: mode})
}
