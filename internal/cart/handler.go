package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"dapuribu-be/internal/logger"
	"dapuribu-be/internal/menu"
	"dapuribu-be/internal/utils"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type Handler struct {
	persister Persister
	menuSvc   menu.Service
}

func NewHandler(persister Persister, menuSvc menu.Service) *Handler {
	return &Handler{persister: persister, menuSvc: menuSvc}
}

type cartView struct {
	Items      []Line  `json:"items"`
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}

func view(s *Store) cartView {
	lines := s.Lines()
	if lines == nil {
		lines = []Line{}
	}
	return cartView{
		Items:      lines,
		TotalItems: s.TotalItems(),
		TotalPrice: s.TotalPrice(),
	}
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*Store, bool) {
	key, err := KeyFromContext(r.Context())
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	store, err := LoadStore(r.Context(), key, h.persister)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to load cart", zap.Error(err))
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return store, true
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, ok := h.load(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, view(store))
}

type addItemRequest struct {
	MenuID int64 `json:"menu_id"`
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.menuSvc.GetByID(r.Context(), req.MenuID)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, menu.ErrMenuNotFound) {
			code = http.StatusNotFound
		}
		utils.WriteJSONError(w, err.Error(), code)
		return
	}

	store, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := store.AddItem(r.Context(), ItemSummary{
		MenuID:   m.ID,
		Name:     m.Name,
		Price:    m.Price,
		ImageURL: m.ImageURL,
	}); err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, view(store))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	menuID, err := utils.ToInt64(ps.ByName("menuid"))
	if err != nil {
		utils.WriteJSONError(w, "invalid menu id", http.StatusBadRequest)
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	store, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := store.UpdateQuantity(r.Context(), menuID, req.Quantity); err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, view(store))
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	menuID, err := utils.ToInt64(ps.ByName("menuid"))
	if err != nil {
		utils.WriteJSONError(w, "invalid menu id", http.StatusBadRequest)
		return
	}

	store, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := store.RemoveItem(r.Context(), menuID); err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, view(store))
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := store.Clear(r.Context()); err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, view(store))
}
