package menu

import (
	"encoding/json"
	"errors"
	"net/http"

	"dapuribu-be/internal/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc       Service
	uploadDir string
}

func NewHandler(svc Service, uploadDir string) *Handler {
	return &Handler{svc: svc, uploadDir: uploadDir}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMenuNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidPrice), errors.Is(err, ErrNameRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// List serves the storefront catalog: available items grouped by category.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	menus, err := h.svc.List(r.Context(), ListOptions{
		AvailableOnly: true,
		OrderBy:       "category",
	})
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, menus)
}

// AdminList serves the management table: every item ordered by id.
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	menus, err := h.svc.List(r.Context(), ListOptions{OrderBy: "id"})
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, menus)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input MenuInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.svc.Create(r.Context(), input)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}
	utils.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := utils.ToInt64(ps.ByName("id"))
	if err != nil {
		utils.WriteJSONError(w, "invalid menu id", http.StatusBadRequest)
		return
	}

	var input MenuInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.Update(r.Context(), id, input); err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "menu updated"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := utils.ToInt64(ps.ByName("id"))
	if err != nil {
		utils.WriteJSONError(w, "invalid menu id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "menu deleted"})
}

// UploadImage accepts a multipart photo, stores resized copies and points
// the menu row at the stored file.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := utils.ToInt64(ps.ByName("id"))
	if err != nil {
		utils.WriteJSONError(w, "invalid menu id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.WriteJSONError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		utils.WriteJSONError(w, "image file is required", http.StatusBadRequest)
		return
	}

	imageURL, err := ProcessImageUpload(files[0], h.uploadDir)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.svc.SetImage(r.Context(), id, imageURL); err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"image_url": imageURL})
}

// ListCategories feeds the admin form dropdown.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.WriteJSON(w, http.StatusOK, Categories)
}
