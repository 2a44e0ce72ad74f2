package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"dapuribu-be/internal/cart"
	"dapuribu-be/internal/utils"
	"dapuribu-be/internal/whatsapp"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEventDateMissing),
		errors.Is(err, ErrCustomerRequired),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidPayment),
		errors.Is(err, cart.ErrCartEmpty),
		errors.Is(err, cart.ErrNoCartKey):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func orderID(ps httprouter.Params) (int64, error) {
	return utils.ToInt64(ps.ByName("orderid"))
}

// Checkout converts the caller's cart into an order and returns the
// chat handoff alongside it.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var info CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Checkout(r.Context(), info)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}
	utils.WriteJSON(w, http.StatusCreated, result)
}

func (h *Handler) MyOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	orders, err := h.svc.MyOrders(r.Context())
	if err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) Items(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := orderID(ps)
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	items, err := h.svc.Items(r.Context(), id)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) Edit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := orderID(ps)
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var upd CustomerUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.EditCustomer(r.Context(), id, upd); err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "order updated"})
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := orderID(ps)
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Cancel(r.Context(), id); err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "order cancelled"})
}

// WhatsAppQR serves the handoff link as a scannable PNG, for customers
// who placed the order on one device and chat on another.
func (h *Handler) WhatsAppQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := orderID(ps)
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	link, err := h.svc.HandoffLink(r.Context(), id)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}

	png, err := whatsapp.QRCode(link, 256)
	if err != nil {
		utils.WriteJSONError(w, "failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	orders, err := h.svc.ListAll(r.Context())
	if err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := orderID(ps)
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.SetStatus(r.Context(), id, req.Status); err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

type setPaymentRequest struct {
	PaymentStatus string `json:"payment_status"`
}

func (h *Handler) SetPaymentStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := orderID(ps)
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req setPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.SetPaymentStatus(r.Context(), id, req.PaymentStatus); err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"payment_status": req.PaymentStatus})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := orderID(ps)
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "order deleted"})
}

// Invoice streams the order as a PDF attachment.
func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := orderID(ps)
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	o, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}
	items, err := h.svc.Items(r.Context(), id)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), statusFor(err))
		return
	}

	pdfBytes, err := RenderInvoice(o, items)
	if err != nil {
		utils.WriteJSONError(w, "failed to generate invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%d.pdf", id))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
