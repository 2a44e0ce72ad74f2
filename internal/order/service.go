package order

import (
	"context"
	"strings"

	"dapuribu-be/internal/cart"
	"dapuribu-be/internal/logger"
	"dapuribu-be/internal/metrics"
	"dapuribu-be/internal/user"
	"dapuribu-be/internal/utils"
	"dapuribu-be/internal/whatsapp"

	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, info CustomerInfo) (CheckoutResult, error)
	MyOrders(ctx context.Context) ([]Order, error)
	Items(ctx context.Context, orderID int64) ([]OrderItem, error)
	EditCustomer(ctx context.Context, orderID int64, upd CustomerUpdate) error
	Cancel(ctx context.Context, orderID int64) error
	HandoffLink(ctx context.Context, orderID int64) (string, error)

	ListAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, orderID int64) (Order, error)
	SetStatus(ctx context.Context, orderID int64, status string) error
	SetPaymentStatus(ctx context.Context, orderID int64, paymentStatus string) error
	Delete(ctx context.Context, orderID int64) error
}

type service struct {
	repo          Repository
	carts         cart.Persister
	whatsappPhone string
	created       *metrics.Counter
}

func NewService(repo Repository, carts cart.Persister, whatsappPhone string) Service {
	return &service{
		repo:          repo,
		carts:         carts,
		whatsappPhone: whatsappPhone,
		created:       metrics.NewCounter("orders_created"),
	}
}

func validateInfo(info *CustomerInfo) error {
	info.Name = strings.TrimSpace(info.Name)
	info.Phone = strings.TrimSpace(info.Phone)
	info.Address = strings.TrimSpace(info.Address)

	if info.Name == "" || info.Phone == "" || info.Address == "" {
		return ErrCustomerRequired
	}
	if info.EventDate.IsZero() {
		return ErrEventDateMissing
	}
	if info.Notes != nil && strings.TrimSpace(*info.Notes) == "" {
		info.Notes = nil
	}
	return nil
}

// Checkout turns the caller's cart into a persisted order, clears the
// cart, and composes the chat handoff the customer sends to confirm.
func (s *service) Checkout(ctx context.Context, info CustomerInfo) (CheckoutResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
	)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return CheckoutResult{}, ErrUnauthorized
	}

	if err := validateInfo(&info); err != nil {
		log.Warn("invalid checkout input", zap.Error(err))
		return CheckoutResult{}, err
	}

	key, err := cart.KeyFromContext(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}
	store, err := cart.LoadStore(ctx, key, s.carts)
	if err != nil {
		return CheckoutResult{}, err
	}

	lines := store.Lines()
	if len(lines) == 0 {
		return CheckoutResult{}, cart.ErrCartEmpty
	}

	items := make([]OrderItem, 0, len(lines))
	var total float64
	for _, l := range lines {
		subtotal := l.Price * float64(l.Quantity)
		total += subtotal
		items = append(items, OrderItem{
			MenuID:    l.MenuID,
			MenuName:  l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Price,
			Subtotal:  subtotal,
		})
	}

	o := Order{
		UserID:          userID,
		CustomerName:    info.Name,
		CustomerPhone:   info.Phone,
		CustomerAddress: info.Address,
		TotalAmount:     total,
		EventDate:       info.EventDate,
		Status:          StatusPending,
		PaymentStatus:   PaymentUnpaid,
		Notes:           info.Notes,
	}

	o, err = s.repo.CreateTx(ctx, o, items)
	if err != nil {
		return CheckoutResult{}, err
	}
	s.created.Inc()

	if err := store.Clear(ctx); err != nil {
		// The order exists; a stale cart is recoverable.
		log.Warn("failed to clear cart after checkout", zap.Error(err))
	}

	msg, link := s.handoff(o, items)
	return CheckoutResult{Order: o, WhatsAppMessage: msg, WhatsAppLink: link}, nil
}

func (s *service) handoff(o Order, items []OrderItem) (string, string) {
	summary := whatsapp.OrderSummary{
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		EventDate:       o.EventDate,
		Notes:           utils.PtrString(o.Notes),
		Total:           o.TotalAmount,
	}
	for _, it := range items {
		summary.Lines = append(summary.Lines, whatsapp.OrderLine{
			Name:     it.MenuName,
			Quantity: it.Quantity,
			Subtotal: it.Subtotal,
		})
	}

	msg := whatsapp.ComposeMessage(summary)
	return msg, whatsapp.Link(s.whatsappPhone, msg)
}

func (s *service) MyOrders(ctx context.Context) ([]Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	return s.repo.ListByUser(ctx, userID)
}

// Items returns an order's lines. Customers only see their own orders;
// admins see all.
func (s *service) Items(ctx context.Context, orderID int64) ([]OrderItem, error) {
	if err := s.authorize(ctx, orderID); err != nil {
		return nil, err
	}
	return s.repo.FetchItems(ctx, orderID)
}

// HandoffLink rebuilds the wa.me link for an already-placed order, used
// by the QR endpoint.
func (s *service) HandoffLink(ctx context.Context, orderID int64) (string, error) {
	if err := s.authorize(ctx, orderID); err != nil {
		return "", err
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	items, err := s.repo.FetchItems(ctx, orderID)
	if err != nil {
		return "", err
	}

	_, link := s.handoff(o, items)
	return link, nil
}

func (s *service) authorize(ctx context.Context, orderID int64) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthorized
	}
	if utils.GetUserRoleFromContext(ctx) == string(user.RoleAdmin) {
		return nil
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.UserID != userID {
		return ErrPermissionDenied
	}
	return nil
}

func (s *service) EditCustomer(ctx context.Context, orderID int64, upd CustomerUpdate) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthorized
	}
	return s.repo.UpdateCustomer(ctx, orderID, userID, upd)
}

func (s *service) Cancel(ctx context.Context, orderID int64) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthorized
	}
	return s.repo.Cancel(ctx, orderID, userID)
}

func (s *service) ListAll(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) GetByID(ctx context.Context, orderID int64) (Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

func (s *service) SetStatus(ctx context.Context, orderID int64, status string) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}

func (s *service) SetPaymentStatus(ctx context.Context, orderID int64, paymentStatus string) error {
	if !ValidPaymentStatus(paymentStatus) {
		return ErrInvalidPayment
	}
	return s.repo.UpdatePaymentStatus(ctx, orderID, paymentStatus)
}

func (s *service) Delete(ctx context.Context, orderID int64) error {
	return s.repo.Delete(ctx, orderID)
}
