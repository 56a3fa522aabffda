// Package service exposes the admin facade as the Connect BillingService.
package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/homebills/internal/admin"
	"github.com/mmynk/homebills/internal/billing"
	"github.com/mmynk/homebills/internal/metrics"
	"github.com/mmynk/homebills/internal/models"
)

// BillingService implements the Connect BillingService.
type BillingService struct {
	admin   *admin.Admin
	metrics *metrics.Metrics
}

// NewBillingService creates a BillingService over the given facade.
// m may be nil when metrics are not exported.
func NewBillingService(a *admin.Admin, m *metrics.Metrics) *BillingService {
	return &BillingService{admin: a, metrics: m}
}

// toConnectError maps domain error kinds onto Connect codes.
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrIndexOutOfRange):
		return connect.NewError(connect.CodeOutOfRange, err)
	case errors.Is(err, models.ErrInvalidBillType), errors.Is(err, models.ErrInvalidAmount):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// AddProvider registers a provider.
func (s *BillingService) AddProvider(ctx context.Context, req *connect.Request[AddProviderRequest]) (*connect.Response[AddProviderResponse], error) {
	slog.Info("AddProvider request received", "name", req.Msg.Name, "bill_category", req.Msg.BillCategory)

	id, err := s.admin.AddProvider(ctx, req.Msg.Name, models.BillCategory(req.Msg.BillCategory))
	if err != nil {
		slog.Error("AddProvider failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AddProviderResponse{
		Provider: Provider{ID: id, Name: req.Msg.Name, BillCategory: req.Msg.BillCategory},
	}), nil
}

// RemoveProvider removes a provider by id.
func (s *BillingService) RemoveProvider(ctx context.Context, req *connect.Request[RemoveProviderRequest]) (*connect.Response[emptypb.Empty], error) {
	slog.Info("RemoveProvider request received", "provider_id", req.Msg.ID)

	if err := s.admin.RemoveProvider(ctx, req.Msg.ID); err != nil {
		slog.Error("RemoveProvider failed", "provider_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&emptypb.Empty{}), nil
}

// ListProviders returns all providers.
func (s *BillingService) ListProviders(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[ListProvidersResponse], error) {
	entries, err := s.admin.ListProviders(ctx)
	if err != nil {
		slog.Error("ListProviders failed", "error", err)
		return nil, toConnectError(err)
	}

	providers := lo.Map(entries, func(e models.ProviderEntry, _ int) Provider {
		return Provider{ID: e.ID, Name: e.Provider.Name, BillCategory: string(e.Provider.BillCategory)}
	})

	slog.Debug("ListProviders successful", "count", len(providers))
	return connect.NewResponse(&ListProvidersResponse{Providers: providers}), nil
}

// AddUser registers a user.
func (s *BillingService) AddUser(ctx context.Context, req *connect.Request[AddUserRequest]) (*connect.Response[AddUserResponse], error) {
	slog.Info("AddUser request received", "name", req.Msg.Name)

	id, err := s.admin.AddUser(ctx, req.Msg.Name)
	if err != nil {
		slog.Error("AddUser failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AddUserResponse{
		User: User{ID: id, Name: req.Msg.Name},
	}), nil
}

// RemoveUser removes a user by id.
func (s *BillingService) RemoveUser(ctx context.Context, req *connect.Request[RemoveUserRequest]) (*connect.Response[emptypb.Empty], error) {
	slog.Info("RemoveUser request received", "user_id", req.Msg.ID)

	if err := s.admin.RemoveUser(ctx, req.Msg.ID); err != nil {
		slog.Error("RemoveUser failed", "user_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&emptypb.Empty{}), nil
}

// ListUsers returns all users.
func (s *BillingService) ListUsers(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[ListUsersResponse], error) {
	entries, err := s.admin.ListUsers(ctx)
	if err != nil {
		slog.Error("ListUsers failed", "error", err)
		return nil, toConnectError(err)
	}

	users := lo.Map(entries, func(e models.UserEntry, _ int) User {
		return User{
			ID:           e.ID,
			Name:         e.User.Name,
			BillCount:    len(e.User.Bills),
			PaymentCount: len(e.User.Payments),
		}
	})

	slog.Debug("ListUsers successful", "count", len(users))
	return connect.NewResponse(&ListUsersResponse{Users: users}), nil
}

// CreateBill files a bill for a user from a provider.
func (s *BillingService) CreateBill(ctx context.Context, req *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error) {
	slog.Info("CreateBill request received",
		"user_id", req.Msg.UserID,
		"provider_id", req.Msg.ProviderID,
		"amount", req.Msg.Amount.String(),
	)

	bill, index, err := s.admin.CreateBill(ctx, req.Msg.UserID, req.Msg.ProviderID, req.Msg.Amount)
	if err != nil {
		slog.Error("CreateBill failed", "error", err)
		return nil, toConnectError(err)
	}

	if s.metrics != nil {
		s.metrics.BillsCreatedTotal.WithLabelValues(string(bill.Kind.Category())).Inc()
	}

	// The bill is filed; a provider removed since only loses its name here.
	names := map[int]string{}
	if provider, err := s.admin.Providers().GetProvider(ctx, req.Msg.ProviderID); err == nil {
		names[req.Msg.ProviderID] = provider.Name
	}

	return connect.NewResponse(&CreateBillResponse{
		Bill: toBill(index, bill, names),
	}), nil
}

// RemoveBill removes the bill at index from a user's bills.
func (s *BillingService) RemoveBill(ctx context.Context, req *connect.Request[RemoveBillRequest]) (*connect.Response[emptypb.Empty], error) {
	slog.Info("RemoveBill request received", "user_id", req.Msg.UserID, "index", req.Msg.Index)

	if err := s.admin.RemoveBill(ctx, req.Msg.UserID, req.Msg.Index); err != nil {
		slog.Error("RemoveBill failed", "user_id", req.Msg.UserID, "index", req.Msg.Index, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&emptypb.Empty{}), nil
}

// ListBills returns a user's bills in index order.
func (s *BillingService) ListBills(ctx context.Context, req *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	user, err := s.admin.Users().GetUser(ctx, req.Msg.UserID)
	if err != nil {
		slog.Error("ListBills failed", "user_id", req.Msg.UserID, "error", err)
		return nil, toConnectError(err)
	}

	providers, err := s.admin.ListProviders(ctx)
	if err != nil {
		slog.Error("ListBills failed", "error", err)
		return nil, toConnectError(err)
	}
	names := billing.ProviderNames(providers)

	bills := lo.Map(user.Bills, func(b models.Bill, i int) Bill {
		return toBill(i, b, names)
	})

	return connect.NewResponse(&ListBillsResponse{UserName: user.Name, Bills: bills}), nil
}

// AddPayment records a payment for a user.
func (s *BillingService) AddPayment(ctx context.Context, req *connect.Request[AddPaymentRequest]) (*connect.Response[AddPaymentResponse], error) {
	slog.Info("AddPayment request received",
		"user_id", req.Msg.UserID,
		"amount", req.Msg.Amount.String(),
		"date", req.Msg.Date,
	)

	payment, err := s.admin.AddPayment(ctx, req.Msg.UserID, req.Msg.Amount, req.Msg.Date)
	if err != nil {
		slog.Error("AddPayment failed", "error", err)
		return nil, toConnectError(err)
	}

	if s.metrics != nil {
		s.metrics.PaymentsAddedTotal.Inc()
	}

	return connect.NewResponse(&AddPaymentResponse{
		Payment: Payment{Amount: payment.Amount, Date: payment.Date},
	}), nil
}

// ListPayments returns a user's payments in the order they were recorded.
func (s *BillingService) ListPayments(ctx context.Context, req *connect.Request[ListPaymentsRequest]) (*connect.Response[ListPaymentsResponse], error) {
	user, err := s.admin.Users().GetUser(ctx, req.Msg.UserID)
	if err != nil {
		slog.Error("ListPayments failed", "user_id", req.Msg.UserID, "error", err)
		return nil, toConnectError(err)
	}

	payments := lo.Map(user.Payments, func(p models.Payment, _ int) Payment {
		return Payment{Amount: p.Amount, Date: p.Date}
	})

	return connect.NewResponse(&ListPaymentsResponse{UserName: user.Name, Payments: payments}), nil
}

func toBill(index int, b models.Bill, names map[int]string) Bill {
	return Bill{
		Index:        index,
		Kind:         b.Kind.Label(),
		ProviderID:   b.ProviderID,
		ProviderName: names[b.ProviderID],
		Amount:       b.Amount,
	}
}
