package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"
)

// BillingServiceName is the fully-qualified name of the BillingService.
const BillingServiceName = "homebills.v1.BillingService"

// Procedure paths of the BillingService RPCs.
const (
	AddProviderProcedure    = "/homebills.v1.BillingService/AddProvider"
	RemoveProviderProcedure = "/homebills.v1.BillingService/RemoveProvider"
	ListProvidersProcedure  = "/homebills.v1.BillingService/ListProviders"
	AddUserProcedure        = "/homebills.v1.BillingService/AddUser"
	RemoveUserProcedure     = "/homebills.v1.BillingService/RemoveUser"
	ListUsersProcedure      = "/homebills.v1.BillingService/ListUsers"
	CreateBillProcedure     = "/homebills.v1.BillingService/CreateBill"
	RemoveBillProcedure     = "/homebills.v1.BillingService/RemoveBill"
	ListBillsProcedure      = "/homebills.v1.BillingService/ListBills"
	AddPaymentProcedure     = "/homebills.v1.BillingService/AddPayment"
	ListPaymentsProcedure   = "/homebills.v1.BillingService/ListPayments"
)

// NewBillingServiceHandler builds an HTTP handler serving every BillingService
// procedure. It returns the path prefix to mount the handler on.
func NewBillingServiceHandler(svc *BillingService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(AddProviderProcedure, connect.NewUnaryHandler(AddProviderProcedure, svc.AddProvider, opts...))
	mux.Handle(RemoveProviderProcedure, connect.NewUnaryHandler(RemoveProviderProcedure, svc.RemoveProvider, opts...))
	mux.Handle(ListProvidersProcedure, connect.NewUnaryHandler(ListProvidersProcedure, svc.ListProviders, opts...))
	mux.Handle(AddUserProcedure, connect.NewUnaryHandler(AddUserProcedure, svc.AddUser, opts...))
	mux.Handle(RemoveUserProcedure, connect.NewUnaryHandler(RemoveUserProcedure, svc.RemoveUser, opts...))
	mux.Handle(ListUsersProcedure, connect.NewUnaryHandler(ListUsersProcedure, svc.ListUsers, opts...))
	mux.Handle(CreateBillProcedure, connect.NewUnaryHandler(CreateBillProcedure, svc.CreateBill, opts...))
	mux.Handle(RemoveBillProcedure, connect.NewUnaryHandler(RemoveBillProcedure, svc.RemoveBill, opts...))
	mux.Handle(ListBillsProcedure, connect.NewUnaryHandler(ListBillsProcedure, svc.ListBills, opts...))
	mux.Handle(AddPaymentProcedure, connect.NewUnaryHandler(AddPaymentProcedure, svc.AddPayment, opts...))
	mux.Handle(ListPaymentsProcedure, connect.NewUnaryHandler(ListPaymentsProcedure, svc.ListPayments, opts...))

	return "/" + BillingServiceName + "/", mux
}

// BillingClient is a client for the BillingService.
type BillingClient struct {
	addProvider    *connect.Client[AddProviderRequest, AddProviderResponse]
	removeProvider *connect.Client[RemoveProviderRequest, emptypb.Empty]
	listProviders  *connect.Client[emptypb.Empty, ListProvidersResponse]
	addUser        *connect.Client[AddUserRequest, AddUserResponse]
	removeUser     *connect.Client[RemoveUserRequest, emptypb.Empty]
	listUsers      *connect.Client[emptypb.Empty, ListUsersResponse]
	createBill     *connect.Client[CreateBillRequest, CreateBillResponse]
	removeBill     *connect.Client[RemoveBillRequest, emptypb.Empty]
	listBills      *connect.Client[ListBillsRequest, ListBillsResponse]
	addPayment     *connect.Client[AddPaymentRequest, AddPaymentResponse]
	listPayments   *connect.Client[ListPaymentsRequest, ListPaymentsResponse]
}

// NewBillingClient constructs a client for the BillingService at baseURL
// (for example, http://localhost:8080).
func NewBillingClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BillingClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)

	return &BillingClient{
		addProvider:    connect.NewClient[AddProviderRequest, AddProviderResponse](httpClient, baseURL+AddProviderProcedure, opts...),
		removeProvider: connect.NewClient[RemoveProviderRequest, emptypb.Empty](httpClient, baseURL+RemoveProviderProcedure, opts...),
		listProviders:  connect.NewClient[emptypb.Empty, ListProvidersResponse](httpClient, baseURL+ListProvidersProcedure, opts...),
		addUser:        connect.NewClient[AddUserRequest, AddUserResponse](httpClient, baseURL+AddUserProcedure, opts...),
		removeUser:     connect.NewClient[RemoveUserRequest, emptypb.Empty](httpClient, baseURL+RemoveUserProcedure, opts...),
		listUsers:      connect.NewClient[emptypb.Empty, ListUsersResponse](httpClient, baseURL+ListUsersProcedure, opts...),
		createBill:     connect.NewClient[CreateBillRequest, CreateBillResponse](httpClient, baseURL+CreateBillProcedure, opts...),
		removeBill:     connect.NewClient[RemoveBillRequest, emptypb.Empty](httpClient, baseURL+RemoveBillProcedure, opts...),
		listBills:      connect.NewClient[ListBillsRequest, ListBillsResponse](httpClient, baseURL+ListBillsProcedure, opts...),
		addPayment:     connect.NewClient[AddPaymentRequest, AddPaymentResponse](httpClient, baseURL+AddPaymentProcedure, opts...),
		listPayments:   connect.NewClient[ListPaymentsRequest, ListPaymentsResponse](httpClient, baseURL+ListPaymentsProcedure, opts...),
	}
}

func (c *BillingClient) AddProvider(ctx context.Context, req *connect.Request[AddProviderRequest]) (*connect.Response[AddProviderResponse], error) {
	return c.addProvider.CallUnary(ctx, req)
}

func (c *BillingClient) RemoveProvider(ctx context.Context, req *connect.Request[RemoveProviderRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.removeProvider.CallUnary(ctx, req)
}

func (c *BillingClient) ListProviders(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ListProvidersResponse], error) {
	return c.listProviders.CallUnary(ctx, req)
}

func (c *BillingClient) AddUser(ctx context.Context, req *connect.Request[AddUserRequest]) (*connect.Response[AddUserResponse], error) {
	return c.addUser.CallUnary(ctx, req)
}

func (c *BillingClient) RemoveUser(ctx context.Context, req *connect.Request[RemoveUserRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.removeUser.CallUnary(ctx, req)
}

func (c *BillingClient) ListUsers(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ListUsersResponse], error) {
	return c.listUsers.CallUnary(ctx, req)
}

func (c *BillingClient) CreateBill(ctx context.Context, req *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error) {
	return c.createBill.CallUnary(ctx, req)
}

func (c *BillingClient) RemoveBill(ctx context.Context, req *connect.Request[RemoveBillRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.removeBill.CallUnary(ctx, req)
}

func (c *BillingClient) ListBills(ctx context.Context, req *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

func (c *BillingClient) AddPayment(ctx context.Context, req *connect.Request[AddPaymentRequest]) (*connect.Response[AddPaymentResponse], error) {
	return c.addPayment.CallUnary(ctx, req)
}

func (c *BillingClient) ListPayments(ctx context.Context, req *connect.Request[ListPaymentsRequest]) (*connect.Response[ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}
