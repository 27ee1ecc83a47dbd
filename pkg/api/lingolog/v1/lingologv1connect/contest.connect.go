// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: lingolog/v1/contest.proto

package lingologv1connect

import (
	connect "connectrpc.com/connect"
	context "context"
	errors "errors"
	v1 "github.com/lingolog/lingolog/pkg/api/lingolog/v1"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
	http "net/http"
	strings "strings"
)

// This is a compile-time assertion to ensure that this generated file and the connect package are
// compatible. If you get a compiler error that this constant is not defined, this code was
// generated with a version of connect newer than the one compiled into your binary. You can fix the
// problem by either regenerating this code with an older version of connect or updating the connect
// version compiled into your binary.
const _ = connect.IsAtLeastVersion1_13_0

const (
	// ContestServiceName is the fully-qualified name of the ContestService service.
	ContestServiceName = "lingolog.v1.ContestService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// ContestServiceCreateContestProcedure is the fully-qualified name of the ContestService's
	// CreateContest RPC.
	ContestServiceCreateContestProcedure = "/lingolog.v1.ContestService/CreateContest"
	// ContestServiceGetContestProcedure is the fully-qualified name of the ContestService's GetContest
	// RPC.
	ContestServiceGetContestProcedure = "/lingolog.v1.ContestService/GetContest"
	// ContestServiceListContestsProcedure is the fully-qualified name of the ContestService's
	// ListContests RPC.
	ContestServiceListContestsProcedure = "/lingolog.v1.ContestService/ListContests"
	// ContestServiceRegisterProcedure is the fully-qualified name of the ContestService's Register RPC.
	ContestServiceRegisterProcedure = "/lingolog.v1.ContestService/Register"
	// ContestServiceListOngoingRegistrationsProcedure is the fully-qualified name of the
	// ContestService's ListOngoingRegistrations RPC.
	ContestServiceListOngoingRegistrationsProcedure = "/lingolog.v1.ContestService/ListOngoingRegistrations"
	// ContestServiceDeleteRegistrationProcedure is the fully-qualified name of the ContestService's
	// DeleteRegistration RPC.
	ContestServiceDeleteRegistrationProcedure = "/lingolog.v1.ContestService/DeleteRegistration"
)

// ContestServiceClient is a client for the lingolog.v1.ContestService service.
type ContestServiceClient interface {
	CreateContest(context.Context, *connect.Request[v1.CreateContestRequest]) (*connect.Response[v1.Contest], error)
	GetContest(context.Context, *connect.Request[v1.IDRequest]) (*connect.Response[v1.Contest], error)
	ListContests(context.Context, *connect.Request[v1.ListContestsRequest]) (*connect.Response[v1.ListContestsResponse], error)
	Register(context.Context, *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.ContestRegistration], error)
	ListOngoingRegistrations(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[v1.ListRegistrationsResponse], error)
	DeleteRegistration(context.Context, *connect.Request[v1.IDRequest]) (*connect.Response[emptypb.Empty], error)
}

// NewContestServiceClient constructs a client for the lingolog.v1.ContestService service. By
// default, it uses the Connect protocol with the binary Protobuf Codec, asks for gzipped responses,
// and sends uncompressed requests. To use the gRPC or gRPC-Web protocols, supply the
// connect.WithGRPC() or connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewContestServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ContestServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	contestServiceMethods := v1.File_lingolog_v1_contest_proto.Services().ByName("ContestService").Methods()
	return &contestServiceClient{
		createContest: connect.NewClient[v1.CreateContestRequest, v1.Contest](
			httpClient,
			baseURL+ContestServiceCreateContestProcedure,
			connect.WithSchema(contestServiceMethods.ByName("CreateContest")),
			connect.WithClientOptions(opts...),
		),
		getContest: connect.NewClient[v1.IDRequest, v1.Contest](
			httpClient,
			baseURL+ContestServiceGetContestProcedure,
			connect.WithSchema(contestServiceMethods.ByName("GetContest")),
			connect.WithClientOptions(opts...),
		),
		listContests: connect.NewClient[v1.ListContestsRequest, v1.ListContestsResponse](
			httpClient,
			baseURL+ContestServiceListContestsProcedure,
			connect.WithSchema(contestServiceMethods.ByName("ListContests")),
			connect.WithClientOptions(opts...),
		),
		register: connect.NewClient[v1.RegisterRequest, v1.ContestRegistration](
			httpClient,
			baseURL+ContestServiceRegisterProcedure,
			connect.WithSchema(contestServiceMethods.ByName("Register")),
			connect.WithClientOptions(opts...),
		),
		listOngoingRegistrations: connect.NewClient[emptypb.Empty, v1.ListRegistrationsResponse](
			httpClient,
			baseURL+ContestServiceListOngoingRegistrationsProcedure,
			connect.WithSchema(contestServiceMethods.ByName("ListOngoingRegistrations")),
			connect.WithClientOptions(opts...),
		),
		deleteRegistration: connect.NewClient[v1.IDRequest, emptypb.Empty](
			httpClient,
			baseURL+ContestServiceDeleteRegistrationProcedure,
			connect.WithSchema(contestServiceMethods.ByName("DeleteRegistration")),
			connect.WithClientOptions(opts...),
		),
	}
}

// contestServiceClient implements ContestServiceClient.
type contestServiceClient struct {
	createContest            *connect.Client[v1.CreateContestRequest, v1.Contest]
	getContest               *connect.Client[v1.IDRequest, v1.Contest]
	listContests             *connect.Client[v1.ListContestsRequest, v1.ListContestsResponse]
	register                 *connect.Client[v1.RegisterRequest, v1.ContestRegistration]
	listOngoingRegistrations *connect.Client[emptypb.Empty, v1.ListRegistrationsResponse]
	deleteRegistration       *connect.Client[v1.IDRequest, emptypb.Empty]
}

// CreateContest calls lingolog.v1.ContestService.CreateContest.
func (c *contestServiceClient) CreateContest(ctx context.Context, req *connect.Request[v1.CreateContestRequest]) (*connect.Response[v1.Contest], error) {
	return c.createContest.CallUnary(ctx, req)
}

// GetContest calls lingolog.v1.ContestService.GetContest.
func (c *contestServiceClient) GetContest(ctx context.Context, req *connect.Request[v1.IDRequest]) (*connect.Response[v1.Contest], error) {
	return c.getContest.CallUnary(ctx, req)
}

// ListContests calls lingolog.v1.ContestService.ListContests.
func (c *contestServiceClient) ListContests(ctx context.Context, req *connect.Request[v1.ListContestsRequest]) (*connect.Response[v1.ListContestsResponse], error) {
	return c.listContests.CallUnary(ctx, req)
}

// Register calls lingolog.v1.ContestService.Register.
func (c *contestServiceClient) Register(ctx context.Context, req *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.ContestRegistration], error) {
	return c.register.CallUnary(ctx, req)
}

// ListOngoingRegistrations calls lingolog.v1.ContestService.ListOngoingRegistrations.
func (c *contestServiceClient) ListOngoingRegistrations(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[v1.ListRegistrationsResponse], error) {
	return c.listOngoingRegistrations.CallUnary(ctx, req)
}

// DeleteRegistration calls lingolog.v1.ContestService.DeleteRegistration.
func (c *contestServiceClient) DeleteRegistration(ctx context.Context, req *connect.Request[v1.IDRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.deleteRegistration.CallUnary(ctx, req)
}

// ContestServiceHandler is an implementation of the lingolog.v1.ContestService service.
type ContestServiceHandler interface {
	CreateContest(context.Context, *connect.Request[v1.CreateContestRequest]) (*connect.Response[v1.Contest], error)
	GetContest(context.Context, *connect.Request[v1.IDRequest]) (*connect.Response[v1.Contest], error)
	ListContests(context.Context, *connect.Request[v1.ListContestsRequest]) (*connect.Response[v1.ListContestsResponse], error)
	Register(context.Context, *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.ContestRegistration], error)
	ListOngoingRegistrations(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[v1.ListRegistrationsResponse], error)
	DeleteRegistration(context.Context, *connect.Request[v1.IDRequest]) (*connect.Response[emptypb.Empty], error)
}

// NewContestServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewContestServiceHandler(svc ContestServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	contestServiceMethods := v1.File_lingolog_v1_contest_proto.Services().ByName("ContestService").Methods()
	contestServiceCreateContestHandler := connect.NewUnaryHandler(
		ContestServiceCreateContestProcedure,
		svc.CreateContest,
		connect.WithSchema(contestServiceMethods.ByName("CreateContest")),
		connect.WithHandlerOptions(opts...),
	)
	contestServiceGetContestHandler := connect.NewUnaryHandler(
		ContestServiceGetContestProcedure,
		svc.GetContest,
		connect.WithSchema(contestServiceMethods.ByName("GetContest")),
		connect.WithHandlerOptions(opts...),
	)
	contestServiceListContestsHandler := connect.NewUnaryHandler(
		ContestServiceListContestsProcedure,
		svc.ListContests,
		connect.WithSchema(contestServiceMethods.ByName("ListContests")),
		connect.WithHandlerOptions(opts...),
	)
	contestServiceRegisterHandler := connect.NewUnaryHandler(
		ContestServiceRegisterProcedure,
		svc.Register,
		connect.WithSchema(contestServiceMethods.ByName("Register")),
		connect.WithHandlerOptions(opts...),
	)
	contestServiceListOngoingRegistrationsHandler := connect.NewUnaryHandler(
		ContestServiceListOngoingRegistrationsProcedure,
		svc.ListOngoingRegistrations,
		connect.WithSchema(contestServiceMethods.ByName("ListOngoingRegistrations")),
		connect.WithHandlerOptions(opts...),
	)
	contestServiceDeleteRegistrationHandler := connect.NewUnaryHandler(
		ContestServiceDeleteRegistrationProcedure,
		svc.DeleteRegistration,
		connect.WithSchema(contestServiceMethods.ByName("DeleteRegistration")),
		connect.WithHandlerOptions(opts...),
	)
	return "/lingolog.v1.ContestService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ContestServiceCreateContestProcedure:
			contestServiceCreateContestHandler.ServeHTTP(w, r)
		case ContestServiceGetContestProcedure:
			contestServiceGetContestHandler.ServeHTTP(w, r)
		case ContestServiceListContestsProcedure:
			contestServiceListContestsHandler.ServeHTTP(w, r)
		case ContestServiceRegisterProcedure:
			contestServiceRegisterHandler.ServeHTTP(w, r)
		case ContestServiceListOngoingRegistrationsProcedure:
			contestServiceListOngoingRegistrationsHandler.ServeHTTP(w, r)
		case ContestServiceDeleteRegistrationProcedure:
			contestServiceDeleteRegistrationHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedContestServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedContestServiceHandler struct{}

func (UnimplementedContestServiceHandler) CreateContest(context.Context, *connect.Request[v1.CreateContestRequest]) (*connect.Response[v1.Contest], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("lingolog.v1.ContestService.CreateContest is not implemented"))
}

func (UnimplementedContestServiceHandler) GetContest(context.Context, *connect.Request[v1.IDRequest]) (*connect.Response[v1.Contest], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("lingolog.v1.ContestService.GetContest is not implemented"))
}

func (UnimplementedContestServiceHandler) ListContests(context.Context, *connect.Request[v1.ListContestsRequest]) (*connect.Response[v1.ListContestsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("lingolog.v1.ContestService.ListContests is not implemented"))
}

func (UnimplementedContestServiceHandler) Register(context.Context, *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.ContestRegistration], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("lingolog.v1.ContestService.Register is not implemented"))
}

func (UnimplementedContestServiceHandler) ListOngoingRegistrations(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[v1.ListRegistrationsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("lingolog.v1.ContestService.ListOngoingRegistrations is not implemented"))
}

func (UnimplementedContestServiceHandler) DeleteRegistration(context.Context, *connect.Request[v1.IDRequest]) (*connect.Response[emptypb.Empty], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("lingolog.v1.ContestService.DeleteRegistration is not implemented"))
}
