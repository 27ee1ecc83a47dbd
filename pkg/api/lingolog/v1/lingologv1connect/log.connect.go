// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: lingolog/v1/log.proto

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
	// LogServiceName is the fully-qualified name of the LogService service.
	LogServiceName = "lingolog.v1.LogService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// LogServiceCreateLogProcedure is the fully-qualified name of the LogService's CreateLog RPC.
	LogServiceCreateLogProcedure = "/lingolog.v1.LogService/CreateLog"
	// LogServiceListLogsProcedure is the fully-qualified name of the LogService's ListLogs RPC.
	LogServiceListLogsProcedure = "/lingolog.v1.LogService/ListLogs"
	// LogServiceDeleteLogProcedure is the fully-qualified name of the LogService's DeleteLog RPC.
	LogServiceDeleteLogProcedure = "/lingolog.v1.LogService/DeleteLog"
	// LogServiceUpdateLogRegistrationsProcedure is the fully-qualified name of the LogService's
	// UpdateLogRegistrations RPC.
	LogServiceUpdateLogRegistrationsProcedure = "/lingolog.v1.LogService/UpdateLogRegistrations"
	// LogServiceGetConfigurationOptionsProcedure is the fully-qualified name of the LogService's
	// GetConfigurationOptions RPC.
	LogServiceGetConfigurationOptionsProcedure = "/lingolog.v1.LogService/GetConfigurationOptions"
)

// LogServiceClient is a client for the lingolog.v1.LogService service.
type LogServiceClient interface {
	CreateLog(context.Context, *connect.Request[v1.CreateLogRequest]) (*connect.Response[v1.Log], error)
	ListLogs(context.Context, *connect.Request[v1.ListLogsRequest]) (*connect.Response[v1.ListLogsResponse], error)
	DeleteLog(context.Context, *connect.Request[v1.IDRequest]) (*connect.Response[emptypb.Empty], error)
	UpdateLogRegistrations(context.Context, *connect.Request[v1.UpdateLogRegistrationsRequest]) (*connect.Response[v1.Log], error)
	GetConfigurationOptions(context.Context, *connect.Request[v1.GetConfigurationOptionsRequest]) (*connect.Response[v1.ConfigurationOptionsResponse], error)
}

// NewLogServiceClient constructs a client for the lingolog.v1.LogService service. By default, it
// uses the Connect protocol with the binary Protobuf Codec, asks for gzipped responses, and sends
// uncompressed requests. To use the gRPC or gRPC-Web protocols, supply the connect.WithGRPC() or
// connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewLogServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LogServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	logServiceMethods := v1.File_lingolog_v1_log_proto.Services().ByName("LogService").Methods()
	return &logServiceClient{
		createLog: connect.NewClient[v1.CreateLogRequest, v1.Log](
			httpClient,
			baseURL+LogServiceCreateLogProcedure,
			connect.WithSchema(logServiceMethods.ByName("CreateLog")),
			connect.WithClientOptions(opts...),
		),
		listLogs: connect.NewClient[v1.ListLogsRequest, v1.ListLogsResponse](
			httpClient,
			baseURL+LogServiceListLogsProcedure,
			connect.WithSchema(logServiceMethods.ByName("ListLogs")),
			connect.WithClientOptions(opts...),
		),
		deleteLog: connect.NewClient[v1.IDRequest, emptypb.Empty](
			httpClient,
			baseURL+LogServiceDeleteLogProcedure,
			connect.WithSchema(logServiceMethods.ByName("DeleteLog")),
			connect.WithClientOptions(opts...),
		),
		updateLogRegistrations: connect.NewClient[v1.UpdateLogRegistrationsRequest, v1.Log](
			httpClient,
			baseURL+LogServiceUpdateLogRegistrationsProcedure,
			connect.WithSchema(logServiceMethods.ByName("UpdateLogRegistrations")),
			connect.WithClientOptions(opts...),
		),
		getConfigurationOptions: connect.NewClient[v1.GetConfigurationOptionsRequest, v1.ConfigurationOptionsResponse](
			httpClient,
			baseURL+LogServiceGetConfigurationOptionsProcedure,
			connect.WithSchema(logServiceMethods.ByName("GetConfigurationOptions")),
			connect.WithClientOptions(opts...),
		),
	}
}

// logServiceClient implements LogServiceClient.
type logServiceClient struct {
	createLog               *connect.Client[v1.CreateLogRequest, v1.Log]
	listLogs                *connect.Client[v1.ListLogsRequest, v1.ListLogsResponse]
	deleteLog               *connect.Client[v1.IDRequest, emptypb.Empty]
	updateLogRegistrations  *connect.Client[v1.UpdateLogRegistrationsRequest, v1.Log]
	getConfigurationOptions *connect.Client[v1.GetConfigurationOptionsRequest, v1.ConfigurationOptionsResponse]
}

// CreateLog calls lingolog.v1.LogService.CreateLog.
func (c *logServiceClient) CreateLog(ctx context.Context, req *connect.Request[v1.CreateLogRequest]) (*connect.Response[v1.Log], error) {
	return c.createLog.CallUnary(ctx, req)
}

// ListLogs calls lingolog.v1.LogService.ListLogs.
func (c *logServiceClient) ListLogs(ctx context.Context, req *connect.Request[v1.ListLogsRequest]) (*connect.Response[v1.ListLogsResponse], error) {
	return c.listLogs.CallUnary(ctx, req)
}

// DeleteLog calls lingolog.v1.LogService.DeleteLog.
func (c *logServiceClient) DeleteLog(ctx context.Context, req *connect.Request[v1.IDRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.deleteLog.CallUnary(ctx, req)
}

// UpdateLogRegistrations calls lingolog.v1.LogService.UpdateLogRegistrations.
func (c *logServiceClient) UpdateLogRegistrations(ctx context.Context, req *connect.Request[v1.UpdateLogRegistrationsRequest]) (*connect.Response[v1.Log], error) {
	return c.updateLogRegistrations.CallUnary(ctx, req)
}

// GetConfigurationOptions calls lingolog.v1.LogService.GetConfigurationOptions.
func (c *logServiceClient) GetConfigurationOptions(ctx context.Context, req *connect.Request[v1.GetConfigurationOptionsRequest]) (*connect.Response[v1.ConfigurationOptionsResponse], error) {
	return c.getConfigurationOptions.CallUnary(ctx, req)
}

// LogServiceHandler is an implementation of the lingolog.v1.LogService service.
type LogServiceHandler interface {
	CreateLog(context.Context, *connect.Request[v1.CreateLogRequest]) (*connect.Response[v1.Log], error)
	ListLogs(context.Context, *connect.Request[v1.ListLogsRequest]) (*connect.Response[v1.ListLogsResponse], error)
	DeleteLog(context.Context, *connect.Request[v1.IDRequest]) (*connect.Response[emptypb.Empty], error)
	UpdateLogRegistrations(context.Context, *connect.Request[v1.UpdateLogRegistrationsRequest]) (*connect.Response[v1.Log], error)
	GetConfigurationOptions(context.Context, *connect.Request[v1.GetConfigurationOptionsRequest]) (*connect.Response[v1.ConfigurationOptionsResponse], error)
}

// NewLogServiceHandler builds an HTTP handler from the service implementation. It returns the path
// on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewLogServiceHandler(svc LogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	logServiceMethods := v1.File_lingolog_v1_log_proto.Services().ByName("LogService").Methods()
	logServiceCreateLogHandler := connect.NewUnaryHandler(
		LogServiceCreateLogProcedure,
		svc.CreateLog,
		connect.WithSchema(logServiceMethods.ByName("CreateLog")),
		connect.WithHandlerOptions(opts...),
	)
	logServiceListLogsHandler := connect.NewUnaryHandler(
		LogServiceListLogsProcedure,
		svc.ListLogs,
		connect.WithSchema(logServiceMethods.ByName("ListLogs")),
		connect.WithHandlerOptions(opts...),
	)
	logServiceDeleteLogHandler := connect.NewUnaryHandler(
		LogServiceDeleteLogProcedure,
		svc.DeleteLog,
		connect.WithSchema(logServiceMethods.ByName("DeleteLog")),
		connect.WithHandlerOptions(opts...),
	)
	logServiceUpdateLogRegistrationsHandler := connect.NewUnaryHandler(
		LogServiceUpdateLogRegistrationsProcedure,
		svc.UpdateLogRegistrations,
		connect.WithSchema(logServiceMethods.ByName("UpdateLogRegistrations")),
		connect.WithHandlerOptions(opts...),
	)
	logServiceGetConfigurationOptionsHandler := connect.NewUnaryHandler(
		LogServiceGetConfigurationOptionsProcedure,
		svc.GetConfigurationOptions,
		connect.WithSchema(logServiceMethods.ByName("GetConfigurationOptions")),
		connect.WithHandlerOptions(opts...),
	)
	return "/lingolog.v1.LogService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LogServiceCreateLogProcedure:
			logServiceCreateLogHandler.ServeHTTP(w, r)
		case LogServiceListLogsProcedure:
			logServiceListLogsHandler.ServeHTTP(w, r)
		case LogServiceDeleteLogProcedure:
			logServiceDeleteLogHandler.ServeHTTP(w, r)
		case LogServiceUpdateLogRegistrationsProcedure:
			logServiceUpdateLogRegistrationsHandler.ServeHTTP(w, r)
		case LogServiceGetConfigurationOptionsProcedure:
			logServiceGetConfigurationOptionsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedLogServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLogServiceHandler struct{}

func (UnimplementedLogServiceHandler) CreateLog(context.Context, *connect.Request[v1.CreateLogRequest]) (*connect.Response[v1.Log], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("lingolog.v1.LogService.CreateLog is not implemented"))
}

func (UnimplementedLogServiceHandler) ListLogs(context.Context, *connect.Request[v1.ListLogsRequest]) (*connect.Response[v1.ListLogsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("lingolog.v1.LogService.ListLogs is not implemented"))
}

func (UnimplementedLogServiceHandler) DeleteLog(context.Context, *connect.Request[v1.IDRequest]) (*connect.Response[emptypb.Empty], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("lingolog.v1.LogService.DeleteLog is not implemented"))
}

func (UnimplementedLogServiceHandler) UpdateLogRegistrations(context.Context, *connect.Request[v1.UpdateLogRegistrationsRequest]) (*connect.Response[v1.Log], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("lingolog.v1.LogService.UpdateLogRegistrations is not implemented"))
}

func (UnimplementedLogServiceHandler) GetConfigurationOptions(context.Context, *connect.Request[v1.GetConfigurationOptionsRequest]) (*connect.Response[v1.ConfigurationOptionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("lingolog.v1.LogService.GetConfigurationOptions is not implemented"))
}
