// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: lingolog/v1/leaderboard.proto

package lingologv1connect

import (
	connect "connectrpc.com/connect"
	context "context"
	errors "errors"
	v1 "github.com/lingolog/lingolog/pkg/api/lingolog/v1"
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
	// LeaderboardServiceName is the fully-qualified name of the LeaderboardService service.
	LeaderboardServiceName = "lingolog.v1.LeaderboardService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// LeaderboardServiceGetLeaderboardProcedure is the fully-qualified name of the LeaderboardService's
	// GetLeaderboard RPC.
	LeaderboardServiceGetLeaderboardProcedure = "/lingolog.v1.LeaderboardService/GetLeaderboard"
)

// LeaderboardServiceClient is a client for the lingolog.v1.LeaderboardService service.
type LeaderboardServiceClient interface {
	GetLeaderboard(context.Context, *connect.Request[v1.GetLeaderboardRequest]) (*connect.Response[v1.GetLeaderboardResponse], error)
}

// NewLeaderboardServiceClient constructs a client for the lingolog.v1.LeaderboardService service.
// By default, it uses the Connect protocol with the binary Protobuf Codec, asks for gzipped
// responses, and sends uncompressed requests. To use the gRPC or gRPC-Web protocols, supply the
// connect.WithGRPC() or connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewLeaderboardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LeaderboardServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	leaderboardServiceMethods := v1.File_lingolog_v1_leaderboard_proto.Services().ByName("LeaderboardService").Methods()
	return &leaderboardServiceClient{
		getLeaderboard: connect.NewClient[v1.GetLeaderboardRequest, v1.GetLeaderboardResponse](
			httpClient,
			baseURL+LeaderboardServiceGetLeaderboardProcedure,
			connect.WithSchema(leaderboardServiceMethods.ByName("GetLeaderboard")),
			connect.WithClientOptions(opts...),
		),
	}
}

// leaderboardServiceClient implements LeaderboardServiceClient.
type leaderboardServiceClient struct {
	getLeaderboard *connect.Client[v1.GetLeaderboardRequest, v1.GetLeaderboardResponse]
}

// GetLeaderboard calls lingolog.v1.LeaderboardService.GetLeaderboard.
func (c *leaderboardServiceClient) GetLeaderboard(ctx context.Context, req *connect.Request[v1.GetLeaderboardRequest]) (*connect.Response[v1.GetLeaderboardResponse], error) {
	return c.getLeaderboard.CallUnary(ctx, req)
}

// LeaderboardServiceHandler is an implementation of the lingolog.v1.LeaderboardService service.
type LeaderboardServiceHandler interface {
	GetLeaderboard(context.Context, *connect.Request[v1.GetLeaderboardRequest]) (*connect.Response[v1.GetLeaderboardResponse], error)
}

// NewLeaderboardServiceHandler builds an HTTP handler from the service implementation. It returns
// the path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewLeaderboardServiceHandler(svc LeaderboardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	leaderboardServiceMethods := v1.File_lingolog_v1_leaderboard_proto.Services().ByName("LeaderboardService").Methods()
	leaderboardServiceGetLeaderboardHandler := connect.NewUnaryHandler(
		LeaderboardServiceGetLeaderboardProcedure,
		svc.GetLeaderboard,
		connect.WithSchema(leaderboardServiceMethods.ByName("GetLeaderboard")),
		connect.WithHandlerOptions(opts...),
	)
	return "/lingolog.v1.LeaderboardService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LeaderboardServiceGetLeaderboardProcedure:
			leaderboardServiceGetLeaderboardHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedLeaderboardServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLeaderboardServiceHandler struct{}

func (UnimplementedLeaderboardServiceHandler) GetLeaderboard(context.Context, *connect.Request[v1.GetLeaderboardRequest]) (*connect.Response[v1.GetLeaderboardResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("lingolog.v1.LeaderboardService.GetLeaderboard is not implemented"))
}
