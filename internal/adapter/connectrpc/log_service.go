package connectrpc

import (
	"context"

	"connectrpc.com/connect"
	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/lingolog/lingolog/internal/adapter/mapping"
	"github.com/lingolog/lingolog/internal/entity"
	"github.com/lingolog/lingolog/internal/repository"
	"github.com/lingolog/lingolog/internal/usecase"
	lingologv1 "github.com/lingolog/lingolog/pkg/api/lingolog/v1"
	"github.com/lingolog/lingolog/pkg/api/lingolog/v1/lingologv1connect"
)

var _ lingologv1connect.LogServiceHandler = (*LogServiceServer)(nil)

type LogServiceServer struct {
	lingologv1connect.UnimplementedLogServiceHandler
	uc usecase.LogUsecase
}

func NewLogServiceServer(uc usecase.LogUsecase) *LogServiceServer {
	return &LogServiceServer{uc: uc}
}

func (s *LogServiceServer) CreateLog(ctx context.Context, req *connect.Request[lingologv1.CreateLogRequest]) (*connect.Response[lingologv1.Log], error) {
	if req.Msg == nil {
		return nil, status.Error(codes.InvalidArgument, "log payload required")
	}

	result, err := s.uc.CreateLog(ctx, currentUserID(ctx), mapping.FromPbLogDraft(req.Msg))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbLog(result)), nil
}

func (s *LogServiceServer) ListLogs(ctx context.Context, req *connect.Request[lingologv1.ListLogsRequest]) (*connect.Response[lingologv1.ListLogsResponse], error) {
	if req.Msg == nil {
		return nil, status.Error(codes.InvalidArgument, "request required")
	}
	msg := req.Msg
	query := &repository.ListLogQuery{
		Pagination: convertPagination(msg.GetPagination()),
		FilterOrder: repository.FilterOrder{
			Filter:  msg.GetFilter(),
			OrderBy: msg.GetOrderBy(),
		},
		UserID: currentUserID(ctx),
	}
	items, total, err := s.uc.ListLogs(ctx, query)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}

	total32, err := safeInt32("total logs", total)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return connect.NewResponse(&lingologv1.ListLogsResponse{
		Logs: lo.Map(items, func(item entity.Log, _ int) *lingologv1.Log {
			return mapping.ToPbLog(&item)
		}),
		Pagination: &lingologv1.PaginationResponse{
			Total:  total32,
			PageNo: query.PageNo,
		},
	}), nil
}

func (s *LogServiceServer) DeleteLog(ctx context.Context, req *connect.Request[lingologv1.IDRequest]) (*connect.Response[emptypb.Empty], error) {
	if req.Msg == nil {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	if err := s.uc.DeleteLog(ctx, currentUserID(ctx), req.Msg.GetId()); err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&emptypb.Empty{}), nil
}

// UpdateLogRegistrations re-evaluates contest attachments for an existing log
// under the requested tracking mode.
func (s *LogServiceServer) UpdateLogRegistrations(ctx context.Context, req *connect.Request[lingologv1.UpdateLogRegistrationsRequest]) (*connect.Response[lingologv1.Log], error) {
	if req.Msg == nil || req.Msg.GetLogId() == "" {
		return nil, status.Error(codes.InvalidArgument, "log id required")
	}
	msg := req.Msg

	result, err := s.uc.UpdateLogRegistrations(ctx, currentUserID(ctx), msg.GetLogId(), entity.TrackingMode(msg.GetTrackingMode()), msg.GetRegistrationIds())
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbLog(result)), nil
}

func (s *LogServiceServer) GetConfigurationOptions(ctx context.Context, req *connect.Request[lingologv1.GetConfigurationOptionsRequest]) (*connect.Response[lingologv1.ConfigurationOptionsResponse], error) {
	if req.Msg == nil {
		return nil, status.Error(codes.InvalidArgument, "request required")
	}
	msg := req.Msg

	options, err := s.uc.ConfigurationOptions(ctx, currentUserID(ctx), entity.TrackingMode(msg.GetTrackingMode()), msg.ActivityId, msg.GetLanguageCode())
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbConfigurationOptions(options)), nil
}
