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

var _ lingologv1connect.ContestServiceHandler = (*ContestServiceServer)(nil)

type ContestServiceServer struct {
	lingologv1connect.UnimplementedContestServiceHandler
	uc usecase.ContestUsecase
}

func NewContestServiceServer(uc usecase.ContestUsecase) *ContestServiceServer {
	return &ContestServiceServer{uc: uc}
}

func (s *ContestServiceServer) CreateContest(ctx context.Context, req *connect.Request[lingologv1.CreateContestRequest]) (*connect.Response[lingologv1.Contest], error) {
	if req.Msg == nil || req.Msg.Contest == nil {
		return nil, status.Error(codes.InvalidArgument, "contest payload required")
	}

	result, err := s.uc.CreateContest(ctx, mapping.FromPbContest(req.Msg.Contest))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbContest(result)), nil
}

func (s *ContestServiceServer) GetContest(ctx context.Context, req *connect.Request[lingologv1.IDRequest]) (*connect.Response[lingologv1.Contest], error) {
	if req.Msg == nil {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}

	result, err := s.uc.GetContest(ctx, req.Msg.GetId())
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbContest(result)), nil
}

func (s *ContestServiceServer) ListContests(ctx context.Context, req *connect.Request[lingologv1.ListContestsRequest]) (*connect.Response[lingologv1.ListContestsResponse], error) {
	if req.Msg == nil {
		return nil, status.Error(codes.InvalidArgument, "request required")
	}
	msg := req.Msg
	query := &repository.ListContestQuery{
		Pagination:     convertPagination(msg.GetPagination()),
		OfficialOnly:   msg.GetOfficialOnly(),
		IncludePrivate: msg.GetIncludePrivate(),
	}
	items, total, err := s.uc.ListContests(ctx, query)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}

	total32, err := safeInt32("total contests", total)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return connect.NewResponse(&lingologv1.ListContestsResponse{
		Contests: lo.Map(items, func(item entity.Contest, _ int) *lingologv1.Contest {
			return mapping.ToPbContest(&item)
		}),
		Pagination: &lingologv1.PaginationResponse{
			Total:  total32,
			PageNo: query.PageNo,
		},
	}), nil
}

func (s *ContestServiceServer) Register(ctx context.Context, req *connect.Request[lingologv1.RegisterRequest]) (*connect.Response[lingologv1.ContestRegistration], error) {
	if req.Msg == nil || req.Msg.GetContestId() == "" {
		return nil, status.Error(codes.InvalidArgument, "contest id required")
	}
	msg := req.Msg

	result, err := s.uc.Register(ctx, currentUserID(ctx), msg.GetDisplayName(), msg.GetContestId(), msg.GetLanguageCodes())
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbRegistration(result)), nil
}

func (s *ContestServiceServer) ListOngoingRegistrations(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[lingologv1.ListRegistrationsResponse], error) {
	items, err := s.uc.OngoingRegistrations(ctx, currentUserID(ctx))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}

	return connect.NewResponse(&lingologv1.ListRegistrationsResponse{
		Registrations: lo.Map(items, func(item entity.ContestRegistration, _ int) *lingologv1.ContestRegistration {
			return mapping.ToPbRegistration(&item)
		}),
	}), nil
}

func (s *ContestServiceServer) DeleteRegistration(ctx context.Context, req *connect.Request[lingologv1.IDRequest]) (*connect.Response[emptypb.Empty], error) {
	if req.Msg == nil {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	if err := s.uc.DeleteRegistration(ctx, currentUserID(ctx), req.Msg.GetId()); err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&emptypb.Empty{}), nil
}
