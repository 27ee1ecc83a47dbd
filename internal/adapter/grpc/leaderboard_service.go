package grpc

import (
	"context"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lingolog/lingolog/internal/adapter/mapping"
	"github.com/lingolog/lingolog/internal/usecase"
	lingologv1 "github.com/lingolog/lingolog/pkg/api/lingolog/v1"
)

type LeaderboardServiceServer struct {
	lingologv1.UnimplementedLeaderboardServiceServer
	uc usecase.LeaderboardUsecase
}

func NewLeaderboardServiceServer(uc usecase.LeaderboardUsecase) *LeaderboardServiceServer {
	return &LeaderboardServiceServer{uc: uc}
}

func (s *LeaderboardServiceServer) GetLeaderboard(ctx context.Context, req *lingologv1.GetLeaderboardRequest) (*lingologv1.GetLeaderboardResponse, error) {
	if req == nil || req.GetContestId() == "" {
		return nil, status.Error(codes.InvalidArgument, "contest id required")
	}

	offset, err := offsetFromToken(req.GetPageToken())
	if err != nil {
		return nil, err
	}
	page, err := s.uc.ContestLeaderboard(ctx, &usecase.LeaderboardQuery{
		ContestID:    req.GetContestId(),
		LanguageCode: req.GetLanguageCode(),
		ActivityID:   req.GetActivityId(),
		Offset:       offset,
		PageSize:     req.GetPageSize(),
	})
	if err != nil {
		return nil, mapping.ToPbError(err)
	}

	resp := &lingologv1.GetLeaderboardResponse{
		TotalSize:     page.TotalSize,
		NextPageToken: page.NextPageToken,
	}
	for _, entry := range page.Entries {
		resp.Entries = append(resp.Entries, &lingologv1.LeaderboardEntry{
			Rank:            entry.Rank,
			UserId:          entry.UserID,
			UserDisplayName: entry.UserDisplayName,
			Score:           entry.Score,
			IsTie:           entry.IsTie,
		})
	}
	return resp, nil
}

// offsetFromToken decodes the row offset issued by the previous page. The
// offset is independent of page size, so clients may change page_size while
// iterating.
func offsetFromToken(token string) (int32, error) {
	if token == "" {
		return 0, nil
	}
	offset, err := strconv.ParseInt(token, 10, 32)
	if err != nil || offset < 0 {
		return 0, status.Error(codes.InvalidArgument, "malformed page token")
	}
	return int32(offset), nil
}
