package connectrpc

import (
	"context"

	"github.com/lingolog/lingolog/internal/repository"
	lingologv1 "github.com/lingolog/lingolog/pkg/api/lingolog/v1"
)

const _maxPageSize = 10000

func convertPagination(p *lingologv1.PaginationRequest) repository.Pagination {
	pageNo := p.GetPageNo()
	if pageNo <= 0 {
		pageNo = 1
	}
	pageSize := p.GetPageSize()
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > _maxPageSize {
		pageSize = _maxPageSize
	}

	return repository.Pagination{PageNo: pageNo, PageSize: pageSize}
}

// currentUserID resolves the caller identity. Stubbed until the auth
// interceptor is wired in.
func currentUserID(_ context.Context) int64 {
	return 1000
}
