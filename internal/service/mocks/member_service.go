package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"member-query/internal/dto"
)

// MemberService 模拟会员服务
type MemberService struct {
	mock.Mock
}

func (m *MemberService) Create(ctx context.Context, req *dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	args := m.Called(ctx, req)
	return responseOrNil[*dto.MemberResponse](args, 0), args.Error(1)
}

func (m *MemberService) GetByID(ctx context.Context, id int64) (*dto.MemberResponse, error) {
	args := m.Called(ctx, id)
	return responseOrNil[*dto.MemberResponse](args, 0), args.Error(1)
}

func (m *MemberService) Update(ctx context.Context, req *dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
	args := m.Called(ctx, req)
	return responseOrNil[*dto.MemberResponse](args, 0), args.Error(1)
}

func (m *MemberService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MemberService) ListSorted(ctx context.Context, orders []dto.SortOrder) ([]*dto.MemberResponse, error) {
	args := m.Called(ctx, orders)
	return responseOrNil[[]*dto.MemberResponse](args, 0), args.Error(1)
}

func (m *MemberService) Search(ctx context.Context, cond *dto.MemberSearchCondition) ([]dto.MemberTeamDto, error) {
	args := m.Called(ctx, cond)
	return responseOrNil[[]dto.MemberTeamDto](args, 0), args.Error(1)
}

func (m *MemberService) SearchByBuilder(ctx context.Context, cond *dto.MemberSearchCondition) ([]dto.MemberTeamDto, error) {
	args := m.Called(ctx, cond)
	return responseOrNil[[]dto.MemberTeamDto](args, 0), args.Error(1)
}

func (m *MemberService) SearchPage(ctx context.Context, cond *dto.MemberSearchCondition, mode string, pageable dto.Pageable) (*dto.Page[dto.MemberTeamDto], error) {
	args := m.Called(ctx, cond, mode, pageable)
	return responseOrNil[*dto.Page[dto.MemberTeamDto]](args, 0), args.Error(1)
}

func (m *MemberService) BulkUpdateUsername(ctx context.Context, req *dto.BulkUpdateUsernameRequest) (*dto.BulkResponse, error) {
	args := m.Called(ctx, req)
	return responseOrNil[*dto.BulkResponse](args, 0), args.Error(1)
}

func (m *MemberService) BulkIncrementAge(ctx context.Context, delta int) (*dto.BulkResponse, error) {
	args := m.Called(ctx, delta)
	return responseOrNil[*dto.BulkResponse](args, 0), args.Error(1)
}

func (m *MemberService) BulkDelete(ctx context.Context, req *dto.BulkDeleteRequest) (*dto.BulkResponse, error) {
	args := m.Called(ctx, req)
	return responseOrNil[*dto.BulkResponse](args, 0), args.Error(1)
}

// responseOrNil Return(nil, err) 时返回零值
func responseOrNil[T any](args mock.Arguments, index int) T {
	var zero T
	if v, ok := args.Get(index).(T); ok {
		return v
	}
	return zero
}
