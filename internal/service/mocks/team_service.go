package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"member-query/internal/dto"
)

// TeamService 模拟团队服务
type TeamService struct {
	mock.Mock
}

func (m *TeamService) Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	args := m.Called(ctx, req)
	return responseOrNil[*dto.TeamResponse](args, 0), args.Error(1)
}

func (m *TeamService) GetByID(ctx context.Context, id int64) (*dto.TeamResponse, error) {
	args := m.Called(ctx, id)
	return responseOrNil[*dto.TeamResponse](args, 0), args.Error(1)
}

func (m *TeamService) List(ctx context.Context, withMembers bool) ([]*dto.TeamResponse, error) {
	args := m.Called(ctx, withMembers)
	return responseOrNil[[]*dto.TeamResponse](args, 0), args.Error(1)
}

func (m *TeamService) Update(ctx context.Context, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	args := m.Called(ctx, req)
	return responseOrNil[*dto.TeamResponse](args, 0), args.Error(1)
}

func (m *TeamService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
