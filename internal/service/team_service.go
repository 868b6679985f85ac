package service

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"member-query/internal/dto"
	"member-query/internal/model"
	"member-query/internal/repository"
	pkgErrors "member-query/pkg/errors"
)

type TeamService interface {
	Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.TeamResponse, error)
	List(ctx context.Context, withMembers bool) ([]*dto.TeamResponse, error)
	Update(ctx context.Context, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error)
	Delete(ctx context.Context, id int64) error
}

type teamService struct {
	repo   repository.TeamRepository
	logger *zap.Logger
}

func NewTeamService(repo repository.TeamRepository, logger *zap.Logger) TeamService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &teamService{
		repo:   repo,
		logger: logger,
	}
}

func (s *teamService) Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	if err := s.checkNameFree(ctx, req.Name); err != nil {
		return nil, err
	}

	team := &model.Team{Name: req.Name}
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

func (s *teamService) GetByID(ctx context.Context, id int64) (*dto.TeamResponse, error) {
	team, err := s.findTeam(ctx, id, repository.WithMembers())
	if err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

func (s *teamService) List(ctx context.Context, withMembers bool) ([]*dto.TeamResponse, error) {
	var opts []repository.QueryOption
	if withMembers {
		opts = append(opts, repository.WithMembers())
	}

	teams, err := s.repo.ListAll(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return lo.Map(teams, func(t *model.Team, _ int) *dto.TeamResponse {
		return toTeamResponse(t)
	}), nil
}

func (s *teamService) Update(ctx context.Context, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	team, err := s.findTeam(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	// 检查名称是否冲突
	if req.Name != team.Name {
		if err := s.checkNameFree(ctx, req.Name); err != nil {
			return nil, err
		}
		team.Name = req.Name
	}

	if err := s.repo.Update(ctx, team); err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

func (s *teamService) Delete(ctx context.Context, id int64) error {
	if _, err := s.findTeam(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("删除团队，成员已移出", zap.Int64("team_id", id))
	return nil
}

func (s *teamService) findTeam(ctx context.Context, id int64, opts ...repository.QueryOption) (*model.Team, error) {
	team, err := s.repo.FindByID(ctx, id, opts...)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeNotFound, "团队不存在", fmt.Errorf("team %d", id))
	}
	return team, nil
}

func (s *teamService) checkNameFree(ctx context.Context, name string) error {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return pkgErrors.New(pkgErrors.CodeConflict, fmt.Sprintf("团队 %s 已存在", name))
	}
	return nil
}

// toTeamResponse 转换为响应对象，未加载成员时 Members 为空
func toTeamResponse(team *model.Team) *dto.TeamResponse {
	resp := &dto.TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		CreatedAt: team.CreatedAt.Format(time.RFC3339),
		UpdatedAt: team.UpdatedAt.Format(time.RFC3339),
	}
	if len(team.Members) > 0 {
		resp.Members = lo.Map(team.Members, func(m model.Member, _ int) *dto.MemberResponse {
			return toMemberResponse(&m)
		})
	}
	return resp
}
