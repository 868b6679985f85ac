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
	"member-query/pkg/constants"
	pkgErrors "member-query/pkg/errors"
)

type MemberService interface {
	Create(ctx context.Context, req *dto.CreateMemberRequest) (*dto.MemberResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MemberResponse, error)
	Update(ctx context.Context, req *dto.UpdateMemberRequest) (*dto.MemberResponse, error)
	Delete(ctx context.Context, id int64) error
	ListSorted(ctx context.Context, orders []dto.SortOrder) ([]*dto.MemberResponse, error)

	Search(ctx context.Context, cond *dto.MemberSearchCondition) ([]dto.MemberTeamDto, error)
	SearchByBuilder(ctx context.Context, cond *dto.MemberSearchCondition) ([]dto.MemberTeamDto, error)
	// SearchPage mode 为 simple / complex / count，空串按 simple 处理
	SearchPage(ctx context.Context, cond *dto.MemberSearchCondition, mode string, pageable dto.Pageable) (*dto.Page[dto.MemberTeamDto], error)

	BulkUpdateUsername(ctx context.Context, req *dto.BulkUpdateUsernameRequest) (*dto.BulkResponse, error)
	BulkIncrementAge(ctx context.Context, delta int) (*dto.BulkResponse, error)
	BulkDelete(ctx context.Context, req *dto.BulkDeleteRequest) (*dto.BulkResponse, error)
}

type memberService struct {
	repo     repository.MemberRepository
	teamRepo repository.TeamRepository
	logger   *zap.Logger
}

func NewMemberService(repo repository.MemberRepository, teamRepo repository.TeamRepository, logger *zap.Logger) MemberService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &memberService{
		repo:     repo,
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (s *memberService) Create(ctx context.Context, req *dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	member := &model.Member{
		Username: req.Username,
		Age:      req.Age,
	}

	if req.TeamID != nil {
		team, err := s.findTeam(ctx, *req.TeamID)
		if err != nil {
			return nil, err
		}
		member.ChangeTeam(team)
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

func (s *memberService) GetByID(ctx context.Context, id int64) (*dto.MemberResponse, error) {
	member, err := s.findMember(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

func (s *memberService) Update(ctx context.Context, req *dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
	member, err := s.findMember(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		member.Username = req.Username
	}
	if req.Age != nil {
		member.Age = *req.Age
	}

	// clear_team 优先于 team_id
	if req.ClearTeam {
		member.ChangeTeam(nil)
	} else if req.TeamID != nil && (member.TeamID == nil || *member.TeamID != *req.TeamID) {
		team, err := s.findTeam(ctx, *req.TeamID)
		if err != nil {
			return nil, err
		}
		member.ChangeTeam(team)
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

func (s *memberService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkgErrors.ErrRecordNotFound
	}
	return nil
}

func (s *memberService) ListSorted(ctx context.Context, orders []dto.SortOrder) ([]*dto.MemberResponse, error) {
	members, err := s.repo.FindAllSorted(ctx, orders)
	if err != nil {
		return nil, err
	}
	return lo.Map(members, func(m *model.Member, _ int) *dto.MemberResponse {
		return toMemberResponse(m)
	}), nil
}

func (s *memberService) Search(ctx context.Context, cond *dto.MemberSearchCondition) ([]dto.MemberTeamDto, error) {
	content, err := s.repo.Search(ctx, cond)
	if err != nil {
		return nil, err
	}
	return lo.Ternary(content == nil, []dto.MemberTeamDto{}, content), nil
}

func (s *memberService) SearchByBuilder(ctx context.Context, cond *dto.MemberSearchCondition) ([]dto.MemberTeamDto, error) {
	content, err := s.repo.SearchByBuilder(ctx, cond)
	if err != nil {
		return nil, err
	}
	return lo.Ternary(content == nil, []dto.MemberTeamDto{}, content), nil
}

func (s *memberService) SearchPage(ctx context.Context, cond *dto.MemberSearchCondition, mode string, pageable dto.Pageable) (*dto.Page[dto.MemberTeamDto], error) {
	switch mode {
	case constants.PageModeSimple, "":
		return s.repo.SearchPageSimple(ctx, cond, pageable)
	case constants.PageModeComplex:
		return s.repo.SearchPageComplex(ctx, cond, pageable)
	case constants.PageModeCount:
		return s.repo.SearchPageCountQuery(ctx, cond, pageable)
	default:
		return nil, pkgErrors.ErrInvalidPageMode.WithErr(
			fmt.Errorf("unknown page mode %q", mode))
	}
}

func (s *memberService) BulkUpdateUsername(ctx context.Context, req *dto.BulkUpdateUsernameRequest) (*dto.BulkResponse, error) {
	affected, err := s.repo.BulkUpdateUsername(ctx, req.Username, req.AgeLessThan)
	if err != nil {
		return nil, err
	}
	s.logger.Info("批量修改用户名",
		zap.String("username", req.Username),
		zap.Int("age_less_than", req.AgeLessThan),
		zap.Int64("affected", affected))
	return &dto.BulkResponse{Affected: affected}, nil
}

func (s *memberService) BulkIncrementAge(ctx context.Context, delta int) (*dto.BulkResponse, error) {
	affected, err := s.repo.BulkIncrementAge(ctx, delta)
	if err != nil {
		return nil, err
	}
	s.logger.Info("批量修改年龄", zap.Int("delta", delta), zap.Int64("affected", affected))
	return &dto.BulkResponse{Affected: affected}, nil
}

func (s *memberService) BulkDelete(ctx context.Context, req *dto.BulkDeleteRequest) (*dto.BulkResponse, error) {
	affected, err := s.repo.BulkDelete(ctx, req.AgeGreaterThan)
	if err != nil {
		return nil, err
	}
	s.logger.Info("批量删除会员",
		zap.Int("age_greater_than", req.AgeGreaterThan),
		zap.Int64("affected", affected))
	return &dto.BulkResponse{Affected: affected}, nil
}

func (s *memberService) findMember(ctx context.Context, id int64) (*model.Member, error) {
	member, err := s.repo.FindByID(ctx, id, repository.WithTeam())
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeNotFound, "会员不存在", fmt.Errorf("member %d", id))
	}
	return member, nil
}

func (s *memberService) findTeam(ctx context.Context, id int64) (*model.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeNotFound, "团队不存在", fmt.Errorf("team %d", id))
	}
	return team, nil
}

// toMemberResponse 转换为响应对象
func toMemberResponse(m *model.Member) *dto.MemberResponse {
	resp := &dto.MemberResponse{
		ID:        m.ID,
		Username:  m.Username,
		Age:       m.Age,
		TeamID:    m.TeamID,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
	if m.Team != nil {
		resp.TeamName = &m.Team.Name
	}
	return resp
}
