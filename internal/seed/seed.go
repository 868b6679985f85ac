package seed

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"member-query/internal/model"
	"member-query/internal/repository"
)

// File 初始数据文件
type File struct {
	Teams   []TeamFixture   `yaml:"teams"`
	Members []MemberFixture `yaml:"members"` // 不属于任何团队的会员
}

type TeamFixture struct {
	Name    string          `yaml:"name"`
	Members []MemberFixture `yaml:"members"`
}

type MemberFixture struct {
	Username *string `yaml:"username"`
	Age      int     `yaml:"age"`
}

// Result 本次写入的数量
type Result struct {
	Teams   int
	Members int
}

// Load 读取初始数据文件
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取初始数据文件失败: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("解析初始数据文件失败: %w", err)
	}
	return &f, nil
}

// Seeder 写入初始数据，已存在的团队和会员跳过
// 有用户名的会员按用户名判重，无用户名的按年龄与所属团队判重
type Seeder struct {
	teams   repository.TeamRepository
	members repository.MemberRepository
	logger  *zap.Logger
}

func NewSeeder(teams repository.TeamRepository, members repository.MemberRepository, logger *zap.Logger) *Seeder {
	return &Seeder{teams: teams, members: members, logger: logger}
}

// Apply 写入初始数据
func (s *Seeder) Apply(ctx context.Context, f *File) (*Result, error) {
	result := &Result{}

	for _, tf := range f.Teams {
		team, err := s.teams.FindByName(ctx, tf.Name)
		if err != nil {
			return nil, err
		}
		if team == nil {
			team = &model.Team{Name: tf.Name}
			if err := s.teams.Create(ctx, team); err != nil {
				return nil, err
			}
			result.Teams++
		}

		for _, mf := range tf.Members {
			created, err := s.createMember(ctx, mf, team)
			if err != nil {
				return nil, err
			}
			if created {
				result.Members++
			}
		}
	}

	for _, mf := range f.Members {
		created, err := s.createMember(ctx, mf, nil)
		if err != nil {
			return nil, err
		}
		if created {
			result.Members++
		}
	}

	s.logger.Info("初始数据写入完成", zap.Int("teams", result.Teams), zap.Int("members", result.Members))
	return result, nil
}

// ApplyFile 读取并写入初始数据文件
func (s *Seeder) ApplyFile(ctx context.Context, path string) (*Result, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return s.Apply(ctx, f)
}

func (s *Seeder) createMember(ctx context.Context, mf MemberFixture, team *model.Team) (bool, error) {
	member := &model.Member{Username: mf.Username, Age: mf.Age}
	member.ChangeTeam(team)

	var (
		existing []*model.Member
		err      error
	)
	if mf.Username != nil {
		existing, err = s.members.FindByUsername(ctx, *mf.Username)
	} else {
		existing, err = s.members.FindNameless(ctx, mf.Age, member.TeamID)
	}
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	if err := s.members.Create(ctx, member); err != nil {
		return false, err
	}
	return true, nil
}
