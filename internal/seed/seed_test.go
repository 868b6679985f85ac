package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"member-query/internal/dto"
	"member-query/internal/pkg/config"
	"member-query/internal/pkg/database"
	"member-query/internal/repository"
)

func newSeeder(t *testing.T) (*Seeder, repository.MemberRepository) {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Driver: "sqlite", Database: ":memory:", AutoMigrate: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	members := repository.NewMemberRepository(db)
	return NewSeeder(repository.NewTeamRepository(db), members, zap.NewNop()), members
}

func TestLoad(t *testing.T) {
	f, err := Load(filepath.Join("..", "..", "configs", "seed.yaml"))
	require.NoError(t, err)
	require.Len(t, f.Teams, 2)
	assert.Equal(t, "teamA", f.Teams[0].Name)
	require.Len(t, f.Teams[0].Members, 2)
	assert.Equal(t, "member1", *f.Teams[0].Members[0].Username)
	require.Len(t, f.Members, 2)
	assert.Nil(t, f.Members[1].Username)
	assert.Equal(t, 60, f.Members[1].Age)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("teams: [\n"), 0o600))
	_, err = Load(broken)
	assert.Error(t, err)
}

func TestSeeder_ApplyFile(t *testing.T) {
	s, members := newSeeder(t)
	ctx := context.Background()
	path := filepath.Join("..", "..", "configs", "seed.yaml")

	result, err := s.ApplyFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, &Result{Teams: 2, Members: 6}, result)

	rows, err := members.Search(ctx, &dto.MemberSearchCondition{TeamName: ptr("teamB")})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = members.Search(ctx, &dto.MemberSearchCondition{AgeGoe: ptr(50)})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Nil(t, row.TeamName)
	}

	// 再次写入时已存在的团队和会员全部跳过
	result, err = s.ApplyFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, &Result{Teams: 0, Members: 0}, result)

	all, err := members.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestSeeder_ApplyNameless(t *testing.T) {
	s, members := newSeeder(t)
	ctx := context.Background()

	f := &File{
		Teams:   []TeamFixture{{Name: "teamA", Members: []MemberFixture{{Age: 60}}}},
		Members: []MemberFixture{{Age: 60}, {Age: 70}},
	}
	// 年龄相同但团队不同的无名会员互不影响
	result, err := s.Apply(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, &Result{Teams: 1, Members: 3}, result)

	f.Members = append(f.Members, MemberFixture{Age: 80})
	result, err = s.Apply(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, &Result{Teams: 0, Members: 1}, result)

	all, err := members.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func ptr[T any](v T) *T {
	return &v
}
