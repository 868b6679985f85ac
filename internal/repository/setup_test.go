package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"member-query/internal/model"
	"member-query/internal/pkg/config"
	"member-query/internal/pkg/database"
)

type fixture struct {
	db      *gorm.DB
	members MemberRepository
	teams   TeamRepository
	teamA   *model.Team
	teamB   *model.Team
}

func ptr[T any](v T) *T {
	return &v
}

// newFixture teamA: member1(10) member2(20), teamB: member3(30) member4(40)
func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{Driver: "sqlite", Database: ":memory:", AutoMigrate: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	f := &fixture{
		db:      db,
		members: NewMemberRepository(db),
		teams:   NewTeamRepository(db),
		teamA:   &model.Team{Name: "teamA"},
		teamB:   &model.Team{Name: "teamB"},
	}

	ctx := context.Background()
	require.NoError(t, f.teams.Create(ctx, f.teamA))
	require.NoError(t, f.teams.Create(ctx, f.teamB))
	f.insert(t, model.NewMember("member1", 10, f.teamA))
	f.insert(t, model.NewMember("member2", 20, f.teamA))
	f.insert(t, model.NewMember("member3", 30, f.teamB))
	f.insert(t, model.NewMember("member4", 40, f.teamB))
	return f
}

func (f *fixture) insert(t *testing.T, members ...*model.Member) {
	t.Helper()
	for _, m := range members {
		require.NoError(t, f.members.Create(context.Background(), m))
	}
}

// countQueries 统计之后执行的 SELECT 语句数
func (f *fixture) countQueries(t *testing.T) *int {
	t.Helper()
	n := 0
	err := f.db.Callback().Query().After("gorm:query").Register("test:count_queries", func(*gorm.DB) {
		n++
	})
	require.NoError(t, err)
	return &n
}

// captureSQL 记录之后执行的 SELECT 语句
func (f *fixture) captureSQL(t *testing.T) *[]string {
	t.Helper()
	var statements []string
	err := f.db.Callback().Query().After("gorm:query").Register("test:capture_sql", func(db *gorm.DB) {
		statements = append(statements, db.Statement.SQL.String())
	})
	require.NoError(t, err)
	return &statements
}
