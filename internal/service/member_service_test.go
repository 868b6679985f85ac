package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"member-query/internal/dto"
	"member-query/internal/model"
	"member-query/internal/pkg/config"
	"member-query/internal/pkg/database"
	"member-query/internal/repository"
	"member-query/pkg/constants"
	pkgErrors "member-query/pkg/errors"
)

func ptr[T any](v T) *T {
	return &v
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Driver: "sqlite", Database: ":memory:", AutoMigrate: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// seed teamA: member1(10) member2(20), teamB: member3(30) member4(40)
func seed(t *testing.T, db *gorm.DB) (teamA, teamB *model.Team) {
	t.Helper()
	ctx := context.Background()
	teams := repository.NewTeamRepository(db)
	members := repository.NewMemberRepository(db)

	teamA, teamB = &model.Team{Name: "teamA"}, &model.Team{Name: "teamB"}
	require.NoError(t, teams.Create(ctx, teamA))
	require.NoError(t, teams.Create(ctx, teamB))
	for i, team := range []*model.Team{teamA, teamA, teamB, teamB} {
		name := []string{"member1", "member2", "member3", "member4"}[i]
		require.NoError(t, members.Create(ctx, model.NewMember(name, (i+1)*10, team)))
	}
	return teamA, teamB
}

func newMemberService(t *testing.T) (MemberService, *observer.ObservedLogs, *model.Team, *model.Team) {
	t.Helper()
	db := openDB(t)
	teamA, teamB := seed(t, db)
	core, logs := observer.New(zap.InfoLevel)
	svc := NewMemberService(repository.NewMemberRepository(db), repository.NewTeamRepository(db), zap.New(core))
	return svc, logs, teamA, teamB
}

func TestMemberService_CreateAndGet(t *testing.T) {
	svc, _, teamA, _ := newMemberService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateMemberRequest{Username: ptr("member5"), Age: 50, TeamID: &teamA.ID})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "teamA", *created.TeamName)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "member5", *got.Username)
	assert.Equal(t, 50, got.Age)
	assert.Equal(t, teamA.ID, *got.TeamID)
	assert.Equal(t, "teamA", *got.TeamName)

	loner, err := svc.Create(ctx, &dto.CreateMemberRequest{Age: 1})
	require.NoError(t, err)
	assert.Nil(t, loner.Username)
	assert.Nil(t, loner.TeamID)

	_, err = svc.Create(ctx, &dto.CreateMemberRequest{Age: 1, TeamID: ptr(int64(999))})
	assert.Equal(t, pkgErrors.CodeNotFound, pkgErrors.CodeOf(err))

	_, err = svc.GetByID(ctx, 999)
	assert.Equal(t, pkgErrors.CodeNotFound, pkgErrors.CodeOf(err))
}

func TestMemberService_Update(t *testing.T) {
	svc, _, _, teamB := newMemberService(t)
	ctx := context.Background()

	updated, err := svc.Update(ctx, &dto.UpdateMemberRequest{ID: 1, Age: ptr(11), TeamID: &teamB.ID})
	require.NoError(t, err)
	assert.Equal(t, 11, updated.Age)
	assert.Equal(t, "member1", *updated.Username)
	assert.Equal(t, "teamB", *updated.TeamName)

	updated, err = svc.Update(ctx, &dto.UpdateMemberRequest{ID: 1, ClearTeam: true, TeamID: &teamB.ID})
	require.NoError(t, err)
	assert.Nil(t, updated.TeamID)
	assert.Nil(t, updated.TeamName)

	rows, err := svc.Search(ctx, &dto.MemberSearchCondition{Username: ptr("member1")})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].TeamName)
	assert.Equal(t, 11, rows[0].Age)

	_, err = svc.Update(ctx, &dto.UpdateMemberRequest{ID: 999})
	assert.Equal(t, pkgErrors.CodeNotFound, pkgErrors.CodeOf(err))
}

func TestMemberService_Delete(t *testing.T) {
	svc, _, _, _ := newMemberService(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), pkgErrors.ErrRecordNotFound)
}

func TestMemberService_Search(t *testing.T) {
	svc, _, _, _ := newMemberService(t)
	ctx := context.Background()

	rows, err := svc.Search(ctx, &dto.MemberSearchCondition{Username: ptr("nobody")})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	cond := &dto.MemberSearchCondition{TeamName: ptr("teamB"), AgeGoe: ptr(35)}
	rows, err = svc.Search(ctx, cond)
	require.NoError(t, err)
	built, err := svc.SearchByBuilder(ctx, cond)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, rows, built)
	assert.Equal(t, "member4", *rows[0].Username)
}

func TestMemberService_ListSorted(t *testing.T) {
	svc, _, _, _ := newMemberService(t)

	members, err := svc.ListSorted(context.Background(), []dto.SortOrder{dto.Desc("age")})
	require.NoError(t, err)
	require.Len(t, members, 4)
	assert.Equal(t, 40, members[0].Age)
	assert.Equal(t, 10, members[3].Age)
}

// pageSpy 记录 SearchPage 实际调用的分页方式
type pageSpy struct {
	repository.MemberRepository
	called string
}

func (s *pageSpy) SearchPageSimple(context.Context, *dto.MemberSearchCondition, dto.Pageable) (*dto.Page[dto.MemberTeamDto], error) {
	s.called = constants.PageModeSimple
	return &dto.Page[dto.MemberTeamDto]{}, nil
}

func (s *pageSpy) SearchPageComplex(context.Context, *dto.MemberSearchCondition, dto.Pageable) (*dto.Page[dto.MemberTeamDto], error) {
	s.called = constants.PageModeComplex
	return &dto.Page[dto.MemberTeamDto]{}, nil
}

func (s *pageSpy) SearchPageCountQuery(context.Context, *dto.MemberSearchCondition, dto.Pageable) (*dto.Page[dto.MemberTeamDto], error) {
	s.called = constants.PageModeCount
	return &dto.Page[dto.MemberTeamDto]{}, nil
}

func TestMemberService_SearchPage_Mode(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{mode: "", want: constants.PageModeSimple},
		{mode: constants.PageModeSimple, want: constants.PageModeSimple},
		{mode: constants.PageModeComplex, want: constants.PageModeComplex},
		{mode: constants.PageModeCount, want: constants.PageModeCount},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.mode, func(t *testing.T) {
			spy := &pageSpy{}
			svc := NewMemberService(spy, nil, nil)
			_, err := svc.SearchPage(context.Background(), nil, tt.mode, dto.NewPageable(0, 10))
			require.NoError(t, err)
			assert.Equal(t, tt.want, spy.called)
		})
	}

	spy := &pageSpy{}
	_, err := NewMemberService(spy, nil, nil).SearchPage(context.Background(), nil, "cursor", dto.NewPageable(0, 10))
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidPageMode)
	assert.Empty(t, spy.called)
}

func TestMemberService_SearchPage(t *testing.T) {
	svc, _, _, _ := newMemberService(t)

	page, err := svc.SearchPage(context.Background(), &dto.MemberSearchCondition{TeamName: ptr("teamA")},
		constants.PageModeComplex, dto.NewPageable(0, 1, dto.Asc("age")))
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "member1", *page.Content[0].Username)
	assert.Equal(t, int64(2), page.Total)
}

func TestMemberService_Bulk(t *testing.T) {
	svc, logs, _, _ := newMemberService(t)
	ctx := context.Background()

	resp, err := svc.BulkUpdateUsername(ctx, &dto.BulkUpdateUsernameRequest{Username: "renamed", AgeLessThan: 28})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Affected)

	resp, err = svc.BulkIncrementAge(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.Affected)

	resp, err = svc.BulkDelete(ctx, &dto.BulkDeleteRequest{AgeGreaterThan: 18})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Affected)

	resp, err = svc.BulkDelete(ctx, &dto.BulkDeleteRequest{AgeGreaterThan: 100})
	require.NoError(t, err)
	assert.Zero(t, resp.Affected)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "批量修改用户名", entries[0].Message)
	assert.Equal(t, int64(2), entries[0].ContextMap()["affected"])
	assert.Equal(t, int64(1), entries[1].ContextMap()["delta"])
	assert.Equal(t, int64(0), entries[3].ContextMap()["affected"])
}
