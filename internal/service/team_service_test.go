package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-query/internal/dto"
	"member-query/internal/repository"
	pkgErrors "member-query/pkg/errors"
)

func TestTeamService(t *testing.T) {
	db := openDB(t)
	teamA, teamB := seed(t, db)
	svc := NewTeamService(repository.NewTeamRepository(db), nil)
	members := NewMemberService(repository.NewMemberRepository(db), repository.NewTeamRepository(db), nil)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		team, err := svc.Create(ctx, &dto.CreateTeamRequest{Name: "teamC"})
		require.NoError(t, err)
		assert.NotZero(t, team.ID)
		assert.Empty(t, team.Members)

		_, err = svc.Create(ctx, &dto.CreateTeamRequest{Name: "teamA"})
		assert.Equal(t, pkgErrors.CodeConflict, pkgErrors.CodeOf(err))
	})

	t.Run("get with members", func(t *testing.T) {
		team, err := svc.GetByID(ctx, teamA.ID)
		require.NoError(t, err)
		require.Len(t, team.Members, 2)
		assert.Equal(t, teamA.ID, *team.Members[0].TeamID)

		_, err = svc.GetByID(ctx, 999)
		assert.Equal(t, pkgErrors.CodeNotFound, pkgErrors.CodeOf(err))
	})

	t.Run("list", func(t *testing.T) {
		teams, err := svc.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, teams, 3)
		assert.Equal(t, "teamA", teams[0].Name)
		assert.Nil(t, teams[0].Members)

		teams, err = svc.List(ctx, true)
		require.NoError(t, err)
		assert.Len(t, teams[0].Members, 2)
		assert.Len(t, teams[1].Members, 2)
		assert.Empty(t, teams[2].Members)
	})

	t.Run("update", func(t *testing.T) {
		team, err := svc.Update(ctx, &dto.UpdateTeamRequest{ID: teamA.ID, Name: "teamA"})
		require.NoError(t, err)
		assert.Equal(t, "teamA", team.Name)

		_, err = svc.Update(ctx, &dto.UpdateTeamRequest{ID: teamA.ID, Name: "teamB"})
		assert.Equal(t, pkgErrors.CodeConflict, pkgErrors.CodeOf(err))

		_, err = svc.Update(ctx, &dto.UpdateTeamRequest{ID: 999, Name: "x"})
		assert.Equal(t, pkgErrors.CodeNotFound, pkgErrors.CodeOf(err))
	})

	t.Run("delete detaches members", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, teamB.ID))

		rows, err := members.Search(ctx, &dto.MemberSearchCondition{})
		require.NoError(t, err)
		assert.Len(t, rows, 4)

		member3, err := members.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.Nil(t, member3.TeamID)

		err = svc.Delete(ctx, teamB.ID)
		assert.Equal(t, pkgErrors.CodeNotFound, pkgErrors.CodeOf(err))
	})
}
