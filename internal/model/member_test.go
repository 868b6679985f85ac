package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMember(t *testing.T) {
	teamA := &Team{BaseModel: BaseModel{ID: 7}, Name: "teamA"}

	m := NewMember("member1", 10, teamA)
	assert.Equal(t, "member1", *m.Username)
	assert.Equal(t, 10, m.Age)
	assert.Equal(t, int64(7), *m.TeamID)
	assert.Same(t, teamA, m.Team)

	m.ChangeTeam(nil)
	assert.Nil(t, m.TeamID)
	assert.Nil(t, m.Team)

	assert.Nil(t, NewMember("loner", 20, nil).TeamID)
}
