package model

const MemberTableName = "members"
const TeamTableName = "teams"

// Member 会员，可不属于任何团队
type Member struct {
	BaseModel
	Username *string `gorm:"size:100;index" json:"username"`
	Age      int     `gorm:"not null;default:0;index" json:"age"`
	TeamID   *int64  `gorm:"column:team_id;index" json:"team_id"`

	// Relations
	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

func (Member) TableName() string {
	return MemberTableName
}

// NewMember 创建会员，team 为 nil 表示不分配团队
func NewMember(username string, age int, team *Team) *Member {
	m := &Member{Username: &username, Age: age}
	if team != nil {
		m.ChangeTeam(team)
	}
	return m
}

// ChangeTeam 变更所属团队
func (m *Member) ChangeTeam(team *Team) {
	m.Team = team
	if team == nil {
		m.TeamID = nil
		return
	}
	id := team.ID
	m.TeamID = &id
}

// Team 团队，删除团队不会级联删除成员
type Team struct {
	BaseModel
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`

	Members []Member `gorm:"foreignKey:TeamID;references:ID" json:"members,omitempty"`
}

func (Team) TableName() string {
	return TeamTableName
}
