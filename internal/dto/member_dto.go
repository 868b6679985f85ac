package dto

// MemberSearchCondition 会员搜索条件，字段均为可选，未设置时不参与过滤
type MemberSearchCondition struct {
	Username *string `form:"username" json:"username"`
	TeamName *string `form:"team_name" json:"team_name"`
	AgeGoe   *int    `form:"age_goe" json:"age_goe" binding:"omitempty,gte=0"`
	AgeLoe   *int    `form:"age_loe" json:"age_loe" binding:"omitempty,gte=0"`
}

// MemberTeamDto 会员与团队的扁平投影，无团队时团队字段为 nil
type MemberTeamDto struct {
	MemberID int64   `gorm:"column:member_id" json:"member_id"`
	Username *string `gorm:"column:username" json:"username"`
	Age      int     `gorm:"column:age" json:"age"`
	TeamID   *int64  `gorm:"column:team_id" json:"team_id"`
	TeamName *string `gorm:"column:team_name" json:"team_name"`
}

// CreateMemberRequest 创建会员请求
type CreateMemberRequest struct {
	Username *string `json:"username" binding:"omitempty,max=100"`
	Age      int     `json:"age" binding:"gte=0"`
	TeamID   *int64  `json:"team_id" binding:"omitempty,min=1"`
}

// UpdateMemberRequest 更新会员请求，ClearTeam 为 true 时移出团队
type UpdateMemberRequest struct {
	ID        int64   `json:"id" binding:"required,min=1"`
	Username  *string `json:"username" binding:"omitempty,max=100"`
	Age       *int    `json:"age" binding:"omitempty,gte=0"`
	TeamID    *int64  `json:"team_id" binding:"omitempty,min=1"`
	ClearTeam bool    `json:"clear_team"`
}

// MemberResponse 会员响应
type MemberResponse struct {
	ID        int64   `json:"id"`
	Username  *string `json:"username"`
	Age       int     `json:"age"`
	TeamID    *int64  `json:"team_id"`
	TeamName  *string `json:"team_name,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// BulkUpdateUsernameRequest 批量重置用户名
type BulkUpdateUsernameRequest struct {
	Username    string `json:"username" binding:"required,max=100"`
	AgeLessThan int    `json:"age_less_than"`
}

// BulkIncrementAgeRequest 批量增加年龄
type BulkIncrementAgeRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// BulkDeleteRequest 批量删除
type BulkDeleteRequest struct {
	AgeGreaterThan int `json:"age_greater_than"`
}

// BulkResponse 批量操作结果
type BulkResponse struct {
	Affected int64 `json:"affected"`
}
