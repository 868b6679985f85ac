package dto

// CreateTeamRequest 创建团队请求
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateTeamRequest 更新团队请求
type UpdateTeamRequest struct {
	ID   int64  `json:"id" binding:"required"`
	Name string `json:"name" binding:"required,max=100"`
}

// ListTeamQuery 团队列表请求
type ListTeamQuery struct {
	WithMembers bool `form:"with_members"`
}

// TeamResponse 团队响应
type TeamResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Members   []*MemberResponse `json:"members,omitempty"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}
