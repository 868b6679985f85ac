package handler

import (
	"github.com/gin-gonic/gin"

	"member-query/internal/dto"
	"member-query/internal/service"
	"member-query/pkg/utils"
)

type TeamHandler struct {
	teamService service.TeamService
}

func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// Create 创建团队
// @Summary 创建团队
// @Tags Team
// @Accept json
// @Produce json
// @Param request body dto.CreateTeamRequest true "创建团队请求"
// @Success 200 {object} utils.Response{data=dto.TeamResponse}
// @Router /api/v1/team [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, team)
}

// GetByID 获取团队详情
// @Summary 获取团队详情（含成员）
// @Tags Team
// @Accept json
// @Produce json
// @Param id query int64 true "团队ID"
// @Success 200 {object} utils.Response{data=dto.TeamResponse}
// @Router /api/v1/team [get]
func (h *TeamHandler) GetByID(c *gin.Context) {
	var req dto.IDQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, team)
}

// List 获取团队列表
// @Summary 获取团队列表（按名称排序）
// @Tags Team
// @Accept json
// @Produce json
// @Param with_members query bool false "是否返回成员"
// @Success 200 {object} utils.Response{data=[]dto.TeamResponse}
// @Router /api/v1/teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	var query dto.ListTeamQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BindError(c, err)
		return
	}

	teams, err := h.teamService.List(c.Request.Context(), query.WithMembers)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, teams)
}

// Update 更新团队
// @Summary 更新团队
// @Tags Team
// @Accept json
// @Produce json
// @Param request body dto.UpdateTeamRequest true "更新团队请求"
// @Success 200 {object} utils.Response{data=dto.TeamResponse}
// @Router /api/v1/team [put]
func (h *TeamHandler) Update(c *gin.Context) {
	var req dto.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, team)
}

// Delete 删除团队
// @Summary 删除团队（成员保留，移出团队）
// @Tags Team
// @Accept json
// @Produce json
// @Param id path int64 true "团队ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/team/{id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
	var req dto.IDParam
	if err := c.ShouldBindUri(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), req.ID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, nil)
}
