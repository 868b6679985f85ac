package handler

import (
	"github.com/gin-gonic/gin"

	"member-query/internal/dto"
	"member-query/internal/service"
	"member-query/pkg/utils"
)

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// Search 条件搜索会员
// @Summary 条件搜索会员（谓词函数组合）
// @Tags Member
// @Accept json
// @Produce json
// @Param username query string false "用户名"
// @Param team_name query string false "团队名"
// @Param age_goe query int false "最小年龄（含）"
// @Param age_loe query int false "最大年龄（含）"
// @Success 200 {object} utils.Response{data=[]dto.MemberTeamDto}
// @Router /api/v1/members/search [get]
func (h *MemberHandler) Search(c *gin.Context) {
	var cond dto.MemberSearchCondition
	if err := c.ShouldBindQuery(&cond); err != nil {
		utils.BindError(c, err)
		return
	}

	content, err := h.memberService.Search(c.Request.Context(), &cond)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, content)
}

// SearchByBuilder 条件搜索会员
// @Summary 条件搜索会员（条件累加构建）
// @Tags Member
// @Accept json
// @Produce json
// @Param username query string false "用户名"
// @Param team_name query string false "团队名"
// @Param age_goe query int false "最小年龄（含）"
// @Param age_loe query int false "最大年龄（含）"
// @Success 200 {object} utils.Response{data=[]dto.MemberTeamDto}
// @Router /api/v1/members/search/builder [get]
func (h *MemberHandler) SearchByBuilder(c *gin.Context) {
	var cond dto.MemberSearchCondition
	if err := c.ShouldBindQuery(&cond); err != nil {
		utils.BindError(c, err)
		return
	}

	content, err := h.memberService.SearchByBuilder(c.Request.Context(), &cond)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, content)
}

// Page 分页搜索会员
// @Summary 分页搜索会员
// @Tags Member
// @Accept json
// @Produce json
// @Param username query string false "用户名"
// @Param team_name query string false "团队名"
// @Param age_goe query int false "最小年龄（含）"
// @Param age_loe query int false "最大年龄（含）"
// @Param offset query int false "偏移量"
// @Param limit query int false "每页数量，默认10"
// @Param sort query []string false "排序，如 age,desc 或 username,asc,nulls_last" collectionFormat(multi)
// @Param mode query string false "分页模式" Enums(simple, complex, count)
// @Success 200 {object} utils.PageResponse{data=[]dto.MemberTeamDto}
// @Router /api/v1/members/page [get]
func (h *MemberHandler) Page(c *gin.Context) {
	var cond dto.MemberSearchCondition
	if err := c.ShouldBindQuery(&cond); err != nil {
		utils.BindError(c, err)
		return
	}
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BindError(c, err)
		return
	}

	pageable, err := query.ToPageable()
	if err != nil {
		utils.Error(c, err)
		return
	}

	page, err := h.memberService.SearchPage(c.Request.Context(), &cond, query.GetMode(), pageable)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.PageSuccess(c, page.Content, page.Total, page.Offset, page.Limit)
}

// ListSorted 排序查询全部会员
// @Summary 排序查询全部会员
// @Tags Member
// @Accept json
// @Produce json
// @Param sort query []string false "排序，如 age,desc 或 username,asc,nulls_last" collectionFormat(multi)
// @Success 200 {object} utils.Response{data=[]dto.MemberResponse}
// @Router /api/v1/members/sorted [get]
func (h *MemberHandler) ListSorted(c *gin.Context) {
	orders, err := dto.ParseSort(c.QueryArray("sort"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	members, err := h.memberService.ListSorted(c.Request.Context(), orders)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, members)
}

// Create 创建会员
// @Summary 创建会员
// @Tags Member
// @Accept json
// @Produce json
// @Param request body dto.CreateMemberRequest true "创建会员请求"
// @Success 200 {object} utils.Response{data=dto.MemberResponse}
// @Router /api/v1/member [post]
func (h *MemberHandler) Create(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, member)
}

// GetByID 获取会员详情
// @Summary 获取会员详情
// @Tags Member
// @Accept json
// @Produce json
// @Param id query int64 true "会员ID"
// @Success 200 {object} utils.Response{data=dto.MemberResponse}
// @Router /api/v1/member [get]
func (h *MemberHandler) GetByID(c *gin.Context) {
	var req dto.IDQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	member, err := h.memberService.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, member)
}

// Update 更新会员
// @Summary 更新会员
// @Tags Member
// @Accept json
// @Produce json
// @Param request body dto.UpdateMemberRequest true "更新会员请求"
// @Success 200 {object} utils.Response{data=dto.MemberResponse}
// @Router /api/v1/member [put]
func (h *MemberHandler) Update(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	member, err := h.memberService.Update(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, member)
}

// Delete 删除会员
// @Summary 删除会员
// @Tags Member
// @Accept json
// @Produce json
// @Param id path int64 true "会员ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/member/{id} [delete]
func (h *MemberHandler) Delete(c *gin.Context) {
	var req dto.IDParam
	if err := c.ShouldBindUri(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	if err := h.memberService.Delete(c.Request.Context(), req.ID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, nil)
}

// BulkUpdateUsername 批量重置用户名
// @Summary 批量重置年龄小于指定值的会员用户名
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkUpdateUsernameRequest true "批量重置用户名请求"
// @Success 200 {object} utils.Response{data=dto.BulkResponse}
// @Router /api/v1/members/bulk/username [post]
func (h *MemberHandler) BulkUpdateUsername(c *gin.Context) {
	var req dto.BulkUpdateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	resp, err := h.memberService.BulkUpdateUsername(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, resp)
}

// BulkIncrementAge 批量增加年龄
// @Summary 全部会员年龄增加 delta
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkIncrementAgeRequest true "批量增加年龄请求"
// @Success 200 {object} utils.Response{data=dto.BulkResponse}
// @Router /api/v1/members/bulk/age [post]
func (h *MemberHandler) BulkIncrementAge(c *gin.Context) {
	var req dto.BulkIncrementAgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	resp, err := h.memberService.BulkIncrementAge(c.Request.Context(), req.Delta)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, resp)
}

// BulkDelete 批量删除
// @Summary 删除年龄大于指定值的会员
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkDeleteRequest true "批量删除请求"
// @Success 200 {object} utils.Response{data=dto.BulkResponse}
// @Router /api/v1/members/bulk/delete [post]
func (h *MemberHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	resp, err := h.memberService.BulkDelete(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, resp)
}
