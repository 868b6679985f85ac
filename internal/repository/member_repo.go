package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"member-query/internal/dto"
	"member-query/internal/model"
	pkgErrors "member-query/pkg/errors"
)

const joinTeam = "LEFT JOIN teams ON teams.id = members.team_id"

// memberTeamColumns MemberTeamDto 的投影列，不查询实体的其它字段
var memberTeamColumns = strings.Join([]string{
	"members.id AS member_id",
	"members.username AS username",
	"members.age AS age",
	"teams.id AS team_id",
	"teams.name AS team_name",
}, ", ")

// memberTeamRow 单次查询分页时附带窗口函数计算的总数
type memberTeamRow struct {
	dto.MemberTeamDto
	TotalCount int64 `gorm:"column:total_count"`
}

type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	// FindByID 记录不存在时返回 nil, nil
	FindByID(ctx context.Context, id int64, opts ...QueryOption) (*model.Member, error)
	FindAll(ctx context.Context) ([]*model.Member, error)
	FindByUsername(ctx context.Context, username string) ([]*model.Member, error)
	// FindNameless 查询无用户名且年龄、团队相同的会员，teamID 为 nil 表示不属于任何团队
	FindNameless(ctx context.Context, age int, teamID *int64) ([]*model.Member, error)
	// FindAllSorted 按排序参数查询全部会员实体
	FindAllSorted(ctx context.Context, orders []dto.SortOrder) ([]*model.Member, error)
	Update(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, id int64) (int64, error)

	Search(ctx context.Context, cond *dto.MemberSearchCondition) ([]dto.MemberTeamDto, error)
	SearchByBuilder(ctx context.Context, cond *dto.MemberSearchCondition) ([]dto.MemberTeamDto, error)
	SearchPageSimple(ctx context.Context, cond *dto.MemberSearchCondition, pageable dto.Pageable) (*dto.Page[dto.MemberTeamDto], error)
	SearchPageComplex(ctx context.Context, cond *dto.MemberSearchCondition, pageable dto.Pageable) (*dto.Page[dto.MemberTeamDto], error)
	SearchPageCountQuery(ctx context.Context, cond *dto.MemberSearchCondition, pageable dto.Pageable) (*dto.Page[dto.MemberTeamDto], error)

	BulkUpdateUsername(ctx context.Context, username string, ageLessThan int) (int64, error)
	BulkIncrementAge(ctx context.Context, delta int) (int64, error)
	BulkDelete(ctx context.Context, ageGreaterThan int) (int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(member).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建会员失败", err)
	}
	return nil
}

func (r *memberRepository) FindByID(ctx context.Context, id int64, opts ...QueryOption) (*model.Member, error) {
	var member model.Member
	err := applyOptions(r.db.WithContext(ctx), opts).First(&member, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询会员失败", err)
	}
	return &member, nil
}

func (r *memberRepository) FindAll(ctx context.Context) ([]*model.Member, error) {
	var members []*model.Member
	if err := r.db.WithContext(ctx).Find(&members).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询会员列表失败", err)
	}
	return members, nil
}

func (r *memberRepository) FindByUsername(ctx context.Context, username string) ([]*model.Member, error) {
	var members []*model.Member
	err := r.db.WithContext(ctx).Where(clause.Eq{Column: colUsername, Value: username}).Find(&members).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询会员列表失败", err)
	}
	return members, nil
}

func (r *memberRepository) FindNameless(ctx context.Context, age int, teamID *int64) ([]*model.Member, error) {
	var team any
	if teamID != nil {
		team = *teamID
	}

	var members []*model.Member
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: colUsername, Value: nil}).
		Where(clause.Eq{Column: colAge, Value: age}).
		Where(clause.Eq{Column: colTeamID, Value: team}).
		Find(&members).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询会员列表失败", err)
	}
	return members, nil
}

func (r *memberRepository) FindAllSorted(ctx context.Context, orders []dto.SortOrder) ([]*model.Member, error) {
	query, err := applySort(r.db.WithContext(ctx).Model(&model.Member{}), orders)
	if err != nil {
		return nil, err
	}

	var members []*model.Member
	if err := query.Find(&members).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询会员列表失败", err)
	}
	return members, nil
}

func (r *memberRepository) Update(ctx context.Context, member *model.Member) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(member).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新会员失败", err)
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Member{}, id)
	if result.Error != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除会员失败", result.Error)
	}
	return result.RowsAffected, nil
}

// searchQuery 每次调用都生成独立的语句: members left join teams + 搜索条件
func (r *memberRepository) searchQuery(ctx context.Context, cond *dto.MemberSearchCondition) *gorm.DB {
	query := r.db.WithContext(ctx).
		Table(model.MemberTableName).
		Joins(joinTeam)
	return whereAll(query, searchPredicates(cond))
}

func (r *memberRepository) Search(ctx context.Context, cond *dto.MemberSearchCondition) ([]dto.MemberTeamDto, error) {
	var content []dto.MemberTeamDto
	err := r.searchQuery(ctx, cond).
		Select(memberTeamColumns).
		Find(&content).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "搜索会员失败", err)
	}
	return content, nil
}

func (r *memberRepository) SearchByBuilder(ctx context.Context, cond *dto.MemberSearchCondition) ([]dto.MemberTeamDto, error) {
	query := r.db.WithContext(ctx).
		Table(model.MemberTableName).
		Joins(joinTeam).
		Select(memberTeamColumns)

	if builder := builderPredicate(cond); len(builder) > 0 {
		sql, args, err := builder.ToSql()
		if err != nil {
			return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "构建查询条件失败", err)
		}
		query = query.Where(sql, args...)
	}

	var content []dto.MemberTeamDto
	if err := query.Find(&content).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "搜索会员失败", err)
	}
	return content, nil
}

// SearchPageSimple 内容与总数一次查询返回，总数由 COUNT(*) OVER() 计算，MySQL 需 8.0 及以上
func (r *memberRepository) SearchPageSimple(ctx context.Context, cond *dto.MemberSearchCondition, pageable dto.Pageable) (*dto.Page[dto.MemberTeamDto], error) {
	if err := pageable.Validate(); err != nil {
		return nil, err
	}

	query, err := applySort(r.searchQuery(ctx, cond), pageable.Sort)
	if err != nil {
		return nil, err
	}

	var rows []memberTeamRow
	err = query.
		Select(memberTeamColumns + ", COUNT(*) OVER() AS total_count").
		Offset(pageable.Offset).
		Limit(pageable.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "分页搜索会员失败", err)
	}

	content := make([]dto.MemberTeamDto, len(rows))
	for i, row := range rows {
		content[i] = row.MemberTeamDto
	}

	if len(rows) > 0 {
		return dto.NewPage(content, pageable, rows[0].TotalCount), nil
	}
	if pageable.Offset == 0 {
		return dto.NewPage(content, pageable, 0), nil
	}
	// 偏移量越界时没有行可以带回总数
	total, err := r.count(ctx, cond)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(content, pageable, total), nil
}

// SearchPageComplex 内容查询与总数查询分开执行
func (r *memberRepository) SearchPageComplex(ctx context.Context, cond *dto.MemberSearchCondition, pageable dto.Pageable) (*dto.Page[dto.MemberTeamDto], error) {
	content, err := r.searchContent(ctx, cond, pageable)
	if err != nil {
		return nil, err
	}

	total, err := r.count(ctx, cond)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(content, pageable, total), nil
}

// SearchPageCountQuery 同 SearchPageComplex，但首页不足一页时省略总数查询
func (r *memberRepository) SearchPageCountQuery(ctx context.Context, cond *dto.MemberSearchCondition, pageable dto.Pageable) (*dto.Page[dto.MemberTeamDto], error) {
	content, err := r.searchContent(ctx, cond, pageable)
	if err != nil {
		return nil, err
	}

	return getPage(content, pageable, func() (int64, error) {
		return r.count(ctx, cond)
	})
}

func (r *memberRepository) searchContent(ctx context.Context, cond *dto.MemberSearchCondition, pageable dto.Pageable) ([]dto.MemberTeamDto, error) {
	if err := pageable.Validate(); err != nil {
		return nil, err
	}

	query, err := applySort(r.searchQuery(ctx, cond), pageable.Sort)
	if err != nil {
		return nil, err
	}

	var content []dto.MemberTeamDto
	err = query.
		Select(memberTeamColumns).
		Offset(pageable.Offset).
		Limit(pageable.Limit).
		Find(&content).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "分页搜索会员失败", err)
	}
	return content, nil
}

// count 与内容查询条件相同，只统计 members.id
func (r *memberRepository) count(ctx context.Context, cond *dto.MemberSearchCondition) (int64, error) {
	var total int64
	if err := r.searchQuery(ctx, cond).Select("members.id").Count(&total).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计会员失败", err)
	}
	return total, nil
}

func (r *memberRepository) BulkUpdateUsername(ctx context.Context, username string, ageLessThan int) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Member{}).
		Where(clause.Lt{Column: clause.Column{Name: "age"}, Value: ageLessThan}).
		Update("username", username)
	if result.Error != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "批量修改用户名失败", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *memberRepository) BulkIncrementAge(ctx context.Context, delta int) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&model.Member{}).
		Update("age", gorm.Expr("age + ?", delta))
	if result.Error != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "批量修改年龄失败", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *memberRepository) BulkDelete(ctx context.Context, ageGreaterThan int) (int64, error) {
	result := r.db.WithContext(ctx).
		Where(clause.Gt{Column: clause.Column{Name: "age"}, Value: ageGreaterThan}).
		Delete(&model.Member{})
	if result.Error != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "批量删除会员失败", result.Error)
	}
	return result.RowsAffected, nil
}
