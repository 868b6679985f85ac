package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"member-query/internal/model"
	pkgErrors "member-query/pkg/errors"
)

type TeamRepository interface {
	Create(ctx context.Context, team *model.Team) error
	// FindByID / FindByName 记录不存在时返回 nil, nil
	FindByID(ctx context.Context, id int64, opts ...QueryOption) (*model.Team, error)
	FindByName(ctx context.Context, name string) (*model.Team, error)
	ListAll(ctx context.Context, opts ...QueryOption) ([]*model.Team, error)
	Update(ctx context.Context, team *model.Team) error
	// Delete 先将成员移出团队再删除团队，不删除成员
	Delete(ctx context.Context, id int64) error
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *model.Team) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(team).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建团队失败", err)
	}
	return nil
}

func (r *teamRepository) FindByID(ctx context.Context, id int64, opts ...QueryOption) (*model.Team, error) {
	var team model.Team
	err := applyOptions(r.db.WithContext(ctx), opts).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队失败", err)
	}
	return &team, nil
}

func (r *teamRepository) FindByName(ctx context.Context, name string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队失败", err)
	}
	return &team, nil
}

func (r *teamRepository) ListAll(ctx context.Context, opts ...QueryOption) ([]*model.Team, error) {
	var teams []*model.Team
	err := applyOptions(r.db.WithContext(ctx), opts).Order("name ASC").Find(&teams).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队列表失败", err)
	}
	return teams, nil
}

func (r *teamRepository) Update(ctx context.Context, team *model.Team) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(team).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新团队失败", err)
	}
	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Member{}).Where("team_id = ?", id).Update("team_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Team{}, id).Error
	})
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除团队失败", err)
	}
	return nil
}
