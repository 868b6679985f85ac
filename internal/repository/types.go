package repository

import "gorm.io/gorm"

type QueryOption func(*gorm.DB) *gorm.DB

func WithPreload(association string, conds ...interface{}) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(association, conds...)
	}
}

// WithTeam 查询会员时一并加载所属团队
func WithTeam() QueryOption {
	return WithPreload("Team")
}

// WithMembers 查询团队时一并加载成员
func WithMembers() QueryOption {
	return WithPreload("Members")
}

func applyOptions(db *gorm.DB, opts []QueryOption) *gorm.DB {
	for _, opt := range opts {
		db = opt(db)
	}
	return db
}
