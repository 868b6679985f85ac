package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"member-query/internal/dto"
	"member-query/pkg/constants"
	pkgErrors "member-query/pkg/errors"
)

// sortableColumns 允许排序的会员字段
var sortableColumns = map[string]clause.Column{
	"id":       colMemberID,
	"username": colUsername,
	"age":      colAge,
}

// applySort 按给定顺序追加排序项，未知字段直接报错，不拼接进 SQL
func applySort(db *gorm.DB, orders []dto.SortOrder) (*gorm.DB, error) {
	for _, o := range orders {
		col, ok := sortableColumns[o.Property]
		if !ok {
			return nil, pkgErrors.ErrInvalidSort.WithErr(
				fmt.Errorf("unknown sort property %q", o.Property))
		}

		// NULLS FIRST/LAST 在 MySQL 中不可用，用 CASE 表达式统一实现
		switch o.Nulls {
		case constants.NullsLast:
			db = db.Order(nullRank(col, 1))
		case constants.NullsFirst:
			db = db.Order(nullRank(col, 0))
		}
		db = db.Order(clause.OrderByColumn{Column: col, Desc: o.IsDescending()})
	}
	return db, nil
}

func nullRank(col clause.Column, nullValue int) clause.OrderByColumn {
	sql := fmt.Sprintf("CASE WHEN %s.%s IS NULL THEN %d ELSE %d END", col.Table, col.Name, nullValue, 1-nullValue)
	return clause.OrderByColumn{Column: clause.Column{Name: sql, Raw: true}}
}
