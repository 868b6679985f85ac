package repository

import (
	sq "github.com/Masterminds/squirrel"

	"member-query/internal/dto"
)

// builderPredicate 以累加方式组装搜索条件，与 searchPredicates 的过滤结果一致
func builderPredicate(cond *dto.MemberSearchCondition) sq.And {
	builder := sq.And{}
	if cond == nil {
		return builder
	}
	if hasText(cond.Username) {
		builder = append(builder, sq.Eq{"members.username": *cond.Username})
	}
	if hasText(cond.TeamName) {
		builder = append(builder, sq.Eq{"teams.name": *cond.TeamName})
	}
	if cond.AgeGoe != nil {
		builder = append(builder, sq.GtOrEq{"members.age": *cond.AgeGoe})
	}
	if cond.AgeLoe != nil {
		builder = append(builder, sq.LtOrEq{"members.age": *cond.AgeLoe})
	}
	return builder
}
