package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"member-query/internal/dto"
	"member-query/internal/model"
)

var (
	colMemberID = clause.Column{Table: model.MemberTableName, Name: "id"}
	colUsername = clause.Column{Table: model.MemberTableName, Name: "username"}
	colAge      = clause.Column{Table: model.MemberTableName, Name: "age"}
	colTeamID   = clause.Column{Table: model.MemberTableName, Name: "team_id"}
	colTeamName = clause.Column{Table: model.TeamTableName, Name: "name"}
)

// hasText 空串与纯空白串视为未设置
func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// 以下谓词函数在条件未设置时返回 false，调用方不生成任何过滤条件

func usernameEq(username *string) (clause.Expression, bool) {
	if !hasText(username) {
		return nil, false
	}
	return clause.Eq{Column: colUsername, Value: *username}, true
}

// teamNameEq 过滤的是 left join 进来的团队名
func teamNameEq(teamName *string) (clause.Expression, bool) {
	if !hasText(teamName) {
		return nil, false
	}
	return clause.Eq{Column: colTeamName, Value: *teamName}, true
}

func ageGoe(ageGoe *int) (clause.Expression, bool) {
	if ageGoe == nil {
		return nil, false
	}
	return clause.Gte{Column: colAge, Value: *ageGoe}, true
}

func ageLoe(ageLoe *int) (clause.Expression, bool) {
	if ageLoe == nil {
		return nil, false
	}
	return clause.Lte{Column: colAge, Value: *ageLoe}, true
}

// searchPredicates 返回条件中已设置字段对应的谓词，结果按 AND 组合
func searchPredicates(cond *dto.MemberSearchCondition) []clause.Expression {
	if cond == nil {
		return nil
	}

	var predicates []clause.Expression
	add := func(expr clause.Expression, ok bool) {
		if ok {
			predicates = append(predicates, expr)
		}
	}
	add(usernameEq(cond.Username))
	add(teamNameEq(cond.TeamName))
	add(ageGoe(cond.AgeGoe))
	add(ageLoe(cond.AgeLoe))
	return predicates
}

func whereAll(db *gorm.DB, predicates []clause.Expression) *gorm.DB {
	for _, p := range predicates {
		db = db.Where(p)
	}
	return db
}
