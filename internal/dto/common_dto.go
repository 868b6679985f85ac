package dto

import (
	"fmt"
	"strings"

	"member-query/pkg/constants"
	pkgErrors "member-query/pkg/errors"
)

const defaultLimit = 10

// SortOrder 单个排序字段
type SortOrder struct {
	Property  string
	Direction string // asc, desc
	Nulls     string // "", nulls_first, nulls_last
}

// Asc 升序
func Asc(property string) SortOrder {
	return SortOrder{Property: property, Direction: constants.SortAsc}
}

// Desc 降序
func Desc(property string) SortOrder {
	return SortOrder{Property: property, Direction: constants.SortDesc}
}

// NullsLast 空值排在最后
func (o SortOrder) NullsLast() SortOrder {
	o.Nulls = constants.NullsLast
	return o
}

// NullsFirst 空值排在最前
func (o SortOrder) NullsFirst() SortOrder {
	o.Nulls = constants.NullsFirst
	return o
}

// IsDescending 是否降序
func (o SortOrder) IsDescending() bool {
	return o.Direction == constants.SortDesc
}

// Pageable 分页请求，偏移量分页
type Pageable struct {
	Offset int
	Limit  int
	Sort   []SortOrder
}

// NewPageable 创建分页请求
func NewPageable(offset, limit int, sort ...SortOrder) Pageable {
	return Pageable{Offset: offset, Limit: limit, Sort: sort}
}

// Validate 分页参数校验，不合法时不执行查询
func (p Pageable) Validate() error {
	if p.Offset < 0 {
		return pkgErrors.ErrInvalidPage.WithErr(
			fmt.Errorf("offset must not be negative: %d", p.Offset))
	}
	if p.Limit <= 0 {
		return pkgErrors.ErrInvalidPage.WithErr(
			fmt.Errorf("limit must be positive: %d", p.Limit))
	}
	return nil
}

// Page 分页结果
type Page[T any] struct {
	Content []T   `json:"content"`
	Total   int64 `json:"total"`
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
}

// NewPage 创建分页结果
func NewPage[T any](content []T, pageable Pageable, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	return &Page[T]{
		Content: content,
		Total:   total,
		Offset:  pageable.Offset,
		Limit:   pageable.Limit,
	}
}

// HasNext 是否还有下一页
func (p *Page[T]) HasNext() bool {
	return int64(p.Offset+len(p.Content)) < p.Total
}

// PageQuery 分页查询参数
type PageQuery struct {
	Offset int      `form:"offset" binding:"gte=0"`                              // 可选：偏移量，默认0
	Limit  *int     `form:"limit"`                                               // 可选：每页数量，不传默认为10
	Sort   []string `form:"sort"`                                                // 可选：age,desc / username,asc,nulls_last
	Mode   string   `form:"mode" binding:"omitempty,oneof=simple complex count"` // 可选：分页查询模式
}

// GetLimit 获取每页数量
func (p *PageQuery) GetLimit() int {
	if p.Limit == nil {
		return defaultLimit
	}
	return *p.Limit
}

// GetMode 获取分页模式
func (p *PageQuery) GetMode() string {
	if p.Mode == "" {
		return constants.PageModeSimple
	}
	return p.Mode
}

// ToPageable 转换为分页请求
func (p *PageQuery) ToPageable() (Pageable, error) {
	sort, err := ParseSort(p.Sort)
	if err != nil {
		return Pageable{}, err
	}
	return NewPageable(p.Offset, p.GetLimit(), sort...), nil
}

// ParseSort 解析排序参数，格式: 字段[,asc|desc][,nulls_first|nulls_last]
func ParseSort(values []string) ([]SortOrder, error) {
	orders := make([]SortOrder, 0, len(values))
	for _, value := range values {
		parts := strings.Split(value, ",")
		property := strings.TrimSpace(parts[0])
		if property == "" {
			return nil, pkgErrors.ErrInvalidSortParam.WithErr(
				fmt.Errorf("empty sort property in %q", value))
		}

		order := Asc(property)
		for _, part := range parts[1:] {
			switch strings.ToLower(strings.TrimSpace(part)) {
			case constants.SortAsc:
				order.Direction = constants.SortAsc
			case constants.SortDesc:
				order.Direction = constants.SortDesc
			case constants.NullsFirst:
				order.Nulls = constants.NullsFirst
			case constants.NullsLast:
				order.Nulls = constants.NullsLast
			default:
				return nil, pkgErrors.ErrInvalidSortParam.WithErr(
					fmt.Errorf("unknown sort option %q in %q", part, value))
			}
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// IDParam ID参数
type IDParam struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// IDQuery ID查询参数
type IDQuery struct {
	ID int64 `form:"id" binding:"required,min=1"`
}
