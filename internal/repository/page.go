package repository

import (
	"member-query/internal/dto"
)

// getPage 首页且内容不足一页时总数就是内容条数，不执行 countFn
func getPage[T any](content []T, pageable dto.Pageable, countFn func() (int64, error)) (*dto.Page[T], error) {
	if pageable.Offset == 0 && len(content) < pageable.Limit {
		return dto.NewPage(content, pageable, int64(len(content))), nil
	}

	total, err := countFn()
	if err != nil {
		return nil, err
	}
	return dto.NewPage(content, pageable, total), nil
}
