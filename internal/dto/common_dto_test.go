package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "member-query/pkg/errors"
)

func TestParseSort(t *testing.T) {
	orders, err := ParseSort([]string{"age,desc", "username,asc,nulls_last", " id "})
	require.NoError(t, err)
	assert.Equal(t, []SortOrder{
		Desc("age"),
		Asc("username").NullsLast(),
		Asc("id"),
	}, orders)

	_, err = ParseSort([]string{"age,sideways"})
	assert.Equal(t, pkgErrors.CodeBadRequest, pkgErrors.CodeOf(err))
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidSortParam)

	_, err = ParseSort([]string{",desc"})
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidSortParam)
}

func TestPageable_Validate(t *testing.T) {
	assert.NoError(t, NewPageable(0, 10).Validate())
	assert.NoError(t, NewPageable(5, 1).Validate())

	for _, p := range []Pageable{NewPageable(-1, 10), NewPageable(0, 0), NewPageable(0, -3)} {
		err := p.Validate()
		assert.Error(t, err)
		assert.Equal(t, pkgErrors.CodeBadRequest, pkgErrors.CodeOf(err))
		assert.ErrorIs(t, err, pkgErrors.ErrInvalidPage)
	}
}

func TestPageQuery_ToPageable(t *testing.T) {
	q := PageQuery{Offset: 2, Sort: []string{"age,desc"}}
	p, err := q.ToPageable()
	require.NoError(t, err)
	assert.Equal(t, 2, p.Offset)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, []SortOrder{Desc("age")}, p.Sort)
	assert.Equal(t, "simple", q.GetMode())

	zero := 0
	q = PageQuery{Limit: &zero}
	p, err = q.ToPageable()
	require.NoError(t, err)
	assert.Error(t, p.Validate())
}

func TestNewPage(t *testing.T) {
	page := NewPage[int](nil, NewPageable(1, 2), 4)
	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
	assert.True(t, page.HasNext())

	page = NewPage([]int{3, 4}, NewPageable(2, 2), 4)
	assert.False(t, page.HasNext())
}
