package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kas-dashboard-svc/internal/models"
)

func TestTotalPagesIsCeiling(t *testing.T) {
	for size := 1; size <= 12; size++ {
		for total := int64(0); total <= 60; total++ {
			got := TotalPages(total, size)
			want := int(total) / size
			if int(total)%size != 0 {
				want++
			}
			require.Equal(t, want, got, "total=%d size=%d", total, size)
		}
	}
}

func TestHasNextHasPrevious(t *testing.T) {
	for totalPages := 0; totalPages < 6; totalPages++ {
		for page := 0; page < 6; page++ {
			assert.Equal(t, page+1 < totalPages, HasNext(page, totalPages))
			assert.Equal(t, page > 0, HasPrevious(page))
		}
	}
}

func TestSetSizeResetsPage(t *testing.T) {
	s := NewState(10)
	s.Apply(models.PageMeta{Page: 3, Size: 10, TotalItems: 100, TotalPages: 10, HasNext: true, HasPrevious: true})
	require.Equal(t, 3, s.Page)

	require.NoError(t, s.SetSize(20))
	assert.Equal(t, 0, s.Page)
	assert.Equal(t, 20, s.Size)

	assert.ErrorIs(t, s.SetSize(0), ErrInvalidSize)
	assert.Equal(t, 20, s.Size)
}

func TestSetPageBounds(t *testing.T) {
	s := NewState(10)
	require.NoError(t, s.SetPage(0), "page 0 is always accepted before anything loaded")
	assert.ErrorIs(t, s.SetPage(1), ErrPageOutOfRange)

	s.Apply(models.PageMeta{Page: 0, Size: 10, TotalItems: 25, TotalPages: 3, HasNext: true})
	require.NoError(t, s.SetPage(2))
	assert.Equal(t, 2, s.Page)
	assert.ErrorIs(t, s.SetPage(3), ErrPageOutOfRange)
	assert.ErrorIs(t, s.SetPage(-1), ErrPageOutOfRange)
	assert.Equal(t, 2, s.Page)
}

func TestNextPreviousFollowFlags(t *testing.T) {
	s := NewState(10)
	assert.ErrorIs(t, s.Next(), ErrPageOutOfRange)
	assert.ErrorIs(t, s.Previous(), ErrPageOutOfRange)

	s.Apply(models.PageMeta{Page: 1, Size: 10, TotalItems: 30, TotalPages: 3, HasNext: true, HasPrevious: true})
	require.NoError(t, s.Next())
	assert.Equal(t, 2, s.Page)
	require.NoError(t, s.Previous())
	assert.Equal(t, 1, s.Page)
}

func TestApplyOverwritesMetadataKeepsSize(t *testing.T) {
	s := NewState(10)
	s.Apply(models.PageMeta{Page: 4, Size: 5, TotalItems: 99, TotalPages: 7, HasNext: false, HasPrevious: true})

	assert.Equal(t, State{Page: 4, Size: 10, TotalItems: 99, TotalPages: 7, HasNext: false, HasPrevious: true}, s)

	s.Apply(models.PageMeta{Page: 0, TotalItems: 0, TotalPages: 0})
	assert.Equal(t, 10, s.Size)
	assert.Equal(t, 0, s.Page)
	assert.Zero(t, s.TotalPages)
}

func TestValidSize(t *testing.T) {
	assert.True(t, ValidSize(10))
	assert.True(t, ValidSize(100))
	assert.False(t, ValidSize(7))
}
