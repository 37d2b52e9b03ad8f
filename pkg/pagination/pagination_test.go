package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		size       int
		wantItems  []int
		wantPage   int
		wantPages  int
		wantPrev   bool
		wantNext   bool
	}{
		{name: "empty set yields one empty page", total: 0, page: 1, size: 10, wantItems: []int{}, wantPage: 1, wantPages: 1},
		{name: "single partial page", total: 3, page: 1, size: 10, wantItems: []int{1, 2, 3}, wantPage: 1, wantPages: 1},
		{name: "exact fit", total: 10, page: 1, size: 10, wantItems: seq(10), wantPage: 1, wantPages: 1},
		{name: "middle page", total: 25, page: 2, size: 10, wantItems: []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, wantPage: 2, wantPages: 3, wantPrev: true, wantNext: true},
		{name: "last page remainder", total: 25, page: 3, size: 10, wantItems: []int{21, 22, 23, 24, 25}, wantPage: 3, wantPages: 3, wantPrev: true},
		{name: "page past the end clamps to last", total: 25, page: 99, size: 10, wantItems: []int{21, 22, 23, 24, 25}, wantPage: 3, wantPages: 3, wantPrev: true},
		{name: "page zero clamps to first", total: 5, page: 0, size: 2, wantItems: []int{1, 2}, wantPage: 1, wantPages: 3, wantNext: true},
		{name: "negative page clamps to first", total: 5, page: -3, size: 2, wantItems: []int{1, 2}, wantPage: 1, wantPages: 3, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, meta := Paginate(seq(tt.total), tt.page, tt.size)
			assert.Equal(t, tt.wantItems, append([]int{}, items...))
			assert.Equal(t, tt.wantPage, meta.Page)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.TotalItems)
			assert.Equal(t, tt.wantPrev, meta.HasPrev)
			assert.Equal(t, tt.wantNext, meta.HasNext)
		})
	}
}

func TestPaginatePageCountIsCeil(t *testing.T) {
	for n := 0; n <= 31; n++ {
		_, meta := Paginate(seq(n), 1, 10)
		want := (n + 9) / 10
		if want == 0 {
			want = 1
		}
		require.Equal(t, want, meta.TotalPages, "n=%d", n)
	}
}

func TestPaginateDefaultSize(t *testing.T) {
	items, meta := Paginate(seq(15), 1, 0)
	assert.Len(t, items, DefaultPageSize)
	assert.Equal(t, DefaultPageSize, meta.PageSize)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestMetaNeighbours(t *testing.T) {
	_, meta := Paginate(seq(30), 2, 10)
	assert.Equal(t, 1, meta.PrevPage())
	assert.Equal(t, 3, meta.NextPage())

	_, first := Paginate(seq(30), 1, 10)
	assert.Equal(t, 1, first.PrevPage())

	_, last := Paginate(seq(30), 3, 10)
	assert.Equal(t, 3, last.NextPage())
}
