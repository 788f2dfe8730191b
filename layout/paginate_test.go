package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_SplitsIntoFullPagesPlusRemainder(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	pages := Paginate(items, 4)

	assert.Len(t, pages, 2)
	assert.Equal(t, []string{"a", "b", "c", "d"}, pages[0])
	assert.Equal(t, []string{"e"}, pages[1])
}

func TestPaginate_ExactMultiple(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}

	pages := Paginate(items, 3)

	assert.Len(t, pages, 2)
	assert.Len(t, pages[0], 3)
	assert.Len(t, pages[1], 3)
}

func TestPaginate_ZeroItemsZeroPages(t *testing.T) {
	assert.Empty(t, Paginate([]string{}, 4))
	assert.Empty(t, Paginate([]string(nil), 4))
}

func TestPaginate_PreservesOrder(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	pages := Paginate(items, 7)

	assert.Len(t, pages, 4) // ceil(23/7)
	var flat []int
	for i, page := range pages {
		if i < len(pages)-1 {
			assert.Len(t, page, 7)
		}
		flat = append(flat, page...)
	}
	assert.Equal(t, items, flat)
}
