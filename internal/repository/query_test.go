package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	id   int
	name string
	tag  string
}

func TestRunQueryFiltersBeforeSearchBeforeSortBeforePaginate(t *testing.T) {
	records := []record{
		{1, "Alpha", "x"},
		{2, "beta", "y"},
		{3, "ALBATROSS", "x"},
		{4, "gamma", "x"},
		{5, "alpine", "x"},
	}

	items, total := runQuery(records, query[record]{
		filters: []func(record) bool{func(r record) bool { return r.tag == "x" }},
		search:  "al",
		fields:  func(r record) []string { return []string{r.name} },
		less:    func(a, b record) bool { return a.id > b.id },
		params:  ListParams{Page: 1, Limit: 2},
	})

	// tag filter drops 2, search keeps Alpha/ALBATROSS/alpine, sort id desc.
	assert.Equal(t, 3, total)
	assert.Equal(t, []record{{5, "alpine", "x"}, {3, "ALBATROSS", "x"}}, items)
}

func TestRunQueryTotalIsFilteredCountNotPageSize(t *testing.T) {
	records := []record{{1, "a", ""}, {2, "b", ""}, {3, "c", ""}}
	items, total := runQuery(records, query[record]{
		params: ListParams{Page: 1, Limit: 2},
	})
	assert.Equal(t, 3, total)
	assert.Len(t, items, 2)
}

func TestRunQueryOutOfRangePageIsEmptyNotError(t *testing.T) {
	records := []record{{1, "a", ""}, {2, "b", ""}}
	items, total := runQuery(records, query[record]{
		params: ListParams{Page: 9, Limit: 10},
	})
	assert.Equal(t, 2, total)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestRunQuerySortIsStable(t *testing.T) {
	// Equal keys keep insertion order.
	records := []record{{1, "first", "same"}, {2, "second", "same"}, {3, "third", "same"}}
	items, _ := runQuery(records, query[record]{
		less:   func(a, b record) bool { return a.tag > b.tag },
		params: ListParams{Page: 1, Limit: 10},
	})
	assert.Equal(t, []record{{1, "first", "same"}, {2, "second", "same"}, {3, "third", "same"}}, items)
}

func TestListParamsDefaults(t *testing.T) {
	p := ListParams{}.normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, ListParams{Page: -3, Limit: 5}.Offset())
	assert.Equal(t, 10, ListParams{Page: 3, Limit: 5}.Offset())
}
