package repository

import (
	"sort"
	"strings"
)

// ListParams are the listing options shared by every store.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// normalize applies the listing defaults: page 1, limit 10.
func (p ListParams) normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p
}

// Offset returns the slice offset implied by page and limit, clamped at zero.
func (p ListParams) Offset() int {
	p = p.normalize()
	off := (p.Page - 1) * p.Limit
	if off < 0 {
		off = 0
	}
	return off
}

// query describes one run of the shared listing pipeline. Every store answers
// its listings through runQuery so the composition is identical everywhere:
// conjunctive filters, then case-insensitive substring search, then a stable
// sort, then pagination. The reported total is the filtered count, not the
// page size and not the store size.
type query[T any] struct {
	// filters are applied conjunctively. A store skips appending a filter
	// whose parameter is absent: absence means "no constraint".
	filters []func(T) bool
	// search keeps records where at least one field returned by fields
	// contains the term, case-insensitively. Empty search keeps everything.
	search string
	fields func(T) []string
	// less orders the filtered records; ties keep insertion order.
	less func(a, b T) bool
	params ListParams
}

// runQuery executes the pipeline over a snapshot of records and returns the
// requested page plus the filtered total. An out-of-range page yields an empty
// slice, never an error.
func runQuery[T any](records []T, q query[T]) ([]T, int) {
	kept := make([]T, 0, len(records))
	for _, rec := range records {
		ok := true
		for _, f := range q.filters {
			if !f(rec) {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, rec)
		}
	}

	if q.search != "" && q.fields != nil {
		term := strings.ToLower(q.search)
		matched := kept[:0]
		for _, rec := range kept {
			for _, field := range q.fields(rec) {
				if strings.Contains(strings.ToLower(field), term) {
					matched = append(matched, rec)
					break
				}
			}
		}
		kept = matched
	}

	if q.less != nil {
		sort.SliceStable(kept, func(i, j int) bool { return q.less(kept[i], kept[j]) })
	}

	total := len(kept)

	p := q.params.normalize()
	offset := p.Offset()
	if offset >= total {
		return []T{}, total
	}
	end := offset + p.Limit
	if end > total {
		end = total
	}
	return kept[offset:end], total
}
