package utils

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, pageSize, want int
	}{
		{12, 5, 3},
		{10, 5, 2},
		{1, 5, 1},
		{0, 5, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.pageSize); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.pageSize, got, tt.want)
		}
	}
}

// Twelve entities with page size 5 paginate as 5, 5, 2; page 4 is out of range.
func TestPageSlice(t *testing.T) {
	items := make([]int, 12)
	for i := range items {
		items[i] = i
	}

	if got := len(PageSlice(items, 1, 5)); got != 5 {
		t.Errorf("page 1 size = %d, want 5", got)
	}
	if got := len(PageSlice(items, 2, 5)); got != 5 {
		t.Errorf("page 2 size = %d, want 5", got)
	}
	if got := PageSlice(items, 3, 5); len(got) != 2 || got[0] != 10 {
		t.Errorf("page 3 = %v, want [10 11]", got)
	}
	if got := len(PageSlice(items, 4, 5)); got != 0 {
		t.Errorf("out-of-range page size = %d, want 0", got)
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, totalPages, want int
	}{
		{4, 3, 3},
		{3, 3, 3},
		{1, 3, 1},
		{0, 3, 1},
		{2, 0, 1},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.totalPages); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.totalPages, got, tt.want)
		}
	}
}
