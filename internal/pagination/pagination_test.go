package pagination

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  int
	}{
		{"empty set still has one page", 0, 1},
		{"under one page", 7, 1},
		{"exactly one page", 10, 1},
		{"one over", 11, 2},
		{"several pages", 95, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage([]int{}, 1, tt.total)
			if got := p.TotalPages(); got != tt.want {
				t.Errorf("TotalPages() with %d items = %d, want %d", tt.total, got, tt.want)
			}
		})
	}
}

func TestHasPrevNext(t *testing.T) {
	first := NewPage([]int{}, 1, 25)
	if first.HasPrev() {
		t.Error("first page should have no previous")
	}
	if !first.HasNext() {
		t.Error("first of three pages should have a next")
	}

	middle := NewPage([]int{}, 2, 25)
	if !middle.HasPrev() || !middle.HasNext() {
		t.Error("middle page should have both neighbors")
	}

	last := NewPage([]int{}, 3, 25)
	if !last.HasPrev() {
		t.Error("last page should have a previous")
	}
	if last.HasNext() {
		t.Error("last page should have no next")
	}
}

func TestNewPageNormalizesNumber(t *testing.T) {
	p := NewPage([]int{}, 0, 10)
	if p.Number != 1 {
		t.Errorf("page number 0 should normalize to 1, got %d", p.Number)
	}

	p = NewPage([]int{}, -3, 10)
	if p.Number != 1 {
		t.Errorf("negative page should normalize to 1, got %d", p.Number)
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page int
		want int
	}{
		{1, 0},
		{2, 10},
		{5, 40},
		{0, 0},
		{-1, 0},
	}

	for _, tt := range tests {
		if got := Offset(tt.page); got != tt.want {
			t.Errorf("Offset(%d) = %d, want %d", tt.page, got, tt.want)
		}
	}
}
