package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		name                string
		limit, def, max, want int
	}{
		{"zero uses default", 0, 24, 100, 24},
		{"negative uses default", -5, 24, 100, 24},
		{"in range passes through", 48, 24, 100, 48},
		{"above max clamps", 500, 24, 100, 100},
		{"zero bounds fall back to package defaults", 0, 0, 0, DefaultLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLimit(tt.limit, tt.def, tt.max); got != tt.want {
				t.Fatalf("NormalizeLimit(%d, %d, %d) = %d, want %d", tt.limit, tt.def, tt.max, got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	page := Build(Params{Page: 2, Limit: 10}, 25)
	if page.Page != 2 || page.Limit != 10 {
		t.Fatalf("unexpected page meta %+v", page)
	}
	if page.TotalItems != 25 || page.TotalPages != 3 {
		t.Fatalf("unexpected totals %+v", page)
	}

	empty := Build(Params{Page: 0, Limit: 10}, 0)
	if empty.Page != 1 || empty.TotalPages != 1 {
		t.Fatalf("empty result should still report one page, got %+v", empty)
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	if got := Slice(items, Params{Page: 1, Limit: 2}); len(got) != 2 || got[0] != 1 {
		t.Fatalf("unexpected first page %v", got)
	}
	if got := Slice(items, Params{Page: 3, Limit: 2}); len(got) != 1 || got[0] != 5 {
		t.Fatalf("unexpected last page %v", got)
	}
	if got := Slice(items, Params{Page: 4, Limit: 2}); len(got) != 0 {
		t.Fatalf("expected empty page past the end, got %v", got)
	}
}
