package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestFromRequestDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/anuncios", nil)
	p := FromRequest(r, DefaultPageSize, MaxPageSize)
	if p.Page != 1 || p.PageSize != 10 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestFromRequestClampsAndFallsBack(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"explicit", "page=3&page_size=25", 3, 25},
		{"capped", "page=1&page_size=500", 1, 50},
		{"zero page", "page=0", 1, 10},
		{"garbage", "page=abc&page_size=xyz", 1, 10},
		{"negative", "page=-2&page_size=-5", 1, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/anuncios?"+tc.query, nil)
			p := FromRequest(r, DefaultPageSize, MaxPageSize)
			if p.Page != tc.page || p.PageSize != tc.pageSize {
				t.Fatalf("got %+v, want page=%d size=%d", p, tc.page, tc.pageSize)
			}
		})
	}
}

func TestOffsetAndMeta(t *testing.T) {
	p := Params{Page: 3, PageSize: 10}
	if p.Offset() != 20 {
		t.Fatalf("unexpected offset %d", p.Offset())
	}

	meta := NewMeta(p, 25)
	if meta.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", meta.TotalPages)
	}
	if meta.Total != 25 || meta.Page != 3 || meta.PageSize != 10 {
		t.Fatalf("unexpected meta %+v", meta)
	}

	empty := NewMeta(Params{Page: 1, PageSize: 10}, 0)
	if empty.TotalPages != 0 {
		t.Fatalf("expected 0 pages for empty set, got %d", empty.TotalPages)
	}
}
