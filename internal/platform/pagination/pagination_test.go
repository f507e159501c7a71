package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"veterinaria-backend/internal/platform/pagination"
)

func TestFromRequest(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		page    int
		perPage int
	}{
		{"defaults", "", 1, pagination.DefaultPerPage},
		{"explicit", "?page=3&per_page=50", 3, 50},
		{"page cero", "?page=0", 1, pagination.DefaultPerPage},
		{"per_page negativo", "?per_page=-5", 1, pagination.DefaultPerPage},
		{"per_page sobre el tope", "?per_page=500", 1, pagination.MaxPerPage},
		{"basura", "?page=abc&per_page=xyz", 1, pagination.DefaultPerPage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/clientes"+tc.query, nil)
			p := pagination.FromRequest(r)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.perPage, p.PerPage)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	p := pagination.Params{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())
}

func TestNewResponse_TotalPages(t *testing.T) {
	p := pagination.Params{Page: 2, PerPage: 10}

	resp := pagination.NewResponse([]string{}, 25, p)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 25, resp.Total)
	assert.Equal(t, 2, resp.Page)

	vacio := pagination.NewResponse([]string{}, 0, p)
	assert.Equal(t, 0, vacio.TotalPages)
}
