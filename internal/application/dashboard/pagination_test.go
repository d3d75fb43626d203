package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanQuery_ClampsPage(t *testing.T) {
	assert.Equal(t, PageRequest{Query: "acme", Page: 3}, PlanQuery("acme", 3))
	assert.Equal(t, PageRequest{Query: "", Page: 1}, PlanQuery("", 0))
	assert.Equal(t, PageRequest{Query: "x", Page: 1}, PlanQuery("x", -5))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		rowCount int64
		expected int
	}{
		{"no rows means no pages", 0, 0},
		{"negative count means no pages", -1, 0},
		{"single row", 1, 1},
		{"exactly one page", 6, 1},
		{"one row past the boundary", 7, 2},
		{"exactly two pages", 12, 2},
		{"partial last page", 13, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalPages(tt.rowCount))
		})
	}
}
