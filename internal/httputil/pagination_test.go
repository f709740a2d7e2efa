package httputil

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantOffset int
		wantLimit  int
		wantErr    bool
	}{
		{"defaults", "/v1/settings", 0, 50, false},
		{"explicit values", "/v1/settings?offset=10&limit=25", 10, 25, false},
		{"max limit", "/v1/settings?limit=100", 0, 100, false},
		{"limit too large", "/v1/settings?limit=101", 0, 0, true},
		{"limit zero", "/v1/settings?limit=0", 0, 0, true},
		{"negative offset", "/v1/settings?offset=-1", 0, 0, true},
		{"non-numeric offset", "/v1/settings?offset=abc", 0, 0, true},
		{"non-numeric limit", "/v1/settings?limit=abc", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, tt.url)
			offset, limit, err := ParsePagination(c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
