package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arrivals-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTaxiStatus(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{
			name: "marker to date token",
			page: "<html><body>ご案内\r\n羽田空港TPシステム 待機台数 12台\r\n2025/07/30 07:00 更新</body></html>",
			want: "羽田空港TPシステム 待機台数 12台",
		},
		{
			name: "strips tags and collapses whitespace",
			page: "羽田空港TPシステム\n\n\n<b>混雑</b>   あり\n2025年",
			want: "羽田空港TPシステム\n混雑 あり",
		},
		{
			name: "marker missing",
			page: "<html>no status here 2025</html>",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTaxiStatus(tt.page))
		})
	}
}

func TestExtractTaxiStatusWithoutEndMarkerIsCapped(t *testing.T) {
	page := "羽田空港TPシステム " + strings.Repeat("x", 2000)
	got := ExtractTaxiStatus(page)
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), taxiStatusMaxLen)
}

func TestFetchStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("羽田空港TPシステム 待機中\n2025/07/30"))
	}))
	defer server.Close()

	repo := NewTaxiStatusRepository(server.URL, logger.NewNop(), nil)
	text, err := repo.FetchStatusText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "羽田空港TPシステム 待機中", text)
}

func TestFetchStatusTextNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	repo := NewTaxiStatusRepository(server.URL, logger.NewNop(), nil)
	text, err := repo.FetchStatusText(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestFetchStatusTextUnreachable(t *testing.T) {
	repo := NewTaxiStatusRepository("http://127.0.0.1:1", logger.NewNop(), nil)
	text, err := repo.FetchStatusText(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "", text)
}
