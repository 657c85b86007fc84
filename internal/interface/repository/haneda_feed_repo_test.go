package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"arrivals-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hanedaSampleBody = `{
	"flight_info": [
		{
			"航空会社": [{"ＡＬコード": "JAL", "ＡＬ和名称": "日本航空", "ＡＬ英名称": "JAPAN AIRLINES", "便名": "JL516"}],
			"定刻": "2025/07/30 07:50:00",
			"変更時刻": "",
			"ターミナル区分": "1",
			"ウイング区分": "N",
			"出口": "A3",
			"STA": "202507300750",
			"ETA": "202507300755",
			"ATA": ""
		},
		{
			"航空会社": [{"ＡＬコード": "ANA", "ＡＬ和名称": "全日空", "ＡＬ英名称": "ALL NIPPON AIRWAYS", "便名": "NH56"}],
			"定刻": "2025/07/30 08:10:00",
			"変更時刻": "202507300820",
			"ターミナル区分": "2",
			"ウイング区分": "S",
			"出口": "B1",
			"STA": "202507300810",
			"ETA": "202507300815",
			"ATA": "202507300818"
		},
		{
			"航空会社": [],
			"定刻": "2025/07/30 08:30:00"
		}
	]
}`

func TestHanedaFetchArrivals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(hanedaSampleBody))
	}))
	defer server.Close()

	repo := NewHanedaFeedRepository(server.URL, logger.NewNop(), nil)
	arrivals, err := repo.FetchArrivals(context.Background())
	require.NoError(t, err)
	require.Len(t, arrivals, 2)

	assert.Equal(t, "日本航空", arrivals[0].Airline)
	assert.Equal(t, "JL516", arrivals[0].FlightNumber)
	assert.Equal(t, "2025/07/30 07:50:00", arrivals[0].ScheduledRaw)
	// No updated or actual time reported: the estimate wins.
	assert.Equal(t, "202507300755", arrivals[0].ActualRaw)
	assert.Equal(t, "1", arrivals[0].Terminal)
	assert.Equal(t, "N", arrivals[0].Wing)
	assert.Equal(t, "A3", arrivals[0].Exit)

	// Updated time takes precedence over the actual arrival time.
	assert.Equal(t, "202507300820", arrivals[1].ActualRaw)
	assert.Equal(t, "S", arrivals[1].Wing)
}

func TestHanedaFetchArrivalsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	repo := NewHanedaFeedRepository(server.URL, logger.NewNop(), nil)
	arrivals, err := repo.FetchArrivals(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, arrivals)
}

func TestHanedaFetchArrivalsBadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	repo := NewHanedaFeedRepository(server.URL, logger.NewNop(), nil)
	_, err := repo.FetchArrivals(context.Background())
	assert.Error(t, err)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("a", "b", "c"))
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "c", firstNonEmpty("", "", "c"))
	assert.Equal(t, "", firstNonEmpty("", "", ""))
}
