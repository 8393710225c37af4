package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"linerelay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendReadsSettingsAtCallTime(t *testing.T) {
	db := testDB(t)

	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "cid", r.Header.Get("X-Line-ChannelID"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// sem settings: falha dura, nada é enviado
	err := Send(context.Background(), db, srv.URL, "u1", "hello")
	require.Error(t, err)
	assert.Equal(t, 0, hits)

	require.NoError(t, models.PutSetting(db, models.SETTING_CHANNEL_ID, "cid"))
	require.NoError(t, models.PutSetting(db, models.SETTING_CHANNEL_SECRET, "sekret"))
	require.NoError(t, models.PutSetting(db, models.SETTING_MID, "mid-1"))

	require.NoError(t, Send(context.Background(), db, srv.URL, "u1", "hello"))
	assert.Equal(t, 1, hits)
}

func TestSendPartialSettingsIsHardError(t *testing.T) {
	db := testDB(t)
	require.NoError(t, models.PutSetting(db, models.SETTING_CHANNEL_ID, "cid"))
	// channel_secret e mid ausentes

	err := Send(context.Background(), db, "http://unused", "u1", "hello")
	require.Error(t, err)
}
