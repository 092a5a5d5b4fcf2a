package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTelegramClientSendMessage(t *testing.T) {
	var got sendMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(sendMessageResponse{OK: true})
	}))
	defer server.Close()

	client := &TelegramClient{token: "test-token", apiBase: server.URL, httpClient: server.Client()}

	err := client.SendMessage(42, "<b>salom</b>")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), got.ChatID)
	assert.Equal(t, "<b>salom</b>", got.Text)
	assert.Equal(t, "HTML", got.ParseMode)
}

func TestTelegramClientAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(sendMessageResponse{OK: false, Description: "chat not found"})
	}))
	defer server.Close()

	client := &TelegramClient{token: "test-token", apiBase: server.URL, httpClient: server.Client()}

	err := client.SendMessage(42, "salom")

	assert.ErrorContains(t, err, "chat not found")
}
