package narrative

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manjai/server/internal/models"
)

func newTestClient(baseURL string) *Client {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewClient(logger, baseURL, "llama3.2", 2*time.Second, 2*time.Second)
}

func TestGenerateSuccess(t *testing.T) {
	var captured generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]string{"response": "ราคาประเมินประมาณ 5 ล้านบาท"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	response, err := client.Generate("ประเมินราคาคอนโด")
	require.NoError(t, err)

	assert.Equal(t, "ราคาประเมินประมาณ 5 ล้านบาท", response)
	assert.Equal(t, "llama3.2", captured.Model)
	assert.False(t, captured.Stream, "calls must be non-streaming")
}

func TestGenerateUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := newTestClient(server.URL)
	_, err := client.Generate("prompt")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGenerateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate("prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.NotErrorIs(t, err, ErrUnavailable, "upstream failure is distinct from unreachable")
}

func TestEvaluateBuildsPromptFromRequest(t *testing.T) {
	var prompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		prompt = req.Prompt
		json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Evaluate(&models.EvaluationRequest{
		PropertyType: "คอนโด",
		Location:     "สุขุมวิท",
		Area:         "35",
		Bedrooms:     "1",
		Bathrooms:    "1",
		Age:          "5",
		Condition:    "ดี",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "ประเภททรัพย์สิน: คอนโด")
	assert.Contains(t, prompt, "ทำเลที่ตั้ง: สุขุมวิท")
	assert.Contains(t, prompt, "ขนาดพื้นที่: 35 ตารางเมตร")
}

func TestCheckHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"models": []map[string]string{
				{"name": "llama3.2"},
				{"name": "qwen2.5"},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	modelNames, err := client.CheckHealth()
	require.NoError(t, err)
	assert.Equal(t, []string{"llama3.2", "qwen2.5"}, modelNames)
}

func TestCheckHealthUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	_, err := client.CheckHealth()
	assert.ErrorIs(t, err, ErrUnavailable)
}
