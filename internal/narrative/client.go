package narrative

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"manjai/server/internal/models"
)

var (
	// ErrUnavailable means the Ollama service could not be reached at
	// all (connection refused or timed out).
	ErrUnavailable = errors.New("ไม่สามารถเชื่อมต่อกับ Ollama ได้ กรุณาตรวจสอบว่า Ollama กำลังทำงานอยู่")

	// ErrUpstream means Ollama answered but reported a failure.
	ErrUpstream = errors.New("ไม่สามารถเชื่อมต่อกับ AI ได้")
)

// Client talks to a locally running Ollama service for narrative
// property evaluations. Calls are synchronous, non-streaming and never
// retried; a failed call surfaces a distinct recoverable error.
type Client struct {
	logger       *logrus.Logger
	baseURL      string
	model        string
	client       *http.Client
	healthClient *http.Client
}

func NewClient(logger *logrus.Logger, baseURL, model string, timeout, healthTimeout time.Duration) *Client {
	return &Client{
		logger:       logger,
		baseURL:      baseURL,
		model:        model,
		client:       &http.Client{Timeout: timeout},
		healthClient: &http.Client{Timeout: healthTimeout},
	}
}

// Model returns the configured model id.
func (c *Client) Model() string {
	return c.model
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Evaluate builds the Thai appraisal prompt for the given property and
// returns the model's narrative verbatim.
func (c *Client) Evaluate(req *models.EvaluationRequest) (string, error) {
	return c.Generate(BuildPrompt(req))
}

// Generate sends a free-text prompt to Ollama and returns its response.
func (c *Client) Generate(prompt string) (string, error) {
	payload := generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate payload: %v", err)
	}

	resp, err := c.client.Post(c.baseURL+"/api/generate", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		c.logger.WithError(err).Error("Ollama is unreachable")
		return "", ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("Ollama returned an error")
		return "", fmt.Errorf("%w (status %d)", ErrUpstream, resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return result.Response, nil
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// CheckHealth probes the Ollama tags endpoint and returns the names of
// available models. A connection failure returns ErrUnavailable.
func (c *Client) CheckHealth() ([]string, error) {
	resp, err := c.healthClient.Get(c.baseURL + "/api/tags")
	if err != nil {
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w (status %d)", ErrUpstream, resp.StatusCode)
	}

	var result tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	names := make([]string, len(result.Models))
	for i, m := range result.Models {
		names[i] = m.Name
	}
	return names, nil
}
