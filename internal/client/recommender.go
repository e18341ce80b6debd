package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"vehicle/finder/internal/config"
	"vehicle/finder/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

const RecommendPath = "/api/ai/recommend"

type RecommenderClient interface {
	Recommend(ctx context.Context, payload domain.RequestPayload) (*domain.RecommendationResponse, error)
}

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Status)
}

// ErrInvalidJSON marks a response body that is not JSON at all.
var ErrInvalidJSON = errors.New("response body is not valid JSON")

type recommenderClient struct {
	rl         ratelimit.Limiter
	endpoint   string
	httpClient *resty.Client
}

func NewRecommenderClient(cfg config.RecommenderConfig) RecommenderClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if timeout := cfg.RequestTimeout(); timeout > 0 {
		client.SetTimeout(timeout)
	}

	if cfg.Proxy != "" {
		client.SetProxy(cfg.Proxy)
		log.Infof("🔗 Using proxy: %s", cfg.Proxy)
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &recommenderClient{
		rl:         rl,
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + RecommendPath,
		httpClient: client,
	}
}

func (c *recommenderClient) Recommend(ctx context.Context, payload domain.RequestPayload) (*domain.RecommendationResponse, error) {
	c.rl.Take()

	log.WithFields(log.Fields{
		"vehicle_type":    payload.VehicleType,
		"budget":          payload.Budget,
		"vehicle_subtype": payload.VehicleSubtype,
	}).Infof("🚀 Sending recommendation request to %s", c.endpoint)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.endpoint)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to post recommendation request: %w", err)
	}

	log.Debugf("📥 Recommendation response status: %d", resp.StatusCode())

	if !resp.IsSuccess() {
		return nil, &StatusError{StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	result, err := DecodeRecommendations([]byte(resp.String()))
	if err != nil {
		return nil, err
	}

	log.Infof("📦 Received %d recommendations", len(result.Recommendations))
	return result, nil
}

// DecodeRecommendations interprets a 2xx body. Only a body that is not JSON
// is an error; any other unexpected shape yields an empty result.
func DecodeRecommendations(body []byte) (*domain.RecommendationResponse, error) {
	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}

	result := &domain.RecommendationResponse{
		Recommendations: []domain.VehicleCandidate{},
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Warnf("⚠️ Unexpected response shape, treating as empty: %v", err)
		return result, nil
	}

	if raw, ok := envelope["recommendations"]; ok {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			log.Warnf("⚠️ Unreadable recommendations field, treating as empty: %v", err)
		}
		for i, item := range items {
			var candidate domain.VehicleCandidate
			if err := json.Unmarshal(item, &candidate); err != nil {
				log.Warnf("⚠️ Skipping unreadable recommendation #%d: %v", i, err)
				continue
			}
			result.Recommendations = append(result.Recommendations, candidate)
		}
	}

	if raw, ok := envelope["total_found"]; ok {
		var total json.Number
		if err := json.Unmarshal(raw, &total); err == nil {
			if n, err := total.Int64(); err == nil {
				result.TotalFound = &n
			}
		}
	}

	return result, nil
}
