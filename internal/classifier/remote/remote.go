// Package remote scores feature vectors on another prediction service over
// HTTP.
package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Alijeyrad/cardioai/internal/classifier"
)

const predictPath = "/v1/miokard/predict"

var ErrRemote = errors.New("remote prediction service error")

type Config struct {
	BaseURL     string
	Timeout     time.Duration
	NumFeatures int
}

type predictRequest struct {
	Data [][]float64 `json:"data"`
}

type errorBody struct {
	Error  string `json:"error"`
	Detail any    `json:"detail"`
}

// Client calls the service once per batch; there are no retries.
type Client struct {
	http      *resty.Client
	nFeatures int
}

var (
	_ classifier.Classifier     = (*Client)(nil)
	_ classifier.BatchPredictor = (*Client)(nil)
)

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: client, nFeatures: cfg.NumFeatures}
}

func (c *Client) NumFeatures() int { return c.nFeatures }

func (c *Client) PredictAll(ctx context.Context, x [][]float64) (*classifier.Prediction, error) {
	if err := classifier.CheckWidth(x, c.nFeatures); err != nil {
		return nil, err
	}

	var (
		result classifier.Prediction
		failed errorBody
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(predictRequest{Data: x}).
		SetResult(&result).
		SetError(&failed).
		Post(predictPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemote, err)
	}
	if resp.IsError() {
		msg := failed.Error
		if msg == "" && failed.Detail != nil {
			msg = fmt.Sprint(failed.Detail)
		}
		return nil, fmt.Errorf("%w: status %d: %s", ErrRemote, resp.StatusCode(), msg)
	}

	return &result, nil
}

func (c *Client) Predict(ctx context.Context, x [][]float64) ([]int, error) {
	p, err := c.PredictAll(ctx, x)
	if err != nil {
		return nil, err
	}
	return p.Labels, nil
}

func (c *Client) PredictProba(ctx context.Context, x [][]float64) ([][]float64, error) {
	p, err := c.PredictAll(ctx, x)
	if err != nil {
		return nil, err
	}
	return p.Probability, nil
}

func (c *Client) PredictLogProba(ctx context.Context, x [][]float64) ([][]float64, error) {
	p, err := c.PredictAll(ctx, x)
	if err != nil {
		return nil, err
	}
	return p.LogProbability, nil
}
