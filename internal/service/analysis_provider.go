package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/infektyd/FoundationWriting/internal/config"
	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/internal/util"
	"github.com/infektyd/FoundationWriting/pkg/monitoring"
	"github.com/infektyd/FoundationWriting/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// AnalysisProvider is the external writing-analysis collaborator. The
// coaching core never updates progression state when a call fails.
type AnalysisProvider interface {
	Analyze(ctx context.Context, text string, opts model.AnalysisOptions) (*model.Analysis, error)
}

// HTTPAnalysisProvider calls the analysis service over its JSON API.
type HTTPAnalysisProvider struct {
	cfg    config.AnalysisConfig
	client *http.Client
}

func NewHTTPAnalysisProvider(cfg config.AnalysisConfig) *HTTPAnalysisProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &HTTPAnalysisProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	Text    string                `json:"text"`
	Options model.AnalysisOptions `json:"options"`
}

func (p *HTTPAnalysisProvider) Analyze(ctx context.Context, text string, opts model.AnalysisOptions) (*model.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, util.ErrEmptyText
	}
	if opts.Depth == "" {
		opts.Depth = p.cfg.Depth
	}

	ctx, span := tracing.Tracer.Start(ctx, "analysis.analyze")
	defer span.End()
	span.SetAttributes(attribute.Int("text.length", len(text)))

	body, err := json.Marshal(analyzeRequest{Text: text, Options: opts})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/v1/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	start := time.Now()
	resp, err := p.client.Do(req)
	monitoring.AnalysisDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		monitoring.AnalysisRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", util.ErrAnalysisUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		monitoring.AnalysisRequests.WithLabelValues("error").Inc()
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", util.ErrAnalysisUnavailable, resp.StatusCode, string(payload))
	}

	var analysis model.Analysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		monitoring.AnalysisRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: decode: %v", util.ErrAnalysisUnavailable, err)
	}

	monitoring.AnalysisRequests.WithLabelValues("success").Inc()
	return &analysis, nil
}
