package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedAnalysisProvider is a read-through redis cache in front of the
// analysis collaborator, keyed by text content. Repeated analysis of the
// same draft (common while iterating in the editor) skips the slow call.
type CachedAnalysisProvider struct {
	Next  AnalysisProvider
	Redis *redis.Client
	TTL   time.Duration
}

func NewCachedAnalysisProvider(next AnalysisProvider, rdb *redis.Client, ttl time.Duration) *CachedAnalysisProvider {
	if ttl == 0 {
		ttl = 15 * time.Minute
	}
	return &CachedAnalysisProvider{Next: next, Redis: rdb, TTL: ttl}
}

func (p *CachedAnalysisProvider) cacheKey(text string, opts model.AnalysisOptions) string {
	sum := sha256.Sum256([]byte(opts.Depth + "\x00" + text))
	return "analysis:" + hex.EncodeToString(sum[:])
}

func (p *CachedAnalysisProvider) Analyze(ctx context.Context, text string, opts model.AnalysisOptions) (*model.Analysis, error) {
	key := p.cacheKey(text, opts)

	if cached, err := p.Redis.Get(ctx, key).Bytes(); err == nil {
		var analysis model.Analysis
		if err := json.Unmarshal(cached, &analysis); err == nil {
			return &analysis, nil
		}
		// Unreadable cache entries are dropped, not served.
		p.Redis.Del(ctx, key)
	}

	analysis, err := p.Next.Analyze(ctx, text, opts)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(analysis); err == nil {
		if err := p.Redis.Set(ctx, key, payload, p.TTL).Err(); err != nil {
			logger.Log.Warn("analysis cache write failed", zap.Error(err))
		}
	}

	return analysis, nil
}
