package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/logframe/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Record appends rec to its organization's list and refreshes the index.
func (s *Store) Record(ctx context.Context, rec domain.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	key := s.recordsKey(rec.OrganizationID)
	pipe := s.client.Pipeline()
	pipe.RPush(ctx, key, data)

	score := float64(farFuture)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
		score = float64(time.Now().Add(s.ttl).Unix())
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{Score: score, Member: rec.OrganizationID})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record to redis: %w", err)
	}
	return nil
}

// Records returns the records of organizationID, oldest first.
func (s *Store) Records(ctx context.Context, organizationID string) ([]domain.Record, error) {
	vals, err := s.client.LRange(ctx, s.recordsKey(organizationID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	recs := make([]domain.Record, 0, len(vals))
	for _, v := range vals {
		var rec domain.Record
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Organizations lists organizations with live records, pruning expired index entries first.
func (s *Store) Organizations(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired records: %w", err)
	}

	orgs, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}
