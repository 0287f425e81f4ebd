package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// RedisClient is the narrow slice of a Redis client the archive needs.
type RedisClient interface {
	SaveRun(ctx context.Context, run RedisRun, ttl time.Duration) error
	Close() error
}

// RedisRun is a run already laid out in Redis keys.
type RedisRun struct {
	RunKey     string
	RecordsKey string
	IndexKey   string
	ID         string
	Score      float64
	Fields     map[string]any
	Records    []any
}

const redisIndexKey = "benchledger:runs"

func RedisRunKey(id string) string     { return fmt.Sprintf("benchledger:run:%s", id) }
func RedisRecordsKey(id string) string { return fmt.Sprintf("benchledger:run:%s:records", id) }

// RedisStore implements Store on a Redis hash per run, a list of JSON records
// per run and a sorted set indexing runs by start time.
type RedisStore struct {
	client RedisClient
	ttl    time.Duration
}

// NewRedisStore returns a store; ttl <= 0 keeps runs forever.
func NewRedisStore(client RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) SaveRun(ctx context.Context, run Run) error {
	records := make([]any, 0, len(run.Records))
	for _, r := range run.Records {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal record %s: %w", r.Name, err)
		}
		records = append(records, string(data))
	}

	rr := RedisRun{
		RunKey:     RedisRunKey(run.ID),
		RecordsKey: RedisRecordsKey(run.ID),
		IndexKey:   redisIndexKey,
		ID:         run.ID,
		Score:      float64(run.StartedAt.UnixNano()),
		Fields: map[string]any{
			"id":           run.ID,
			"started_at":   run.StartedAt.UnixNano(),
			"input_dir":    run.InputDir,
			"record_count": len(run.Records),
		},
		Records: records,
	}
	if err := s.client.SaveRun(ctx, rr, s.ttl); err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}
	return nil
}

// GoRedisClient is a RedisClient backed by github.com/redis/go-redis/v9.
type GoRedisClient struct{ c *redis.Client }

func NewGoRedisClient(addr string) *GoRedisClient {
	return &GoRedisClient{c: redis.NewClient(&redis.Options{Addr: addr})}
}

// SaveRun writes all keys of a run in one MULTI/EXEC transaction and drops
// index members whose run hash has expired.
func (g *GoRedisClient) SaveRun(ctx context.Context, run RedisRun, ttl time.Duration) error {
	_, err := g.c.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, run.RunKey, run.Fields)
		if len(run.Records) > 0 {
			pipe.RPush(ctx, run.RecordsKey, run.Records...)
		}
		pipe.ZAdd(ctx, run.IndexKey, redis.Z{Score: run.Score, Member: run.ID})
		if ttl > 0 {
			pipe.Expire(ctx, run.RunKey, ttl)
			pipe.Expire(ctx, run.RecordsKey, ttl)
			cutoff := float64(time.Now().Add(-ttl).UnixNano())
			pipe.ZRemRangeByScore(ctx, run.IndexKey, "-inf", strconv.FormatFloat(cutoff, 'f', 0, 64))
		}
		return nil
	})
	return err
}

func (g *GoRedisClient) Close() error {
	return g.c.Close()
}
