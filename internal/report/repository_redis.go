package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	rdb *redis.Client
}

func NewRedisRepo(rdb *redis.Client) Repo {
	return &redisRepo{rdb: rdb}
}

// key 约定：
//
//	kv : pl:board:{board}     -> BoardReport json
//	set: pl:boards            -> every cached board, for inspection
func boardKey(board string) string {
	return fmt.Sprintf("pl:board:%s", board)
}

const boardsKey = "pl:boards"

func (r *redisRepo) Get(ctx context.Context, board string) (*BoardReport, error) {
	data, err := r.rdb.Get(ctx, boardKey(board)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rep BoardReport
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("decode cached report %q: %w", board, err)
	}
	return &rep, nil
}

func (r *redisRepo) Save(ctx context.Context, rep *BoardReport, ttlSeconds int) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	var ttl time.Duration
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}
	p := r.rdb.Pipeline()
	p.Set(ctx, boardKey(rep.Board), data, ttl)
	p.SAdd(ctx, boardsKey, rep.Board)
	_, err = p.Exec(ctx)
	return err
}

func (r *redisRepo) Delete(ctx context.Context, board string) error {
	p := r.rdb.Pipeline()
	p.Del(ctx, boardKey(board))
	p.SRem(ctx, boardsKey, board)
	_, err := p.Exec(ctx)
	return err
}
