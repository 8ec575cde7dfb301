package keeper

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdjurovic/kratos/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

// RedisKeeper stores the snapshot as a single blob under the namespace key.
type RedisKeeper struct {
	namespace   string
	redisClient *redis.Client
}

func NewRedisKeeper(redisClient *redis.Client, namespace string) (*RedisKeeper, error) {
	if namespace == "" {
		return nil, errors.New("namespace empty")
	}
	return &RedisKeeper{
		namespace:   namespace,
		redisClient: redisClient,
	}, nil
}

func (k *RedisKeeper) Load(ctx context.Context) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "keeper.redis.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("namespace", k.namespace))

	cmd := k.redisClient.Get(ctx, k.namespace)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get [%s]: %w", k.namespace, err)
	}
	return []byte(cmd.Val()), nil
}

func (k *RedisKeeper) Save(ctx context.Context, snapshot []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "keeper.redis.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("namespace", k.namespace))
	span.SetAttributes(attribute.Int("snapshot.size", len(snapshot)))

	if err := k.redisClient.Set(ctx, k.namespace, snapshot, 0).Err(); err != nil {
		return fmt.Errorf("redis set [%s]: %w", k.namespace, err)
	}
	return nil
}
