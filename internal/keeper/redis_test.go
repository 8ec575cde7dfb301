package keeper_test

import (
	"context"
	"testing"

	"github.com/mdjurovic/kratos/internal/keeper"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisKeeper_LoadBeforeFirstSave(t *testing.T) {
	db, mock := redismock.NewClientMock()
	k, err := keeper.NewRedisKeeper(db, "kratos_workout_logs")
	require.NoError(t, err)

	mock.ExpectGet("kratos_workout_logs").RedisNil()

	snapshot, err := k.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snapshot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKeeper_SaveThenLoad(t *testing.T) {
	db, mock := redismock.NewClientMock()
	k, err := keeper.NewRedisKeeper(db, "kratos_workout_logs")
	require.NoError(t, err)

	ctx := context.Background()
	snapshot := []byte(`[{"id":"w1","date":"2025-06-10"}]`)

	mock.ExpectSet("kratos_workout_logs", snapshot, 0).SetVal("OK")
	require.NoError(t, k.Save(ctx, snapshot))

	mock.ExpectGet("kratos_workout_logs").SetVal(string(snapshot))
	loaded, err := k.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKeeper_LoadError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	k, err := keeper.NewRedisKeeper(db, "kratos_workout_logs")
	require.NoError(t, err)

	mock.ExpectGet("kratos_workout_logs").SetErr(assert.AnError)

	_, err = k.Load(context.Background())
	assert.Error(t, err)
}

func TestRedisKeeper_EmptyNamespace(t *testing.T) {
	db, _ := redismock.NewClientMock()
	_, err := keeper.NewRedisKeeper(db, "")
	assert.Error(t, err)
}
