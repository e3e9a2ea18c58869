package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/persistence"
)

func TestNewMongo_RequiresURL(t *testing.T) {
	m, err := persistence.NewMongo(context.Background(), config.MongoConfig{}, zaptest.NewLogger(t))

	require.Error(t, err)
	assert.Nil(t, m)
}

func TestMongo_NilPing(t *testing.T) {
	var m *persistence.Mongo

	require.Error(t, m.Ping(context.Background()))
	m.Close(context.Background())
}

func TestNewRedis_Disabled(t *testing.T) {
	r := persistence.NewRedis(context.Background(), config.RedisConfig{}, zaptest.NewLogger(t))

	assert.Nil(t, r)
	require.Error(t, r.Ping(context.Background()))
	require.Error(t, r.Publish(context.Background(), "ch", []byte("x")))
	r.Close()
}

func TestNewRedis_UnreachableIsNotFatal(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	r := persistence.NewRedis(ctx, config.RedisConfig{Addr: "127.0.0.1:1"}, zaptest.NewLogger(t))
	defer r.Close()

	require.NotNil(t, r)
	assert.Error(t, r.Ping(ctx))
}
