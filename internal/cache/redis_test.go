package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRedis(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	mr := miniredis.RunT(t)

	InitRedis(mr.Addr())
	require.NotNil(t, GetClient())
	require.NoError(t, GetClient().Set(context.Background(), RecordKey("k"), "v", 0).Err())
	assert.True(t, mr.Exists("gamechanger:k"))

	require.NoError(t, Close())
	assert.Nil(t, GetClient())
}

func TestInitRedis_URL(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	mr := miniredis.RunT(t)

	InitRedis("redis://" + mr.Addr() + "/0")
	assert.NotNil(t, GetClient())
}

func TestInitRedis_Unreachable(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	InitRedis(addr)
	assert.Nil(t, GetClient())
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient("redis://:bad:url")
	assert.Error(t, err)
}
