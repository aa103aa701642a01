package redis

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBitSize = 1 << 20

func TestGetOffset(t *testing.T) {
	r := NewRedisBloomRepo(nil, testBitSize)

	first := r.getOffset("a1")
	require.Len(t, first, 3)
	assert.Equal(t, first, r.getOffset("a1"))
	for _, o := range first {
		assert.Less(t, o, uint64(testBitSize))
	}
	assert.NotEqual(t, first, r.getOffset("a2"))
}

func TestBloomAddAndExists(t *testing.T) {
	client, mock := redismock.NewClientMock()
	r := NewRedisBloomRepo(client, testBitSize)
	offsets := r.getOffset("a1")

	for _, o := range offsets {
		mock.ExpectSetBit(KeyArticleBloom, int64(o), 1).SetVal(0)
	}
	require.NoError(t, r.Add(context.TODO(), "a1"))

	for _, o := range offsets {
		mock.ExpectGetBit(KeyArticleBloom, int64(o)).SetVal(1)
	}
	ok, err := r.Exists(context.TODO(), "a1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloomExists_Absent(t *testing.T) {
	client, mock := redismock.NewClientMock()
	r := NewRedisBloomRepo(client, testBitSize)
	offsets := r.getOffset("ghost")

	mock.ExpectGetBit(KeyArticleBloom, int64(offsets[0])).SetVal(1)
	mock.ExpectGetBit(KeyArticleBloom, int64(offsets[1])).SetVal(0)
	mock.ExpectGetBit(KeyArticleBloom, int64(offsets[2])).SetVal(1)

	ok, err := r.Exists(context.TODO(), "ghost")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBloomBulkAdd(t *testing.T) {
	client, mock := redismock.NewClientMock()
	r := NewRedisBloomRepo(client, testBitSize)

	require.NoError(t, r.BulkAdd(context.TODO(), nil))

	for _, key := range []string{"a1", "a2"} {
		for _, o := range r.getOffset(key) {
			mock.ExpectSetBit(KeyArticleBloom, int64(o), 1).SetVal(0)
		}
	}
	require.NoError(t, r.BulkAdd(context.TODO(), []string{"a1", "a2"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
