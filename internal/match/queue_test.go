package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInboundQueuePopNonBlockingOnEmpty(t *testing.T) {
	q := NewInboundQueue(4)
	v, ok := q.Pop()
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestInboundQueuePopWaitReturnsQueuedEntryImmediately(t *testing.T) {
	q := NewInboundQueue(4)
	q.Push("already-there")

	start := time.Now()
	v, ok := q.PopWait(200 * time.Millisecond)
	assert.True(t, ok)
	assert.Equal(t, "already-there", v)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestInboundQueuePopWaitWakesOnPush(t *testing.T) {
	q := NewInboundQueue(4)

	go func() {
		time.Sleep(10 * time.Millisecond)
		q.Push("delayed")
	}()

	v, ok := q.PopWait(time.Second)
	assert.True(t, ok)
	assert.Equal(t, "delayed", v)
}

func TestInboundQueuePopWaitTimesOut(t *testing.T) {
	q := NewInboundQueue(4)

	start := time.Now()
	v, ok := q.PopWait(20 * time.Millisecond)
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestInboundQueuePopWaitZeroTimeoutIsNonBlocking(t *testing.T) {
	q := NewInboundQueue(4)
	v, ok := q.PopWait(0)
	assert.False(t, ok)
	assert.Nil(t, v)
}
