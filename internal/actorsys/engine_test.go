package actorsys

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type echoActor struct {
	received chan interface{}
}

func (a *echoActor) Receive(ctx Context) {
	switch ctx.Message().(type) {
	case Started, Stopping, Stopped:
		return
	default:
		a.received <- ctx.Message()
	}
}

func TestEngine_SpawnAndSend(t *testing.T) {
	engine := NewEngine()
	received := make(chan interface{}, 4)
	pid := engine.Spawn(NewProps(func() Actor { return &echoActor{received: received} }))
	assert.NotNil(t, pid)

	engine.Send(pid, "hello", nil)

	select {
	case msg := <-received:
		assert.Equal(t, "hello", msg)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestEngine_StopDropsFurtherMessages(t *testing.T) {
	engine := NewEngine()
	received := make(chan interface{}, 4)
	pid := engine.Spawn(NewProps(func() Actor { return &echoActor{received: received} }))

	engine.Stop(pid)
	time.Sleep(20 * time.Millisecond)
	engine.Send(pid, "too late", nil)

	select {
	case msg := <-received:
		t.Fatalf("expected no message after stop, got %v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEngine_ShutdownRefusesFurtherSpawns(t *testing.T) {
	engine := NewEngine()
	received := make(chan interface{}, 1)
	engine.Spawn(NewProps(func() Actor { return &echoActor{received: received} }))

	engine.Shutdown(time.Second)

	pid2 := engine.Spawn(NewProps(func() Actor { return &echoActor{received: received} }))
	assert.Nil(t, pid2, "engine should refuse to spawn after shutdown")
}
