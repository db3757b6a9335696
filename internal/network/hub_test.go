package network

import (
	"bombquest/pkg/api"
	"bombquest/pkg/logger"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func snapshot(tick int64) api.Snapshot {
	return api.Snapshot{
		Type:  "UPDATE",
		Tick:  tick,
		Level: 1,
		State: "RUNNING",
		Grid:  &api.GridMeta{Width: 2, Height: 2},
	}
}

func TestBroadcaster_PublishAndRegister(t *testing.T) {
	b := NewBroadcaster()

	if _, ok := b.Last(); ok {
		t.Error("No snapshot before the first publish")
	}

	id1, ch1 := b.Register()
	b.Publish(snapshot(1))

	if got := <-ch1; got.Tick != 1 {
		t.Errorf("tick = %d, want 1", got.Tick)
	}

	// Новый зритель сразу получает последний снимок
	id2, ch2 := b.Register()
	if id1 == id2 {
		t.Fatal("Spectator ids must be unique")
	}
	if got := <-ch2; got.Tick != 1 {
		t.Errorf("late spectator tick = %d, want 1", got.Tick)
	}

	if b.SubscriberCount() != 2 || !b.HasSubscriber(id1) {
		t.Error("Both spectators should be registered")
	}

	b.Unregister(id1)
	if _, open := <-ch1; open {
		t.Error("Channel should be closed on unregister")
	}
	if b.HasSubscriber(id1) {
		t.Error("Unregistered spectator still present")
	}
}

func TestBroadcaster_DropsInvalidSnapshot(t *testing.T) {
	b := NewBroadcaster()
	bad := snapshot(5)
	bad.Grid = nil

	b.Publish(bad)

	if _, ok := b.Last(); ok {
		t.Error("Invalid snapshot must not be stored")
	}
}

func TestBroadcaster_SlowSpectator(t *testing.T) {
	b := NewBroadcaster()
	_, ch := b.Register()

	for i := int64(0); i < 40; i++ {
		b.Publish(snapshot(i))
	}

	if len(ch) != cap(ch) {
		t.Errorf("channel should be full, len=%d cap=%d", len(ch), cap(ch))
	}
	if b.Dropped() != uint64(40-cap(ch)) {
		t.Errorf("dropped = %d, want %d", b.Dropped(), 40-cap(ch))
	}
	if last, _ := b.Last(); last.Tick != 39 {
		t.Errorf("last tick = %d, want 39", last.Tick)
	}
}
