package server

import (
	"testing"
	"time"

	"rogue-server/pkg/api"
)

func TestClientDeliver(t *testing.T) {
	c := NewClient(nil, nil)

	if !c.deliver(&api.ServerResponse{Type: "INIT"}) {
		t.Fatal("deliver with a live writer must succeed")
	}
	if got := <-c.Send; got.Type != "INIT" {
		t.Errorf("Type = %q, want INIT", got.Type)
	}
}

func TestClientDeliverGivesUpWhenWriterGone(t *testing.T) {
	c := NewClient(nil, nil)

	// Писатель умер, буфер забит до отказа: отправка обязана сдаться,
	// а не зависнуть навсегда
	for i := 0; i < cap(c.Send); i++ {
		c.Send <- &api.ServerResponse{}
	}
	close(c.done)

	done := make(chan bool, 1)
	go func() {
		done <- c.deliver(&api.ServerResponse{})
	}()

	select {
	case ok := <-done:
		if ok {
			t.Error("deliver must report failure after the writer is gone")
		}
	case <-time.After(time.Second):
		t.Fatal("deliver blocked on a full channel with a dead writer")
	}
}
