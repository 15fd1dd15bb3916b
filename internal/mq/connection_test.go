package mq

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

func testConnection() *Connection {
	return &Connection{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		closedCh:    make(chan struct{}),
		reconnectCh: make(chan struct{}),
	}
}

func TestReconnectNotifyWakesAllSubscribers(t *testing.T) {
	c := testConnection()

	// Две очереди заявок — два потребителя на одном соединении
	const subscribers = 2

	var started, woke sync.WaitGroup
	started.Add(subscribers)
	woke.Add(subscribers)
	for i := 0; i < subscribers; i++ {
		go func() {
			ch := c.ReconnectNotify()
			started.Done()
			<-ch
			woke.Done()
		}()
	}
	started.Wait()

	c.notifyReconnected()

	done := make(chan struct{})
	go func() {
		woke.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("not all subscribers woke after reconnect")
	}
}

func TestReconnectNotifyFreshChannelAfterWake(t *testing.T) {
	c := testConnection()

	first := c.ReconnectNotify()
	c.notifyReconnected()

	select {
	case <-first:
	default:
		t.Fatal("channel from before reconnect should be closed")
	}

	second := c.ReconnectNotify()
	select {
	case <-second:
		t.Fatal("fresh channel must block until the next reconnect")
	default:
	}

	c.notifyReconnected()
	select {
	case <-second:
	default:
		t.Fatal("second reconnect should close the fresh channel")
	}
}
