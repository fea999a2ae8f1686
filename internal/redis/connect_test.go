package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
)

func TestConnect(t *testing.T) {
	server := miniredis.RunT(t)
	logger := zerolog.Nop()

	client, err := Connect(context.Background(), Config{Addr: server.Addr(), MaxAttempts: 1}, &logger)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer client.Close()

	if err := client.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Errorf("client should be usable: %v", err)
	}
}

func TestConnect_GivesUp(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()
	logger := zerolog.Nop()

	_, err := Connect(context.Background(), Config{Addr: addr, MaxAttempts: 2, Backoff: time.Millisecond}, &logger)
	if err == nil {
		t.Fatal("expected an error when Redis is down")
	}
}

func TestConnect_CancelledDuringBackoff(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()
	logger := zerolog.Nop()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Connect(ctx, Config{Addr: addr, MaxAttempts: 3, Backoff: time.Hour}, &logger)
	if err == nil {
		t.Fatal("expected an error")
	}
}
