package log_test

import (
	"context"
	"testing"

	"catalog-manager/pkg/log"
)

func TestInit(t *testing.T) {
	t.Run("Console Debug", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true})
		if l == nil {
			t.Fatal("expected logger, got nil")
		}
		l.Infof(context.Background(), "hello %s", "world")
	})

	t.Run("JSON Production With Context Fields", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
		ctx := context.WithValue(context.Background(), log.RequestIDKey, "req-1")
		ctx = context.WithValue(ctx, log.SessionIDKey, "sess-1")
		l.Info(ctx, "with fields")
	})

	t.Run("Invalid Level Falls Back", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "loud"})
		l.Debug(context.Background(), "dropped")
	})

	t.Run("Nop", func(t *testing.T) {
		log.NewNop().Errorf(context.TODO(), "nothing %d", 1)
	})
}
