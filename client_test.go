package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJoinFirstPlayer(t *testing.T) {
	var got NewPlayer
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/join", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(PlayerID{PlayerID: 1})
	}))
	defer engine.Close()

	client := NewEngineClient(engine.URL, testLogger())
	id, err := client.Join(context.Background(), NewPlayer{Name: "bot1", ServerAddress: "bot1:3001"})
	require.NoError(t, err)
	assert.Equal(t, 1, id.PlayerID)
	assert.Equal(t, "bot1", got.Name)
	assert.Equal(t, "bot1:3001", got.ServerAddress)
}

func TestJoinRetriesUntilEngineIsUp(t *testing.T) {
	oldBackoff := JoinBackoff
	JoinBackoff = time.Millisecond
	defer func() { JoinBackoff = oldBackoff }()

	calls := 0
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(PlayerID{PlayerID: 7})
	}))
	defer engine.Close()

	client := NewEngineClient(engine.URL, testLogger())
	id, err := client.JoinWithRetry(context.Background(), NewPlayer{Name: "bot"})
	require.NoError(t, err)
	assert.Equal(t, 7, id.PlayerID)
	assert.Equal(t, 3, calls)
}

func TestJoinGivesUpAfterBudget(t *testing.T) {
	oldBackoff, oldAttempts := JoinBackoff, MaxJoinAttempts
	JoinBackoff, MaxJoinAttempts = time.Millisecond, 2
	defer func() { JoinBackoff, MaxJoinAttempts = oldBackoff, oldAttempts }()

	calls := 0
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer engine.Close()

	client := NewEngineClient(engine.URL, testLogger())
	_, err := client.JoinWithRetry(context.Background(), NewPlayer{Name: "bot"})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestJoinHonorsContextCancel(t *testing.T) {
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer engine.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := NewEngineClient(engine.URL, testLogger())
	_, err := client.JoinWithRetry(ctx, NewPlayer{Name: "bot"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestJoinBareHostGetsHTTPScheme(t *testing.T) {
	client := NewEngineClient("game:50051", testLogger())
	assert.Equal(t, "http://game:50051", client.base)
}
