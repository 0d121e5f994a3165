package main // import "github.com/lighthouses-aicup/go-bot"

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

var (
	EngineCallTimeout = 1 * time.Second
	JoinBackoff       = 1 * time.Second
	MaxJoinAttempts   = 30
)

// EngineClient issues the one call the bot makes as a client: Join.
type EngineClient struct {
	base string
	http *http.Client
	log  *slog.Logger
}

func NewEngineClient(addr string, log *slog.Logger) *EngineClient {
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}
	return &EngineClient{
		base: strings.TrimRight(addr, "/"),
		http: &http.Client{Timeout: EngineCallTimeout},
		log:  log,
	}
}

func (c *EngineClient) Join(ctx context.Context, player NewPlayer) (PlayerID, error) {
	body, err := json.Marshal(player)
	if err != nil {
		return PlayerID{}, fmt.Errorf("join: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/join", bytes.NewReader(body))
	if err != nil {
		return PlayerID{}, fmt.Errorf("join: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return PlayerID{}, fmt.Errorf("join: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return PlayerID{}, fmt.Errorf("join: engine answered %s", resp.Status)
	}
	var id PlayerID
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return PlayerID{}, fmt.Errorf("join: decode response: %w", err)
	}
	return id, nil
}

// JoinWithRetry keeps knocking until the engine lets us in or the attempt
// budget runs out. There is no game without a successful join.
func (c *EngineClient) JoinWithRetry(ctx context.Context, player NewPlayer) (PlayerID, error) {
	var lastErr error
	for attempt := 1; attempt <= MaxJoinAttempts; attempt++ {
		id, err := c.Join(ctx, player)
		if err == nil {
			c.log.Info("joined game", "player_id", id.PlayerID)
			return id, nil
		}
		lastErr = err
		c.log.Warn("could not join game", "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return PlayerID{}, ctx.Err()
		case <-time.After(JoinBackoff):
		}
	}
	return PlayerID{}, fmt.Errorf("join: giving up after %d attempts: %w", MaxJoinAttempts, lastErr)
}
