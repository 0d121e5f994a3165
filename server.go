package main // import "github.com/lighthouses-aicup/go-bot"

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// BotServer is the engine-facing side of the bot: the engine pushes the
// initial state once and then one Turn per tick, waiting for the action.
type BotServer struct {
	mu      sync.Mutex
	tracker *Tracker
	rng     *rand.Rand
	log     *slog.Logger
	verbose bool
}

func NewBotServer(tracker *Tracker, log *slog.Logger, verbose bool) *BotServer {
	return &BotServer{
		tracker: tracker,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		log:     log,
		verbose: verbose,
	}
}

func (s *BotServer) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(s.timed(), gin.Recovery())
	r.POST("/join", s.handleJoin)
	r.POST("/initialstate", s.handleInitialState)
	r.POST("/turn", s.handleTurn)
	r.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	return r
}

// timed logs every call with its duration.
func (s *BotServer) timed() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("unary call",
			"method", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// The bot registers itself against the engine, never the other way around.
// Answer an empty PlayerID so a probing engine gets a well-formed reply.
func (s *BotServer) handleJoin(c *gin.Context) {
	c.JSON(http.StatusOK, PlayerID{})
}

func (s *BotServer) handleInitialState(c *gin.Context) {
	var init NewPlayerInitialState
	if err := c.ShouldBindJSON(&init); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.dump("initial state received", init)
	s.tracker.Seed(init)
	s.log.Info("initial state seeded",
		"player_id", init.PlayerID,
		"player_count", init.PlayerCount,
		"lighthouses", len(init.Lighthouses))
	c.JSON(http.StatusOK, PlayerReady{Ready: true})
}

// handleTurn never answers an error: a missed turn is recoverable, a failed
// call is an implicit PASS anyway. Malformed bodies and decision faults
// degrade to PASS.
func (s *BotServer) handleTurn(c *gin.Context) {
	var turn NewTurn
	if err := c.ShouldBindJSON(&turn); err != nil {
		s.log.Warn("discarding malformed turn", "error", err)
		c.JSON(http.StatusOK, passAction(Position{}))
		return
	}
	s.dump("turn received", turn)
	action := s.safeDecide(turn)
	s.tracker.Record(turn, action)
	s.log.Info("turn answered",
		"action", action.Action.String(),
		"destination", action.Destination,
		"energy", action.Energy)
	c.JSON(http.StatusOK, action)
}

func (s *BotServer) safeDecide(turn NewTurn) (action NewAction) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("decision fault, passing", "panic", r)
			action = passAction(turn.Position)
		}
	}()
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.tracker.Observe(turn)
	return Decide(snap, s.rng)
}

func (s *BotServer) dump(msg string, v any) {
	if !s.verbose {
		return
	}
	body, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.log.Debug(msg, "body", string(body))
}
