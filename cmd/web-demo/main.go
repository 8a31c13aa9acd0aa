package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/magefree/gwent-engine-go/internal/agent"
	"github.com/magefree/gwent-engine-go/internal/card"
	"github.com/magefree/gwent-engine-go/internal/catalog"
	"github.com/magefree/gwent-engine-go/internal/config"
	"github.com/magefree/gwent-engine-go/internal/game"
	"github.com/magefree/gwent-engine-go/internal/game/encoder"
	"github.com/magefree/gwent-engine-go/internal/logging"
	"github.com/magefree/gwent-engine-go/internal/random"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	humanSeat = 0
	agentSeat = 1
)

var configPath = flag.String("config", "", "path to configuration file")

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for demo
	},
}

type WSMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// NewMatchRequest is the payload of a "new_match" message.
type NewMatchRequest struct {
	Seed            int64  `json:"seed"`
	Faction         string `json:"faction"`
	OpponentFaction string `json:"opponent_faction"`
	Opponent        string `json:"opponent"`
}

// PlayRequest is the payload of a "play" message.
type PlayRequest struct {
	Index int `json:"index"`
}

type Client struct {
	conn *websocket.Conn
	send chan []byte
	id   int
}

// session is one human-vs-agent match. Only the owning client's read
// goroutine touches it.
type session struct {
	match    *game.Match
	opponent agent.Agent
	log      []string
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	sessions   map[*Client]*session
	nextID     int

	catalog *card.Catalog
	space   *game.ActionSpace
	cfg     *config.Config
	logger  *zap.Logger
}

func newHub(cfg *config.Config, cards *card.Catalog, logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		sessions:   make(map[*Client]*session),
		catalog:    cards,
		space:      game.NewActionSpace(cards),
		cfg:        cfg,
		logger:     logger,
	}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.nextID++
			client.id = h.nextID
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("client registered", zap.Int("client", client.id))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				delete(h.sessions, client)
				close(client.send)
				h.logger.Info("client unregistered", zap.Int("client", client.id))
			}
			h.mu.Unlock()
		}
	}
}

func decodePayload(data any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(data)
}

func (h *Hub) handleMessage(client *Client, msg WSMessage) {
	h.logger.Debug("received message", zap.String("type", msg.Type), zap.Int("client", client.id))

	switch msg.Type {
	case "new_match":
		var req NewMatchRequest
		if err := decodePayload(msg.Data, &req); err != nil {
			h.sendError(client, fmt.Errorf("bad new_match payload: %w", err))
			return
		}
		s, err := h.newSession(req)
		if err != nil {
			h.sendError(client, err)
			return
		}
		h.mu.Lock()
		h.sessions[client] = s
		h.mu.Unlock()
		h.advance(s)
		h.sendState(client, s)

	case "play":
		s := h.session(client)
		if s == nil {
			h.sendError(client, fmt.Errorf("no match in progress"))
			return
		}
		var req PlayRequest
		if err := decodePayload(msg.Data, &req); err != nil {
			h.sendError(client, fmt.Errorf("bad play payload: %w", err))
			return
		}
		if s.match.Turn() != humanSeat {
			h.sendError(client, fmt.Errorf("not your turn"))
			return
		}
		if _, err := s.match.Step(req.Index); err != nil {
			h.sendError(client, err)
			return
		}
		h.advance(s)
		h.sendState(client, s)

	case "state":
		if s := h.session(client); s != nil {
			h.sendState(client, s)
		}

	default:
		h.sendError(client, fmt.Errorf("unknown message type %q", msg.Type))
	}
}

func (h *Hub) newSession(req NewMatchRequest) (*session, error) {
	seed, err := random.Resolve(req.Seed)
	if err != nil {
		return nil, err
	}
	kind := req.Opponent
	if kind == "" {
		kind = h.cfg.Demo.Opponent
	}
	opponent, err := agent.New(kind, h.catalog, random.Derive(seed, agentSeat))
	if err != nil {
		return nil, err
	}

	if req.Faction == "" {
		req.Faction = h.cfg.Match.Faction(humanSeat)
	}
	if req.OpponentFaction == "" {
		req.OpponentFaction = h.cfg.Match.Faction(agentSeat)
	}

	cfg := game.Config{
		Seed:         seed,
		HandSize:     h.cfg.Match.HandSize,
		StartingLife: h.cfg.Match.StartingLife,
		FirstPlayer:  h.cfg.Match.FirstPlayer,
		Factions:     [2]card.Faction{card.Faction(req.Faction), card.Faction(req.OpponentFaction)},
	}
	match, err := game.NewMatch(h.catalog, h.space, cfg, game.WithLogger(h.logger))
	if err != nil {
		return nil, err
	}

	s := &session{match: match, opponent: opponent}
	match.Events().Subscribe(func(e game.Event) {
		s.log = append(s.log, describeEvent(h.catalog, e))
	})
	return s, nil
}

// advance lets the agent act until it is the human's turn or the match ends.
func (h *Hub) advance(s *session) {
	actions := h.space.Actions()
	for !s.match.Over() && s.match.Turn() == agentSeat {
		mask, _ := s.match.LegalActions(agentSeat)
		index := s.opponent.Choose(encoder.Encode(s.match, agentSeat), mask, actions)
		if _, err := s.match.Step(index); err != nil {
			h.logger.Error("agent made an illegal move",
				zap.String("match_id", s.match.ID()),
				zap.String("agent", s.opponent.Name()),
				zap.Error(err),
			)
			return
		}
	}
}

func (h *Hub) session(client *Client) *session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sessions[client]
}

func (h *Hub) sendState(client *Client, s *session) {
	h.send(client, WSMessage{Type: "match_state", Data: buildView(s.match, humanSeat, s.log)})
}

func (h *Hub) sendError(client *Client, err error) {
	h.send(client, WSMessage{Type: "error", Data: err.Error()})
}

func (h *Hub) send(client *Client, msg WSMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal message", zap.Error(err))
		return
	}
	select {
	case client.send <- payload:
	default:
		h.logger.Warn("client send buffer full", zap.Int("client", client.id))
	}
}

func (c *Client) readPump(hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			hub.logger.Warn("error unmarshaling message", zap.Error(err))
			continue
		}

		hub.handleMessage(c, msg)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}

func serveWS(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, 256),
	}

	hub.register <- client

	go client.writePump()
	go client.readPump(hub)
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cards, err := catalog.Load(context.Background(), cfg.Catalog, logger)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}

	hub := newHub(cfg, cards, logger)
	go hub.run()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, w, r)
	})

	logger.Info("websocket demo starting",
		zap.String("addr", cfg.Demo.Addr),
		zap.String("opponent", cfg.Demo.Opponent),
		zap.Int("templates", cards.Len()),
	)

	if err := http.ListenAndServe(cfg.Demo.Addr, nil); err != nil {
		logger.Fatal("ListenAndServe failed", zap.Error(err))
	}
}
