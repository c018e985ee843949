package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/benjialonso/snake/pkg/config"
	"github.com/benjialonso/snake/pkg/game"
	"github.com/benjialonso/snake/pkg/record"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Global map to track active IP connections
var activeIPs sync.Map

var (
	boardWidth  int
	boardHeight int
	recordsDir  string
	catalogPath string
)

// GameServer owns one engine per connection. The engine itself is not
// concurrency-safe, so every access from the reader goroutine and the game
// loop goes through mu.
type GameServer struct {
	mu      sync.Mutex
	eng     *game.Engine
	pilot   *game.Autopilot
	started bool
	paused  bool
	auto    bool

	sessionID string
	startedAt time.Time
	rec       *record.Recorder
}

type ServerMessage struct {
	Type   string           `json:"type"`
	Config *game.GameConfig `json:"config,omitempty"`
	State  *game.Snapshot   `json:"state,omitempty"`
}

type ClientMessage struct {
	Action string `json:"action"`
}

func NewGameServer() *GameServer {
	gs := &GameServer{
		eng:       game.New(boardWidth, boardHeight, config.Default()),
		pilot:     game.NewAutopilot(0),
		sessionID: uuid.NewString(),
		startedAt: time.Now(),
	}
	if recordsDir != "" {
		rec, err := record.NewRecorder(recordsDir, gs.sessionID)
		if err != nil {
			log.Println("Failed to start recorder:", err)
		} else {
			gs.rec = rec
		}
	}
	return gs
}

func (gs *GameServer) getState() game.Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.eng.Snapshot()
}

func (gs *GameServer) handleAction(action string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	var dir game.Direction
	isDirection := false

	switch action {
	case "up":
		dir, isDirection = game.DirUp, true
	case "down":
		dir, isDirection = game.DirDown, true
	case "left":
		dir, isDirection = game.DirLeft, true
	case "right":
		dir, isDirection = game.DirRight, true
	case "start":
		gs.started = true
	case "pause":
		if gs.started && !gs.eng.Snapshot().GameOver {
			gs.paused = !gs.paused
		}
	case "restart":
		if gs.eng.Snapshot().GameOver {
			gs.eng.Reset()
			gs.paused = false
		}
	case "auto":
		gs.auto = !gs.auto
	}

	if isDirection {
		// The first steering input starts the game.
		gs.started = true
		gs.eng.SubmitDirection(dir)
	}
}

// update advances the engine by one tick when the session is live and
// returns the snapshot to push to the client.
func (gs *GameServer) update() game.Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	snap := gs.eng.Snapshot()
	if !gs.started || gs.paused || snap.GameOver {
		return snap
	}

	if gs.auto {
		if d, ok := gs.pilot.Step(snap); ok {
			gs.eng.SubmitDirection(d)
		}
	}
	snap = gs.eng.Tick()
	if gs.rec != nil {
		gs.rec.Record(record.StepRecord{Seq: snap.Tick, At: time.Now(), State: snap})
	}
	return snap
}

// finish closes the recorder and files the session in the catalog.
func (gs *GameServer) finish() {
	if gs.rec == nil {
		return
	}
	gs.rec.Close()

	cat, err := record.OpenCatalog(catalogPath)
	if err != nil {
		log.Println("Failed to open catalog:", err)
		return
	}
	defer cat.Close()

	snap := gs.getState()
	session := record.Session{
		ID:        gs.sessionID,
		File:      gs.rec.Path(),
		Width:     snap.Width,
		Height:    snap.Height,
		StartedAt: gs.startedAt,
		EndedAt:   time.Now(),
		Ticks:     snap.Tick,
	}
	if err := cat.Add(session); err != nil {
		log.Println("Failed to catalog session:", err)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	log.Println("New WebSocket connection from:", r.RemoteAddr)

	// Get base IP address (remove port)
	ip := r.RemoteAddr
	for i := len(r.RemoteAddr) - 1; i >= 0; i-- {
		if r.RemoteAddr[i] == ':' {
			ip = r.RemoteAddr[:i]
			break
		}
	}

	// One connection per IP
	if _, loaded := activeIPs.LoadOrStore(ip, true); loaded {
		log.Printf("Connection rejected: IP %s is already connected\n", ip)
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Already connected"))
		return
	}
	defer activeIPs.Delete(ip)

	gs := NewGameServer()
	defer gs.finish()

	// Mutex to protect concurrent writes to the WebSocket connection
	var writeMu sync.Mutex
	safeWriteJSON := func(v interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(v)
	}

	// Send initial config
	gameConfig := gs.eng.Config()
	safeWriteJSON(ServerMessage{
		Type:   "config",
		Config: &gameConfig,
	})

	// Send initial state
	initialState := gs.getState()
	safeWriteJSON(ServerMessage{
		Type:  "state",
		State: &initialState,
	})

	// Input handling goroutine
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg ClientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				log.Println("Read error:", err)
				return
			}
			gs.handleAction(msg.Action)
			// Trigger immediate state update for UI responsiveness
			state := gs.getState()
			safeWriteJSON(ServerMessage{
				Type:  "state",
				State: &state,
			})
		}
	}()

	// Game loop. The ticker follows the engine's current interval, which
	// tightens as the level climbs and snaps back on restart.
	state := gs.getState()
	ticker := time.NewTicker(state.TickInterval())
	defer ticker.Stop()
	prevIntervalMs := state.TickIntervalMs

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			state := gs.update()
			if state.TickIntervalMs != prevIntervalMs {
				ticker.Reset(state.TickInterval())
				prevIntervalMs = state.TickIntervalMs
			}
			if err := safeWriteJSON(ServerMessage{
				Type:  "state",
				State: &state,
			}); err != nil {
				log.Println("Write error:", err)
				return
			}
		}
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.IntVar(&boardWidth, "width", config.DefaultWidth, "playfield width in cells")
	flag.IntVar(&boardHeight, "height", config.DefaultHeight, "playfield height in cells")
	flag.StringVar(&recordsDir, "records", "records", "directory for session recordings (empty disables)")
	flag.StringVar(&catalogPath, "catalog", "data/catalog.db", "session catalog database")
	flag.Parse()

	// Serve static files
	fs := http.FileServer(http.Dir("web/static"))
	http.Handle("/", fs)

	// WebSocket endpoint
	http.HandleFunc("/ws", handleWebSocket)

	fmt.Printf("🚀 Snake Web Server starting on http://localhost%s\n", *addr)
	fmt.Println("📱 Open your browser and visit the address above")

	log.Fatal(http.ListenAndServe(*addr, nil))
}
