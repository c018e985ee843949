package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/benjialonso/snake/pkg/config"
	"github.com/benjialonso/snake/pkg/game"
	"github.com/benjialonso/snake/pkg/record"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ReplayServer lists recorded sessions from the catalog and streams their
// frames over a websocket.
type ReplayServer struct {
	catalog *record.Catalog
}

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	catalogPath := flag.String("catalog", "data/catalog.db", "session catalog database")
	flag.Parse()

	catalog, err := record.OpenCatalog(*catalogPath)
	if err != nil {
		log.Fatal("Failed to open catalog:", err)
	}
	defer catalog.Close()

	server := &ReplayServer{catalog: catalog}

	// Serve static files (REUSE existing web/static)
	fs := http.FileServer(http.Dir("web/static"))
	http.Handle("/static/", http.StripPrefix("/static/", fs))

	http.HandleFunc("/", server.handleIndex)
	http.HandleFunc("/view", server.handleView)

	// WebSocket for replay data
	http.HandleFunc("/ws/replay", server.handleReplayWS)

	fmt.Printf("📼 Snake Replay Tool starting on http://localhost%s\n", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

var indexTmpl = template.Must(template.New("index").Parse(`
<!DOCTYPE html>
<html>
<head>
    <title>Snake Replays</title>
    <style>
        body { font-family: monospace; background: #1a202c; color: #fff; padding: 2rem; }
        h1 { color: #48bb78; }
        .file-list { display: grid; gap: 1rem; }
        .file-item {
            background: #2d3748; padding: 1rem; border-radius: 8px;
            display: flex; justify-content: space-between; align-items: center;
        }
        .file-item:hover { background: #4a5568; }
        a { color: #63b3ed; text-decoration: none; font-weight: bold; }
        .meta { color: #a0aec0; font-size: 0.9em; }
    </style>
</head>
<body>
    <h1>📼 Replay Library</h1>
    <div class="file-list">
        {{range .}}
        <div class="file-item">
            <div>
                <div class="name">{{.ID}}</div>
                <div class="meta">Board: {{.Width}}x{{.Height}} | Ticks: {{.Ticks}} | {{.StartedAt.Format "2006-01-02 15:04:05"}}</div>
            </div>
            <a href="/view?session={{.ID}}">WATCH REPLAY ▶</a>
        </div>
        {{else}}
        <p>No recorded sessions in the catalog yet.</p>
        {{end}}
    </div>
</body>
</html>`))

func (s *ReplayServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.catalog.Sessions()
	if err != nil {
		log.Println("Failed to list sessions:", err)
		http.Error(w, "catalog unavailable", http.StatusInternalServerError)
		return
	}
	indexTmpl.Execute(w, sessions)
}

func (s *ReplayServer) handleView(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	// Redirect to the static HTML page with the session parameter
	http.Redirect(w, r, "/static/replay.html?session="+sessionID, http.StatusFound)
}

// Websocket logic
func (s *ReplayServer) handleReplayWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	session, err := s.catalog.Get(r.URL.Query().Get("session"))
	if err != nil {
		log.Println("Unknown session:", err)
		return
	}
	reader, err := record.Open(session.File)
	if err != nil {
		log.Println("Failed to open record:", err)
		return
	}
	defer reader.Close()

	// Initialize the frontend with the board the session was played on.
	cfg := config.Default()
	replayConfig := game.GameConfig{
		Width:          session.Width,
		Height:         session.Height,
		ScorePerLevel:  cfg.ScorePerLevel,
		MaxLevel:       cfg.MaxLevel,
		BaseIntervalMs: int(cfg.BaseInterval.Milliseconds()),
		MinIntervalMs:  int(cfg.MinInterval.Milliseconds()),
	}
	if err := conn.WriteJSON(struct {
		Type   string           `json:"type"`
		Config *game.GameConfig `json:"config"`
	}{
		Type:   "config",
		Config: &replayConfig,
	}); err != nil {
		return
	}

	var paused atomic.Bool

	// Read Loop for controls
	go func() {
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var cmd struct {
				Command string `json:"command"`
			}
			json.Unmarshal(msg, &cmd)
			switch cmd.Command {
			case "pause":
				paused.Store(true)
			case "resume":
				paused.Store(false)
			}
		}
	}()

	// Stream Loop: frames are paced by the interval the engine ran at when
	// each one was recorded.
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Println("Record parse error:", err)
			return
		}

		for paused.Load() {
			time.Sleep(100 * time.Millisecond)
		}
		delay := rec.State.TickInterval()
		if delay < 16*time.Millisecond {
			delay = 16 * time.Millisecond
		}
		time.Sleep(delay)

		msg := struct {
			Type  string         `json:"type"`
			State game.Snapshot  `json:"state"`
			Meta  map[string]any `json:"meta"`
		}{
			Type:  "state",
			State: rec.State,
			Meta: map[string]any{
				"seq": rec.Seq,
				"at":  rec.At,
			},
		}

		if err := conn.WriteJSON(msg); err != nil {
			break
		}
	}
}
