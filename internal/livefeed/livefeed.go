// Package livefeed streams real-time password-strength feedback over a
// websocket connection: the client sends the password-so-far on every
// keystroke, and the server pushes back the current score and an
// [passcheck.IncrementalDelta] so the UI can skip redundant updates.
package livefeed

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rafaelsanzio/zxcheck"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// writeWait bounds how long a single push to the client may block.
const writeWait = 5 * time.Second

// update is what the server pushes back for each password-so-far message.
type update struct {
	Score              int               `json:"score"`
	Verdict            string            `json:"verdict"`
	Issues             []passcheck.Issue `json:"issues"`
	Suggestions        []string          `json:"suggestions"`
	ScoreChanged       bool              `json:"score_changed"`
	IssuesChanged      bool              `json:"issues_changed"`
	SuggestionsChanged bool              `json:"suggestions_changed"`
}

// Handler upgrades the request to a websocket and streams strength
// feedback for whatever password the client sends. Each connection
// tracks its own previous result, so CheckIncrementalWithConfig only
// recomputes what actually changed between keystrokes.
//
//	http.Handle("/livefeed", livefeed.Handler(passcheck.DefaultConfig()))
func Handler(cfg passcheck.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("livefeed: upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		var previous *passcheck.Result
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("livefeed: read error: %v", err)
				}
				return
			}

			result, delta, err := passcheck.CheckIncrementalWithConfig(string(message), previous, cfg)
			if err != nil {
				log.Printf("livefeed: check error: %v", err)
				return
			}
			previous = &result

			out := update{
				Score:              result.Score,
				Verdict:            result.Verdict,
				Issues:             result.Issues,
				Suggestions:        result.Suggestions,
				ScoreChanged:       delta.ScoreChanged,
				IssuesChanged:      delta.IssuesChanged,
				SuggestionsChanged: delta.SuggestionsChanged,
			}
			payload, err := json.Marshal(out)
			if err != nil {
				log.Printf("livefeed: marshal error: %v", err)
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Printf("livefeed: write error: %v", err)
				return
			}
		}
	}
}
