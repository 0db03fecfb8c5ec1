// Command hook-receiver is a local stand-in for the platform's incoming webhook.
// Point SLACK_HOOK_BASE_URL at it to watch relayed messages without a workspace.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"net/http"

	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/DIMO-Network/slack-admin-hooks/internal/services/slackhook"
)

func main() {
	addr := flag.String("addr", ":4001", "listen address")
	flag.Parse()

	logger := logging.GetAndSetDefaultLogger("hook-receiver")

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}
		var msg slackhook.Message
		if err := json.Unmarshal(body, &msg); err != nil {
			logger.Warn().Err(err).Str("path", r.URL.Path).Msg("Invalid payload")
			http.Error(w, "invalid_payload", http.StatusBadRequest)
			return
		}
		logger.Info().Str("path", r.URL.Path).Str("channel", msg.Channel).Str("text", msg.Text).Msg("Hook received")
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})

	logger.Info().Str("addr", *addr).Msg("Hook receiver listening")
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Fatal().Err(err).Msg("Hook receiver failed")
	}
}
