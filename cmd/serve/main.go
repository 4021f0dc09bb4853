// Command serve runs the chamber twin and streams each simulated day to
// dashboard clients over WebSocket. The dashboard itself lives elsewhere;
// this is the boundary feed it consumes.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/verdantlab/tubersim/config"
	"github.com/verdantlab/tubersim/sim"
	"github.com/verdantlab/tubersim/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dayInterval := flag.Duration("day-interval", 250*time.Millisecond, "Wall-clock pacing between simulated days")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	hub := NewHub()
	go hub.Run()

	// Completed trace so far; late joiners fetch it via /trace
	var (
		mu    sync.RWMutex
		trace []telemetry.DayRecord
	)

	// Advance the simulation in the background, paced for dashboards
	go func() {
		loop, err := sim.New(cfg, nil)
		if err != nil {
			slog.Error("invalid configuration", "error", err)
			os.Exit(1)
		}

		appendDay := func(s sim.State) {
			rec := telemetry.Record(s, &cfg.Growth)
			mu.Lock()
			trace = append(trace, rec)
			mu.Unlock()

			msg, err := json.Marshal(rec)
			if err != nil {
				slog.Error("marshaling day record", "error", err)
				return
			}
			hub.Broadcast <- msg
		}

		appendDay(loop.State())
		for day := 0; day < cfg.Scenario.Days; day++ {
			s, err := loop.Step()
			if err != nil {
				slog.Error("run halted", "error", err)
				return
			}
			appendDay(s)
			time.Sleep(*dayInterval)
		}

		mu.RLock()
		summary := telemetry.Summarize(trace)
		mu.RUnlock()
		slog.Info("run complete", "summary", summary)
	}()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})
	http.HandleFunc("/trace", func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		defer mu.RUnlock()
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(trace); err != nil {
			slog.Error("encoding trace", "error", err)
		}
	})

	slog.Info("serving", "addr", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
