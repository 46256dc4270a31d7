package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync/atomic"
	"time"
)

var requestCount atomic.Int64

type block struct {
	Type string `json:"type"`
	Text *struct {
		Text string `json:"text"`
	} `json:"text,omitempty"`
}

type message struct {
	Blocks []block `json:"blocks"`
}

func main() {
	port := "9090"
	if p := os.Getenv("PORT"); p != "" {
		port = p
	}

	// Successful endpoint — always returns 200
	http.HandleFunc("/chat/success", func(w http.ResponseWriter, r *http.Request) {
		count := requestCount.Add(1)
		logRequest(r, count, 200)

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	})

	// Slow endpoint — delays 3 seconds before responding
	http.HandleFunc("/chat/slow", func(w http.ResponseWriter, r *http.Request) {
		count := requestCount.Add(1)
		time.Sleep(3 * time.Second)
		logRequest(r, count, 200)

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	})

	// Failing endpoint — always returns 500
	http.HandleFunc("/chat/fail", func(w http.ResponseWriter, r *http.Request) {
		count := requestCount.Add(1)
		logRequest(r, count, 500)

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "channel_not_found")
	})

	// Stats endpoint — shows request count
	http.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int64{"total_requests": requestCount.Load()})
	})

	log.Printf("Mock chat endpoint server starting on :%s", port)
	log.Printf("  POST /chat/success  -> 200 OK")
	log.Printf("  POST /chat/slow     -> 200 OK (3s delay)")
	log.Printf("  POST /chat/fail     -> 500 Error")
	log.Printf("  GET  /stats         -> request count")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func logRequest(r *http.Request, count int64, status int) {
	body, _ := io.ReadAll(io.LimitReader(r.Body, 64*1024))

	header := ""
	var msg message
	if err := json.Unmarshal(body, &msg); err == nil && len(msg.Blocks) > 0 && msg.Blocks[0].Text != nil {
		header = msg.Blocks[0].Text.Text
	}

	fmt.Printf("[#%d] %s %s -> %d | blocks=%d | %s\n",
		count,
		r.Method,
		r.URL.Path,
		status,
		len(msg.Blocks),
		truncate(header, 80),
	)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
