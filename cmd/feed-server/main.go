package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// Serves the local data/ feeds over HTTP for development, so the
// archive-server's loader chain can be pointed at a live endpoint.
func main() {
	serveJSON := func(path string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			b, err := os.ReadFile(path)
			if err != nil {
				http.Error(w, "cannot read "+path+": "+err.Error(), http.StatusInternalServerError)
				return
			}
			// validate JSON so a bad file doesn't silently break
			var tmp any
			if err := json.Unmarshal(b, &tmp); err != nil {
				http.Error(w, path+" invalid JSON: "+err.Error(), http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(b)
		}
	}

	serveCSV := func(path string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			b, err := os.ReadFile(path)
			if err != nil {
				http.Error(w, "cannot read "+path+": "+err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/csv")
			w.WriteHeader(http.StatusOK)
			w.Write(b)
		}
	}

	http.HandleFunc("/videos.json", serveJSON("data/videos.json"))
	http.HandleFunc("/videos.csv", serveCSV("data/videos.csv"))
	http.HandleFunc("/sponsors.json", serveJSON("data/sponsors.json"))
	http.HandleFunc("/sponsors.csv", serveCSV("data/sponsors.csv"))

	log.Println("feed-server listening on http://localhost:9000")
	log.Fatal(http.ListenAndServe(":9000", nil))
}
