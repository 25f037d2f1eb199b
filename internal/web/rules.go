package web

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/russross/blackfriday/v2"
)

// getRules renders the Markdown ladder rules as a standalone HTML page.
func (s *Server) getRules(w http.ResponseWriter, r *http.Request) {
	src, err := os.ReadFile(filepath.Join(s.config.WebDir, "rules.md"))
	if err != nil {
		log.Printf("error: unable to read rules: %s", err)
		http.Error(w, "rules unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `<!DOCTYPE html><html><head><title>Rules</title><link rel="stylesheet" href="/style.css"></head><body><main>`)
	w.Write(blackfriday.Run(src)) // nolint:errcheck,gosec
	fmt.Fprint(w, `</main></body></html>`)
}
