package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/coffyg/herald"
)

type statusResponse struct {
	Status  string `json:"status"`
	Env     string `json:"env"`
	Message string `json:"message,omitempty"`
}

func main() {
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	herald.SetupLogger(&zl)

	env, err := herald.LoadEnvironment()
	if err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		b := herald.API().
			Custom(herald.HeaderAllowOrigin, env.ResolveOrigin(r.Header.Get("Origin"))).
			RequestID(r.Header.Get(herald.HeaderXRequestID))
		b, payload := b.JSON(statusResponse{Status: "ok", Env: env.Env})
		if err := b.Err(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		b.Apply(w.Header())
		w.Write(payload)
	})

	mux.HandleFunc("/style.css", func(w http.ResponseWriter, r *http.Request) {
		css := "body { margin: 0; font-family: sans-serif; }\n"
		herald.Stylesheet(css).Apply(w.Header())
		fmt.Fprint(w, css)
	})

	mux.HandleFunc("/app.js", func(w http.ResponseWriter, r *http.Request) {
		js := "console.log('herald testserver');\n"
		herald.Script(js).Apply(w.Header())
		fmt.Fprint(w, js)
	})

	mux.HandleFunc("/sw.js", func(w http.ResponseWriter, r *http.Request) {
		js := "self.addEventListener('install', () => {});\n"
		herald.ServiceWorker().Apply(w.Header())
		fmt.Fprint(w, js)
	})

	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		xml := `<?xml version="1.0" encoding="UTF-8"?><urlset></urlset>`
		herald.Sitemap().Apply(w.Header())
		fmt.Fprint(w, xml)
	})

	mux.HandleFunc("/download/report.pdf", func(w http.ResponseWriter, r *http.Request) {
		herald.Attachment("report.pdf").Apply(w.Header())
		w.Write([]byte("%PDF-1.4 stub"))
	})

	mux.HandleFunc("/old-path", func(w http.ResponseWriter, r *http.Request) {
		herald.NewBuilder().
			Redirect("/api/status", true).
			Cache(herald.CacheNone).
			Apply(w.Header())
		w.WriteHeader(http.StatusMovedPermanently)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		page := `<!doctype html><html><body><h1>herald testserver</h1></body></html>`
		herald.HTML(page).Apply(w.Header())
		fmt.Fprint(w, page)
	})

	addr := os.Getenv("HERALD_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	zl.Info().Str("addr", addr).Str("env", env.Env).Msg("testserver listening")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
