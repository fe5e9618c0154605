package main

import (
	"flag"
	"html/template"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	httpadapter "svw.info/takuzu/internal/adapters/http"
	"svw.info/takuzu/internal/config"
	"svw.info/takuzu/internal/generator"
	"svw.info/takuzu/internal/hint"
	"svw.info/takuzu/internal/infrastructure/storage"
	"svw.info/takuzu/internal/solver"
	"svw.info/takuzu/internal/usecase"
	"svw.info/takuzu/internal/validator"
	"svw.info/takuzu/web"
)

var log = logrus.New()

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

func main() {
	cfgPath := flag.String("config", "", "optional YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	persist := flag.String("persist-path", "", "save directory (overrides config)")
	levelStr := flag.String("log-level", "", "debug|info|warn|error (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.WithError(err).Fatal("load config")
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *persist != "" {
		cfg.PersistPath = *persist
	}
	if *levelStr != "" {
		cfg.LogLevel = *levelStr
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	_ = os.MkdirAll(cfg.PersistPath, 0o755)

	// Wire providers → use cases → HTTP adapter
	s := solver.NewDeductiveSolver()
	g := generator.NewCarveGenerator(s)
	v := validator.New()
	st := storage.NewFS(cfg.PersistPath)
	hin := hint.NewForced()
	uc := usecase.NewService(s, g, v, hin, st)
	h := httpadapter.New(uc, cfg.BoardSize)

	tmpl := web.Templates()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{
			"Size": cfg.BoardSize,
		}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.WithFields(logrus.Fields{
		"addr":    cfg.Addr,
		"persist": cfg.PersistPath,
		"size":    cfg.BoardSize,
	}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server error")
	}
}
