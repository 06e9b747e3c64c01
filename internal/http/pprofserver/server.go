// Package pprofserver exposes runtime profiles on a separate listener.
package pprofserver

import (
	"crypto/subtle"
	"net"
	"net/http"
	"net/http/pprof"
	"strings"
	"time"

	"dispatch-platform/internal/logx"
)

// Config stores pprof server settings. An empty Addr disables the server.
type Config struct {
	Addr string
	User string
	Pass string
}

// New returns a profiling server, or nil when cfg.Addr is empty.
func New(cfg Config, logger logx.Logger) *http.Server {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           Handler(cfg, logger),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Handler returns the pprof routes guarded by basic auth for non-local callers.
func Handler(cfg Config, logger logx.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)

	for _, name := range []string{"heap", "goroutine", "allocs", "block", "mutex", "threadcreate"} {
		mux.Handle("/debug/pprof/"+name, pprof.Handler(name))
	}
	return authOrLocalOnly(mux, cfg, logger)
}

func authOrLocalOnly(next http.Handler, cfg Config, logger logx.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isLoopback(r.RemoteAddr) {
			next.ServeHTTP(w, r)
			return
		}
		u, p, ok := r.BasicAuth()
		if cfg.User == "" || cfg.Pass == "" || !ok || !secureEq(u, cfg.User) || !secureEq(p, cfg.Pass) {
			logger.Warn("pprof access denied",
				logx.String("remote_addr", r.RemoteAddr),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("WWW-Authenticate", `Basic realm="pprof"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func secureEq(u, s string) bool {
	if len(u) != len(s) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(u), []byte(s)) == 1
}

func isLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}
