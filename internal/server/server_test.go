package server_test

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gukin-han/portfolio/internal/config"
	"github.com/gukin-han/portfolio/internal/server"
	"github.com/gukin-han/portfolio/pkg/lifecycle"
	"github.com/gukin-han/portfolio/pkg/logging"
)

func testConfig(t *testing.T, port int) *config.ServerConfig {
	t.Helper()
	cfg := &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            port,
		ReadTimeout:     "5s",
		WriteTimeout:    "5s",
		ShutdownTimeout: "5s",
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return cfg
}

func getAvailablePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find available port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

func TestStart_ServerResponds(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("test response"))
	})

	sys := server.New(testConfig(t, getAvailablePort(t)), handler, logging.Discard())
	lc := lifecycle.New()

	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	resp, err := http.Get("http://" + sys.Addr() + "/")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(body) != "test response" {
		t.Errorf("body = %q, want %q", string(body), "test response")
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	if _, err := http.Get("http://" + sys.Addr() + "/"); err == nil {
		t.Error("server still accepting requests after shutdown")
	}
}

func TestStart_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	sys := server.New(testConfig(t, port), http.NotFoundHandler(), logging.Discard())

	if err := sys.Start(lifecycle.New()); err == nil {
		t.Error("Start() on a bound port should return error")
	}
}
