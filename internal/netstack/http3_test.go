package netstack

import (
	"crypto/tls"
	"io"
	"net/http"
	"testing"
	"time"

	http3 "github.com/quic-go/quic-go/http3"
)

func TestGenerateSelfSignedTLSProducesUsableConfig(t *testing.T) {
	cfg, err := GenerateSelfSignedTLS([]string{"localhost", "127.0.0.1"}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSelfSignedTLS: %v", err)
	}
	if len(cfg.Certificates) != 1 {
		t.Fatalf("want one certificate, got %d", len(cfg.Certificates))
	}
	if cfg.MinVersion != tls.VersionTLS13 {
		t.Fatalf("MinVersion = %v, want TLS 1.3", cfg.MinVersion)
	}
}

func TestHTTP3ServerLoopback(t *testing.T) {
	srvTLS, err := GenerateSelfSignedTLS([]string{"127.0.0.1"}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSelfSignedTLS: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	srv := NewHTTP3Server("127.0.0.1:0", srvTLS, mux)
	addr, err := srv.Start()
	if err != nil {
		t.Skip("http3 not supported here:", err)
	}
	defer srv.Stop()

	tr := &http3.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}
	defer tr.Close()
	cli := &http.Client{Transport: tr, Timeout: 2 * time.Second}

	resp, err := cli.Get("https://" + addr + "/ping")
	if err != nil {
		t.Skip("http3 dial failed:", err)
	}
	defer resp.Body.Close()

	got, _ := io.ReadAll(resp.Body)
	if string(got) != "pong" {
		t.Fatalf("got %q, want %q", got, "pong")
	}
}
