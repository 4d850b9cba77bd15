// Command c23serve exposes the parser as a long-lived HTTP/3 daemon: an
// editor or build tool posts one translation unit's source and gets back
// its diagnostics (and, on request, the pretty-printed form) without
// paying process-startup cost per file.
package main

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/c23fe/c23/dialect"
	"github.com/c23fe/c23/diag"
	"github.com/c23fe/c23/internal/netstack"
	"github.com/c23fe/c23/lexer"
	"github.com/c23fe/c23/parser"
	"github.com/c23fe/c23/printer"
)

func main() {
	var (
		addr     string
		certFile string
		keyFile  string
	)
	flag.StringVar(&addr, "addr", ":4433", "UDP address to serve HTTP/3 on")
	flag.StringVar(&certFile, "cert", "", "TLS certificate file (self-signed, generated in memory, when empty)")
	flag.StringVar(&keyFile, "key", "", "TLS key file (required alongside -cert)")
	flag.Parse()

	tlsCfg, err := tlsConfig(certFile, keyFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "c23serve: %v\n", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/parse", handleParse)

	srv := netstack.NewHTTP3Server(addr, tlsCfg, mux)
	bound, err := srv.Start()
	if err != nil {
		fmt.Fprintf(os.Stderr, "c23serve: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "c23serve: listening on %s (HTTP/3)\n", bound)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(os.Stderr, "c23serve: shutting down")
	if err := srv.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "c23serve: shutdown: %v\n", err)
	}
}

func tlsConfig(certFile, keyFile string) (*tls.Config, error) {
	if certFile != "" || keyFile != "" {
		if certFile == "" || keyFile == "" {
			return nil, fmt.Errorf("-cert and -key must be given together")
		}
		return netstack.LoadTLSConfig(certFile, keyFile)
	}
	return netstack.GenerateSelfSignedTLS([]string{"localhost", "127.0.0.1"}, 24*time.Hour)
}

// request is the wire shape of a POST /parse body.
type request struct {
	Filename string `json:"filename"`
	Source   string `json:"source"`
	Std      string `json:"std,omitempty"` // "c17" or "c23" (default)
	Print    bool   `json:"print,omitempty"`
}

// diagnosticJSON is the wire shape of one diag.Diagnostic.
type diagnosticJSON struct {
	Severity string `json:"severity"`
	Location string `json:"location"`
	Message  string `json:"message"`
}

// response is the wire shape of a POST /parse reply.
type response struct {
	Diagnostics []diagnosticJSON `json:"diagnostics"`
	HasErrors   bool             `json:"hasErrors"`
	Printed     string           `json:"printed,omitempty"`
}

func handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, 16<<20))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req request
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile := dialect.C23
	if req.Std == "c17" {
		profile = dialect.C17
	}

	lexed := lexer.Lex([]byte(req.Source), lexer.Options{Filename: req.Filename, Dialect: profile, AcceptVendorExtensions: true})
	unit, parseDiags := parser.ParseTranslationUnit(lexed.Tokens, parser.NewState())
	diags := append(append([]diag.Diagnostic{}, lexed.Diagnostics...), parseDiags...)

	resp := response{Diagnostics: make([]diagnosticJSON, 0, len(diags))}
	for _, d := range diags {
		resp.Diagnostics = append(resp.Diagnostics, diagnosticJSON{
			Severity: d.Severity.String(),
			Location: lexed.Map.String(d.Span),
			Message:  d.Message,
		})
		if d.Severity == diag.Error {
			resp.HasErrors = true
		}
	}
	if req.Print {
		resp.Printed = printer.Print(unit)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
