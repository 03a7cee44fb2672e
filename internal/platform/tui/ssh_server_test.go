package tui

import (
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestServer(t *testing.T, addr string) *SSHServer {
	t.Helper()
	cfg := DefaultSSHServerConfig()
	cfg.Address = addr
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	return srv
}

func TestListenAndServeReturnsBindError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	srv := newTestServer(t, ln.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err == nil {
			t.Fatal("expected an error for an address already in use")
		}
	case <-time.After(5 * time.Second):
		_ = srv.Shutdown()
		t.Fatal("ListenAndServe kept running after failing to bind")
	}
}

func TestConnectCommand(t *testing.T) {
	cases := []struct {
		addr string
		want string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:4000", "ssh localhost -p 4000"},
		{"arcade.example.com:22", "ssh arcade.example.com -p 22"},
	}
	for _, tc := range cases {
		srv := newTestServer(t, tc.addr)
		if got := srv.ConnectCommand(); got != tc.want {
			t.Errorf("ConnectCommand(%q) = %q, want %q", tc.addr, got, tc.want)
		}
		if srv.Addr() != tc.addr {
			t.Errorf("Addr() = %q, want %q", srv.Addr(), tc.addr)
		}
	}
}
