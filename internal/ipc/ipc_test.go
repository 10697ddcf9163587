package ipc

import (
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndListenRoundTrip(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "vifm.sock")
	inbox := NewInbox()

	srv, err := Listen(sock, inbox)
	require.NoError(t, err)
	defer srv.Close()

	require.NoError(t, Send(sock, []string{"--select", "/tmp/a.txt"}))

	deadline := time.Now().Add(time.Second)
	var got [][]string
	for time.Now().Before(deadline) {
		if msgs := inbox.Drain(); len(msgs) > 0 {
			got = msgs
			break
		}
		time.Sleep(time.Millisecond)
	}
	require.Len(t, got, 1)
	assert.Equal(t, []string{"--select", "/tmp/a.txt"}, got[0])
}

func TestListenRefusesWhenAlreadyRunning(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "vifm.sock")
	inbox := NewInbox()

	srv, err := Listen(sock, inbox)
	require.NoError(t, err)
	defer srv.Close()

	_, err = Listen(sock, inbox)
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestListenRecoversStaleSocket(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "vifm.sock")
	inbox := NewInbox()

	srv, err := Listen(sock, inbox)
	require.NoError(t, err)
	// Simulate a crash: the socket file is left on disk but nothing answers.
	srv.ln.(*net.UnixListener).SetUnlinkOnClose(false)
	srv.ln.Close()

	srv2, err := Listen(sock, inbox)
	require.NoError(t, err, "Listen should recover a stale socket file")
	defer srv2.Close()
}
