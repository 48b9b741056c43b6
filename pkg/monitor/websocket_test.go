package monitor

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.assertions/pkg/logging"
)

func newTestServer(t *testing.T) (*Server, *EventCollector, *httptest.Server) {
	t.Helper()
	c := NewEventCollector()
	s := NewServer(":0", c, NewDashboardData("test-run"))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, c, ts
}

func fired(subject string) logging.FailureLog {
	return logging.FailureLog{
		Action:     "then_throw",
		Subject:    subject,
		Message:    subject + " is required",
		ErrorCount: 1,
		Kind:       "required",
	}
}

func TestServer_Health(t *testing.T) {
	_, _, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestServer_Dashboard(t *testing.T) {
	_, c, ts := newTestServer(t)
	c.Logger().LogFailure(fired("email"))

	resp, err := http.Get(ts.URL + "/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var snap DashboardSnapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, "test-run", snap.RunID)
	assert.Equal(t, 1, snap.Summary.Fired)
	assert.Equal(t, 1, snap.Subjects["email"].Fired)
}

func TestServer_WebSocket(t *testing.T) {
	s, c, ts := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var first Message
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "dashboard", first.Type)
	assert.Equal(t, 1, s.Clients())

	c.Logger().LogFailure(fired("age"))

	var msg struct {
		Type string         `json:"type"`
		Data AssertionEvent `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "assertion", msg.Type)
	assert.Equal(t, EventFired, msg.Data.Type)
	assert.Equal(t, "age", msg.Data.Subject)
	assert.Equal(t, "age is required", msg.Data.Message)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	assert.Eventually(t, func() bool { return s.Clients() == 0 },
		5*time.Second, 10*time.Millisecond)
}

func TestServer_SSE(t *testing.T) {
	s, c, ts := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	name, _ := readSSE(t, reader)
	assert.Equal(t, "dashboard", name)
	assert.Equal(t, 1, s.Clients())

	c.Logger().LogFailure(fired("name"))

	name, data := readSSE(t, reader)
	assert.Equal(t, "assertion", name)
	var event AssertionEvent
	require.NoError(t, json.Unmarshal([]byte(data), &event))
	assert.Equal(t, "name", event.Subject)
	assert.Equal(t, "then_throw", event.Action)
}

// readSSE reads one event block and returns its name and data.
func readSSE(t *testing.T, r *bufio.Reader) (string, string) {
	t.Helper()
	var name, data string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			return name, data
		case strings.HasPrefix(line, "event: "):
			name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestServer_StartStop(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	s := NewServer(addr, NewEventCollector(), NewDashboardData("run"))

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(context.Background()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.NoError(t, <-errCh)
}

func TestServer_StopDisconnectsStreamingClients(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	s := NewServer(addr, NewEventCollector(), NewDashboardData("run"))

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(context.Background()) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + addr + "/events")
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	name, _ := readSSE(t, reader)
	require.Equal(t, "dashboard", name)

	conn, wsResp, err := websocket.DefaultDialer.Dial("ws://"+addr+"/ws", nil)
	require.NoError(t, err)
	defer wsResp.Body.Close()
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var first Message
	require.NoError(t, conn.ReadJSON(&first))
	require.Equal(t, 2, s.Clients())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.NoError(t, <-errCh)

	assert.Eventually(t, func() bool { return s.Clients() == 0 },
		5*time.Second, 10*time.Millisecond)

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "unexpected error: %v", err)

	_, err = io.ReadAll(reader)
	assert.NoError(t, err)
}

func TestServer_StartCancelled(t *testing.T) {
	s := NewServer("127.0.0.1:0", NewEventCollector(), NewDashboardData("run"))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_SlowClientDoesNotBlock(t *testing.T) {
	s := NewServer(":0", NewEventCollector(), NewDashboardData("run"))
	ch := s.subscribe()
	defer s.unsubscribe(ch)

	for i := 0; i < clientBacklog+10; i++ {
		s.broadcast(AssertionEvent{Type: EventFired})
	}
	assert.Len(t, ch, clientBacklog)
}
