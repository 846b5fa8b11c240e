package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gws "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(zerolog.Nop())
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.Done()
	})
	return hub
}

func startServer(t *testing.T, hub *Hub) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/feed/ws", func(c *gin.Context) {
		c.Set("userID", "staff-1")
		c.Next()
	}, NewHandler(hub, zerolog.Nop()).HandleConnection)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/feed/ws"
}

func dial(t *testing.T, url string) *gws.Conn {
	t.Helper()
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *gws.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev Event
	require.NoError(t, json.Unmarshal(data, &ev))
	return ev
}

func TestHub_DeliversToTopics(t *testing.T) {
	hub := startHub(t)
	url := startServer(t, hub)

	all := dial(t, url)
	mine := dial(t, url+"?studentId=s1")
	require.Eventually(t, func() bool {
		return hub.ClientCount(TopicAll) == 1 && hub.ClientCount(StudentTopic("s1")) == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.Publish(NewEvent(EventNoteCreated, "s2", "n1", nil))
	first := readEvent(t, all)
	assert.Equal(t, EventNoteCreated, first.Type)
	assert.Equal(t, "s2", first.StudentID)

	hub.Publish(NewEvent(EventCommunicationCreated, "s1", "c1", map[string]string{"type": "email"}))
	second := readEvent(t, all)
	assert.Equal(t, EventCommunicationCreated, second.Type)

	ev := readEvent(t, mine)
	assert.Equal(t, EventCommunicationCreated, ev.Type, "student topic only sees its own events")
	assert.Equal(t, "c1", ev.EntityID)
}

func TestHub_UnregistersOnClose(t *testing.T) {
	hub := startHub(t)
	url := startServer(t, hub)

	conn := dial(t, url)
	require.Eventually(t, func() bool { return hub.ClientCount(TopicAll) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(gws.CloseMessage, gws.FormatCloseMessage(gws.CloseNormalClosure, "")))
	require.Eventually(t, func() bool { return hub.ClientCount(TopicAll) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_Listeners(t *testing.T) {
	hub := startHub(t)
	events := make(chan Event, 1)
	hub.AddListener(events)

	hub.Publish(NewEvent(EventStudentDeleted, "s9", "s9", nil))
	select {
	case ev := <-events:
		assert.Equal(t, EventStudentDeleted, ev.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not receive the event")
	}

	hub.RemoveListener(events)
	hub.Publish(NewEvent(EventStudentDeleted, "s9", "s9", nil))
	select {
	case <-events:
		t.Fatal("removed listener received an event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	hub := NewHub(zerolog.Nop()) // not running
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish(NewEvent(EventActivityRecorded, "s1", "a", nil))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a stopped hub")
	}
}
