package hub

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkrms_db/internal/ingest"
)

type fakeConn struct {
	mu   sync.Mutex
	got  []ingest.Summary
	fail bool
}

func (f *fakeConn) WriteJSON(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("broken pipe")
	}
	f.got = append(f.got, v.(ingest.Summary))
	return nil
}

func (f *fakeConn) received() []ingest.Summary {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ingest.Summary(nil), f.got...)
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestUploadHub_FiltersByAdminCode(t *testing.T) {
	h := NewUploadHub(quietLogger())
	defer h.Close()

	all := &fakeConn{}
	jakarta := &fakeConn{}
	h.Register(all, "")
	h.Register(jakarta, "3101")
	require.Equal(t, 2, h.Clients())

	h.Publish(ingest.Summary{BatchID: "a", AdminCodes: []string{"307"}})
	h.Publish(ingest.Summary{BatchID: "b", AdminCodes: []string{"307", "3101"}})

	assert.Eventually(t, func() bool { return len(all.received()) == 2 }, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return len(jakarta.received()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "b", jakarta.received()[0].BatchID)
}

func TestUploadHub_Unregister(t *testing.T) {
	h := NewUploadHub(quietLogger())
	defer h.Close()

	conn := &fakeConn{}
	c := h.Register(conn, "")
	h.Unregister(c)
	h.Unregister(c)
	assert.Equal(t, 0, h.Clients())

	h.Publish(ingest.Summary{BatchID: "a"})
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, conn.received())
}

func TestUploadHub_DropsFailingClient(t *testing.T) {
	h := NewUploadHub(quietLogger())
	defer h.Close()

	h.Register(&fakeConn{fail: true}, "")
	h.Publish(ingest.Summary{BatchID: "a"})

	assert.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 10*time.Millisecond)
}

func TestUploadHub_PublishNeverBlocks(t *testing.T) {
	h := &UploadHub{
		clients:   make(map[*Client]struct{}),
		broadcast: make(chan ingest.Summary, 1),
		log:       quietLogger(),
	}

	done := make(chan struct{})
	go func() {
		h.Publish(ingest.Summary{BatchID: "a"})
		h.Publish(ingest.Summary{BatchID: "b"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full channel")
	}
	assert.Len(t, h.broadcast, 1)
}
