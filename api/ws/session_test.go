package ws

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionEnqueue(t *testing.T) {
	s := newSession(uuid.New(), nil)

	assert.True(t, s.enqueue(Event{Type: evNewMessage}))

	// Fill the remaining buffer; the next offer is dropped, not blocked.
	for i := 1; i < sendBuffer; i++ {
		require.True(t, s.enqueue(Event{Type: evNewMessage}), "event %d", i)
	}
	assert.False(t, s.enqueue(Event{Type: evNewMessage}))
}

func TestSessionClose(t *testing.T) {
	s := newSession(uuid.New(), nil)
	require.True(t, s.enqueue(Event{Type: evNewNotification}))

	s.close()
	assert.False(t, s.enqueue(Event{Type: evNewNotification}), "closed sessions drop events")
	assert.NotPanics(t, s.close, "double close is safe")

	// Events queued before close stay readable so writePump can drain them.
	ev, ok := <-s.send
	assert.True(t, ok)
	assert.Equal(t, evNewNotification, ev.Type)
	_, ok = <-s.send
	assert.False(t, ok)
}

func TestEventWireShape(t *testing.T) {
	data, err := json.Marshal(Event{Type: evUserTyping, Data: map[string]any{"is_typing": true}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "user_typing", "data": {"is_typing": true}}`, string(data))

	// Empty payloads leave the data key off entirely.
	data, err = json.Marshal(Event{Type: evMessagesRead})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "messages_read"}`, string(data))
}

func TestErrorEvent(t *testing.T) {
	data, err := json.Marshal(errorEvent("recipient not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "error", "data": {"message": "recipient not found"}}`, string(data))
}

func TestInboundEventDecoding(t *testing.T) {
	var ev inboundEvent
	require.NoError(t, json.Unmarshal([]byte(`{"type": "private_message", "data": {"recipient_id": "abc", "content": "hi"}}`), &ev))
	assert.Equal(t, evPrivateMessage, ev.Type)

	var payload privateMessagePayload
	require.NoError(t, json.Unmarshal(ev.Data, &payload))
	assert.Equal(t, "abc", payload.RecipientID)
	assert.Equal(t, "hi", payload.Content)
}
