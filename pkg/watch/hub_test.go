package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case snapshot, ok := <-ch:
		require.True(t, ok, "channel closed")
		return snapshot
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
		return Snapshot{}
	}
}

func TestHubPublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(CollectionItems)
	defer cancel()

	hub.Publish(CollectionItems, []string{"ספה"})

	snapshot := receive(t, ch)
	assert.Equal(t, CollectionItems, snapshot.Collection)
	assert.Equal(t, []string{"ספה"}, snapshot.Data)
}

func TestHubReplaysLastSnapshotOnSubscribe(t *testing.T) {
	hub := NewHub()
	hub.Publish(CollectionPeople, "first")
	hub.Publish(CollectionPeople, "second")

	ch, cancel := hub.Subscribe(CollectionPeople)
	defer cancel()

	snapshot := receive(t, ch)
	assert.Equal(t, "second", snapshot.Data)
}

func TestHubCollectionsAreIndependent(t *testing.T) {
	hub := NewHub()
	items, cancelItems := hub.Subscribe(CollectionItems)
	defer cancelItems()

	hub.Publish(CollectionSettings, "budget")

	select {
	case <-items:
		t.Fatal("items subscriber received a settings snapshot")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubLatestWinsForSlowSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(CollectionItems)
	defer cancel()

	// The subscriber never drains between publishes; only the most
	// recent snapshot must survive.
	hub.Publish(CollectionItems, 1)
	hub.Publish(CollectionItems, 2)
	hub.Publish(CollectionItems, 3)

	snapshot := receive(t, ch)
	assert.Equal(t, 3, snapshot.Data)

	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra snapshot %v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubCancelClosesChannel(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(CollectionItems)

	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	// Cancelling twice and publishing after cancel are both safe.
	cancel()
	hub.Publish(CollectionItems, "after cancel")
}

func TestHubMultipleSubscribers(t *testing.T) {
	hub := NewHub()
	first, cancelFirst := hub.Subscribe(CollectionItems)
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe(CollectionItems)
	defer cancelSecond()

	hub.Publish(CollectionItems, "broadcast")

	assert.Equal(t, "broadcast", receive(t, first).Data)
	assert.Equal(t, "broadcast", receive(t, second).Data)
}
