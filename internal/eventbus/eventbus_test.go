package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"griddle/internal/domain"
)

func TestPublishDeliversSynchronously(t *testing.T) {
	b := New()

	var got []int
	b.Subscribe(EventDataChanged, func(e DomainEvent) {
		got = append(got, 1)
	})
	b.Subscribe(EventDataChanged, func(e DomainEvent) {
		got = append(got, 2)
	})

	b.Publish(DataChangedEvent{Count: 3})

	// Handlers ran inline, in subscription order, before Publish returned.
	assert.Equal(t, []int{1, 2}, got)
}

func TestPublishOnlyReachesMatchingType(t *testing.T) {
	b := New()

	var pages, sorts int
	b.Subscribe(EventPageChanged, func(e DomainEvent) { pages++ })
	b.Subscribe(EventSortChanged, func(e DomainEvent) { sorts++ })

	b.Publish(PageChangedEvent{Page: 2})
	b.Publish(PageChangedEvent{Page: 3})

	assert.Equal(t, 2, pages)
	assert.Equal(t, 0, sorts)
}

func TestHandlerReceivesPayload(t *testing.T) {
	b := New()

	var got SortChangedEvent
	b.Subscribe(EventSortChanged, func(e DomainEvent) {
		evt, ok := e.(SortChangedEvent)
		require.True(t, ok)
		got = evt
	})

	b.Publish(SortChangedEvent{Field: "age", Direction: domain.SortDesc})

	assert.Equal(t, "age", got.Field)
	assert.Equal(t, domain.SortDesc, got.Direction)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()

	var first, second int
	unsub := b.Subscribe(EventDataChanged, func(e DomainEvent) { first++ })
	b.Subscribe(EventDataChanged, func(e DomainEvent) { second++ })

	b.Publish(DataChangedEvent{})
	unsub()
	b.Publish(DataChangedEvent{})

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestPanickingHandlerDoesNotStopOthers(t *testing.T) {
	b := New()

	var called bool
	b.Subscribe(EventError, func(e DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(e DomainEvent) { called = true })

	require.NotPanics(t, func() {
		b.Publish(ErrorEvent{Message: "x"})
	})
	assert.True(t, called)
}
