package events

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	received := false
	var receivedEvent Event

	bus.SubscribeFunc(func(e Event) {
		received = true
		receivedEvent = e
	}, TypeGameStarted)

	bus.Publish(NewGameStartedEvent("test-game", 9, 9, 10, core.NewCoordinate(4, 4)))

	assert.True(t, received, "Event handler should have been called")
	assert.NotNil(t, receivedEvent, "Event should have been received")
	assert.Equal(t, TypeGameStarted, receivedEvent.Type())
	assert.Equal(t, "test-game", receivedEvent.GameID())

	started, ok := receivedEvent.(*GameStartedEvent)
	if assert.True(t, ok) {
		assert.Equal(t, core.NewCoordinate(4, 4), started.Start)
		assert.Equal(t, 10, started.Mines)
	}
}

func TestEventBusMultipleSubscribers(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	handler1Called := 0
	handler2Called := 0

	bus.SubscribeFunc(func(e Event) { handler1Called++ }, TypeCellsOpened)
	bus.SubscribeFunc(func(e Event) { handler2Called++ }, TypeCellsOpened, TypeGameLost)

	bus.Publish(NewCellsOpenedEvent("test-game", core.NewCoordinate(0, 0), 12, 1))
	bus.Publish(NewGameLostEvent("test-game", core.NewCoordinate(1, 1), 9, 9, 10, time.Second, 2))
	bus.Publish(NewGameResetEvent("test-game", 9, 9, 10))

	assert.Equal(t, 1, handler1Called)
	assert.Equal(t, 2, handler2Called, "one handler can listen to several types")
}

func TestEventBusRecoversFromPanics(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())
	called := false

	bus.SubscribeFunc(func(e Event) { panic("boom") }, TypeGameReset)
	bus.SubscribeFunc(func(e Event) { called = true }, TypeGameReset)

	assert.NotPanics(t, func() {
		bus.Publish(NewGameResetEvent("test-game", 9, 9, 10))
	})
	assert.True(t, called, "a panicking handler must not starve the others")
}

// TestSubscriber is a test implementation of Subscriber
type TestSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(e Event) {
	ts.receivedEvents = append(ts.receivedEvents, e)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func TestEventBusSubscriber(t *testing.T) {
	bus := NewEventBus(zerolog.Nop())

	subscriber := &TestSubscriber{
		id: "test-subscriber",
		interestedTypes: map[string]bool{
			TypeGameWon:  true,
			TypeGameLost: true,
		},
	}

	bus.Subscribe(subscriber)

	bus.Publish(NewGameWonEvent("test-game", 9, 9, 10, time.Minute, 30))
	bus.Publish(NewFlagToggledEvent("test-game", core.NewCoordinate(1, 1), true, 9, 2))
	bus.Publish(NewGameLostEvent("test-game", core.NewCoordinate(2, 2), 9, 9, 10, time.Second, 3))

	assert.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, TypeGameWon, subscriber.receivedEvents[0].Type())
	assert.Equal(t, TypeGameLost, subscriber.receivedEvents[1].Type())

	replacement := &TestSubscriber{id: "test-subscriber"}
	bus.Subscribe(replacement)
	bus.Publish(NewGameWonEvent("test-game", 9, 9, 10, time.Minute, 30))

	assert.Len(t, subscriber.receivedEvents, 2, "same ID replaces the old subscriber")
	assert.Len(t, replacement.receivedEvents, 1)
}

func TestEventBusLogging(t *testing.T) {
	t.Run("quiet above debug", func(t *testing.T) {
		var buf bytes.Buffer
		bus := NewEventBus(zerolog.New(&buf).Level(zerolog.InfoLevel))

		bus.Subscribe(&TestSubscriber{id: "s"})
		bus.SubscribeFunc(func(e Event) {}, TypeFlagToggled)
		bus.Publish(NewFlagToggledEvent("test-game", core.NewCoordinate(1, 1), true, 9, 2))

		assert.Empty(t, buf.String())
	})

	t.Run("debug carries the move", func(t *testing.T) {
		var buf bytes.Buffer
		bus := NewEventBus(zerolog.New(&buf).Level(zerolog.DebugLevel))
		bus.Subscribe(&TestSubscriber{id: "s"})
		buf.Reset()

		bus.Publish(NewFlagToggledEvent("test-game", core.NewCoordinate(1, 1), true, 9, 2))
		out := buf.String()
		assert.Contains(t, out, `"component":"event_bus"`)
		assert.Contains(t, out, `"event_type":"flag.toggled"`)
		assert.Contains(t, out, `"move":2`)
		assert.Contains(t, out, `"delivered":1`)

		buf.Reset()
		bus.Publish(NewGameResetEvent("test-game", 9, 9, 10))
		assert.NotContains(t, buf.String(), `"move"`, "resets are not player moves")
	})

	t.Run("panics are logged at error", func(t *testing.T) {
		var buf bytes.Buffer
		bus := NewEventBus(zerolog.New(&buf).Level(zerolog.ErrorLevel))
		bus.SubscribeFunc(func(e Event) { panic("boom") }, TypeGameReset)

		bus.Publish(NewGameResetEvent("test-game", 9, 9, 10))
		assert.Contains(t, buf.String(), `"panic":"boom"`)
		assert.Contains(t, buf.String(), `"handler":"game.reset"`)
	})
}

func TestActionRejectedEvent(t *testing.T) {
	e := NewActionRejectedEvent("test-game", &core.FlagAction{X: 3, Y: 1}, "game is over")

	assert.Equal(t, TypeActionRejected, e.Type())
	assert.Equal(t, core.ActionFlag, e.Action)
	assert.Equal(t, core.NewCoordinate(3, 1), e.At)
	assert.Equal(t, "game is over", e.Reason)
}
