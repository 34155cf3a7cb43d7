package log

import (
	"testing"
	"time"

	"github.com/ticktock-timers/ticktock-go/pkg/wire"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{
		Timestamp: time.Now(),
		TimerID:   "timer-1",
		Direction: DirectionOut,
		Category:  CategoryCommand,
	}
	logger.Log(event)

	event.Command = &CommandEvent{Type: wire.CmdStart}
	logger.Log(event)

	event.Command = nil
	event.Error = &ErrorEventData{Message: "test error"}
	logger.Log(event)
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}

func TestOnlyForwardsSelectedCategories(t *testing.T) {
	var got []Category
	sink := LoggerFunc(func(e Event) { got = append(got, e.Category) })

	l := Only(sink, CategoryState, CategoryError, Category(9))
	for _, c := range []Category{CategoryCommand, CategoryResponse, CategoryState, CategoryError, Category(9)} {
		l.Log(Event{Category: c})
	}

	if len(got) != 2 || got[0] != CategoryState || got[1] != CategoryError {
		t.Errorf("forwarded %v, want [STATE ERROR]", got)
	}
}

func TestOnlyWithNoCategoriesDropsAll(t *testing.T) {
	called := false
	l := Only(LoggerFunc(func(Event) { called = true }))
	l.Log(Event{Category: CategoryError})
	if called {
		t.Error("expected no events to be forwarded")
	}
}
