package events

import (
	"testing"
	"time"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := New()
	received := make(chan ModeChangedEvent, 1)

	unsub := bus.Subscribe(func(e ModeChangedEvent) {
		received <- e
	})
	defer unsub()

	event := ModeChangedEvent{
		Mode:      "rainbow",
		Active:    true,
		Timestamp: "2026-08-31T10:30:00Z",
	}
	bus.Publish(event)

	got := <-received
	if got.Mode != event.Mode || !got.Active {
		t.Errorf("Expected mode %s, got %+v", event.Mode, got)
	}
}

func TestBus_MultipleSubscribers(_ *testing.T) {
	bus := New()
	received1 := make(chan BrightnessChangedEvent, 1)
	received2 := make(chan BrightnessChangedEvent, 1)

	unsub1 := bus.Subscribe(func(e BrightnessChangedEvent) {
		received1 <- e
	})
	defer unsub1()

	unsub2 := bus.Subscribe(func(e BrightnessChangedEvent) {
		received2 <- e
	})
	defer unsub2()

	bus.Publish(BrightnessChangedEvent{Brightness: 75})

	<-received1
	<-received2
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := New()
	received := make(chan SpeedChangedEvent, 1)

	unsub := bus.Subscribe(func(e SpeedChangedEvent) {
		received <- e
	})

	bus.Publish(SpeedChangedEvent{Speed: 3})
	<-received

	unsub()

	bus.Publish(SpeedChangedEvent{Speed: 8})
	select {
	case <-received:
		t.Fatal("Should not have received event after unsubscribe")
	case <-time.After(10 * time.Millisecond):
		// Expected - no event
	}
}

func TestBus_TypeSafety(t *testing.T) {
	bus := New()

	modeReceived := make(chan bool, 1)
	zoneReceived := make(chan bool, 1)

	unsub1 := bus.Subscribe(func(_ ModeChangedEvent) {
		modeReceived <- true
	})
	defer unsub1()

	unsub2 := bus.Subscribe(func(_ ZoneColorChangedEvent) {
		zoneReceived <- true
	})
	defer unsub2()

	bus.Publish(ModeChangedEvent{Mode: "breathing"})
	<-modeReceived

	select {
	case <-zoneReceived:
		t.Fatal("Zone subscriber should NOT have received ModeChangedEvent")
	case <-time.After(10 * time.Millisecond):
		// Expected
	}

	bus.Publish(ZoneColorChangedEvent{Zone: AllZones, Color: "ff0000"})
	<-zoneReceived

	select {
	case <-modeReceived:
		t.Fatal("Mode subscriber should NOT have received ZoneColorChangedEvent")
	case <-time.After(10 * time.Millisecond):
		// Expected
	}
}

func TestBus_UnknownHandlerType(t *testing.T) {
	bus := New()
	unsub := bus.Subscribe(func(int) {})
	if unsub == nil {
		t.Fatal("Subscribe with unknown handler type should return a no-op unsubscribe")
	}
	unsub()
}
