package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(WaveStarted, a)
	d.Subscribe(WaveStarted, b)
	d.Subscribe(BulletFired, b)

	d.Dispatch(Event{Type: WaveStarted, Data: 2})
	d.Dispatch(Event{Type: EnemySpawned})

	if len(a.got) != 1 || a.got[0].Data != 2 {
		t.Errorf("a got %v", a.got)
	}
	if len(b.got) != 1 {
		t.Errorf("b got %v", b.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(WaveCleared, a)
	d.Subscribe(WaveCleared, b)
	d.Unsubscribe(WaveCleared, a)

	d.Dispatch(Event{Type: WaveCleared, Data: 1})

	if len(a.got) != 0 {
		t.Errorf("unsubscribed listener got %v", a.got)
	}
	if len(b.got) != 1 {
		t.Errorf("remaining listener got %v", b.got)
	}
}
