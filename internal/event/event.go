// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event: Data зависит от Type, см. types.go.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher синхронный: Dispatch вызывает подписчиков сразу,
// в том же кадре и в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на один или несколько типов событий.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Dispatch отправляет событие всем подписчикам его типа.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
