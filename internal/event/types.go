package event

// Event names published by the watch pipeline.
const (
	TypeClipboardUpdate  = "clipboard-update"
	TypeClipboardHistory = "clipboard-history"
)

// Event is implemented by everything published on the Bus.
type Event interface {
	EventType() string
}

// ClipboardUpdate is published once per accepted distinct clipboard
// change. It carries the raw content and is emitted before the durable
// write completes, so receiving it is not a durability acknowledgment.
type ClipboardUpdate struct {
	Content string
}

// EventType returns the event type name.
func (e ClipboardUpdate) EventType() string { return TypeClipboardUpdate }

// ClipboardHistory is published once per persisted entry when the watch
// pipeline starts, carrying the initial history batch to subscribers.
type ClipboardHistory struct {
	ID          int64
	Content     string
	Timestamp   string
	ContentType string
}

// EventType returns the event type name.
func (e ClipboardHistory) EventType() string { return TypeClipboardHistory }
