package driver

// Status reports the state of one file during a run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusChecking
	StatusDone
	StatusError
)

// Event reports progress for a file. Problems is only meaningful for
// StatusDone.
type Event struct {
	File     string
	Status   Status
	Problems int
}

// EventSink receives progress events. OnEvent may be called from
// several goroutines at once.
type EventSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	s.Ch <- ev
}
