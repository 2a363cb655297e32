package driver

import "context"

// Status captures where one input is in the batch.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusParsing Status = "parsing"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for the input at Index.
type Event struct {
	Index  int
	Name   string
	Status Status
	Cached bool
	Err    error
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(ctx context.Context, ev Event)
}

// ChannelSink forwards events into a channel. A send gives up when ctx is done
// so a reader that went away cannot stall the workers.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ctx context.Context, ev Event) {
	if s.Ch == nil {
		return
	}
	select {
	case s.Ch <- ev:
	case <-ctx.Done():
	}
}
