package editor

// CommandKind identifies a request sent to the controller.
type CommandKind int

// Controller commands
const (
	CommandZoomIn CommandKind = iota
	CommandZoomOut
)

func (k CommandKind) String() string {
	switch k {
	case CommandZoomIn:
		return "zoom-in"
	case CommandZoomOut:
		return "zoom-out"
	default:
		return "unknown"
	}
}

// Command is a one-shot request queued for the controller, such as a zoom
// step from the toolbar. It is consumed once and never stored in State.
type Command struct {
	Kind CommandKind
}

// commandQueueSize bounds pending commands; extra clicks beyond it are dropped.
const commandQueueSize = 16
