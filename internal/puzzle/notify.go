package puzzle

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Victory describes a board on which every cell was scored.
// Counts are taken before the automatic reset.
type Victory struct {
	ConfigIndex int
	Moves       int
	Grades      int
}

// Message returns the user-facing congratulation text.
func (v Victory) Message() string {
	return fmt.Sprintf("Congratulations on your victory!\nNumber of Moves: %d\nNumber of Grades: %d",
		v.Moves, v.Grades)
}

// Notifier receives victory events from the grader.
type Notifier interface {
	Victory(v Victory)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(v Victory)

// Victory calls f(v).
func (f NotifierFunc) Victory(v Victory) {
	f(v)
}

// LogNotifier reports victories through a charmbracelet logger.
type LogNotifier struct {
	Logger *log.Logger
}

// Victory logs the event at info level.
func (n LogNotifier) Victory(v Victory) {
	logger := n.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Info("Congratulations on your victory!",
		"config", v.ConfigIndex,
		"moves", v.Moves,
		"grades", v.Grades,
	)
}
