package capnslog

import (
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// JournaldFormatter sends log entries to the systemd journal via sd-journal,
// preferring it over a plain file when the service runs under systemd.
// NewJournaldFormatter returns nil, false if the journal socket isn't
// reachable (the process isn't running under systemd, or is in a container
// without journald), so callers can fall back to a StringFormatter.
type JournaldFormatter struct{}

func NewJournaldFormatter() (*JournaldFormatter, bool) {
	if !journal.Enabled() {
		return nil, false
	}
	return &JournaldFormatter{}, true
}

func (j *JournaldFormatter) Format(pkg string, level LogLevel, _ int, entries ...LogEntry) {
	var sb strings.Builder
	sb.WriteString(pkg)
	for _, e := range entries {
		sb.WriteByte(' ')
		sb.WriteString(e.LogString())
	}
	journal.Send(sb.String(), levelToPriority(level), map[string]string{
		"SYSLOG_IDENTIFIER": pkg,
	})
}

func levelToPriority(l LogLevel) journal.Priority {
	switch l {
	case CRITICAL:
		return journal.PriCrit
	case ERROR:
		return journal.PriErr
	case WARNING:
		return journal.PriWarning
	case NOTICE:
		return journal.PriNotice
	case INFO:
		return journal.PriInfo
	case DEBUG, TRACE:
		return journal.PriDebug
	default:
		return journal.PriInfo
	}
}
