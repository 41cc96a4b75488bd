package simulator

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Alert levels.
const (
	LevelInfo     = "info"
	LevelWarning  = "warning"
	LevelCritical = "critical"
)

// Alert represents a notable event raised by the simulator.
type Alert struct {
	Level     string    `json:"level"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Time      time.Time `json:"time"`
	MessageID string    `json:"message_id,omitempty"`
}

func depressionAlert(m Message) Alert {
	msg := m.Content
	if len(m.CrisisPhrases) > 0 {
		msg = fmt.Sprintf("%s (matched: %s)", m.Content, strings.Join(m.CrisisPhrases, ", "))
	}
	return Alert{
		Level:     LevelCritical,
		Title:     "Depression warning",
		Message:   msg,
		Time:      m.Timestamp,
		MessageID: m.ID,
	}
}

// Notify sends a desktop notification for the given alert. On macOS it uses
// osascript, on Linux it tries notify-send. If neither is available, it falls
// back to printing to stderr.
func Notify(alert Alert) error {
	switch runtime.GOOS {
	case "darwin":
		return notifyMacOS(alert)
	case "linux":
		return notifyLinux(alert)
	default:
		return notifyFallback(alert)
	}
}

func notifyMacOS(alert Alert) error {
	script := fmt.Sprintf(
		`display notification %q with title "mindhub" subtitle %q`,
		alert.Message, alert.Title,
	)
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return notifyFallback(alert)
	}
	return nil
}

func notifyLinux(alert Alert) error {
	if _, err := exec.LookPath("notify-send"); err != nil {
		return notifyFallback(alert)
	}
	title := fmt.Sprintf("mindhub: %s", alert.Title)
	urgency := "normal"
	if alert.Level == LevelCritical {
		urgency = "critical"
	}
	if err := exec.Command("notify-send", "-u", urgency, title, alert.Message).Run(); err != nil {
		return notifyFallback(alert)
	}
	return nil
}

func notifyFallback(alert Alert) error {
	_, err := fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", alert.Level, alert.Title, alert.Message)
	return err
}
