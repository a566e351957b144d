package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Level classifies a message.
type Level string

const (
	LevelError   Level = "error"
	LevelSuccess Level = "success"
)

// Message keys
const (
	KeyEmailInvalid   = "login.error.emailInValid"
	KeyRequestFailed  = "login.error.requestFailed"
	KeySessionFailed  = "login.error.sessionFailed"
	KeyOAuthFailed    = "login.error.oauthFailed"
	KeyLoginSucceeded = "login.success"
)

// Message is a single user visible notification.
type Message struct {
	Level Level
	Text  string
}

// Error returns an error message.
func Error(text string) Message {
	return Message{Level: LevelError, Text: text}
}

// Success returns a success message.
func Success(text string) Message {
	return Message{Level: LevelSuccess, Text: text}
}

// Notifier shows messages to the user.
type Notifier interface {
	Notify(ctx context.Context, message Message)
}

// LogNotifier writes messages to a logrus logger, errors at warn level.
type LogNotifier struct {
	log *logrus.Entry
}

func (n *LogNotifier) Notify(ctx context.Context, message Message) {
	entry := n.log.WithContext(ctx).WithFields(logrus.Fields{"level.notify": message.Level})
	if message.Level == LevelError {
		entry.Warn(message.Text)
		return
	}
	entry.Info(message.Text)
}

// NewLogNotifier returns a Notifier logging through log.
func NewLogNotifier(log *logrus.Entry) *LogNotifier {
	return &LogNotifier{log: log}
}
