package domain

import (
	"github.com/google/uuid"
	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/sirupsen/logrus"
)

// LogEntry - запись в журнале сообщений
type LogEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"` // INFO, COMBAT, ERROR
}

// GameLog - журнал сообщений, новые записи идут первыми.
// Ядро только добавляет записи, читает их отрисовка.
type GameLog struct {
	Entries []LogEntry
}

func NewGameLog() *GameLog {
	return &GameLog{}
}

// Add вставляет запись в начало журнала и дублирует ее в logrus
func (l *GameLog) Add(text, logType string) {
	entry := LogEntry{
		ID:   uuid.NewString(),
		Text: text,
		Type: logType,
	}
	l.Entries = append([]LogEntry{entry}, l.Entries...)

	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"log_type":  logType,
		"entry_id":  entry.ID,
	}).Info(text)
}

// Latest возвращает до n последних записей (для отрисовки)
func (l *GameLog) Latest(n int) []LogEntry {
	if n > len(l.Entries) {
		n = len(l.Entries)
	}
	return l.Entries[:n]
}
