package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// LogrusLogger implementa Logger sobre o logrus com saída JSON
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogger cria uma nova instância de Logger. O nível vem de LOG_LEVEL
// (debug, info, warn, error); o padrão é info.
func NewLogger() Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return &LogrusLogger{log: log}
}

// Info registra uma mensagem de informação
func (l *LogrusLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(campos(keysAndValues)).Info(msg)
}

// Error registra uma mensagem de erro
func (l *LogrusLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(campos(keysAndValues)).Error(msg)
}

// Debug registra uma mensagem de debug
func (l *LogrusLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(campos(keysAndValues)).Debug(msg)
}

// Warn registra uma mensagem de aviso
func (l *LogrusLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(campos(keysAndValues)).Warn(msg)
}

// campos converte pares chave/valor em logrus.Fields; chave sem valor vira true
func campos(keysAndValues []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		if i+1 < len(keysAndValues) {
			fields[key] = keysAndValues[i+1]
		} else {
			fields[key] = true
		}
	}
	return fields
}
