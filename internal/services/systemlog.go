package services

import (
	"github.com/surawits/vibeLink/internal/database"
	"github.com/surawits/vibeLink/internal/models"
	"github.com/surawits/vibeLink/pkg/logger"
	"github.com/surawits/vibeLink/pkg/utils"
)

// LogSystem appends an operational log line to the system_logs table and
// mirrors it to the process logger. Failures are swallowed: the sink must
// never surface an error to the request path that called it.
func LogSystem(message, level, context string) {
	switch level {
	case "ERROR":
		logger.Error().Str("context", context).Msg(message)
	case "WARN":
		logger.Warn().Str("context", context).Msg(message)
	case "DEBUG":
		logger.Debug().Str("context", context).Msg(message)
	default:
		logger.Info().Str("context", context).Msg(message)
	}

	entry := models.SystemLog{
		ID:      utils.GenerateID(),
		Message: message,
		Level:   level,
		Context: context,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to write to system log")
	}
}

// RecentSystemLogs returns the last n operational log lines, newest first.
func RecentSystemLogs(n int) ([]models.SystemLog, error) {
	var logs []models.SystemLog
	err := database.DB.Order("created_at desc").Limit(n).Find(&logs).Error
	return logs, err
}
