package app

import (
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
	"github.com/civiclens/civiclens-backend/internal/utils"
)

type Config struct {
	Port string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	return Config{
		Port: port,
	}
}
