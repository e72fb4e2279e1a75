package app

import (
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/external/platform"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
)

func (a *application) InitPlatformService(log *logger.Logger) domain.PlatformService {
	return platform.NewPlatformService(platform.Config{
		BaseURL:  a.config.Platform.URL,
		APIKey:   a.config.Platform.APIKey,
		RetryMax: a.config.Platform.RetryMax,
		Timeout:  a.config.Platform.Timeout,
	}, log)
}
