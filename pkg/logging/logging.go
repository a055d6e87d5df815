package logging

import "go.uber.org/zap"

// New builds the process-wide logger. Production encoding by default,
// human-readable console output when env is "dev" or "development".
func New(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	switch env {
	case "dev", "development":
		log, err = zap.NewDevelopment()
	default:
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return log
}
