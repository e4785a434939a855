package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tomldirectory "github.com/nhileteam/nlt-cli/internal/adapters/directory/toml"
	sessionrender "github.com/nhileteam/nlt-cli/internal/adapters/render/session"
	sessionfile "github.com/nhileteam/nlt-cli/internal/adapters/session/file"
	"github.com/nhileteam/nlt-cli/internal/application"
	"github.com/nhileteam/nlt-cli/internal/assistant"
	"github.com/nhileteam/nlt-cli/internal/authz"
	"github.com/nhileteam/nlt-cli/internal/domain"
	"github.com/nhileteam/nlt-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	sessions        *application.SessionService
	logger          *zap.Logger
	sessionRenderer func(domain.Session, []authz.ResourceRule) (string, error)
	now             func() time.Time
}

func wireApp() (*app, error) {
	if err := assistant.ValidateCatalog(); err != nil {
		return nil, fmt.Errorf("wire response catalog: %w", err)
	}

	logger, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	directory, err := tomldirectory.NewDirectory(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire identity directory: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	sessionStore := sessionfile.NewStore(filepath.Join(homeDir, ".nlt"))

	return &app{
		sessions:        application.NewSessionService(directory, sessionStore, ports.SystemClock{}, logger),
		logger:          logger,
		sessionRenderer: sessionrender.Render,
		now:             time.Now,
	}, nil
}

// newLogger is quiet by default; NLT_DEBUG=1 enables structured debug
// output on stderr.
func newLogger() (*zap.Logger, error) {
	if envOrDefault("NLT_DEBUG", "") == "" {
		return zap.NewNop(), nil
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	return config.Build()
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
