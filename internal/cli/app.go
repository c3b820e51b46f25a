package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sellit-io/sellit/internal/bus"
	"github.com/sellit-io/sellit/internal/config"
	"github.com/sellit-io/sellit/internal/logging"
	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/repositories/agreements"
	"github.com/sellit-io/sellit/internal/repositories/ideas"
	"github.com/sellit-io/sellit/internal/repositories/logs"
	"github.com/sellit-io/sellit/internal/repositories/messages"
	"github.com/sellit-io/sellit/internal/repositories/users"
	"github.com/sellit-io/sellit/internal/services"
	"github.com/sellit-io/sellit/internal/storage"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	backend storage.Backend
	gw      *storage.Gateway
	watcher *storage.Watcher

	users users.Repository

	auditService     services.AuditService
	authService      services.AuthService
	ideaService      services.IdeaService
	messageService   services.MessageService
	agreementService services.AgreementService

	current *models.User
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	changes := bus.New()

	var backend storage.Backend
	var watcher *storage.Watcher

	switch c.Backend {
	case config.BackendSQLite:
		b, err := storage.NewSQLiteBackend(ctx, c.SQLitePath)
		if err != nil {
			return nil, err
		}
		backend = b
	case config.BackendFile:
		b, err := storage.NewFileBackend(c.DataDir)
		if err != nil {
			return nil, err
		}
		backend = b
		watcher = storage.NewWatcher(b, changes, logger, c.WatchDebounce)
	default:
		return nil, fmt.Errorf("unknown backend %q", c.Backend)
	}

	gw := storage.NewGateway(backend, changes)

	userRepo := users.NewStore(gw)
	ideaRepo := ideas.NewStore(gw)
	messageRepo := messages.NewStore(gw)
	agreementRepo := agreements.NewStore(gw)
	logRepo := logs.NewStore(gw)

	audit := services.NewAuditService(logRepo, logger)

	app := &App{
		config:           c,
		logger:           logger,
		backend:          backend,
		gw:               gw,
		watcher:          watcher,
		users:            userRepo,
		auditService:     audit,
		authService:      services.NewAuthService(gw, userRepo, audit),
		ideaService:      services.NewIdeaService(ideaRepo, audit),
		messageService:   services.NewMessageService(messageRepo, audit),
		agreementService: services.NewAgreementService(agreementRepo, audit),
		reader:           bufio.NewReader(os.Stdin),
	}

	if c.SeedDemo {
		if err := services.SeedDemoUsers(ctx, gw, userRepo); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Run starts the cross-process store watcher (file backend only) and then
// blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.backend.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.watcher != nil {
		go func() {
			if err := a.watcher.Run(ctx); err != nil && ctx.Err() == nil {
				a.logger.Error(ctx, "store watcher stopped", "error", err)
			}
		}()
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

// resolveUser accepts an email or a raw user id.
func (a *App) resolveUser(ctx context.Context, ref string) (*models.User, error) {
	if u, err := a.users.FindByEmail(ctx, ref); err == nil {
		return u, nil
	}
	return a.users.FindByID(ctx, ref)
}

// dataPath is shown in the startup banner so the user knows which store the
// session is attached to.
func (a *App) dataPath() string {
	if a.config.Backend == config.BackendSQLite {
		return a.config.SQLitePath
	}
	abs, err := filepath.Abs(a.config.DataDir)
	if err != nil {
		return a.config.DataDir
	}
	return abs
}
