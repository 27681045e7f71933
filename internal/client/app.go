package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-fortnite-client/fortnite"
	"github.com/MKhiriev/go-fortnite-client/internal/config"
	"github.com/MKhiriev/go-fortnite-client/internal/logger"
	"github.com/MKhiriev/go-fortnite-client/models"
)

// App runs one command against the API per Run call.
type App struct {
	api    *fortnite.Client
	creds  config.Credentials
	out    io.Writer
	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp returns an App that calls api and prints to out. creds are checked
// only when a command needs a session.
func NewApp(api *fortnite.Client, creds config.Credentials, out io.Writer, log *logger.Logger) *App {
	return &App{
		api:    api,
		creds:  creds,
		out:    out,
		logger: log,
	}
}

// Run executes args[0] with the remaining args and prints its result.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w; usage:\n%s", ErrNoCommand, usage())
	}

	name := strings.ToLower(args[0])
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w %q; usage:\n%s", ErrUnknownCommand, args[0], usage())
	}

	params := args[1:]
	if len(params) < cmd.minArgs {
		return fmt.Errorf("%w: %s %s", ErrMissingArgument, name, cmd.args)
	}

	if cmd.needsSession {
		if err := a.creds.Validate(); err != nil {
			return err
		}
		if err := a.api.Login(ctx); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		defer a.api.Close()
		a.logger.Info().Str("command", name).Msg("session opened")
	}

	result, err := cmd.run(ctx, a.api, params)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return a.print(result)
}

func (a *App) print(v any) error {
	body, err := models.JSON.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintf(a.out, "%s\n", body)
	return err
}
