package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/MKhiriev/go-settings-registry/internal/adapter"
	"github.com/MKhiriev/go-settings-registry/internal/logger"
)

const usage = `usage: settingsctl [-s URL] [-timeout D] [-log-level L] <command>

commands:
  get KEY   print the value of KEY
  list      print every setting
  reload    make the daemon merge its settings file again
`

type App struct {
	adapter adapter.SettingsAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(adapter adapter.SettingsAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: adapter, out: out, logger: logger}
}

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	fmt.Fprint(w, usage)
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	command, operands := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("operands", operands).Msg("running command")

	switch command {
	case "get":
		if len(operands) != 1 {
			return fmt.Errorf("%w: get takes exactly one key", ErrWrongArgsNumber)
		}
		return a.get(ctx, operands[0])
	case "list":
		if len(operands) != 0 {
			return fmt.Errorf("%w: list takes no arguments", ErrWrongArgsNumber)
		}
		return a.list(ctx)
	case "reload":
		if len(operands) != 0 {
			return fmt.Errorf("%w: reload takes no arguments", ErrWrongArgsNumber)
		}
		return a.reload(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) get(ctx context.Context, key string) error {
	value, err := a.adapter.GetValue(ctx, key)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, value)
	return err
}

// list prints the snapshot as aligned key/value columns in key order.
func (a *App) list(ctx context.Context) error {
	values, err := a.adapter.GetAll(ctx)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", k, values[k])
	}

	return tw.Flush()
}

func (a *App) reload(ctx context.Context) error {
	result, err := a.adapter.Reload(ctx)
	if err != nil {
		for _, s := range result.Invalid {
			fmt.Fprintf(a.out, "rejected: %s\n", s)
		}
		return fmt.Errorf("reload failed with status %d: %w", result.Status, err)
	}

	_, err = fmt.Fprintf(a.out, "reloaded (status %d)\n", result.Status)
	return err
}

// ExitCode maps a command error to the process exit status: 0 on success,
// 2 for usage errors and 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case isUsageError(err):
		return 2
	default:
		return 1
	}
}

func isUsageError(err error) bool {
	return errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrWrongArgsNumber)
}
