package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/enumkit/pkg/config"
	"github.com/dmitrymomot/enumkit/pkg/enum"
	"github.com/dmitrymomot/enumkit/pkg/enumdef"
	"github.com/dmitrymomot/enumkit/pkg/enumstore"
	"github.com/dmitrymomot/enumkit/pkg/environment"
	"github.com/dmitrymomot/enumkit/pkg/logger"
)

const usage = `usage: enumctl [-file=<path>] [-store=<kind>] <command> [<args>]

Configuration flags:

   -file       The enumeration declaration file (.yaml or .yml). The environment
               variable ENUMCTL_FILE is used if this flag is not set.

   -store      Where metadata overrides are kept: memory, redis or postgres.
               Defaults to ENUMCTL_STORE, then memory. Redis reads REDIS_URL,
               postgres reads PG_CONN_URL.

Inspection commands
   items       Print the value → label table; -raw prints value → constant name
   data        Print the value → metadata table with stored overrides applied
   constants   Print the constant name → value table
   check       Exit with an error unless the argument is a declared value

Override commands
   override    Merge key=value pairs into a member's metadata and persist them
   sync        Apply stored overrides and print how many matched
   health      Ping the override store

Other commands
   help        Display help message

Output is JSON on stdout, logs go to stderr.
`

// Config is read from the environment and .env.
type Config struct {
	File     string `env:"ENUMCTL_FILE"`
	Store    string `env:"ENUMCTL_STORE" envDefault:"memory"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

var (
	errMissingCommand = errors.New("missing command")
	errUnknownCommand = errors.New("unknown command")
	errMissingFile    = errors.New("missing declaration file, use -file or ENUMCTL_FILE")
	errUsage          = errors.New("invalid arguments")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "enumctl: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	fs := flag.NewFlagSet("enumctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	fs.StringVar(&cfg.File, "file", cfg.File, "enumeration declaration file")
	fs.StringVar(&cfg.Store, "store", cfg.Store, "override store: memory, redis or postgres")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cmd, cmdArgs := fs.Arg(0), fs.Args()
	if len(cmdArgs) > 0 {
		cmdArgs = cmdArgs[1:]
	}
	switch cmd {
	case "":
		fmt.Fprint(stderr, usage)
		return errMissingCommand
	case "help":
		fmt.Fprint(stdout, usage)
		return nil
	case "items", "data", "constants", "check", "override", "sync", "health":
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}

	if cfg.File == "" {
		return errMissingFile
	}

	env, _ := environment.Parse(cfg.AppEnv)
	if !env.Valid() {
		env = environment.Development
	}
	ctx = environment.WithContext(ctx, env)

	log, err := newLogger(env, cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	log = log.With(logger.Command(cmd))

	e, err := enumdef.LoadFileAny(ctx, cfg.File, enumdef.WithLogger(log))
	if err != nil {
		return err
	}
	log = log.With(logger.Enum(e.Name()))

	b, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		return err
	}
	defer b.close()

	out := newPrinter(stdout)
	if cmd == "health" {
		return cmdHealth(ctx, out, b, log)
	}

	mgr := enumstore.NewManager(b.store, enumstore.WithLogger(log))
	applied, err := mgr.Sync(ctx, e)
	if err != nil {
		return err
	}
	// Built-in enumerations such as environment.Environments.
	builtin, err := mgr.SyncAll(ctx, enum.Default)
	if err != nil {
		return err
	}

	switch cmd {
	case "items":
		return cmdItems(out, e, cmdArgs)
	case "data":
		return cmdData(out, e)
	case "constants":
		return cmdConstants(out, e)
	case "check":
		return cmdCheck(out, e, cmdArgs)
	case "override":
		return cmdOverride(ctx, out, mgr, e, cmdArgs)
	default:
		return out.print(map[string]any{"enum": e.Name(), "applied": applied, "builtin": builtin})
	}
}

// newLogger configures the logger for env; a non-empty level wins over the
// environment's level.
func newLogger(env environment.Environment, level string, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithEnvironment(env, "enumctl"),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	}
	if level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(l))
	}
	return logger.New(opts...), nil
}
