package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/enumkit/pkg/enum"
	"github.com/dmitrymomot/enumkit/pkg/enumstore"
	"github.com/dmitrymomot/enumkit/pkg/logger"
)

type printer struct {
	enc *json.Encoder
}

func newPrinter(w io.Writer) *printer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &printer{enc: enc}
}

func (p *printer) print(v any) error {
	return p.enc.Encode(v)
}

func cmdItems(out *printer, e enum.Enumeration, args []string) error {
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	raw := fs.Bool("raw", false, "print constant names instead of labels")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return out.print(e.StringItems(*raw))
}

// cmdData prints the titled metadata records, or the labels when the
// enumeration declares no metadata.
func cmdData(out *printer, e enum.Enumeration) error {
	return out.print(e.StringItemsWithData())
}

func cmdConstants(out *printer, e enum.Enumeration) error {
	constants := make(map[string]any, e.Len())
	for _, entry := range e.Entries() {
		constants[entry.Name] = entry.Value
	}
	return out.print(constants)
}

func cmdCheck(out *printer, e enum.Enumeration, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: check takes exactly one value", errUsage)
	}

	valid := e.ValidString(args[0])
	if err := out.print(map[string]any{"value": args[0], "valid": valid}); err != nil {
		return err
	}
	if !valid {
		return enum.NewInvalidValueError(e.Name(), args[0])
	}
	return nil
}

func cmdOverride(ctx context.Context, out *printer, mgr *enumstore.Manager, e enum.Enumeration, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: override takes a member and at least one key=value pair", errUsage)
	}

	member := args[0]
	if !e.ValidString(member) {
		return enum.NewInvalidValueError(e.Name(), member)
	}

	data, err := parsePairs(args[1:])
	if err != nil {
		return err
	}

	applied, err := mgr.Override(ctx, e, member, data)
	if err != nil {
		return err
	}
	if !applied {
		return fmt.Errorf("%w: %s has no metadata record for %s", errUsage, e.Name(), member)
	}
	return out.print(map[string]any{"enum": e.Name(), "member": member, "data": data})
}

// parsePairs turns key=value arguments into a record. Values are decoded as
// YAML scalars, so 10 is an int, true a bool and "10" a string.
func parsePairs(pairs []string) (enum.Data, error) {
	data := make(enum.Data, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", errUsage, pair)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("%w: value of %s: %v", errUsage, key, err)
		}
		data[key] = value
	}
	return data, nil
}

func cmdHealth(ctx context.Context, out *printer, b *backend, log *slog.Logger) error {
	start := time.Now()
	err := b.ping(ctx)
	elapsed := time.Since(start)

	log.DebugContext(ctx, "store healthcheck", logger.Duration(elapsed), logger.Error(err))
	if perr := out.print(map[string]any{
		"store":      b.kind,
		"healthy":    err == nil,
		"latency_ms": elapsed.Milliseconds(),
	}); perr != nil {
		return perr
	}
	return err
}
