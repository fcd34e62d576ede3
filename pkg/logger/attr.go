package logger

import (
	"fmt"
	"log/slog"
	"time"
)

// Attribute keys shared by enumkit packages.
const (
	KeyError    = "error"
	KeyEnum     = "enum"
	KeyMember   = "member"
	KeyStore    = "store"
	KeyCommand  = "command"
	KeyDuration = "duration"
)

// Error returns an empty Attr for a nil err, so it can be passed
// unconditionally.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(KeyError, err)
}

func Enum(name string) slog.Attr {
	return slog.String(KeyEnum, name)
}

// Member logs a member value in its canonical string form.
func Member(member any) slog.Attr {
	if member == nil {
		return slog.Attr{}
	}
	return slog.String(KeyMember, fmt.Sprint(member))
}

func Store(kind string) slog.Attr {
	return slog.String(KeyStore, kind)
}

func Command(name string) slog.Attr {
	return slog.String(KeyCommand, name)
}

// Duration logs d rounded to microseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d.Round(time.Microsecond))
}
