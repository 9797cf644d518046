// Package log is a small structured, leveled logger in the style of the
// geth log package: key/value context pairs, logfmt-encoded output, and
// caller-frame capture on the noisier levels.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Lvl is a log severity level, ordered from most to least severe.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
)

func (l Lvl) String() string {
	switch l {
	case LvlCrit:
		return "crit"
	case LvlError:
		return "eror"
	case LvlWarn:
		return "warn"
	case LvlInfo:
		return "info"
	case LvlDebug:
		return "dbug"
	default:
		return "unkn"
	}
}

// Logger emits leveled, key/value-annotated records to an underlying writer.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	color  bool
	ctx    []interface{}
	minLvl Lvl
}

// Root is the default logger, writing to stderr, colorized when attached
// to a terminal, at LvlInfo and above.
var Root = New(os.Stderr, LvlInfo)

// New constructs a Logger writing to w at the given minimum level.
func New(w io.Writer, minLvl Lvl) *Logger {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
		if color {
			w = colorable.NewColorable(f)
		}
	}
	return &Logger{out: w, color: color, minLvl: minLvl}
}

// With returns a derived Logger carrying additional key/value context
// that is appended to every record it emits.
func (l *Logger) With(ctx ...interface{}) *Logger {
	next := &Logger{out: l.out, color: l.color, minLvl: l.minLvl}
	next.ctx = append(append([]interface{}{}, l.ctx...), ctx...)
	return next
}

func (l *Logger) write(lvl Lvl, msg string, ctx []interface{}) {
	if lvl > l.minLvl {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	enc := logfmt.NewEncoder(l.out)
	enc.EncodeKeyval("t", time.Now().UTC().Format(time.RFC3339Nano))
	enc.EncodeKeyval("lvl", lvl.String())
	enc.EncodeKeyval("msg", msg)
	all := append(append([]interface{}{}, l.ctx...), ctx...)
	for i := 0; i+1 < len(all); i += 2 {
		_ = enc.EncodeKeyval(all[i], fmt.Sprint(all[i+1]))
	}
	if lvl <= LvlError {
		_ = enc.EncodeKeyval("caller", fmt.Sprintf("%+v", stack.Caller(2)))
	}
	_ = enc.EndRecord()
}

func (l *Logger) Crit(msg string, ctx ...interface{})  { l.write(LvlCrit, msg, ctx) }
func (l *Logger) Error(msg string, ctx ...interface{}) { l.write(LvlError, msg, ctx) }
func (l *Logger) Warn(msg string, ctx ...interface{})  { l.write(LvlWarn, msg, ctx) }
func (l *Logger) Info(msg string, ctx ...interface{})  { l.write(LvlInfo, msg, ctx) }
func (l *Logger) Debug(msg string, ctx ...interface{}) { l.write(LvlDebug, msg, ctx) }

func Crit(msg string, ctx ...interface{})  { Root.write(LvlCrit, msg, ctx) }
func Error(msg string, ctx ...interface{}) { Root.write(LvlError, msg, ctx) }
func Warn(msg string, ctx ...interface{})  { Root.write(LvlWarn, msg, ctx) }
func Info(msg string, ctx ...interface{})  { Root.write(LvlInfo, msg, ctx) }
func Debug(msg string, ctx ...interface{}) { Root.write(LvlDebug, msg, ctx) }
