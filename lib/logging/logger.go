package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/lni/dragonboat/v4/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// Config holds the configuration of a Manager
type Config struct {
	Level  string    // Default level of all loggers (debug, info, warn, error)
	JSON   bool      // Encode log entries as JSON instead of console text
	Output io.Writer // Destination of the log entries (nil = stderr)
}

// --------------------------------------------------------------------------
// Custom Logger (implements dragonboats logger.ILogger)
// --------------------------------------------------------------------------

// namedLogger implements the ILogger interface with custom formatting
type namedLogger struct {
	name    string
	level   atomic.Int32
	manager *Manager
}

func (l *namedLogger) SetLevel(level logger.LogLevel) {
	l.level.Store(int32(level))
}

func (l *namedLogger) enabled(level logger.LogLevel) bool {
	return logger.LogLevel(l.level.Load()) >= level
}

func (l *namedLogger) Debugf(format string, args ...interface{}) {
	if l.enabled(logger.DEBUG) {
		l.log(zapcore.DebugLevel, format, args...)
	}
}

func (l *namedLogger) Infof(format string, args ...interface{}) {
	if l.enabled(logger.INFO) {
		l.log(zapcore.InfoLevel, format, args...)
	}
}

func (l *namedLogger) Warningf(format string, args ...interface{}) {
	if l.enabled(logger.WARNING) {
		l.log(zapcore.WarnLevel, format, args...)
	}
}

func (l *namedLogger) Errorf(format string, args ...interface{}) {
	if l.enabled(logger.ERROR) {
		l.log(zapcore.ErrorLevel, format, args...)
	}
}

func (l *namedLogger) Panicf(format string, args ...interface{}) {
	if l.enabled(logger.CRITICAL) {
		panic(fmt.Sprintf(format, args...))
	}
}

// log formats and writes a log message. this internal helper is used by the public methods
func (l *namedLogger) log(level zapcore.Level, format string, args ...interface{}) {
	z := l.manager.zap()
	if z == nil {
		return
	}
	if ce := z.Check(level, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write(zap.String("logger", l.name))
	}
}

// --------------------------------------------------------------------------
// Logger Manager
// --------------------------------------------------------------------------

// Manager owns the zap core and hands out named loggers.
// Loggers obtained before Init or after Shutdown discard all messages.
//
// Thread-safety: All methods are thread-safe.
type Manager struct {
	config  Config
	level   logger.LogLevel
	mu      sync.RWMutex
	core    *zap.Logger
	loggers map[string]*namedLogger
}

// New creates a new Manager. The configuration is validated but no output is
// produced until Init is called.
func New(config Config) (*Manager, error) {
	if config.Level == "" {
		config.Level = "info"
	}
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, err
	}
	if config.Output == nil {
		config.Output = os.Stderr
	}
	return &Manager{
		config:  config,
		level:   level,
		loggers: make(map[string]*namedLogger),
	}, nil
}

// Init builds the zap core. Calling Init on an initialized Manager is a no-op.
func (m *Manager) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.core != nil {
		return
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if m.config.JSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	// level filtering happens per named logger, the core accepts everything
	core := zapcore.NewCore(encoder, zapcore.AddSync(m.config.Output), zapcore.DebugLevel)
	m.core = zap.New(core)
}

// Shutdown flushes buffered entries and detaches all loggers from the output.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.core == nil {
		return nil
	}
	err := m.core.Sync()
	m.core = nil
	return err
}

// Logger returns the logger with the given name, creating it with the default level if needed.
func (m *Manager) Logger(name string) logger.ILogger {
	m.mu.Lock()
	defer m.mu.Unlock()

	if l, ok := m.loggers[name]; ok {
		return l
	}
	l := &namedLogger{name: name, manager: m}
	l.SetLevel(m.level)
	m.loggers[name] = l
	return l
}

// zap returns the current zap logger or nil if the manager is not initialized
func (m *Manager) zap() *zap.Logger {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.core
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// ParseLevel converts a string level to logger.LogLevel
func ParseLevel(level string) (logger.LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logger.DEBUG, nil
	case "info":
		return logger.INFO, nil
	case "warning", "warn":
		return logger.WARNING, nil
	case "error":
		return logger.ERROR, nil
	default:
		return logger.INFO, fmt.Errorf("invalid log level: %s. must be one of debug, info, warn, error", level)
	}
}

// --------------------------------------------------------------------------
// No-op Logger
// --------------------------------------------------------------------------

type nopLogger struct{}

func (nopLogger) SetLevel(logger.LogLevel)                    {}
func (nopLogger) Debugf(format string, args ...interface{})   {}
func (nopLogger) Infof(format string, args ...interface{})    {}
func (nopLogger) Warningf(format string, args ...interface{}) {}
func (nopLogger) Errorf(format string, args ...interface{})   {}
func (nopLogger) Panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// Nop returns a logger that discards everything except panics.
func Nop() logger.ILogger {
	return nopLogger{}
}
