package shell

import (
	"context"
	"errors"
	"fmt"
	"github.com/aleph-zero/linkedlist/session"
	"github.com/aleph-zero/linkedlist/telemetry"
	"github.com/chzyer/readline"
	"github.com/go-chi/httplog/v2"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	serviceName    = "linkedlist-shell"
	serviceVersion = "0.0.1"
	prompt         = "\033[32mlinkedlist> \033[0m "
)

type Config struct {
	ValueType    string
	HistoryFile  string
	LogLevel     string
	LogJSON      bool
	CollectorURL string
}

type Option func(*Config)

func NewConfig(options ...Option) *Config {
	cfg := &Config{}
	for _, option := range options {
		option(cfg)
	}
	return cfg
}

func WithValueType(valueType string) Option {
	return func(cfg *Config) {
		cfg.ValueType = valueType
	}
}

func WithHistoryFile(historyFile string) Option {
	return func(cfg *Config) {
		cfg.HistoryFile = historyFile
	}
}

func WithLogLevel(level string) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

func WithLogJSON(json bool) Option {
	return func(cfg *Config) {
		cfg.LogJSON = json
	}
}

func WithCollectorURL(url string) Option {
	return func(cfg *Config) {
		cfg.CollectorURL = url
	}
}

// LineReader is the part of *readline.Instance the shell loop needs.
type LineReader interface {
	Readline() (string, error)
}

func Bootstrap(config *Config) {
	ctx := context.Background()

	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q, using info\n", config.LogLevel)
		level = slog.LevelInfo
	}

	logger := httplog.NewLogger(serviceName, httplog.Options{
		LogLevel:         level,
		MessageFieldName: "msg",
		JSON:             config.LogJSON,
		Concise:          true,
	})

	shutdown, err := telemetry.New(serviceName, serviceVersion, config.CollectorURL)
	if err != nil {
		logger.ErrorContext(ctx, "Error initializing telemetry", "error", err)
		return
	}
	defer shutdown()

	svc, err := session.NewService(config.ValueType, logger.Logger)
	if err != nil {
		logger.ErrorContext(ctx, "Error creating session", "valueType", config.ValueType, "error", err)
		return
	}
	logger.InfoContext(ctx, "Session started", "sessionId", svc.SessionId(), "valueType", config.ValueType)

	rl, err := setupReadline(config.HistoryFile)
	if err != nil {
		logger.ErrorContext(ctx, "Error setting up readline config", "error", err)
		return
	}
	defer rl.Close()

	if err := Run(ctx, rl, svc, rl.Stdout()); err != nil {
		logger.ErrorContext(ctx, "Shell stopped", "error", err)
	}
}

// Run reads statements from rl until EOF or an interrupt on an empty line, executes each
// against svc and writes the output to w. Statement errors are printed and do not stop the loop.
func Run(ctx context.Context, rl LineReader, svc session.Service, w io.Writer) error {
	for {
		stmt, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(stmt) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if stmt == "exit" || stmt == "quit" {
			return nil
		}

		result, err := svc.Execute(ctx, stmt)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		for _, line := range result.Output {
			fmt.Fprintln(w, line)
		}
	}
}

func setupReadline(historyFile string) (*readline.Instance, error) {
	if historyFile != "" {
		if err := os.MkdirAll(filepath.Dir(historyFile), 0750); err != nil {
			return nil, err
		}
	}

	return readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("push"),
			readline.PcItem("pop"),
			readline.PcItem("peek"),
			readline.PcItem("clear"),
			readline.PcItem("len"),
			readline.PcItem("iter"),
			readline.PcItem("incr"),
			readline.PcItem("drain"),
			readline.PcItem("show"),
			readline.PcItem("help"),
			readline.PcItem("exit"),
		),
	})
}
