package session

import (
	"context"
	"fmt"
	"github.com/aleph-zero/linkedlist/list"
	"github.com/aleph-zero/linkedlist/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/constraints"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const emptyMarker = "(empty)"

type contextKey string

const sessionIdKey contextKey = "sessionId"

func NewSessionId() string {
	return uuid.NewString()
}

func WithSessionId(ctx context.Context, sessionId string) context.Context {
	return context.WithValue(ctx, sessionIdKey, sessionId)
}

func SessionIdFromContext(ctx context.Context) string {
	v, ok := ctx.Value(sessionIdKey).(string)
	if !ok {
		return ""
	}
	return v
}

// Value is the set of element types a session can parse from a statement.
type Value interface {
	constraints.Integer | constraints.Float | ~string
}

type Service interface {
	Execute(ctx context.Context, statement string) (*Result, error)
	SessionId() string
}

type Result struct {
	Command  string        `json:"command"`
	Output   []string      `json:"output"`
	Duration time.Duration `json:"duration"`
}

type ServiceProvider[T Value] struct {
	sessionId  string
	list       *list.LinkedList[T]
	logger     *slog.Logger
	operations metric.Int64Counter
}

// NewService returns a session over an empty list of the named value type: int, float or string.
func NewService(valueType string, logger *slog.Logger) (Service, error) {
	var (
		svc Service
		err error
	)
	switch valueType {
	case "int":
		svc, err = newServiceProvider[int64](logger)
	case "float":
		svc, err = newServiceProvider[float64](logger)
	case "string":
		svc, err = newServiceProvider[string](logger)
	default:
		return nil, Error{
			ErrorCode: UnsupportedType,
			Message:   fmt.Sprintf("unsupported value type %q", valueType),
		}
	}
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func newServiceProvider[T Value](logger *slog.Logger) (*ServiceProvider[T], error) {
	operations, err := telemetry.Meter().Int64Counter("linkedlist.operations",
		metric.WithDescription("Number of list commands executed"))
	if err != nil {
		return nil, fmt.Errorf("creating operations counter: %w", err)
	}

	return &ServiceProvider[T]{
		sessionId:  NewSessionId(),
		list:       list.New[T](),
		logger:     logger,
		operations: operations,
	}, nil
}

func (sp *ServiceProvider[T]) SessionId() string {
	return sp.sessionId
}

func (sp *ServiceProvider[T]) Execute(ctx context.Context, statement string) (*Result, error) {
	start := time.Now()
	ctx = WithSessionId(ctx, sp.sessionId)

	fields := strings.Fields(statement)
	if len(fields) == 0 {
		return nil, Error{ErrorCode: MissingCommand, Message: "no command given"}
	}
	command, args := strings.ToLower(fields[0]), fields[1:]

	ctx, span := telemetry.StartSpan(ctx, "session.Execute", trace.WithAttributes(
		attribute.String("sessionId", sp.sessionId),
		attribute.String("command", command)))
	defer span.End()

	output, err := sp.dispatch(command, args)
	if err != nil {
		span.RecordError(err)
		sp.logger.ErrorContext(ctx, "Error executing command",
			"sessionId", SessionIdFromContext(ctx), "statement", statement, "error", err)
		return nil, err
	}

	sp.operations.Add(ctx, 1, metric.WithAttributes(attribute.String("command", command)))
	sp.logger.DebugContext(ctx, "Executed command",
		"sessionId", SessionIdFromContext(ctx), "command", command, "list", sp.list)

	return &Result{
		Command:  command,
		Output:   output,
		Duration: time.Since(start),
	}, nil
}

func (sp *ServiceProvider[T]) dispatch(command string, args []string) ([]string, error) {
	switch command {
	case "push":
		if len(args) == 0 {
			return nil, missingArgument(command)
		}
		values := make([]T, 0, len(args))
		for _, arg := range args {
			v, err := parseValue[T](arg)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		for _, v := range values {
			sp.list.Push(v)
		}
		return nil, nil

	case "pop":
		return []string{render[T](sp.list.Pop())}, nil

	case "peek":
		return []string{render[T](sp.list.Peek())}, nil

	case "clear":
		sp.list.Clear()
		return nil, nil

	case "len":
		return []string{strconv.Itoa(sp.list.Len())}, nil

	case "iter":
		output := make([]string, 0, sp.list.Len())
		for v := range sp.list.All() {
			output = append(output, fmt.Sprint(v))
		}
		return output, nil

	case "incr":
		if len(args) != 1 {
			return nil, missingArgument(command)
		}
		delta, err := parseValue[T](args[0])
		if err != nil {
			return nil, err
		}
		for p := range sp.list.Pointers() {
			*p += delta
		}
		return nil, nil

	case "drain":
		output := make([]string, 0, sp.list.Len())
		for v := range sp.list.Drain() {
			output = append(output, fmt.Sprint(v))
		}
		return output, nil

	case "show":
		return []string{sp.list.String()}, nil

	case "help":
		return strings.Split(usage, "\n"), nil

	default:
		return nil, Error{
			ErrorCode: UnknownCommand,
			Message:   fmt.Sprintf("unknown command %q", command),
		}
	}
}

const usage = `push <value>...  prepend values; the last one becomes the head
pop              remove and print the head
peek             print the head
clear            remove every element
len              print the number of elements
iter             print the elements head to tail
incr <value>     add value to every element in place
drain            pop and print every element
show             print the list structure`

func render[T any](v T, ok bool) string {
	if !ok {
		return emptyMarker
	}
	return fmt.Sprint(v)
}

func missingArgument(command string) error {
	return Error{
		ErrorCode: MissingArgument,
		Message:   fmt.Sprintf("wrong number of arguments for %s", command),
	}
}

func parseValue[T Value](s string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()

	var err error
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		if n, err = strconv.ParseInt(s, 10, rv.Type().Bits()); err == nil {
			rv.SetInt(n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var n uint64
		if n, err = strconv.ParseUint(s, 10, rv.Type().Bits()); err == nil {
			rv.SetUint(n)
		}
	case reflect.Float32, reflect.Float64:
		var f float64
		if f, err = strconv.ParseFloat(s, rv.Type().Bits()); err == nil {
			rv.SetFloat(f)
		}
	}

	if err != nil {
		return v, Error{
			ErrorCode: InvalidValue,
			Message:   fmt.Sprintf("invalid %s value %q", rv.Type(), s),
			Err:       err,
		}
	}
	return v, nil
}

/* *** Errors *** */

type ErrorCode int

const (
	UnknownCommand ErrorCode = iota + 1
	MissingCommand
	MissingArgument
	InvalidValue
	UnsupportedType
)

type Error struct {
	ErrorCode ErrorCode
	Message   string
	Err       error
}

func (e Error) Error() string {
	return e.Message
}

func (e Error) Unwrap() error {
	return e.Err
}

func (e Error) Is(target error) bool {
	if other, ok := target.(Error); ok {
		ignoreErrorCode := other.ErrorCode == 0
		ignoreMessage := other.Message == ""
		matchErrorCode := other.ErrorCode == e.ErrorCode
		matchMessage := other.Message == e.Message

		return matchMessage && matchErrorCode || matchMessage && ignoreErrorCode || ignoreMessage && matchErrorCode
	}
	return false
}
