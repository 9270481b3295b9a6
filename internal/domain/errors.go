package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind классифицирует ошибку обращения к удаленному сервису
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindAuth         Kind = "auth"
	KindTransport    Kind = "transport"
	KindRemote       Kind = "remote"
	KindProtocol     Kind = "protocol"
)

// Ошибки по видам. errors.Is(err, ErrRemote) срабатывает для любой *Error с KindRemote.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrAuth         = errors.New("authentication failed")
	ErrTransport    = errors.New("transport failure")
	ErrRemote       = errors.New("rejected by remote service")
	ErrProtocol     = errors.New("undecodable response")
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindAuth:
		return ErrAuth
	case KindTransport:
		return ErrTransport
	case KindRemote:
		return ErrRemote
	case KindProtocol:
		return ErrProtocol
	default:
		return nil
	}
}

// Error представляет ошибку с видом и сообщением для отображения
type Error struct {
	Kind       Kind
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	b.WriteString(" error")
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is позволяет сравнивать ошибку с sentinel-ошибкой ее вида
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// NewInvalidInput создает ошибку нарушения предусловия операции
func NewInvalidInput(op, message string) *Error {
	return &Error{Kind: KindInvalidInput, Op: op, Message: message}
}

// KindOf возвращает вид ошибки или пустую строку, если ошибка не классифицирована
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// MessageOf возвращает сообщение удаленного сервиса, а без него текст причины
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Message != "" {
			return e.Message
		}
		if e.Err != nil {
			return e.Err.Error()
		}
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
