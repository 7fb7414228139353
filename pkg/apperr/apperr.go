package apperr

import "errors"

// Kind 业务错误类别，边界层据此映射 HTTP 状态码
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindInvalidInput
	KindConflict
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) error { return &Error{Kind: kind, Msg: msg} }

func Wrap(kind Kind, msg string, err error) error { return &Error{Kind: kind, Msg: msg, Err: err} }

func Unauthenticated(msg string) error { return New(KindUnauthenticated, msg) }
func Forbidden(msg string) error       { return New(KindForbidden, msg) }
func NotFound(msg string) error        { return New(KindNotFound, msg) }
func InvalidInput(msg string) error    { return New(KindInvalidInput, msg) }
func Conflict(msg string) error        { return New(KindConflict, msg) }
func Internal(msg string, err error) error {
	return Wrap(KindInternal, msg, err)
}

// KindOf 未识别的错误一律按 Internal 处理
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool { return KindOf(err) == kind }
