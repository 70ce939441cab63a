package repository

// Kind identifies which repository operation failed.
type Kind string

const (
	KindList   Kind = "list"
	KindGet    Kind = "get"
	KindCreate Kind = "create"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

// Error wraps a provider failure with the operation that triggered it.
// The original cause stays reachable through errors.Unwrap / errors.Is /
// errors.As. Provider not-found failures are never wrapped in an Error;
// they pass through the repository unchanged.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "category " + string(e.Kind) + " failed"
	}
	return "category " + string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error with the same Kind, so callers can write
// errors.Is(err, repository.ErrCreateFailed) without knowing the cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Matchers for errors.Is, one per operation.
var (
	ErrListFailed   = &Error{Kind: KindList}
	ErrGetFailed    = &Error{Kind: KindGet}
	ErrCreateFailed = &Error{Kind: KindCreate}
	ErrUpdateFailed = &Error{Kind: KindUpdate}
	ErrDeleteFailed = &Error{Kind: KindDelete}
)
