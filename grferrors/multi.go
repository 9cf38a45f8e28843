package grferrors

import "strings"

// Errors aggregates multiple errors collected from independent workers
// (one per tree group, typically) without dropping any of them.
type Errors interface {
	error
	Errors() []error
}

type errorSlice []error

func (es errorSlice) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (es errorSlice) Errors() []error {
	return []error(es)
}

// Append adds err to errs if err is non-nil, returning the possibly new
// aggregate. A nil errs with a nil err stays nil.
func Append(errs error, err error) error {
	if err == nil {
		return errs
	}
	if errs == nil {
		return errorSlice{err}
	}
	if es, ok := errs.(errorSlice); ok {
		return append(es, err)
	}
	return errorSlice{errs, err}
}

// Combine merges a slice of errors (nils skipped) into a single error, or
// nil if all of them were nil.
func Combine(errs ...error) error {
	var result error
	for _, e := range errs {
		result = Append(result, e)
	}
	return result
}
