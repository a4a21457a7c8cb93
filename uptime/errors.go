package uptime

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/stakestar/avaxtracker/avascan"
	"github.com/stakestar/avaxtracker/metrics"
)

type ErrorKind int

const (
	// NetworkError means the validator status API could not be reached or refused the request.
	NetworkError ErrorKind = iota + 1
	// ParseError means the API answered with a body that is not the expected JSON.
	ParseError
	// PartialData means the fetch worked but some tracked validators were missing.
	PartialData
)

func (k ErrorKind) String() string {
	switch k {
	case NetworkError:
		return "NetworkError"
	case ParseError:
		return "ParseError"
	case PartialData:
		return "PartialData"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Placeholder is the public text reported for a validator affected by this
// kind of failure. It never carries the underlying error.
func (k ErrorKind) Placeholder() string {
	switch k {
	case NetworkError:
		return "Error: upstream unavailable"
	case ParseError:
		return "Error: malformed upstream response"
	case PartialData:
		return "Unavailable"
	default:
		return "Error"
	}
}

func (k ErrorKind) metricResult() string {
	switch k {
	case NetworkError:
		return metrics.ResultNetwork
	case ParseError:
		return metrics.ResultParse
	case PartialData:
		return metrics.ResultPartial
	default:
		return metrics.ResultFailure
	}
}

// FetchError reports why a Normalize call could not produce a full report.
type FetchError struct {
	Kind    ErrorKind
	Missing []string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Kind == PartialData {
		return fmt.Sprintf("%s: no data for %s", e.Kind, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a FetchError anywhere in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind
	}
	return 0
}

func classify(err error) ErrorKind {
	var decodeErr *avascan.DecodeError
	if errors.As(err, &decodeErr) {
		return ParseError
	}
	return NetworkError
}
