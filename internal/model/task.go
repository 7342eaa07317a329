package model

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// NoException is the textual form of an absent task exception.
// Detailed records always carry an exception string; this is the value used
// when the task raised nothing.
const NoException = "None"

// TaskOutcome is the result of one task on one host.
// It mirrors what the upstream task-execution engine reports and is read-only
// to this module.
type TaskOutcome struct {
	// Name is the task identifier. Names starting with "_" denote internal
	// bookkeeping tasks.
	Name string

	// Result is the task payload: a string, structured data or a sequence
	// of sub-results.
	Result any

	// Changed reports whether the task changed device state.
	Changed bool

	// Failed reports whether the task itself flagged a failure.
	Failed bool

	// Diff is the configuration diff produced by the task, possibly empty.
	Diff string

	// Exception is the error raised by the task, nil when none.
	Exception error

	// HostException is a host-level failure (connection loss, authentication
	// failure) recorded independently of the task. When set it takes
	// precedence over every other field of the outcome.
	HostException error
}

// ExceptionText returns the task exception message, or NoException.
func (t TaskOutcome) ExceptionText() string {
	if t.Exception == nil {
		return NoException
	}
	return t.Exception.Error()
}

// HasFailed reports whether the task failed, either by raising an exception
// or by setting its failed flag.
func (t TaskOutcome) HasFailed() bool {
	if t.Exception != nil {
		return true
	}
	return t.Failed
}

// taskOutcomeDoc is the wire form of TaskOutcome in JSON and YAML documents.
type taskOutcomeDoc struct {
	Name          string  `json:"name"                     yaml:"name"`
	Result        any     `json:"result"                   yaml:"result"`
	Changed       bool    `json:"changed"                  yaml:"changed"`
	Failed        bool    `json:"failed"                   yaml:"failed"`
	Diff          string  `json:"diff"                     yaml:"diff"`
	Exception     *string `json:"exception,omitempty"      yaml:"exception,omitempty"`
	HostException *string `json:"host_exception,omitempty" yaml:"host_exception,omitempty"`
}

// toOutcome converts the wire form into a TaskOutcome.
// Empty exception strings are treated the same as a missing exception.
func (d taskOutcomeDoc) toOutcome() TaskOutcome {
	return TaskOutcome{
		Name:          d.Name,
		Result:        d.Result,
		Changed:       d.Changed,
		Failed:        d.Failed,
		Diff:          d.Diff,
		Exception:     errorFromText(d.Exception),
		HostException: errorFromText(d.HostException),
	}
}

// newTaskOutcomeDoc converts a TaskOutcome into its wire form.
func newTaskOutcomeDoc(t TaskOutcome) taskOutcomeDoc {
	return taskOutcomeDoc{
		Name:          t.Name,
		Result:        t.Result,
		Changed:       t.Changed,
		Failed:        t.Failed,
		Diff:          t.Diff,
		Exception:     textFromError(t.Exception),
		HostException: textFromError(t.HostException),
	}
}

func errorFromText(s *string) error {
	if s == nil || *s == "" || *s == NoException {
		return nil
	}
	return errors.New(*s)
}

func textFromError(err error) *string {
	if err == nil {
		return nil
	}
	s := err.Error()
	return &s
}

// MarshalJSON implements json.Marshaler.
func (t TaskOutcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(newTaskOutcomeDoc(t))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TaskOutcome) UnmarshalJSON(data []byte) error {
	var doc taskOutcomeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*t = doc.toOutcome()
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t TaskOutcome) MarshalYAML() (interface{}, error) {
	return newTaskOutcomeDoc(t), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TaskOutcome) UnmarshalYAML(value *yaml.Node) error {
	var doc taskOutcomeDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	*t = doc.toOutcome()
	return nil
}
