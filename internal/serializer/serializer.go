package serializer

import (
	"encoding/json"

	"github.com/nao1215/taskfmt/internal/model"
	"gopkg.in/yaml.v3"
)

// Output is either a *model.NestedResult or a *model.HostRecords.
type Output interface {
	json.Marshaler
	yaml.Marshaler

	// Hosts returns host names in order.
	Hosts() []string
}

// options holds Serialize settings.
type options struct {
	addDetails bool
	toDict     bool
}

// Option configures Serialize.
type Option func(*options)

// WithDetails adds diff, changed, failed and exception to every record.
// Default is false.
func WithDetails(addDetails bool) Option {
	return func(o *options) {
		o.addDetails = addDetails
	}
}

// WithDict selects the dictionary shape (true, the default) or the list
// shape (false).
func WithDict(toDict bool) Option {
	return func(o *options) {
		o.toDict = toDict
	}
}

// Serialize converts c into the shape selected by opts.
func Serialize(c *model.Collection, opts ...Option) Output {
	o := options{addDetails: false, toDict: true}
	for _, opt := range opts {
		opt(&o)
	}

	if o.toDict {
		return ToDict(c, o.addDetails)
	}
	return ToList(c, o.addDetails)
}

// ToDict builds the dictionary shape: host -> task name -> value.
// A repeated task name on the same host keeps its first position and the
// last value.
func ToDict(c *model.Collection, addDetails bool) *model.NestedResult {
	out := model.NewNestedResult()
	for _, host := range c.Hosts() {
		tasks := out.Host(host)
		for _, task := range c.Tasks(host) {
			if Skipped(task.Name) {
				continue
			}
			tasks.Set(task.Name, dictValue(task, addDetails))
		}
	}
	return out
}

// ToList builds the list shape: host -> records carrying their task name.
func ToList(c *model.Collection, addDetails bool) *model.HostRecords {
	out := model.NewHostRecords()
	for _, host := range c.Hosts() {
		records := make([]*model.Record, 0, len(c.Tasks(host)))
		for _, task := range c.Tasks(host) {
			if Skipped(task.Name) {
				continue
			}
			records = append(records, listRecord(task, addDetails))
		}
		out.Append(host, records...)
	}
	return out
}

// Records serializes c in list shape with details and merges all hosts into
// one list, annotating each record with its host.
func Records(c *model.Collection) []*model.Record {
	return ToList(c, true).Flatten()
}

// dictValue returns the value stored under a task name in dictionary shape.
func dictValue(task model.TaskOutcome, addDetails bool) any {
	switch {
	case task.HostException != nil:
		return hostExceptionRecord(task)
	case addDetails:
		return detailRecord(task)
	default:
		return task.Result
	}
}

// listRecord returns the record appended for a task in list shape.
func listRecord(task model.TaskOutcome, addDetails bool) *model.Record {
	name := model.Field{Key: model.FieldName, Value: task.Name}

	switch {
	case task.HostException != nil:
		return model.NewRecord(append([]model.Field{name}, hostExceptionRecord(task).Fields()...)...)
	case addDetails:
		return model.NewRecord(append([]model.Field{name}, detailRecord(task).Fields()...)...)
	default:
		return model.NewRecord(name, model.Field{Key: model.FieldResult, Value: task.Result})
	}
}

func hostExceptionRecord(task model.TaskOutcome) *model.Record {
	return model.NewRecord(model.Field{Key: model.FieldException, Value: task.HostException.Error()})
}

func detailRecord(task model.TaskOutcome) *model.Record {
	return model.NewRecord(
		model.Field{Key: model.FieldDiff, Value: task.Diff},
		model.Field{Key: model.FieldChanged, Value: task.Changed},
		model.Field{Key: model.FieldResult, Value: task.Result},
		model.Field{Key: model.FieldFailed, Value: task.HasFailed()},
		model.Field{Key: model.FieldException, Value: task.ExceptionText()},
	)
}
