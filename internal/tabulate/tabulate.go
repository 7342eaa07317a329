package tabulate

import (
	"fmt"
	"log/slog"

	"github.com/nao1215/taskfmt/internal/model"
	"github.com/nao1215/taskfmt/internal/report"
	"github.com/nao1215/taskfmt/internal/serializer"
)

// Request describes one tabulate call.
type Request struct {
	// Mode selects the rendering policy.
	Mode Mode

	// Headers selects the columns. Unset headers resolve to the keys
	// sentinel.
	Headers Headers

	// HeadersExclude lists fields removed from every record.
	HeadersExclude []string

	// TableFormat is the table style for Enabled and Extend modes, and for
	// Custom modes that leave it empty.
	TableFormat string

	// ShowIndex adds the index column in Enabled and Extend modes.
	ShowIndex bool
}

// Outcome is the result of a tabulate call: either rendered text or the
// original input passed through.
type Outcome struct {
	// Text is the rendered table. Empty for passthrough outcomes.
	Text string

	// Input is the original input, set for passthrough outcomes.
	Input any

	// Err explains why a passthrough happened. Nil for rendered outcomes
	// and for the disabled mode.
	Err error

	rendered bool
}

// Rendered reports whether the outcome carries a rendered table.
func (o Outcome) Rendered() bool { return o.rendered }

// Value returns the rendered text, or the original input for passthrough
// outcomes.
func (o Outcome) Value() any {
	if o.rendered {
		return o.Text
	}
	return o.Input
}

// passthrough returns input unchanged with a diagnostic.
func passthrough(input any, err error) Outcome {
	return Outcome{Input: input, Err: err}
}

// Formatter renders records as tables. A Formatter is safe for concurrent
// use.
type Formatter struct {
	backend Backend
	logger  *slog.Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLogger sets the logger used for diagnostics.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Formatter) {
		f.logger = logger
	}
}

// WithBackend sets the rendering backend. A nil backend leaves the
// Formatter unable to render; every rendering call then passes its input
// through with ErrBackendUnavailable.
func WithBackend(backend Backend) Option {
	return func(f *Formatter) {
		f.backend = backend
	}
}

// New creates a Formatter. The default backend renders through the report
// table writers.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		backend: DefaultBackend(),
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.logger == nil {
		f.logger = slog.Default()
	}

	if f.backend == nil {
		f.logger.Error("tabulate disabled", "error", ErrBackendUnavailable)
	}

	return f
}

// Tabulate renders input with the default Formatter.
func Tabulate(input any, mode Mode, headers Headers, exclude []string) Outcome {
	return New().Format(input, Request{
		Mode:           mode,
		Headers:        headers,
		HeadersExclude: exclude,
	})
}

// job carries the state between formatting stages.
type job struct {
	input   any
	req     Request
	records []*model.Record
	config  Config
	table   *report.Table
}

// stage is one step of the formatting chain.
type stage struct {
	name string
	run  func(*job) error
}

// Format renders input according to req.
//
// The disabled mode returns input unchanged without a diagnostic. Every
// other failure is logged and returned as a passthrough Outcome.
func (f *Formatter) Format(input any, req Request) Outcome {
	if req.Mode.IsDisabled() {
		return passthrough(input, nil)
	}

	stages := []stage{
		{name: "backend", run: f.checkBackend},
		{name: "input", run: resolveInput},
		{name: "mode", run: resolveMode},
		{name: "exclude", run: excludeFields},
		{name: "rows", run: buildTable},
	}

	j := &job{input: input, req: req}
	for _, s := range stages {
		if err := s.run(j); err != nil {
			f.logger.Error("tabulate failed",
				"stage", s.name,
				"input_type", fmt.Sprintf("%T", input),
				"mode", req.Mode.String(),
				"error", err,
			)
			return passthrough(input, err)
		}
	}

	text, err := f.backend.Render(j.table, j.config.TableFormat)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrRenderFailed, err)
		f.logger.Error("tabulate failed",
			"stage", "render",
			"format", j.config.TableFormat,
			"error", err,
		)
		return passthrough(input, err)
	}

	f.logger.Debug("table rendered",
		"mode", req.Mode.String(),
		"records", len(j.records),
		"format", j.config.TableFormat,
	)
	return Outcome{Text: text, rendered: true}
}

func (f *Formatter) checkBackend(*job) error {
	if f.backend == nil {
		return ErrBackendUnavailable
	}
	return nil
}

// resolveInput turns the input into a flat record list.
func resolveInput(j *job) error {
	switch in := j.input.(type) {
	case *model.Collection:
		if in == nil {
			return fmt.Errorf("%w: nil collection", ErrUnsupportedInput)
		}
		j.records = serializer.Records(in)
	case []*model.Record:
		j.records = in
	case []model.Record:
		j.records = make([]*model.Record, len(in))
		for i := range in {
			j.records[i] = &in[i]
		}
	case []map[string]any:
		j.records = make([]*model.Record, len(in))
		for i, m := range in {
			j.records[i] = model.RecordFromMap(m)
		}
	case []any:
		records, ok := recordList(in)
		if !ok {
			return fmt.Errorf("%w: list elements must be mappings", ErrUnsupportedInput)
		}
		j.records = records
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedInput, j.input)
	}
	return nil
}

// recordList converts a list of mappings into records.
func recordList(items []any) ([]*model.Record, bool) {
	records := make([]*model.Record, len(items))
	for i, item := range items {
		switch val := item.(type) {
		case *model.Record:
			records[i] = val
		case map[string]any:
			records[i] = model.RecordFromMap(val)
		default:
			return nil, false
		}
	}
	return records, true
}

// resolveMode selects the renderer configuration and applies row expansion.
func resolveMode(j *job) error {
	headers := j.req.Headers.Or(HeaderKeys())

	switch j.req.Mode.kind {
	case modeBrief:
		j.config = BriefConfig()
	case modeEnabled:
		j.config = Config{Headers: headers, TableFormat: j.req.TableFormat, ShowIndex: j.req.ShowIndex}
	case modeExtend:
		j.records = expand(j.records)
		j.config = Config{Headers: headers, TableFormat: j.req.TableFormat, ShowIndex: j.req.ShowIndex}
	case modeCustom:
		j.config = j.req.Mode.config
		j.config.Headers = j.config.Headers.Or(headers)
		if j.config.TableFormat == "" {
			j.config.TableFormat = j.req.TableFormat
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMode, j.req.Mode)
	}
	return nil
}

// excludeFields removes excluded fields from every record.
func excludeFields(j *job) error {
	if len(j.req.HeadersExclude) == 0 {
		return nil
	}
	records := make([]*model.Record, len(j.records))
	for i, r := range j.records {
		records[i] = r.Without(j.req.HeadersExclude...)
	}
	j.records = records
	return nil
}

// buildTable converts records into positional rows when headers are
// explicit. Missing fields become empty strings.
func buildTable(j *job) error {
	if j.config.Headers.IsKeys() {
		j.table = &report.Table{
			Records:   j.records,
			ShowIndex: j.config.ShowIndex,
		}
		return nil
	}

	headers := j.config.Headers.Names()
	rows := make([][]any, len(j.records))
	for i, r := range j.records {
		row := make([]any, len(headers))
		for k, h := range headers {
			if v, ok := r.Get(h); ok {
				row[k] = v
			} else {
				row[k] = ""
			}
		}
		rows[i] = row
	}
	j.table = &report.Table{
		Headers:   headers,
		Rows:      rows,
		ShowIndex: j.config.ShowIndex,
	}
	return nil
}
