package model

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// NestedResult is the dictionary shape of serialized results:
// host -> task name -> value. The per-host mapping is a Record keyed by task
// name whose values are either bare results or detail records.
type NestedResult struct {
	hosts *orderedmap.OrderedMap[string, *Record]
}

// NewNestedResult creates an empty NestedResult.
func NewNestedResult() *NestedResult {
	return &NestedResult{hosts: orderedmap.New[string, *Record]()}
}

// Host returns the task mapping of host, creating it when absent.
func (n *NestedResult) Host(host string) *Record {
	if n.hosts == nil {
		n.hosts = orderedmap.New[string, *Record]()
	}
	if tasks, ok := n.hosts.Get(host); ok {
		return tasks
	}
	tasks := NewRecord()
	n.hosts.Set(host, tasks)
	return tasks
}

// Tasks returns the task mapping of host, or nil when host is unknown.
func (n *NestedResult) Tasks(host string) *Record {
	if n == nil || n.hosts == nil {
		return nil
	}
	tasks, _ := n.hosts.Get(host)
	return tasks
}

// Hosts returns host names in order.
func (n *NestedResult) Hosts() []string {
	if n == nil || n.hosts == nil {
		return nil
	}
	hosts := make([]string, 0, n.hosts.Len())
	for pair := n.hosts.Oldest(); pair != nil; pair = pair.Next() {
		hosts = append(hosts, pair.Key)
	}
	return hosts
}

// MarshalJSON implements json.Marshaler.
func (n *NestedResult) MarshalJSON() ([]byte, error) {
	if n.hosts == nil {
		n.hosts = orderedmap.New[string, *Record]()
	}
	return n.hosts.MarshalJSON()
}

// MarshalYAML implements yaml.Marshaler.
func (n *NestedResult) MarshalYAML() (interface{}, error) {
	if n.hosts == nil {
		n.hosts = orderedmap.New[string, *Record]()
	}
	return n.hosts.MarshalYAML()
}

// HostRecords is the list shape of serialized results: host -> records,
// each record carrying its task name inline.
type HostRecords struct {
	hosts *orderedmap.OrderedMap[string, []*Record]
}

// NewHostRecords creates an empty HostRecords.
func NewHostRecords() *HostRecords {
	return &HostRecords{hosts: orderedmap.New[string, []*Record]()}
}

// Append adds records to host. Calling Append with no records registers the
// host with an empty list.
func (h *HostRecords) Append(host string, records ...*Record) {
	if h.hosts == nil {
		h.hosts = orderedmap.New[string, []*Record]()
	}
	existing, _ := h.hosts.Get(host)
	if existing == nil {
		existing = []*Record{}
	}
	h.hosts.Set(host, append(existing, records...))
}

// Records returns the records of host, in order.
func (h *HostRecords) Records(host string) []*Record {
	if h == nil || h.hosts == nil {
		return nil
	}
	records, _ := h.hosts.Get(host)
	return records
}

// Hosts returns host names in order.
func (h *HostRecords) Hosts() []string {
	if h == nil || h.hosts == nil {
		return nil
	}
	hosts := make([]string, 0, h.hosts.Len())
	for pair := h.hosts.Oldest(); pair != nil; pair = pair.Next() {
		hosts = append(hosts, pair.Key)
	}
	return hosts
}

// Flatten merges every host's records into one list. Each returned record is
// a copy annotated with its host under FieldHost; the receiver is left as is.
func (h *HostRecords) Flatten() []*Record {
	var out []*Record
	for _, host := range h.Hosts() {
		for _, r := range h.Records(host) {
			out = append(out, r.Clone().Set(FieldHost, host))
		}
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (h *HostRecords) MarshalJSON() ([]byte, error) {
	if h.hosts == nil {
		h.hosts = orderedmap.New[string, []*Record]()
	}
	return h.hosts.MarshalJSON()
}

// MarshalYAML implements yaml.Marshaler.
func (h *HostRecords) MarshalYAML() (interface{}, error) {
	if h.hosts == nil {
		h.hosts = orderedmap.New[string, []*Record]()
	}
	return h.hosts.MarshalYAML()
}

// compile-time interface checks
var (
	_ yaml.Marshaler = (*NestedResult)(nil)
	_ yaml.Marshaler = (*HostRecords)(nil)
	_ yaml.Marshaler = (*Record)(nil)
	_ yaml.Marshaler = (*Collection)(nil)
)
