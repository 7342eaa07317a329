package model

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Collection is the raw result collection of an automation run: an ordered
// mapping from host name to the ordered task outcomes recorded for it.
//
// The zero value is an empty collection ready to use.
type Collection struct {
	hosts *orderedmap.OrderedMap[string, []TaskOutcome]
}

// NewCollection creates an empty Collection.
func NewCollection() *Collection {
	return &Collection{hosts: orderedmap.New[string, []TaskOutcome]()}
}

func (c *Collection) init() {
	if c.hosts == nil {
		c.hosts = orderedmap.New[string, []TaskOutcome]()
	}
}

// Add appends task outcomes to a host. A host keeps the position of its
// first insertion.
func (c *Collection) Add(host string, tasks ...TaskOutcome) *Collection {
	c.init()
	existing, _ := c.hosts.Get(host)
	merged := make([]TaskOutcome, 0, len(existing)+len(tasks))
	merged = append(merged, existing...)
	merged = append(merged, tasks...)
	c.hosts.Set(host, merged)
	return c
}

// Hosts returns host names in insertion order.
func (c *Collection) Hosts() []string {
	if c == nil || c.hosts == nil {
		return nil
	}
	hosts := make([]string, 0, c.hosts.Len())
	for pair := c.hosts.Oldest(); pair != nil; pair = pair.Next() {
		hosts = append(hosts, pair.Key)
	}
	return hosts
}

// Tasks returns the task outcomes recorded for host, in order.
func (c *Collection) Tasks(host string) []TaskOutcome {
	if c == nil || c.hosts == nil {
		return nil
	}
	tasks, _ := c.hosts.Get(host)
	return tasks
}

// Len returns the number of hosts.
func (c *Collection) Len() int {
	if c == nil || c.hosts == nil {
		return 0
	}
	return c.hosts.Len()
}

// MarshalJSON implements json.Marshaler, keeping host order.
func (c *Collection) MarshalJSON() ([]byte, error) {
	c.init()
	return c.hosts.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler, keeping host order.
func (c *Collection) UnmarshalJSON(data []byte) error {
	c.hosts = orderedmap.New[string, []TaskOutcome]()
	return c.hosts.UnmarshalJSON(data)
}

// MarshalYAML implements yaml.Marshaler, keeping host order.
func (c *Collection) MarshalYAML() (interface{}, error) {
	c.init()
	return c.hosts.MarshalYAML()
}

// UnmarshalYAML implements yaml.Unmarshaler, keeping host order.
func (c *Collection) UnmarshalYAML(value *yaml.Node) error {
	c.hosts = orderedmap.New[string, []TaskOutcome]()
	return c.hosts.UnmarshalYAML(value)
}
