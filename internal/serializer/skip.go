package serializer

import (
	"slices"
	"strings"
)

// ReservedPrefix marks internal and group bookkeeping tasks.
const ReservedPrefix = "_"

// groupTasks lists known tasks that fan out to sub-tasks and carry no result
// of their own. It is never modified after initialization.
var groupTasks = map[string]struct{}{
	"netmiko_send_commands": {},
}

// IsGroupTask reports whether name is a known group task.
func IsGroupTask(name string) bool {
	_, ok := groupTasks[name]
	return ok
}

// GroupTasks returns the known group task names, sorted.
func GroupTasks() []string {
	names := make([]string, 0, len(groupTasks))
	for name := range groupTasks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Skipped reports whether a task never appears in serialized output.
func Skipped(name string) bool {
	return strings.HasPrefix(name, ReservedPrefix) || IsGroupTask(name)
}
