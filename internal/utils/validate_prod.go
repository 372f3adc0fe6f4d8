//go:build !debug_render_graph

package utils

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_render_graph build tag is present
func DebugValidate(validatable Validatable) {}
