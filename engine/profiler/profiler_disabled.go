//go:build !profile

package profiler

// Without the profile build tag scopes compile to no-ops.

func Init(int) {}

func Start(string) func() { return func() {} }

// OpenProfilerGraph reports no dump; build with -tags profile to capture.
func OpenProfilerGraph() (string, error) { return "", nil }
