package tpg

import (
	"path/filepath"
	"runtime"
	"sort"

	"go.bug.st/serial/enumerator"
)

// ListPorts returns a best-effort, sorted list of serial port device names
// the controller could be attached to.
func ListPorts() []string {
	if ports, err := enumerator.GetDetailedPortsList(); err == nil && len(ports) > 0 {
		out := make([]string, 0, len(ports))
		seen := make(map[string]struct{}, len(ports))
		for _, p := range ports {
			if p == nil || p.Name == "" {
				continue
			}
			if _, ok := seen[p.Name]; ok {
				continue
			}
			seen[p.Name] = struct{}{}
			out = append(out, p.Name)
		}
		sort.Strings(out)
		return out
	}

	// Fall back to filesystem globs where the enumerator comes up empty.
	switch runtime.GOOS {
	case "windows":
		return nil
	case "darwin":
		return listByGlob("/dev/cu.*", "/dev/tty.*")
	default:
		return listByGlob("/dev/ttyUSB*", "/dev/ttyACM*", "/dev/ttyS*")
	}
}

func listByGlob(patterns ...string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, 8)
	for _, pat := range patterns {
		matches, _ := filepath.Glob(pat)
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out
}
