//go:build profile

package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/hubastard/canopy/engine/core"
)

// Init sizes the scope ring; it keeps the newest capacity events.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start opens a scope and returns the func that closes it:
//
//	defer profiler.Start("DashboardLayer.OnRender")()
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := names.intern(name)
	begin := time.Now().UnixNano()
	ring.push(event{at: begin, name: id, open: true})
	return func() {
		end := max(time.Now().UnixNano(), begin)
		ring.push(event{at: end, name: id})
	}
}

// OpenProfilerGraph dumps the captured scopes into the temp dir and
// launches the speedscope viewer on the file.
func OpenProfilerGraph() (string, error) {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return "", errors.New("profiler: no events to dump")
	}
	path := filepath.Join(os.TempDir(), "canopy.profile.speedscope.json")
	if err := writeFile(path, evs); err != nil {
		return "", err
	}

	cmd := exec.Command("speedscope", path)
	if runtime.GOOS == "windows" {
		if spa, ok := hideWindowAttr().(*syscall.SysProcAttr); ok {
			cmd.SysProcAttr = spa
		}
	}
	if err := cmd.Start(); err != nil {
		core.Logger().Warn("speedscope not started", "path", path, "err", err)
	}
	return path, nil
}

type event struct {
	at   int64 // unix nanos
	name int
	open bool
}

// eventRing is a lock-free overwrite-oldest buffer.
type eventRing struct {
	ready atomic.Bool
	size  uint64
	next  atomic.Uint64
	evs   []event
}

var ring eventRing

func (r *eventRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]event, r.size)
	r.next.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.next.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the retained events in write order.
func (r *eventRing) snapshot() []event {
	n := r.next.Load()
	start := uint64(0)
	if n > r.size {
		start = n - r.size
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

type interner struct {
	mu    sync.Mutex
	list  []string
	index map[string]int
}

var names = interner{index: map[string]int{}}

func (in *interner) intern(s string) int {
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[s]; ok {
		return id
	}
	id := len(in.list)
	in.index[s] = id
	in.list = append(in.list, s)
	return id
}

func (in *interner) all() []string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]string(nil), in.list...)
}

// speedscope evented-profile document.
type (
	ssFile struct {
		Schema   string      `json:"$schema"`
		Shared   ssShared    `json:"shared"`
		Profiles []ssProfile `json:"profiles"`
		Exporter string      `json:"exporter,omitempty"`
		Name     string      `json:"name,omitempty"`
	}
	ssShared struct {
		Frames []ssFrame `json:"frames"`
	}
	ssFrame struct {
		Name string `json:"name"`
	}
	ssProfile struct {
		Type       string    `json:"type"`
		Name       string    `json:"name"`
		Unit       string    `json:"unit"`
		StartValue int64     `json:"startValue"`
		EndValue   int64     `json:"endValue"`
		Events     []ssEvent `json:"events"`
	}
	ssEvent struct {
		Type  string `json:"type"` // "O" or "C"
		At    int64  `json:"at"`   // µs since the first event
		Frame int    `json:"frame"`
	}
)

// balance converts raw events into properly nested speedscope events.
// Closes that do not match the innermost open scope are dropped (their
// open fell off the ring) and scopes still open at the end are closed at
// the last timestamp.
func balance(evs []event) (out []ssEvent, end int64) {
	if len(evs) == 0 {
		return nil, 0
	}
	base := evs[0].at
	var stack []int
	last := int64(0)
	for _, e := range evs {
		at := max((e.at-base)/1000, last)
		if e.open {
			stack = append(stack, e.name)
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.name})
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.name {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.name})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	return out, last
}

func writeSpeedscope(w io.Writer, evs []event, frames []string) error {
	out, end := balance(evs)
	if len(out) == 0 {
		return errors.New("profiler: no usable events")
	}
	doc := ssFile{
		Schema:   "https://www.speedscope.app/file-format-schema.json",
		Shared:   ssShared{Frames: make([]ssFrame, len(frames))},
		Exporter: "canopy-profiler",
		Name:     "canopy capture",
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "canopy frames",
			Unit:     "microseconds",
			EndValue: end,
			Events:   out,
		}},
	}
	for i, f := range frames {
		doc.Shared.Frames[i] = ssFrame{Name: f}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&doc)
}

// writeFile writes through a temp file so a crash never leaves half a dump.
func writeFile(path string, evs []event) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	if err := writeSpeedscope(f, evs, names.all()); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(tmp, path)
}
