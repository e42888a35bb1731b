package logger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// CloudRunHandler writes one JSON object per record in the structured
// logging shape Cloud Logging understands (severity/message/time).
// Record attributes are nested under "data"; groups become nested objects.
type CloudRunHandler struct {
	level  slog.Level
	out    io.Writer
	mu     *sync.Mutex
	frames []frame
}

// frame is a group opened by WithGroup plus the attrs added while it was innermost.
type frame struct {
	group string
	attrs []slog.Attr
}

func NewCloudRunHandler(level slog.Level) slog.Handler {
	return newCloudRunHandler(level, os.Stdout)
}

func newCloudRunHandler(level slog.Level, out io.Writer) *CloudRunHandler {
	return &CloudRunHandler{level: level, out: out, mu: &sync.Mutex{}, frames: []frame{{}}}
}

func (h *CloudRunHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *CloudRunHandler) Handle(_ context.Context, r slog.Record) error {
	event := map[string]any{
		"severity": mapSeverity(r.Level),
		"message":  r.Message,
		"time":     r.Time.Format(time.RFC3339Nano),
	}

	data := make(map[string]any)
	target := data
	for i, f := range h.frames {
		if i > 0 {
			next := make(map[string]any)
			target[f.group] = next
			target = next
		}
		for _, a := range f.attrs {
			putAttr(target, a)
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		putAttr(target, a)
		return true
	})
	pruneEmpty(data)
	if len(data) > 0 {
		event["data"] = data
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.out.Write(append(b, '\n'))
	return err
}

func (h *CloudRunHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := h.clone()
	last := &nh.frames[len(nh.frames)-1]
	last.attrs = append(append([]slog.Attr{}, last.attrs...), attrs...)
	return nh
}

func (h *CloudRunHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := h.clone()
	nh.frames = append(nh.frames, frame{group: name})
	return nh
}

func (h *CloudRunHandler) clone() *CloudRunHandler {
	nh := *h
	nh.frames = append([]frame{}, h.frames...)
	return &nh
}

// pruneEmpty drops groups that ended up without attributes.
func pruneEmpty(m map[string]any) {
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			pruneEmpty(sub)
			if len(sub) == 0 {
				delete(m, k)
			}
		}
	}
}

func putAttr(m map[string]any, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		group := make(map[string]any)
		for _, ga := range a.Value.Group() {
			putAttr(group, ga)
		}
		if a.Key == "" {
			for k, v := range group {
				m[k] = v
			}
			return
		}
		m[a.Key] = group
		return
	}
	if err, ok := a.Value.Any().(error); ok {
		m[a.Key] = err.Error()
		return
	}
	m[a.Key] = a.Value.Any()
}

func mapSeverity(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
