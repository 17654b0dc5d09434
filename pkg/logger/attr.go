package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// ComponentID records the component identifier under the key "component_id".
// If id is nil, it returns an empty Attr.
func ComponentID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("component_id", id)
}

// Version records the component version under the key "version".
func Version(v string) slog.Attr {
	return slog.String("version", v)
}

// RunID records the process run identifier under the key "run_id".
// If id is empty, it returns an empty Attr.
func RunID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("run_id", id)
}

// Transports records the names of the active transports under the key "transports".
func Transports(l *Logger) slog.Attr {
	if l == nil {
		return slog.Attr{}
	}
	names := make([]string, 0, len(l.transports))
	for _, t := range l.transports {
		names = append(names, t.Name)
	}
	return slog.Any("transports", names)
}
