package logging

import "time"

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Field helpers for recurring evaluation context
func Component(name string) Field {
	return String("component", name)
}

func BlockID(id string) Field {
	return String("block_id", id)
}

func BlockCount(n int) Field {
	return Int("block_count", n)
}

func ConnectionCount(n int) Field {
	return Int("connection_count", n)
}

func ClusterCount(n int) Field {
	return Int("cluster_count", n)
}

func Mode(mode string) Field {
	return String("mode", mode)
}

func Reliability(r float64) Field {
	return Float64("reliability", r)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func RequestID(id string) Field {
	return String("request_id", id)
}
