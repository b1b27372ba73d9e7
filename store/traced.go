package store

import "fmt"

// RawLogger receives raw store traffic. in is true for data read from the store.
type RawLogger interface {
	Log(in bool, data []byte)
}

// Traced forwards every call to a Store and records it on a RawLogger.
type Traced struct {
	Store
	raw RawLogger
}

func NewTraced(s Store, raw RawLogger) *Traced {
	return &Traced{Store: s, raw: raw}
}

func (t *Traced) Get(key string) (string, bool, error) {
	v, ok, err := t.Store.Get(key)
	switch {
	case err != nil:
		t.raw.Log(true, fmt.Appendf(nil, "get %s: error: %v", key, err))
	case !ok:
		t.raw.Log(true, fmt.Appendf(nil, "get %s: absent", key))
	default:
		t.raw.Log(true, fmt.Appendf(nil, "get %s: %s", key, v))
	}
	return v, ok, err
}

func (t *Traced) Set(key, value string) error {
	err := t.Store.Set(key, value)
	if err != nil {
		t.raw.Log(false, fmt.Appendf(nil, "set %s: error: %v", key, err))
		return err
	}
	t.raw.Log(false, fmt.Appendf(nil, "set %s: %s", key, value))
	return nil
}

func (t *Traced) Remove(key string) error {
	err := t.Store.Remove(key)
	if err != nil {
		t.raw.Log(false, fmt.Appendf(nil, "remove %s: error: %v", key, err))
		return err
	}
	t.raw.Log(false, fmt.Appendf(nil, "remove %s", key))
	return nil
}
