package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Repository loads and saves the whole state of one entity type.
type Repository[T any] interface {
	Load(ctx context.Context) (T, error)
	Save(ctx context.Context, v T) error
}

// JSON is a Repository that keeps T as a JSON document under one key.
//
// A missing key loads as the zero value. A value that does not decode is
// discarded with a warning and also loads as the zero value; the next Save
// overwrites it.
type JSON[T any] struct {
	kv     KV
	key    string
	logger *zap.Logger
}

var _ Repository[[]string] = (*JSON[[]string])(nil)

// NewJSON binds a JSON repository to key.
func NewJSON[T any](kv KV, key string, logger *zap.Logger) *JSON[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSON[T]{kv: kv, key: key, logger: logger}
}

// Key is the storage key the repository is bound to.
func (r *JSON[T]) Key() string {
	return r.key
}

func (r *JSON[T]) Load(_ context.Context) (T, error) {
	var v T
	data, err := r.kv.Read(r.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return v, nil
		}
		return v, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		r.logger.Warn("discarding malformed stored value",
			zap.String("key", r.key),
			zap.Error(err),
		)
		var zero T
		return zero, nil
	}
	return v, nil
}

func (r *JSON[T]) Save(_ context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", r.key, err)
	}
	return r.kv.Write(r.key, data)
}

// Text is a Repository for keys holding plain, unencoded text.
type Text struct {
	kv  KV
	key string
}

var _ Repository[string] = (*Text)(nil)

// NewText binds a plain text repository to key.
func NewText(kv KV, key string) *Text {
	return &Text{kv: kv, key: key}
}

// Lookup returns the stored text and whether the key was present.
func (r *Text) Lookup(_ context.Context) (string, bool, error) {
	data, err := r.kv.Read(r.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

func (r *Text) Load(ctx context.Context) (string, error) {
	s, _, err := r.Lookup(ctx)
	return s, err
}

func (r *Text) Save(_ context.Context, v string) error {
	return r.kv.Write(r.key, []byte(v))
}
