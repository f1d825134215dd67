package store

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

type Kind string

const (
	Users         Kind = "users"
	Videos        Kind = "videos"
	Posts         Kind = "posts"
	Messages      Kind = "messages"
	Notifications Kind = "notifications"
)

var Kinds = []Kind{Users, Videos, Posts, Messages, Notifications}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Store persists one JSON array of flat records per kind. Read of a kind that was
// never written returns an empty array.
type Store interface {
	Read(ctx context.Context, kind Kind) ([]byte, error)
	Write(ctx context.Context, kind Kind, data []byte) error
}

var emptyArray = []byte("[]")

func Load[T any](ctx context.Context, s Store, kind Kind) ([]T, error) {
	data, err := s.Read(ctx, kind)
	if err != nil {
		return nil, err
	}
	records := make([]T, 0)
	if len(data) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, "decode %s", kind)
	}
	return records, nil
}

func Save[T any](ctx context.Context, s Store, kind Kind, records []T) error {
	if records == nil {
		records = make([]T, 0)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode %s", kind)
	}
	return s.Write(ctx, kind, data)
}
