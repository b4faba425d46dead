// Package library provides the read-only video catalog.
package library

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/osa030/vidbox/internal/domain/video"
)

var (
	ErrVideoNotFound  = errors.New("video does not exist")
	ErrDuplicateVideo = errors.New("duplicate video id")
)

// Library is an immutable catalog of videos keyed by ID.
type Library struct {
	videos map[string]video.Video
	order  []string // Insertion order
}

// New builds a library from the given videos. IDs must be unique and non-empty.
func New(videos []video.Video) (*Library, error) {
	l := &Library{
		videos: make(map[string]video.Video, len(videos)),
		order:  make([]string, 0, len(videos)),
	}
	for _, v := range videos {
		if v.ID() == "" {
			return nil, errors.Newf("video %q has an empty id", v.Title())
		}
		if _, ok := l.videos[v.ID()]; ok {
			return nil, errors.Wrapf(ErrDuplicateVideo, "id %q", v.ID())
		}
		l.videos[v.ID()] = v
		l.order = append(l.order, v.ID())
	}
	return l, nil
}

// Get returns the video with the exact given ID.
func (l *Library) Get(id string) (video.Video, error) {
	v, ok := l.videos[id]
	if !ok {
		return video.Video{}, ErrVideoNotFound
	}
	return v, nil
}

// All returns every video in insertion order.
func (l *Library) All() []video.Video {
	result := make([]video.Video, 0, len(l.order))
	for _, id := range l.order {
		result = append(result, l.videos[id])
	}
	return result
}

// IDs returns all video IDs sorted alphabetically.
func (l *Library) IDs() []string {
	ids := slices.Clone(l.order)
	slices.Sort(ids)
	return ids
}

// Len returns the number of videos.
func (l *Library) Len() int {
	return len(l.order)
}
