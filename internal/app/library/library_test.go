package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/vidbox/internal/domain/video"
)

func testVideos() []video.Video {
	return []video.Video{
		video.New("funny_dogs_video_id", "Funny Dogs", []string{"#dog", "#animal"}),
		video.New("amazing_cats_video_id", "Amazing Cats", []string{"#cat", "#animal"}),
		video.New("life_at_google_video_id", "Life at Google", []string{"#google", "#career"}),
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		videos  []video.Video
		wantErr error
		wantLen int
	}{
		{
			name:    "valid videos",
			videos:  testVideos(),
			wantLen: 3,
		},
		{
			name:    "empty catalog",
			videos:  nil,
			wantLen: 0,
		},
		{
			name: "duplicate id",
			videos: []video.Video{
				video.New("v1", "First", nil),
				video.New("v1", "Second", nil),
			},
			wantErr: ErrDuplicateVideo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.videos)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, l.Len())
		})
	}
}

func TestNew_EmptyID(t *testing.T) {
	_, err := New([]video.Video{video.New("", "No ID", nil)})
	assert.Error(t, err)
}

func TestLibrary_Get(t *testing.T) {
	l, err := New(testVideos())
	require.NoError(t, err)

	v, err := l.Get("amazing_cats_video_id")
	require.NoError(t, err)
	assert.Equal(t, "Amazing Cats", v.Title())

	// Exact match only
	_, err = l.Get("amazing_cats")
	assert.ErrorIs(t, err, ErrVideoNotFound)
	_, err = l.Get("AMAZING_CATS_VIDEO_ID")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestLibrary_AllKeepsInsertionOrder(t *testing.T) {
	l, err := New(testVideos())
	require.NoError(t, err)

	all := l.All()
	require.Len(t, all, 3)
	assert.Equal(t, "funny_dogs_video_id", all[0].ID())
	assert.Equal(t, "amazing_cats_video_id", all[1].ID())
	assert.Equal(t, "life_at_google_video_id", all[2].ID())
}

func TestLibrary_IDs(t *testing.T) {
	l, err := New(testVideos())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"amazing_cats_video_id",
		"funny_dogs_video_id",
		"life_at_google_video_id",
	}, l.IDs())
}
