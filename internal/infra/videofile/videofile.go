// Package videofile loads the video catalog from disk.
//
// Two formats are supported. The text format has one video per line:
//
//	Amazing Cats | amazing_cats_video_id | #cat , #animal
//
// The YAML format is a list under a top-level "videos" key.
package videofile

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osa030/vidbox/internal/domain/video"
)

// Format identifies a catalog file format.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// Entry is a single video in the YAML format.
type Entry struct {
	ID    string   `yaml:"id" validate:"required"`
	Title string   `yaml:"title" validate:"required"`
	Tags  []string `yaml:"tags"`
}

type document struct {
	Videos []Entry `yaml:"videos" validate:"dive"`
}

// Load reads the catalog file at path.
func Load(path string, format Format) ([]video.Video, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog file")
	}

	if format == FormatAuto || format == "" {
		format = detect(path)
	}

	switch format {
	case FormatText:
		return ParseText(bytes.NewReader(data))
	case FormatYAML:
		return ParseYAML(data)
	default:
		return nil, errors.Newf("unknown catalog format %q", format)
	}
}

func detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// ParseText parses the pipe-separated text format. Blank lines are skipped.
func ParseText(r io.Reader) ([]video.Video, error) {
	videos := make([]video.Video, 0)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 2 {
			return nil, errors.Newf("line %d: expected \"title | id | tags\"", lineNo)
		}
		title := strings.TrimSpace(fields[0])
		id := strings.TrimSpace(fields[1])
		if title == "" || id == "" {
			return nil, errors.Newf("line %d: title and id are required", lineNo)
		}

		var tags []string
		if len(fields) > 2 {
			tags = splitTags(fields[2])
		}
		videos = append(videos, video.New(id, title, tags))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan catalog")
	}
	return videos, nil
}

func splitTags(s string) []string {
	tags := make([]string, 0)
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ParseYAML parses the YAML format.
func ParseYAML(data []byte) ([]video.Video, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog file")
	}

	validate := validator.New()
	if err := validate.Struct(doc); err != nil {
		return nil, errors.Wrap(err, "catalog validation failed")
	}

	videos := make([]video.Video, 0, len(doc.Videos))
	for _, e := range doc.Videos {
		videos = append(videos, video.New(e.ID, e.Title, e.Tags))
	}
	return videos, nil
}
