// Package vfile provides an immutable in-memory view of an input document.
// A File satisfies japanese.Source, so a Parser can be bound to it directly.
package vfile

import (
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/japarse/pkg/fsutil"
	"github.com/yaklabco/japarse/pkg/sniff"
)

// StdinPath is the display path used for documents read from standard input.
const StdinPath = "<stdin>"

// File is an immutable view of a document at a specific time.
type File struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full document bytes.
	Content []byte
}

// New creates a File from content.
func New(path string, content []byte) *File {
	return &File{Path: path, Content: content}
}

// FromString creates an in-memory File.
func FromString(path, content string) *File {
	return &File{Path: path, Content: []byte(content)}
}

// Read loads a file from disk, rejecting directories and binary content.
func Read(ctx context.Context, path string) (*File, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	if sniff.IsBinary(content) {
		return nil, fmt.Errorf("%w: %s", fsutil.ErrBinary, path)
	}
	return New(path, content), nil
}

// ReadFrom loads a document from reader, typically standard input.
func ReadFrom(path string, reader io.Reader) (*File, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if sniff.IsBinary(content) {
		return nil, fmt.Errorf("%w: %s", fsutil.ErrBinary, path)
	}
	return New(path, content), nil
}

// String returns the document text.
func (f *File) String() string {
	if f == nil {
		return ""
	}
	return string(f.Content)
}

// Name returns the display name of the file.
func (f *File) Name() string {
	if f == nil || f.Path == "" {
		return StdinPath
	}
	return f.Path
}
