package localefile

import (
	"context"
	"errors"
	"fmt"

	"locale-manager/core/tree"
)

// File is a single locale document in a Store.
type File struct {
	Store Store
	Name  string
	Codec Codec
	// Required makes Read fail with ErrNotFound instead of returning an empty tree.
	Required bool
}

// NewFile creates a File whose codec is chosen from the extension of name, falling back
// to format when the extension is unknown.
func NewFile(store Store, name, format string, required bool) (*File, error) {
	codec, err := CodecFor(name)
	if err != nil {
		codec, err = CodecFor(format)
		if err != nil {
			return nil, err
		}
	}
	return &File{Store: store, Name: name, Codec: codec, Required: required}, nil
}

// Read decodes the file. A file that does not exist yields an empty Node unless Required.
func (f *File) Read(ctx context.Context) (tree.Node, error) {
	data, err := f.Store.Read(ctx, f.Name)
	if err != nil {
		if errors.Is(err, ErrNotFound) && !f.Required {
			return tree.Node{}, nil
		}
		return nil, err
	}

	doc, err := f.Codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	return doc, nil
}

// Load implements reconcile.Input.
func (f *File) Load(ctx context.Context) (tree.Node, error) {
	return f.Read(ctx)
}

// Write encodes doc and stores it, replacing any previous content.
func (f *File) Write(ctx context.Context, doc tree.Node) error {
	data, err := f.Codec.Encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", f.Name, err)
	}
	return f.Store.Write(ctx, f.Name, data)
}
