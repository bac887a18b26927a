package builder

import (
	"path/filepath"

	"settergen/internal/parser"
)

// DefaultMarker selects types for generation when no marker is configured.
const DefaultMarker = parser.DefaultMarker

// Options control scanning and generation.
//
// InDir         – directory whose packages are scanned for marked types
// OutDir        – output directory; defaults to InDir so the generated file
// joins the scanned package
// OutFile       – output filename
// Marker        – doc-comment line that selects a type for generation
// CopyDocs      – copy field doc comments onto the generated setters
// AppendHelpers – also generate AddXxx helpers for slice fields
type Options struct {
	InDir         string `json:"in_dir,omitempty" yaml:"in_dir,omitempty" toml:"in_dir,omitempty" mapstructure:"in_dir,omitempty"`
	OutDir        string `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	OutFile       string `json:"out_file,omitempty" yaml:"out_file,omitempty" toml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	Marker        string `json:"marker,omitempty" yaml:"marker,omitempty" toml:"marker,omitempty" mapstructure:"marker,omitempty"`
	CopyDocs      bool   `json:"copy_docs,omitempty" yaml:"copy_docs,omitempty" toml:"copy_docs,omitempty" mapstructure:"copy_docs,omitempty"`
	AppendHelpers bool   `json:"append_helpers,omitempty" yaml:"append_helpers,omitempty" toml:"append_helpers,omitempty" mapstructure:"append_helpers,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		InDir:    ".",
		OutFile:  "setters_gen.go",
		Marker:   DefaultMarker,
		CopyDocs: true,
	}
}

func (o *Options) Normalize() {
	if o.InDir == "" {
		o.InDir = "."
	}
	o.InDir, _ = filepath.Abs(o.InDir)

	// The generated file belongs to the scanned package unless the caller
	// redirects it.
	if o.OutDir == "" {
		o.OutDir = o.InDir
	}
	o.OutDir, _ = filepath.Abs(o.OutDir)

	if o.OutFile == "" {
		o.OutFile = "setters_gen.go"
	}
	if o.Marker == "" {
		o.Marker = DefaultMarker
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInDir(d string) Option   { return func(o *Options) { o.InDir = d } }
func WithOutDir(d string) Option  { return func(o *Options) { o.OutDir = d } }
func WithOutFile(f string) Option { return func(o *Options) { o.OutFile = f } }
func WithMarker(m string) Option  { return func(o *Options) { o.Marker = m } }
func WithAppendHelpers() Option   { return func(o *Options) { o.AppendHelpers = true } }
func WithoutCopyDocs() Option     { return func(o *Options) { o.CopyDocs = false } }
