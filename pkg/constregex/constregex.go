// Package constregex compiles regular expressions, known at build time,
// into standalone Go matcher functions. The generated matcher is an
// explicit state machine over raw bytes with no heap allocation and no
// library calls, so it can run where no regex engine is available.
//
// A leading "^" anchors the match to the start of the input; otherwise the
// generated matcher reports whether a match starts anywhere in it.
package constregex

import (
	"fmt"

	"github.com/leo60228/const-regex/internal/compiler"
)

// Options configures the matcher generation process.
type Options struct {
	// Pattern is the regular expression to compile. A leading "^" anchors
	// the match to the start of the input.
	Pattern string

	// Name is the prefix for generated function names (e.g. "Subtitle"
	// generates "SubtitleMatch" and "SubtitleMatchString").
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// GenerateTestFile generates a test file checking the generated matcher
	// against the standard regexp package (default: true if TestFileInputs
	// provided)
	GenerateTestFile bool

	// TestFileInputs is a list of test inputs for the generated test file.
	TestFileInputs []string

	// Verbose enables logging of generation decisions to stderr
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

func (o Options) config() compiler.Config {
	generateTestFile := o.GenerateTestFile
	if len(o.TestFileInputs) > 0 {
		generateTestFile = true
	}

	return compiler.Config{
		Pattern:          o.Pattern,
		Name:             o.Name,
		Package:          o.Package,
		OutputFile:       o.OutputFile,
		GenerateTestFile: generateTestFile,
		TestFileInputs:   o.TestFileInputs,
		Verbose:          o.Verbose,
	}
}

// Compile generates a matcher for the given pattern and writes it to
// opts.OutputFile. It returns an error if the pattern is invalid or code
// generation fails.
func Compile(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	c := compiler.New(opts.config())
	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}

// Source renders the generated matcher file as source text without writing
// anything to disk. OutputFile may be empty.
func Source(opts Options) (string, error) {
	if opts.Pattern == "" {
		return "", fmt.Errorf("pattern cannot be empty")
	}
	if opts.Name == "" {
		return "", fmt.Errorf("name cannot be empty")
	}
	if opts.Package == "" {
		return "", fmt.Errorf("package cannot be empty")
	}

	c := compiler.New(opts.config())
	src, err := c.Source()
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return src, nil
}
