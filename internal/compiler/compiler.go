// Package compiler implements the regex-to-matcher generation pipeline:
// automaton construction, state graph extraction, byte-range coalescing,
// and matcher emission.
package compiler

import (
	"fmt"
	"os"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/leo60228/const-regex/internal/automaton"
	"github.com/leo60228/const-regex/internal/codegen"
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern          string
	Name             string
	Package          string
	OutputFile       string
	GenerateTestFile bool     // Generate a test file comparing against regexp
	TestFileInputs   []string // Inputs for the generated test file
	Verbose          bool     // Enable verbose logging of generation decisions
}

// Compiler generates a standalone matcher function for one regex pattern.
type Compiler struct {
	config Config
	logger *Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	return &Compiler{
		config: config,
		logger: NewLogger(config.Verbose),
	}
}

// Build compiles the pattern and asserts the dense table representation
// the emitter requires. Any other representation is a defect in the
// backend configuration, not a user error.
func Build(pattern string) (*automaton.Dense, error) {
	a, err := automaton.Build(pattern)
	if err != nil {
		return nil, err
	}
	dense, ok := a.(*automaton.Dense)
	if !ok {
		return nil, &InternalError{Reason: fmt.Sprintf("automaton backend returned unexpected representation %T", a)}
	}
	return dense, nil
}

// BuildGraph compiles the pattern and extracts its validated state graph.
func BuildGraph(pattern string) (*Graph, *automaton.Dense, error) {
	dense, err := Build(pattern)
	if err != nil {
		return nil, nil, err
	}
	graph := ExtractGraph(dense)
	if err := graph.Validate(); err != nil {
		return nil, nil, err
	}
	return graph, dense, nil
}

// Source runs the full pipeline and renders the generated file as source
// text without touching disk.
func (c *Compiler) Source() (string, error) {
	c.logger.Section("Pattern Analysis")
	c.logger.Log("Pattern: %s", c.config.Pattern)

	graph, dense, err := BuildGraph(c.config.Pattern)
	if err != nil {
		return "", err
	}

	c.logger.Log("Anchored: %v", dense.Anchored())
	c.logger.Log("DFA states (minimized): %d", dense.Len())
	c.logger.Log("Reachable graph states: %d", len(graph.States))

	file := jen.NewFile(c.config.Package)
	file.HeaderComment(fmt.Sprintf("Code generated by constregex for pattern: %s. DO NOT EDIT.", c.config.Pattern))

	matchName := codegen.MatchFuncName(c.config.Name)
	file.Comment(fmt.Sprintf("%s reports whether %s contains a match of the pattern %q.", matchName, codegen.InputName, c.config.Pattern))
	file.Func().Id(matchName).
		Params(jen.Id(codegen.InputName).Index().Byte()).
		Params(jen.Bool()).
		Block(MatcherBody(graph)...)

	stringName := codegen.MatchStringFuncName(c.config.Name)
	file.Comment(fmt.Sprintf("%s reports whether s contains a match of the pattern %q.", stringName, c.config.Pattern))
	file.Func().Id(stringName).
		Params(jen.Id("s").String()).
		Params(jen.Bool()).
		Block(jen.Return(jen.Id(matchName).Call(jen.Index().Byte().Parens(jen.Id("s")))))

	var sb strings.Builder
	if err := file.Render(&sb); err != nil {
		return "", fmt.Errorf("failed to render code: %w", err)
	}
	return sb.String(), nil
}

// Generate runs the full pipeline and writes the generated file, plus the
// optional generated test file.
func (c *Compiler) Generate() error {
	src, err := c.Source()
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.config.OutputFile, []byte(src), 0644); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	if c.config.GenerateTestFile {
		if err := c.generateTestFile(); err != nil {
			return fmt.Errorf("failed to generate test file: %w", err)
		}
	}

	return nil
}
