package compiler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/leo60228/const-regex/internal/codegen"
)

// generateTestFile emits a _test.go next to the output file that checks the
// generated matcher against the standard regexp package on the configured
// inputs, plus a benchmark over the first input.
func (c *Compiler) generateTestFile() error {
	inputs := c.config.TestFileInputs
	if len(inputs) == 0 {
		inputs = []string{"example"}
	}

	file := jen.NewFile(c.config.Package)
	file.HeaderComment(fmt.Sprintf("Code generated by constregex for pattern: %s. DO NOT EDIT.", c.config.Pattern))

	matchName := codegen.MatchFuncName(c.config.Name)

	var lits []jen.Code
	for _, input := range inputs {
		lits = append(lits, jen.Lit(input))
	}

	file.Func().Id("Test" + matchName).
		Params(jen.Id("t").Op("*").Qual("testing", "T")).
		Block(
			jen.Id("re").Op(":=").Qual("regexp", "MustCompile").Call(jen.Lit(c.config.Pattern)),
			jen.Id("inputs").Op(":=").Index().String().Values(lits...),
			jen.For(jen.List(jen.Id("_"), jen.Id("input")).Op(":=").Range().Id("inputs")).Block(
				jen.Id("got").Op(":=").Id(matchName).Call(jen.Index().Byte().Parens(jen.Id("input"))),
				jen.Id("want").Op(":=").Id("re").Dot("MatchString").Call(jen.Id("input")),
				jen.If(jen.Id("got").Op("!=").Id("want")).Block(
					jen.Id("t").Dot("Errorf").Call(
						jen.Lit(matchName+"(%q) = %v, want %v"),
						jen.Id("input"), jen.Id("got"), jen.Id("want"),
					),
				),
			),
		)

	file.Func().Id("Benchmark" + matchName).
		Params(jen.Id("b").Op("*").Qual("testing", "B")).
		Block(
			jen.Id("input").Op(":=").Index().Byte().Parens(jen.Lit(inputs[0])),
			jen.For(jen.Id("n").Op(":=").Lit(0), jen.Id("n").Op("<").Id("b").Dot("N"), jen.Id("n").Op("++")).Block(
				jen.Id(matchName).Call(jen.Id("input")),
			),
		)

	if err := file.Save(testFilePath(c.config.OutputFile)); err != nil {
		return fmt.Errorf("failed to save test file: %w", err)
	}
	return nil
}

// testFilePath turns "dir/foo.go" into "dir/foo_test.go".
func testFilePath(outputFile string) string {
	ext := filepath.Ext(outputFile)
	return strings.TrimSuffix(outputFile, ext) + "_test" + ext
}
