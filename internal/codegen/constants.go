// Package codegen provides identifier constants shared by the code
// generator and its tests.
package codegen

// Variable names used in generated matcher code
const (
	InputName = "input"
	ByteName  = "b"
	IndexName = "i"
	StateName = "state"
)

// MatchFuncName returns the name of the generated []byte matcher.
func MatchFuncName(name string) string {
	return name + "Match"
}

// MatchStringFuncName returns the name of the generated string wrapper.
func MatchStringFuncName(name string) string {
	return name + "MatchString"
}
