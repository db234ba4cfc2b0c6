package constregex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leo60228/const-regex/internal/compiler"
)

// Report summarizes the state graph a pattern compiles to, for tooling and
// debugging. It contains no generated code.
type Report struct {
	Pattern  string
	Anchored bool
	Start    uint32
	States   []StateInfo // sorted by ID
}

// StateInfo describes one state of the graph.
type StateInfo struct {
	ID   uint32
	Kind string // "match", "dead", or "transitions"
	Arms []ArmInfo
}

// ArmInfo describes one dispatch arm of a transitions state.
type ArmInfo struct {
	Target uint32
	Ranges string // e.g. "0x61, 0x63-0x7A"
}

// Inspect compiles pattern and reports its state graph without generating
// code.
func Inspect(pattern string) (*Report, error) {
	graph, dense, err := compiler.BuildGraph(pattern)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Pattern:  pattern,
		Anchored: dense.Anchored(),
		Start:    uint32(graph.Start),
	}

	for id, state := range graph.States {
		info := StateInfo{
			ID:   uint32(id),
			Kind: state.Kind.String(),
		}
		for target, set := range state.Transitions {
			var parts []string
			for _, r := range compiler.CoalesceRanges(set) {
				if r.Lo == r.Hi {
					parts = append(parts, fmt.Sprintf("0x%02X", r.Lo))
				} else {
					parts = append(parts, fmt.Sprintf("0x%02X-0x%02X", r.Lo, r.Hi))
				}
			}
			info.Arms = append(info.Arms, ArmInfo{
				Target: uint32(target),
				Ranges: strings.Join(parts, ", "),
			})
		}
		sort.Slice(info.Arms, func(i, j int) bool { return info.Arms[i].Target < info.Arms[j].Target })
		report.States = append(report.States, info)
	}
	sort.Slice(report.States, func(i, j int) bool { return report.States[i].ID < report.States[j].ID })

	return report, nil
}

// String renders the report in a compact human-readable form.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pattern: %s\n", r.Pattern)
	fmt.Fprintf(&sb, "anchored: %v\n", r.Anchored)
	fmt.Fprintf(&sb, "start: %d\n", r.Start)
	fmt.Fprintf(&sb, "states: %d\n", len(r.States))
	for _, state := range r.States {
		fmt.Fprintf(&sb, "  %d: %s\n", state.ID, state.Kind)
		for _, arm := range state.Arms {
			fmt.Fprintf(&sb, "    -> %d on %s\n", arm.Target, arm.Ranges)
		}
	}
	return sb.String()
}
