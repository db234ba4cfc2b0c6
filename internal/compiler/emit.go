package compiler

import (
	"sort"

	"github.com/dave/jennifer/jen"

	"github.com/leo60228/const-regex/internal/automaton"
	"github.com/leo60228/const-regex/internal/codegen"
)

// rangeCond renders one coalesced byte range as a switch condition.
// Single-byte ranges become an equality test to keep the output minimal.
func rangeCond(r ByteRange) *jen.Statement {
	switch {
	case r.Lo == r.Hi:
		return jen.Id(codegen.ByteName).Op("==").Lit(int(r.Lo))
	case r.Lo == 0x00:
		return jen.Id(codegen.ByteName).Op("<=").Lit(int(r.Hi))
	case r.Hi == 0xFF:
		return jen.Id(codegen.ByteName).Op(">=").Lit(int(r.Lo))
	default:
		return jen.Id(codegen.ByteName).Op(">=").Lit(int(r.Lo)).
			Op("&&").Id(codegen.ByteName).Op("<=").Lit(int(r.Hi))
	}
}

func (g *Graph) sortedStateIDs() []automaton.StateID {
	ids := make([]automaton.StateID, 0, len(g.States))
	for id := range g.States {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedTargets(transitions map[automaton.StateID]*ByteSet) []automaton.StateID {
	ids := make([]automaton.StateID, 0, len(transitions))
	for id := range transitions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// stateBody renders the dispatch for one state. Terminal states return
// immediately. Transition states dispatch on the current byte, with
// terminal targets inlined one hop ahead so the loop never spends an extra
// iteration discovering them. Every byte value is covered by some arm, so
// the default arm only fires on a construction defect.
func (g *Graph) stateBody(state *State) []jen.Code {
	switch state.Kind {
	case KindMatch:
		return []jen.Code{jen.Return(jen.True())}
	case KindDead:
		return []jen.Code{jen.Return(jen.False())}
	}

	var cases []jen.Code
	for _, target := range sortedTargets(state.Transitions) {
		var conds []jen.Code
		for _, r := range CoalesceRanges(state.Transitions[target]) {
			conds = append(conds, rangeCond(r))
		}

		var body jen.Code
		switch g.States[target].Kind {
		case KindMatch:
			body = jen.Return(jen.True())
		case KindDead:
			body = jen.Return(jen.False())
		default:
			body = jen.Id(codegen.StateName).Op("=").Lit(int(target))
		}
		cases = append(cases, jen.Case(conds...).Block(body))
	}
	cases = append(cases, jen.Default().Block(jen.Panic(jen.Lit("corrupt state machine"))))

	return []jen.Code{jen.Switch().Block(cases...)}
}

// MatcherBody renders the state graph as the body of a self-contained
// matcher function over a []byte named by codegen.InputName. The loop falls
// through to false when input runs out without reaching a match state.
func MatcherBody(g *Graph) []jen.Code {
	consumesInput := false
	for _, state := range g.States {
		if state.Kind == KindTransitions {
			consumesInput = true
			break
		}
	}

	var stateCases []jen.Code
	for _, id := range g.sortedStateIDs() {
		stateCases = append(stateCases, jen.Case(jen.Lit(int(id))).Block(g.stateBody(g.States[id])...))
	}
	stateCases = append(stateCases, jen.Default().Block(jen.Panic(jen.Lit("corrupt state machine"))))

	var loop []jen.Code
	if consumesInput {
		loop = append(loop, jen.Id(codegen.ByteName).Op(":=").Id(codegen.InputName).Index(jen.Id(codegen.IndexName)))
	}
	loop = append(loop,
		jen.Switch(jen.Id(codegen.StateName)).Block(stateCases...),
		jen.Id(codegen.IndexName).Op("++"),
	)

	return []jen.Code{
		jen.Id(codegen.IndexName).Op(":=").Lit(0),
		jen.Id(codegen.StateName).Op(":=").Lit(int(g.Start)),
		jen.For(jen.Id(codegen.IndexName).Op("<").Len(jen.Id(codegen.InputName))).Block(loop...),
		jen.Return(jen.False()),
	}
}
