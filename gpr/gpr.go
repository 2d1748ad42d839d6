/*
 * gpr.go, part of rosusc.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package gpr parses the gene-protein-reaction rules of a metabolic model and splits
//the genes they mention into monomers (proteins that catalyse a reaction on their own)
//and complexes (sets of genes whose products must associate).
package gpr

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

//Expr is a node of a parsed rule.
type Expr interface {
	//DNF returns the rule in disjunctive normal form, as a list of clauses,
	//each a list of genes. It fails if more than limit clauses would be produced.
	DNF(limit int) ([][]string, error)
	String() string
}

//Gene is a leaf of the rule.
type Gene string

//And requires all of its terms.
type And []Expr

//Or requires any of its terms.
type Or []Expr

func (g Gene) DNF(limit int) ([][]string, error) { return [][]string{{string(g)}}, nil }
func (g Gene) String() string                    { return string(g) }

func (a And) DNF(limit int) ([][]string, error) {
	ret := [][]string{{}}
	for _, t := range a {
		sub, err := t.DNF(limit)
		if err != nil {
			return nil, err
		}
		if len(ret)*len(sub) > limit {
			return nil, fmt.Errorf("rule %s expands to more than %d clauses", a, limit)
		}
		next := make([][]string, 0, len(ret)*len(sub))
		for _, r := range ret {
			for _, s := range sub {
				c := make([]string, 0, len(r)+len(s))
				c = append(append(c, r...), s...)
				next = append(next, c)
			}
		}
		ret = next
	}
	return ret, nil
}

func (a And) String() string { return join(a, " and ") }

func (o Or) DNF(limit int) ([][]string, error) {
	var ret [][]string
	for _, t := range o {
		sub, err := t.DNF(limit)
		if err != nil {
			return nil, err
		}
		ret = append(ret, sub...)
		if len(ret) > limit {
			return nil, fmt.Errorf("rule %s expands to more than %d clauses", o, limit)
		}
	}
	return ret, nil
}

func (o Or) String() string { return join(o, " or ") }

func join(terms []Expr, sep string) string {
	s := make([]string, len(terms))
	for i, t := range terms {
		s[i] = t.String()
	}
	return "(" + strings.Join(s, sep) + ")"
}

type token struct {
	kind int //one of the tok constants
	text string
}

const (
	tokGene = iota
	tokAnd
	tokOr
	tokOpen
	tokClose
)

func tokenize(rule string) []token {
	var toks []token
	i := 0
	for i < len(rule) {
		c := rule[i]
		switch {
		case unicode.IsSpace(rune(c)):
			i++
		case c == '(':
			toks = append(toks, token{tokOpen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokClose, ")"})
			i++
		default:
			j := i
			for j < len(rule) && rule[j] != '(' && rule[j] != ')' && !unicode.IsSpace(rune(rule[j])) {
				j++
			}
			w := rule[i:j]
			switch strings.ToLower(w) {
			case "and", "&", "&&":
				toks = append(toks, token{tokAnd, w})
			case "or", "|", "||":
				toks = append(toks, token{tokOr, w})
			default:
				toks = append(toks, token{tokGene, w})
			}
			i = j
		}
	}
	return toks
}

type parser struct {
	toks []token
	pos  int
	rule string
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

//or := and ("or" and)*
func (p *parser) or() (Expr, error) {
	first, err := p.and()
	if err != nil {
		return nil, err
	}
	terms := Or{first}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOr {
			break
		}
		p.pos++
		next, err := p.and()
		if err != nil {
			return nil, err
		}
		terms = append(terms, next)
	}
	if len(terms) == 1 {
		return first, nil
	}
	return terms, nil
}

//and := atom ("and" atom)*
func (p *parser) and() (Expr, error) {
	first, err := p.atom()
	if err != nil {
		return nil, err
	}
	terms := And{first}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokAnd {
			break
		}
		p.pos++
		next, err := p.atom()
		if err != nil {
			return nil, err
		}
		terms = append(terms, next)
	}
	if len(terms) == 1 {
		return first, nil
	}
	return terms, nil
}

//atom := gene | "(" or ")"
func (p *parser) atom() (Expr, error) {
	t, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of rule %q", p.rule)
	}
	p.pos++
	switch t.kind {
	case tokGene:
		return Gene(t.text), nil
	case tokOpen:
		e, err := p.or()
		if err != nil {
			return nil, err
		}
		c, ok := p.peek()
		if !ok || c.kind != tokClose {
			return nil, fmt.Errorf("unbalanced parentheses in rule %q", p.rule)
		}
		p.pos++
		return e, nil
	}
	return nil, fmt.Errorf("unexpected %q at token %d of rule %q", t.text, p.pos, p.rule)
}

//Parse parses a rule like "(PP_0001 and PP_0002) or PP_0003". Operators are
//case-insensitive.
func Parse(rule string) (Expr, error) {
	toks := tokenize(rule)
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty rule")
	}
	p := &parser{toks: toks, rule: rule}
	e, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.pos != len(toks) {
		return nil, fmt.Errorf("unexpected %q at token %d of rule %q", toks[p.pos].text, p.pos, rule)
	}
	return e, nil
}

//Proteome is the result of splitting a set of rules.
type Proteome struct {
	Monomers  []string   //genes that appear alone in a clause, in first-seen order
	Complexes [][]string //gene sets of multi-gene clauses, each sorted, the list sorted too
}

//Matcher selects gene identifiers. *regexp.Regexp satisfies it.
type Matcher interface {
	MatchString(s string) bool
}

//Split parses every rule, converts it to DNF and classifies the clauses. Genes not
//accepted by ids are removed from the clauses before classification, and clauses
//left empty are dropped. limit bounds the DNF expansion of each rule.
func Split(rules []string, ids Matcher, limit int) (*Proteome, error) {
	P := new(Proteome)
	seenMono := make(map[string]bool)
	seenCplx := make(map[string]bool)
	for _, rule := range rules {
		if strings.TrimSpace(rule) == "" {
			continue
		}
		e, err := Parse(rule)
		if err != nil {
			return nil, err
		}
		clauses, err := e.DNF(limit)
		if err != nil {
			return nil, err
		}
		for _, c := range clauses {
			genes := filter(c, ids)
			switch len(genes) {
			case 0:
				continue
			case 1:
				if !seenMono[genes[0]] {
					seenMono[genes[0]] = true
					P.Monomers = append(P.Monomers, genes[0])
				}
			default:
				key := strings.Join(genes, "-")
				if !seenCplx[key] {
					seenCplx[key] = true
					P.Complexes = append(P.Complexes, genes)
				}
			}
		}
	}
	sort.Slice(P.Complexes, func(i, j int) bool {
		return strings.Join(P.Complexes[i], "-") < strings.Join(P.Complexes[j], "-")
	})
	return P, nil
}

//filter returns the sorted, unique genes of c matched by ids.
func filter(c []string, ids Matcher) []string {
	set := make(map[string]bool, len(c))
	ret := make([]string, 0, len(c))
	for _, g := range c {
		if ids != nil && !ids.MatchString(g) {
			continue
		}
		if !set[g] {
			set[g] = true
			ret = append(ret, g)
		}
	}
	sort.Strings(ret)
	return ret
}
