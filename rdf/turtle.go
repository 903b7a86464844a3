package rdf

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// safeLocalRegex accepts local names that are valid in a Turtle prefixed
// name without escaping. Anything else (slashes in particular) falls
// back to the full <IRI> form.
var safeLocalRegex = regexp.MustCompile(`^[A-Za-z0-9_]([A-Za-z0-9_.-]*[A-Za-z0-9_-])?$`)

// WriteTurtle serializes the graph as Turtle: one @prefix line per
// binding, then triples grouped by subject in first-seen order.
func (g *Graph) WriteTurtle(w io.Writer) error {
	var sb strings.Builder

	for _, p := range g.prefixes {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", p.Name, p.Namespace)
	}
	if len(g.prefixes) > 0 {
		sb.WriteString("\n")
	}

	var order []IRI
	grouped := make(map[IRI][]Triple)
	for _, t := range g.triples {
		if _, ok := grouped[t.Subject]; !ok {
			order = append(order, t.Subject)
		}
		grouped[t.Subject] = append(grouped[t.Subject], t)
	}

	for _, subj := range order {
		group := grouped[subj]
		sb.WriteString(g.compact(subj))
		sb.WriteString("\n")
		for i, t := range group {
			sep := " ;"
			if i == len(group)-1 {
				sep = " ."
			}
			fmt.Fprintf(&sb, "    %s %s%s\n", g.predicate(t.Predicate), g.object(t.Object), sep)
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (g *Graph) predicate(p IRI) string {
	if p == Type {
		return "a"
	}
	return g.compact(p)
}

func (g *Graph) object(o Term) string {
	switch t := o.(type) {
	case IRI:
		return g.compact(t)
	case Literal:
		quoted := `"` + escapeLiteral(t.Value) + `"`
		if t.Datatype != "" {
			return quoted + "^^" + g.compact(t.Datatype)
		}
		return quoted
	default:
		return `"` + escapeLiteral(fmt.Sprint(o)) + `"`
	}
}

// compact renders an IRI as a prefixed name when a binding covers it and
// the local part is safe, else as <IRI>.
func (g *Graph) compact(iri IRI) string {
	s := string(iri)
	best := -1
	for i, p := range g.prefixes {
		if strings.HasPrefix(s, p.Namespace) &&
			(best < 0 || len(p.Namespace) > len(g.prefixes[best].Namespace)) {
			best = i
		}
	}
	if best >= 0 {
		local := s[len(g.prefixes[best].Namespace):]
		if safeLocalRegex.MatchString(local) {
			return g.prefixes[best].Name + ":" + local
		}
	}
	return "<" + s + ">"
}

// escapeLiteral applies the Turtle string escapes.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
