package cmd

import (
	"strings"

	"github.com/calebcase/notation"
	"github.com/calebcase/notation/custom"
	"github.com/calebcase/notation/engineering"
	"github.com/calebcase/notation/greek"
	"github.com/calebcase/notation/prime"
)

// Notations returns every notation the command knows about.
func Notations() []notation.Notation {
	return []notation.Notation{
		prime.Notation{},
		engineering.Notation{},
		greek.Notation{},
		custom.Binary(),
		custom.Cancer(),
	}
}

func key(name string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(name))
}

// Lookup finds a notation by name. Case, spaces, dashes and underscores are
// ignored.
func Lookup(name string) (notation.Notation, error) {
	for _, n := range Notations() {
		if key(n.Name()) == key(name) {
			return n, nil
		}
	}

	return nil, Error.New("unknown notation: %q", name)
}
