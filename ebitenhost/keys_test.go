package ebitenhost

import (
	"testing"

	"github.com/phanxgames/fractree"
)

func TestKeyBindingsResolve(t *testing.T) {
	keys := map[string]bool{}
	for _, b := range keyBindings {
		if _, ok := fractree.LookupCommand(b.command); !ok {
			t.Errorf("key bound to unknown command %q", b.command)
		}
		if keys[b.command] {
			t.Errorf("command %q bound twice", b.command)
		}
		keys[b.command] = true
	}
	for _, c := range fractree.Commands() {
		if !keys[c.Name] {
			t.Errorf("command %q has no key", c.Name)
		}
	}
}
