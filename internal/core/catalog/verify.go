package catalog

import "fmt"

// Environment command codes occupy 1 through maxEnvironmentCode. Codes
// 4, 5 and 20 were retired upstream and stay reserved. Modifier bits
// start at 0x10000, leaving the whole 16-bit range below them as
// headroom for new codes.
const maxEnvironmentCode = 73

var retiredEnvironmentCodes = map[uint32]bool{4: true, 5: true, 20: true}

// Violation describes one failed catalog invariant. The published
// catalog must produce none; any violation is a transcription fault
// against the upstream header, not a runtime condition.
type Violation struct {
	Namespace Namespace
	Name      string
	Detail    string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s/%s: %s", v.Namespace, v.Name, v.Detail)
}

// Verify cross-checks the catalog's structural invariants: unique names
// per namespace, value collisions only where a documented deprecated
// alias explains them, alias targets that exist and match, environment
// codes inside the reserved range with flag bits disjoint from it.
func Verify() []Violation {
	var out []Violation

	for _, ns := range Namespaces() {
		list := ByNamespace(ns)

		seen := make(map[string]bool, len(list))
		byValue := make(map[uint32][]Constant, len(list))
		for _, c := range list {
			if seen[c.Name] {
				out = append(out, Violation{ns, c.Name, "name defined more than once"})
			}
			seen[c.Name] = true
			if !c.Flag {
				byValue[c.Value] = append(byValue[c.Value], c)
			}
		}

		for v, cs := range byValue {
			if len(cs) < 2 {
				continue
			}
			deprecated := 0
			for _, c := range cs {
				if c.Deprecated {
					deprecated++
				}
			}
			if len(cs)-deprecated > 1 {
				for _, c := range cs {
					if !c.Deprecated {
						out = append(out, Violation{ns, c.Name,
							fmt.Sprintf("value %d shared with another current name", v)})
					}
				}
			}
		}
	}

	for _, c := range All() {
		if c.AliasOf == "" {
			continue
		}
		target, err := Find(c.AliasOf)
		switch {
		case err != nil:
			out = append(out, Violation{c.Namespace, c.Name,
				fmt.Sprintf("alias target %q does not exist", c.AliasOf)})
		case target.Namespace != c.Namespace:
			out = append(out, Violation{c.Namespace, c.Name,
				fmt.Sprintf("alias target %q is in namespace %q", c.AliasOf, target.Namespace)})
		case target.Value != c.Value:
			out = append(out, Violation{c.Namespace, c.Name,
				fmt.Sprintf("alias value %d differs from target's %d", c.Value, target.Value)})
		}
	}

	out = append(out, verifyEnvironment()...)
	return out
}

func verifyEnvironment() []Violation {
	var out []Violation

	flagBits := uint32(0x10000 | 0x20000)
	usedCodes := make(map[uint32][]Constant)

	for _, c := range ByNamespace(NamespaceEnvironment) {
		if c.Flag {
			if c.Value <= maxEnvironmentCode {
				out = append(out, Violation{c.Namespace, c.Name,
					"modifier bit inside the command-code range"})
			}
			continue
		}

		base := c.Value &^ flagBits
		if base < 1 || base > maxEnvironmentCode {
			out = append(out, Violation{c.Namespace, c.Name,
				fmt.Sprintf("base code %d outside 1..%d", base, maxEnvironmentCode)})
			continue
		}
		if retiredEnvironmentCodes[base] {
			out = append(out, Violation{c.Namespace, c.Name,
				fmt.Sprintf("base code %d is retired and must stay unused", base)})
		}
		usedCodes[base] = append(usedCodes[base], c)
	}

	// Each code is reserved exactly once; a second binding must be a
	// documented alias of the first.
	for code, cs := range usedCodes {
		current := 0
		for _, c := range cs {
			if !c.Deprecated {
				current++
			}
		}
		if current > 1 {
			out = append(out, Violation{NamespaceEnvironment, cs[0].Name,
				fmt.Sprintf("code %d reserved by more than one current command", code)})
		}
		for _, c := range cs {
			if c.Deprecated && c.AliasOf == "" {
				out = append(out, Violation{NamespaceEnvironment, c.Name,
					fmt.Sprintf("deprecated binding of code %d lacks an alias target", code)})
			}
		}
	}

	return out
}
