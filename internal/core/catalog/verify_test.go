package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	libretro "github.com/maxjanney/libretro-sys"
)

// TestVerify_PublishedCatalogIsClean is the transcription check: the
// published catalog must produce zero invariant violations.
func TestVerify_PublishedCatalogIsClean(t *testing.T) {
	violations := Verify()
	for _, v := range violations {
		t.Errorf("unexpected violation: %s", v)
	}
	assert.Empty(t, violations)
}

// TestVerify_NoUndocumentedValueCollisions walks every namespace and
// requires that any two names sharing a value involve a documented
// deprecated alias. This is the exhaustive enumeration the lightgun
// legacy IDs and environment code 30 must pass through.
func TestVerify_NoUndocumentedValueCollisions(t *testing.T) {
	for _, ns := range Namespaces() {
		byValue := make(map[uint32][]Constant)
		for _, c := range ByNamespace(ns) {
			if c.Flag {
				continue
			}
			byValue[c.Value] = append(byValue[c.Value], c)
		}

		for v, cs := range byValue {
			if len(cs) < 2 {
				continue
			}
			current := 0
			for _, c := range cs {
				if !c.Deprecated {
					current++
				}
			}
			assert.LessOrEqual(t, current, 1,
				"%s: value %d shared by more than one current name", ns, v)
		}
	}
}

// TestVerify_EnvironmentCodeSpace checks the command-code namespace
// against its reservation rules directly, independent of Verify's own
// bookkeeping.
func TestVerify_EnvironmentCodeSpace(t *testing.T) {
	flagBits := uint32(libretro.EnvironmentExperimental | libretro.EnvironmentPrivate)
	seen := make(map[uint32]string)

	for _, c := range ByNamespace(NamespaceEnvironment) {
		if c.Flag {
			assert.Greater(t, c.Value, uint32(maxEnvironmentCode),
				"%s: modifier bit must sit above the command-code range", c.Name)
			continue
		}

		base := c.Value &^ flagBits
		require.GreaterOrEqual(t, base, uint32(1), c.Name)
		require.LessOrEqual(t, base, uint32(maxEnvironmentCode), c.Name)
		assert.False(t, retiredEnvironmentCodes[base],
			"%s: retired code %d must stay unused", c.Name, base)

		if prev, ok := seen[base]; ok && !c.Deprecated {
			assert.NotEmpty(t, c.AliasOf,
				"%s: reuses code %d already held by %s without alias metadata", c.Name, base, prev)
		}
		if !c.Deprecated {
			seen[base] = c.Name
		}
	}
}

// TestVerify_FlagBitsLeaveHeadroom pins the conservative flag-bit
// boundary: the whole 16-bit code range below the experimental bit is
// headroom for future commands.
func TestVerify_FlagBitsLeaveHeadroom(t *testing.T) {
	assert.Equal(t, uint32(0x10000), uint32(libretro.EnvironmentExperimental))
	assert.Equal(t, uint32(0x20000), uint32(libretro.EnvironmentPrivate))
	assert.Zero(t, uint32(libretro.EnvironmentExperimental)&uint32(libretro.EnvironmentPrivate),
		"modifier bits must occupy distinct bit positions")
	assert.Less(t, uint32(maxEnvironmentCode), uint32(libretro.EnvironmentExperimental)>>1,
		"flag boundary must leave growth headroom above the current maximum")
}

func TestViolation_String(t *testing.T) {
	v := Violation{Namespace: NamespaceJoypad, Name: "RETRO_DEVICE_ID_JOYPAD_B", Detail: "bad"}
	assert.Equal(t, "joypad/RETRO_DEVICE_ID_JOYPAD_B: bad", v.String())
}
