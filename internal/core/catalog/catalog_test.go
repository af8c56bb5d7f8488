package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	libretro "github.com/maxjanney/libretro-sys"
)

func TestFind_ResolvesHeaderNames(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantName    string
		wantValue   uint32
		expectError bool
	}{
		{
			name:      "ExactHeaderName",
			input:     "RETRO_DEVICE_JOYPAD",
			wantName:  "RETRO_DEVICE_JOYPAD",
			wantValue: 1,
		},
		{
			name:      "LowercaseAccepted",
			input:     "retro_device_id_joypad_b",
			wantName:  "RETRO_DEVICE_ID_JOYPAD_B",
			wantValue: 0,
		},
		{
			name:      "PrefixOptional",
			input:     "device_id_mouse_left",
			wantName:  "RETRO_DEVICE_ID_MOUSE_LEFT",
			wantValue: 2,
		},
		{
			name:      "ExperimentalCommandCarriesBit",
			input:     "ENVIRONMENT_GET_SENSOR_INTERFACE",
			wantName:  "RETRO_ENVIRONMENT_GET_SENSOR_INTERFACE",
			wantValue: 65561,
		},
		{
			name:      "SurroundingSpacesIgnored",
			input:     "  RETRO_REGION_PAL  ",
			wantName:  "RETRO_REGION_PAL",
			wantValue: 1,
		},
		{
			name:        "UnknownName",
			input:       "RETRO_DEVICE_TRACKBALL",
			expectError: true,
		},
		{
			name:        "Empty",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Find(tt.input)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, c.Name)
			assert.Equal(t, tt.wantValue, c.Value)
		})
	}
}

func TestLookup_EnforcesNamespace(t *testing.T) {
	c, err := Lookup(NamespaceDevice, "RETRO_DEVICE_MOUSE")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), c.Value)

	_, err = Lookup(NamespaceJoypad, "RETRO_DEVICE_MOUSE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestByNamespace_OrderedByValueThenName(t *testing.T) {
	for _, ns := range Namespaces() {
		list := ByNamespace(ns)
		require.NotEmpty(t, list, "namespace %s", ns)

		for i := 1; i < len(list); i++ {
			prev, cur := list[i-1], list[i]
			ordered := prev.Value < cur.Value ||
				(prev.Value == cur.Value && prev.Name < cur.Name)
			assert.True(t, ordered, "%s: %s before %s", ns, prev.Name, cur.Name)
		}
	}
}

func TestAll_CoversEveryNamespaceOnce(t *testing.T) {
	all := All()

	total := 0
	for _, ns := range Namespaces() {
		total += len(ByNamespace(ns))
	}
	assert.Equal(t, total, len(all))

	seen := make(map[string]bool, len(all))
	for _, c := range all {
		assert.False(t, seen[c.Name], "duplicate %s", c.Name)
		seen[c.Name] = true
	}
}

// TestCatalog_ValuesMatchRootConstants cross-checks a sample of entries
// against the root package, covering each namespace. The full
// per-constant golden check lives in the root package tests; this one
// guards the catalog's own transcription.
func TestCatalog_ValuesMatchRootConstants(t *testing.T) {
	checks := map[string]uint32{
		"RETRO_API_VERSION":                       libretro.APIVersion,
		"RETRO_DEVICE_POINTER":                    uint32(libretro.DevicePointer),
		"RETRO_DEVICE_ID_JOYPAD_R3":               uint32(libretro.JoypadR3),
		"RETRO_DEVICE_INDEX_ANALOG_BUTTON":        uint32(libretro.AnalogIndexButton),
		"RETRO_DEVICE_ID_ANALOG_Y":                uint32(libretro.AnalogY),
		"RETRO_DEVICE_ID_MOUSE_BUTTON_5":          uint32(libretro.MouseButton5),
		"RETRO_DEVICE_ID_LIGHTGUN_RELOAD":         uint32(libretro.LightgunReload),
		"RETRO_DEVICE_ID_POINTER_COUNT":           uint32(libretro.PointerCount),
		"RETRO_MEMORY_VIDEO_RAM":                  uint32(libretro.MemoryVideoRAM),
		"RETRO_REGION_PAL":                        uint32(libretro.RegionPAL),
		"RETRO_ENVIRONMENT_GET_SAVESTATE_CONTEXT": uint32(libretro.EnvironmentGetSavestateContext),
	}

	for name, want := range checks {
		c, err := Find(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, c.Value, name)
	}
}

func TestFindValue_ReportsDocumentedAliases(t *testing.T) {
	cs := FindValue(NamespaceLightgun, 3)
	require.Len(t, cs, 2, "value 3 binds AUX_A and the deprecated CURSOR")

	var current, deprecated *Constant
	for i := range cs {
		if cs[i].Deprecated {
			deprecated = &cs[i]
		} else {
			current = &cs[i]
		}
	}
	require.NotNil(t, current)
	require.NotNil(t, deprecated)
	assert.Equal(t, "RETRO_DEVICE_ID_LIGHTGUN_AUX_A", current.Name)
	assert.Equal(t, "RETRO_DEVICE_ID_LIGHTGUN_CURSOR", deprecated.Name)
	assert.Equal(t, current.Name, deprecated.AliasOf)
}

func TestParseNamespace(t *testing.T) {
	ns, err := ParseNamespace(" Environment ")
	require.NoError(t, err)
	assert.Equal(t, NamespaceEnvironment, ns)

	_, err = ParseNamespace("gamepad")
	assert.Error(t, err)
}

// TestEnvironmentEntries_FlagMetadataMatchesValue checks that the
// experimental marker recorded in the catalog agrees with the bit
// actually carried by the value.
func TestEnvironmentEntries_FlagMetadataMatchesValue(t *testing.T) {
	for _, c := range ByNamespace(NamespaceEnvironment) {
		if c.Flag {
			continue
		}
		cmd := libretro.EnvironmentCommand(c.Value)
		assert.Equal(t, cmd.Experimental(), c.Experimental, c.Name)
	}
}
