package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the command tree against a hermetic environment
// and captures its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RETROABI_OUTPUT", "")
	t.Setenv("RETROABI_VERBOSE", "")

	cmd := NewRootCommand("test", "none", "unknown")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		contains    []string
		expectError bool
	}{
		{
			name:     "DeviceByHeaderName",
			args:     []string{"lookup", "RETRO_DEVICE_JOYPAD"},
			contains: []string{"RETRO_DEVICE_JOYPAD = 1 (0x1)", "namespace: device"},
		},
		{
			name:     "PrefixAndCaseInsensitive",
			args:     []string{"lookup", "device_id_joypad_r3"},
			contains: []string{"RETRO_DEVICE_ID_JOYPAD_R3 = 15"},
		},
		{
			name: "ExperimentalEnvironmentCommand",
			args: []string{"lookup", "ENVIRONMENT_GET_SENSOR_INTERFACE"},
			contains: []string{
				"RETRO_ENVIRONMENT_GET_SENSOR_INTERFACE = 65561 (0x10019)",
				"experimental",
			},
		},
		{
			name:     "DeprecatedAliasCarriesNotes",
			args:     []string{"lookup", "RETRO_DEVICE_ID_LIGHTGUN_CURSOR"},
			contains: []string{"= 3", "deprecated", "alias of RETRO_DEVICE_ID_LIGHTGUN_AUX_A"},
		},
		{
			name:        "UnknownName",
			args:        []string{"lookup", "RETRO_DEVICE_TRACKBALL"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestLookupCommand_JSONOutput(t *testing.T) {
	out, err := runCommand(t, "-o", "json", "lookup", "RETRO_MEMORY_RTC")
	require.NoError(t, err)

	var entry struct {
		Name      string `json:"name"`
		Namespace string `json:"namespace"`
		Value     uint32 `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entry))
	assert.Equal(t, "RETRO_MEMORY_RTC", entry.Name)
	assert.Equal(t, "memory", entry.Namespace)
	assert.Equal(t, uint32(1), entry.Value)
}

func TestListCommand(t *testing.T) {
	out, err := runCommand(t, "--no-color", "list", "joypad")
	require.NoError(t, err)

	assert.Contains(t, out, "joypad")
	assert.Contains(t, out, "RETRO_DEVICE_ID_JOYPAD_B")
	assert.Contains(t, out, "RETRO_DEVICE_ID_JOYPAD_MASK")
	assert.NotContains(t, out, "RETRO_DEVICE_ID_MOUSE_X")
}

func TestListCommand_UnknownNamespace(t *testing.T) {
	_, err := runCommand(t, "list", "gamepad")
	assert.Error(t, err)
}

func TestListCommand_DeprecatedFilter(t *testing.T) {
	out, err := runCommand(t, "--no-color", "list", "lightgun", "--deprecated")
	require.NoError(t, err)

	assert.Contains(t, out, "RETRO_DEVICE_ID_LIGHTGUN_CURSOR")
	assert.NotContains(t, out, "RETRO_DEVICE_ID_LIGHTGUN_TRIGGER")
}

func TestDecodeDeviceCommand(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		contains []string
	}{
		{
			name:     "PlainJoypad",
			value:    "1",
			contains: []string{"device: joypad (1)", "index:  0"},
		},
		{
			name:     "AnalogWithIndex",
			value:    "0x105",
			contains: []string{"device: analog (5)", "index:  1", "subclass id: 0"},
		},
		{
			name:     "JoypadSubclassMacroResult",
			value:    "257",
			contains: []string{"device: joypad (1)", "subclass id: 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, "decode", "device", tt.value)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestDecodeEnvCommand(t *testing.T) {
	out, err := runCommand(t, "decode", "env", "65561")
	require.NoError(t, err)

	assert.Contains(t, out, "base:         25")
	assert.Contains(t, out, "experimental: true")
	assert.Contains(t, out, "private:      false")
	assert.Contains(t, out, "RETRO_ENVIRONMENT_GET_SENSOR_INTERFACE")
}

func TestDecodeEnvCommand_AliasedCode(t *testing.T) {
	out, err := runCommand(t, "decode", "env", "30")
	require.NoError(t, err)

	assert.Contains(t, out, "RETRO_ENVIRONMENT_GET_CORE_ASSETS_DIRECTORY")
	assert.Contains(t, out, "RETRO_ENVIRONMENT_GET_CONTENT_DIRECTORY")
}

func TestDecodeEnvCommand_UnknownCode(t *testing.T) {
	out, err := runCommand(t, "decode", "env", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "command:      unknown")
}

func TestDecodeCommand_RejectsGarbage(t *testing.T) {
	_, err := runCommand(t, "decode", "device", "joypad")
	assert.Error(t, err)
}

func TestVerifyCommand(t *testing.T) {
	out, err := runCommand(t, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog ok")
}

func TestExportCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "export")
	require.NoError(t, err)

	var doc struct {
		APIVersion uint32 `json:"api_version"`
		Namespaces []struct {
			Name      string            `json:"name"`
			Constants []json.RawMessage `json:"constants"`
		} `json:"namespaces"`
		Violations []string `json:"violations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, uint32(1), doc.APIVersion)
	assert.Len(t, doc.Namespaces, 11)
	assert.Empty(t, doc.Violations)
	for _, ns := range doc.Namespaces {
		assert.NotEmpty(t, ns.Constants, "namespace %s", ns.Name)
	}
}

func TestExportCommand_YAML(t *testing.T) {
	out, err := runCommand(t, "-o", "yaml", "export")
	require.NoError(t, err)

	assert.Contains(t, out, "api_version: 1")
	assert.Contains(t, out, "name: RETRO_DEVICE_JOYPAD")
}
