// Package catalog indexes every published libretro constant by name and
// namespace. It is the machine-checkable face of the root package: each
// entry's value is taken from the corresponding Go constant, and the
// expected header names and aliases live here, so a transcription fault
// in either place surfaces in lookups, Verify or the golden tests.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	libretro "github.com/maxjanney/libretro-sys"
)

// Namespace is a logical grouping of constants. Numeric values are only
// unique within a namespace; several namespaces intentionally reuse
// values of others.
type Namespace string

const (
	NamespaceAPI         Namespace = "api"
	NamespaceDevice      Namespace = "device"
	NamespaceJoypad      Namespace = "joypad"
	NamespaceAnalogIndex Namespace = "analog-index"
	NamespaceAnalogAxis  Namespace = "analog-axis"
	NamespaceMouse       Namespace = "mouse"
	NamespaceLightgun    Namespace = "lightgun"
	NamespacePointer     Namespace = "pointer"
	NamespaceMemory      Namespace = "memory"
	NamespaceRegion      Namespace = "region"
	NamespaceEnvironment Namespace = "environment"
)

// Constant is one published name of the ABI surface.
type Constant struct {
	// Name is the canonical C header name, e.g. "RETRO_DEVICE_JOYPAD".
	Name      string    `json:"name" yaml:"name"`
	Namespace Namespace `json:"namespace" yaml:"namespace"`
	Value     uint32    `json:"value" yaml:"value"`

	// Deprecated marks names kept only for backward compatibility.
	// Their values may collide with current names in the same
	// namespace; that is upstream-specified, not a defect.
	Deprecated bool `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`

	// AliasOf names the current constant this entry duplicates, when
	// the duplication is an intentional rename rather than an
	// independent ID.
	AliasOf string `json:"alias_of,omitempty" yaml:"alias_of,omitempty"`

	// Experimental and Private report modifier bits carried by
	// environment commands.
	Experimental bool `json:"experimental,omitempty" yaml:"experimental,omitempty"`

	// Flag marks a modifier bit definition rather than a command or ID.
	// Flag values live above the command-code range and are exempt from
	// the per-namespace collision rules.
	Flag bool `json:"flag,omitempty" yaml:"flag,omitempty"`

	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// ErrNotFound is returned when no constant matches a lookup.
var ErrNotFound = fmt.Errorf("constant not found")

var constants = []Constant{
	{Name: "RETRO_API_VERSION", Namespace: NamespaceAPI, Value: libretro.APIVersion,
		Doc: "ABI revision; bumped only for incompatible changes"},

	{Name: "RETRO_DEVICE_NONE", Namespace: NamespaceDevice, Value: uint32(libretro.DeviceNone),
		Doc: "input disabled"},
	{Name: "RETRO_DEVICE_JOYPAD", Namespace: NamespaceDevice, Value: uint32(libretro.DeviceJoypad),
		Doc: "RetroPad, a SNES-style pad with DualShock extras"},
	{Name: "RETRO_DEVICE_MOUSE", Namespace: NamespaceDevice, Value: uint32(libretro.DeviceMouse),
		Doc: "relative-coordinate mouse"},
	{Name: "RETRO_DEVICE_KEYBOARD", Namespace: NamespaceDevice, Value: uint32(libretro.DeviceKeyboard),
		Doc: "poll-based raw keyboard"},
	{Name: "RETRO_DEVICE_LIGHTGUN", Namespace: NamespaceDevice, Value: uint32(libretro.DeviceLightgun),
		Doc: "Guncon-2 style lightgun, screen-space coordinates"},
	{Name: "RETRO_DEVICE_ANALOG", Namespace: NamespaceDevice, Value: uint32(libretro.DeviceAnalog),
		Doc: "RetroPad with analog sticks and analog buttons"},
	{Name: "RETRO_DEVICE_POINTER", Namespace: NamespaceDevice, Value: uint32(libretro.DevicePointer),
		Doc: "absolute-coordinate pointer, e.g. touch"},
	{Name: "RETRO_DEVICE_TYPE_SHIFT", Namespace: NamespaceDevice, Flag: true, Value: libretro.DeviceTypeShift,
		Doc: "bit position of the subclass index above the base type"},
	{Name: "RETRO_DEVICE_MASK", Namespace: NamespaceDevice, Flag: true, Value: libretro.DeviceMask,
		Doc: "mask extracting the base type from a packed device value"},

	{Name: "RETRO_DEVICE_ID_JOYPAD_B", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadB), Doc: "bottom face button"},
	{Name: "RETRO_DEVICE_ID_JOYPAD_Y", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadY), Doc: "left face button"},
	{Name: "RETRO_DEVICE_ID_JOYPAD_SELECT", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadSelect)},
	{Name: "RETRO_DEVICE_ID_JOYPAD_START", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadStart)},
	{Name: "RETRO_DEVICE_ID_JOYPAD_UP", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadUp), Doc: "d-pad up"},
	{Name: "RETRO_DEVICE_ID_JOYPAD_DOWN", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadDown), Doc: "d-pad down"},
	{Name: "RETRO_DEVICE_ID_JOYPAD_LEFT", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadLeft), Doc: "d-pad left"},
	{Name: "RETRO_DEVICE_ID_JOYPAD_RIGHT", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadRight), Doc: "d-pad right"},
	{Name: "RETRO_DEVICE_ID_JOYPAD_A", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadA), Doc: "right face button"},
	{Name: "RETRO_DEVICE_ID_JOYPAD_X", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadX), Doc: "top face button"},
	{Name: "RETRO_DEVICE_ID_JOYPAD_L", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadL)},
	{Name: "RETRO_DEVICE_ID_JOYPAD_R", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadR)},
	{Name: "RETRO_DEVICE_ID_JOYPAD_L2", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadL2)},
	{Name: "RETRO_DEVICE_ID_JOYPAD_R2", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadR2)},
	{Name: "RETRO_DEVICE_ID_JOYPAD_L3", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadL3)},
	{Name: "RETRO_DEVICE_ID_JOYPAD_R3", Namespace: NamespaceJoypad, Value: uint32(libretro.JoypadR3)},
	{Name: "RETRO_DEVICE_ID_JOYPAD_MASK", Namespace: NamespaceJoypad, Flag: true, Value: uint32(libretro.JoypadMask),
		Doc: "poll all buttons as a bitmask in one input-state call"},

	{Name: "RETRO_DEVICE_INDEX_ANALOG_LEFT", Namespace: NamespaceAnalogIndex, Value: uint32(libretro.AnalogIndexLeft), Doc: "left stick"},
	{Name: "RETRO_DEVICE_INDEX_ANALOG_RIGHT", Namespace: NamespaceAnalogIndex, Value: uint32(libretro.AnalogIndexRight), Doc: "right stick"},
	{Name: "RETRO_DEVICE_INDEX_ANALOG_BUTTON", Namespace: NamespaceAnalogIndex, Value: uint32(libretro.AnalogIndexButton),
		Doc: "analog button pressure, addressed with joypad button IDs"},
	{Name: "RETRO_DEVICE_ID_ANALOG_X", Namespace: NamespaceAnalogAxis, Value: uint32(libretro.AnalogX), Doc: "positive is right"},
	{Name: "RETRO_DEVICE_ID_ANALOG_Y", Namespace: NamespaceAnalogAxis, Value: uint32(libretro.AnalogY), Doc: "positive is down"},

	{Name: "RETRO_DEVICE_ID_MOUSE_X", Namespace: NamespaceMouse, Value: uint32(libretro.MouseX), Doc: "relative to last poll"},
	{Name: "RETRO_DEVICE_ID_MOUSE_Y", Namespace: NamespaceMouse, Value: uint32(libretro.MouseY), Doc: "relative to last poll"},
	{Name: "RETRO_DEVICE_ID_MOUSE_LEFT", Namespace: NamespaceMouse, Value: uint32(libretro.MouseLeft)},
	{Name: "RETRO_DEVICE_ID_MOUSE_RIGHT", Namespace: NamespaceMouse, Value: uint32(libretro.MouseRight)},
	{Name: "RETRO_DEVICE_ID_MOUSE_WHEELUP", Namespace: NamespaceMouse, Value: uint32(libretro.MouseWheelUp)},
	{Name: "RETRO_DEVICE_ID_MOUSE_WHEELDOWN", Namespace: NamespaceMouse, Value: uint32(libretro.MouseWheelDown)},
	{Name: "RETRO_DEVICE_ID_MOUSE_MIDDLE", Namespace: NamespaceMouse, Value: uint32(libretro.MouseMiddle)},
	{Name: "RETRO_DEVICE_ID_MOUSE_HORIZ_WHEELUP", Namespace: NamespaceMouse, Value: uint32(libretro.MouseHorizWheelUp)},
	{Name: "RETRO_DEVICE_ID_MOUSE_HORIZ_WHEELDOWN", Namespace: NamespaceMouse, Value: uint32(libretro.MouseHorizWheelDown)},
	{Name: "RETRO_DEVICE_ID_MOUSE_BUTTON_4", Namespace: NamespaceMouse, Value: uint32(libretro.MouseButton4)},
	{Name: "RETRO_DEVICE_ID_MOUSE_BUTTON_5", Namespace: NamespaceMouse, Value: uint32(libretro.MouseButton5)},

	{Name: "RETRO_DEVICE_ID_LIGHTGUN_SCREEN_X", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunScreenX), Doc: "absolute position"},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_SCREEN_Y", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunScreenY), Doc: "absolute position"},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_IS_OFFSCREEN", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunIsOffscreen), Doc: "status check"},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_TRIGGER", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunTrigger)},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_RELOAD", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunReload), Doc: "forced off-screen shot"},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_AUX_A", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunAuxA)},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_AUX_B", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunAuxB)},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_START", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunStart)},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_SELECT", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunSelect)},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_AUX_C", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunAuxC)},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_DPAD_UP", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunDpadUp)},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_DPAD_DOWN", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunDpadDown)},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_DPAD_LEFT", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunDpadLeft)},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_DPAD_RIGHT", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunDpadRight)},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_X", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunX),
		Deprecated: true, Doc: "relative position; superseded by SCREEN_X"},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_Y", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunY),
		Deprecated: true, Doc: "relative position; superseded by SCREEN_Y"},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_CURSOR", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunCursor),
		Deprecated: true, AliasOf: "RETRO_DEVICE_ID_LIGHTGUN_AUX_A"},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_TURBO", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunTurbo),
		Deprecated: true, AliasOf: "RETRO_DEVICE_ID_LIGHTGUN_AUX_B"},
	{Name: "RETRO_DEVICE_ID_LIGHTGUN_PAUSE", Namespace: NamespaceLightgun, Value: uint32(libretro.LightgunPause),
		Deprecated: true, Doc: "use START; value 5 never clashed with a current ID"},

	{Name: "RETRO_DEVICE_ID_POINTER_X", Namespace: NamespacePointer, Value: uint32(libretro.PointerX), Doc: "absolute, [-0x7fff, 0x7fff]"},
	{Name: "RETRO_DEVICE_ID_POINTER_Y", Namespace: NamespacePointer, Value: uint32(libretro.PointerY), Doc: "absolute, [-0x7fff, 0x7fff]"},
	{Name: "RETRO_DEVICE_ID_POINTER_PRESSED", Namespace: NamespacePointer, Value: uint32(libretro.PointerPressed),
		Doc: "1 while the pointer is inside the game screen"},
	{Name: "RETRO_DEVICE_ID_POINTER_COUNT", Namespace: NamespacePointer, Value: uint32(libretro.PointerCount)},

	{Name: "RETRO_MEMORY_SAVE_RAM", Namespace: NamespaceMemory, Value: uint32(libretro.MemorySaveRAM),
		Doc: "battery-backed cartridge save RAM, exposed contiguously"},
	{Name: "RETRO_MEMORY_RTC", Namespace: NamespaceMemory, Value: uint32(libretro.MemoryRTC),
		Doc: "real-time clock memory"},
	{Name: "RETRO_MEMORY_SYSTEM_RAM", Namespace: NamespaceMemory, Value: uint32(libretro.MemorySystemRAM),
		Doc: "main work RAM"},
	{Name: "RETRO_MEMORY_VIDEO_RAM", Namespace: NamespaceMemory, Value: uint32(libretro.MemoryVideoRAM),
		Doc: "video RAM"},
	{Name: "RETRO_MEMORY_MASK", Namespace: NamespaceMemory, Flag: true, Value: libretro.MemoryMask,
		Doc: "mask extracting the base type from an extended memory ID"},

	{Name: "RETRO_REGION_NTSC", Namespace: NamespaceRegion, Value: uint32(libretro.RegionNTSC)},
	{Name: "RETRO_REGION_PAL", Namespace: NamespaceRegion, Value: uint32(libretro.RegionPAL)},
}

func env(name string, c libretro.EnvironmentCommand, doc string) Constant {
	return Constant{
		Name:         "RETRO_ENVIRONMENT_" + name,
		Namespace:    NamespaceEnvironment,
		Value:        uint32(c),
		Experimental: c.Experimental(),
		Doc:          doc,
	}
}

var environmentConstants = []Constant{
	{Name: "RETRO_ENVIRONMENT_EXPERIMENTAL", Namespace: NamespaceEnvironment,
		Value: uint32(libretro.EnvironmentExperimental), Flag: true,
		Doc: "modifier bit marking a command as experimental"},
	{Name: "RETRO_ENVIRONMENT_PRIVATE", Namespace: NamespaceEnvironment,
		Value: uint32(libretro.EnvironmentPrivate), Flag: true,
		Doc: "modifier bit reserving a command for frontend-internal use"},

	env("SET_ROTATION", libretro.EnvironmentSetRotation, "set screen rotation in 90 degree increments"),
	env("GET_OVERSCAN", libretro.EnvironmentGetOverscan, "should overscan be cropped (deprecated, code stays reserved)"),
	env("GET_CAN_DUPE", libretro.EnvironmentGetCanDupe, "does the frontend accept duped video frames"),
	env("SET_MESSAGE", libretro.EnvironmentSetMessage, "display a message for N frames"),
	env("SHUTDOWN", libretro.EnvironmentShutdown, "request frontend shutdown"),
	env("SET_PERFORMANCE_LEVEL", libretro.EnvironmentSetPerformanceLevel, "hint required hardware class"),
	env("GET_SYSTEM_DIRECTORY", libretro.EnvironmentGetSystemDirectory, "directory for BIOSes and system content"),
	env("SET_PIXEL_FORMAT", libretro.EnvironmentSetPixelFormat, "set internal video pixel format"),
	env("SET_INPUT_DESCRIPTORS", libretro.EnvironmentSetInputDescriptors, "describe internal input binds"),
	env("SET_KEYBOARD_CALLBACK", libretro.EnvironmentSetKeyboardCallback, "register event-based keyboard callback"),
	env("SET_DISK_CONTROL_INTERFACE", libretro.EnvironmentSetDiskControlInterface, "register disk eject/swap interface"),
	env("SET_HW_RENDER", libretro.EnvironmentSetHWRender, "set up hardware rendering context"),
	env("GET_VARIABLE", libretro.EnvironmentGetVariable, "fetch a core option value"),
	env("SET_VARIABLES", libretro.EnvironmentSetVariables, "publish core options (legacy format)"),
	env("GET_VARIABLE_UPDATE", libretro.EnvironmentGetVariableUpdate, "did any core option change since last poll"),
	env("SET_SUPPORT_NO_GAME", libretro.EnvironmentSetSupportNoGame, "core can run without content"),
	env("GET_LIBRETRO_PATH", libretro.EnvironmentGetLibretroPath, "absolute path of the loaded core"),
	env("SET_FRAME_TIME_CALLBACK", libretro.EnvironmentSetFrameTimeCallback, "report time since last retro_run"),
	env("SET_AUDIO_CALLBACK", libretro.EnvironmentSetAudioCallback, "register frontend-driven audio interface"),
	env("GET_RUMBLE_INTERFACE", libretro.EnvironmentGetRumbleInterface, "interface for controller rumble"),
	env("GET_INPUT_DEVICE_CAPABILITIES", libretro.EnvironmentGetInputDeviceCapabilities, "bitmask of pollable device types"),
	env("GET_SENSOR_INTERFACE", libretro.EnvironmentGetSensorInterface, "interface for sensors such as accelerometers"),
	env("GET_CAMERA_INTERFACE", libretro.EnvironmentGetCameraInterface, "interface for camera frame capture"),
	env("GET_LOG_INTERFACE", libretro.EnvironmentGetLogInterface, "frontend logging callback"),
	env("GET_PERF_INTERFACE", libretro.EnvironmentGetPerfInterface, "performance counters and feature detection"),
	env("GET_LOCATION_INTERFACE", libretro.EnvironmentGetLocationInterface, "geolocation interface"),
	env("GET_CORE_ASSETS_DIRECTORY", libretro.EnvironmentGetCoreAssetsDirectory, "directory for core-provided assets"),
	{Name: "RETRO_ENVIRONMENT_GET_CONTENT_DIRECTORY", Namespace: NamespaceEnvironment,
		Value: uint32(libretro.EnvironmentGetContentDirectory), Deprecated: true,
		AliasOf: "RETRO_ENVIRONMENT_GET_CORE_ASSETS_DIRECTORY",
		Doc:     "old name for code 30"},
	env("GET_SAVE_DIRECTORY", libretro.EnvironmentGetSaveDirectory, "directory for save data"),
	env("SET_SYSTEM_AV_INFO", libretro.EnvironmentSetSystemAVInfo, "replace AV parameters mid-session"),
	env("SET_PROC_ADDRESS_CALLBACK", libretro.EnvironmentSetProcAddressCallback, "expose symbols for extensions"),
	env("SET_SUBSYSTEM_INFO", libretro.EnvironmentSetSubsystemInfo, "declare special content types"),
	env("SET_CONTROLLER_INFO", libretro.EnvironmentSetControllerInfo, "declare controller subclasses per port"),
	env("SET_MEMORY_MAPS", libretro.EnvironmentSetMemoryMaps, "describe emulated memory layout"),
	env("SET_GEOMETRY", libretro.EnvironmentSetGeometry, "change video geometry without AV reinit"),
	env("GET_USERNAME", libretro.EnvironmentGetUsername, "configured frontend user name"),
	env("GET_LANGUAGE", libretro.EnvironmentGetLanguage, "configured frontend language"),
	env("GET_CURRENT_SOFTWARE_FRAMEBUFFER", libretro.EnvironmentGetCurrentSoftwareFramebuffer, "frontend-owned render buffer"),
	env("GET_HW_RENDER_INTERFACE", libretro.EnvironmentGetHWRenderInterface, "API-specific hardware render interface"),
	env("SET_SUPPORT_ACHIEVEMENTS", libretro.EnvironmentSetSupportAchievements, "core supports achievement memory inspection"),
	env("SET_HW_RENDER_CONTEXT_NEGOTIATION_INTERFACE", libretro.EnvironmentSetHWRenderContextNegotiationInterface, "negotiate explicit graphics API contexts"),
	env("SET_SERIALIZATION_QUIRKS", libretro.EnvironmentSetSerializationQuirks, "flag savestate behavior deviations"),
	env("SET_HW_SHARED_CONTEXT", libretro.EnvironmentSetHWSharedContext, "request shared hardware context"),
	env("GET_VFS_INTERFACE", libretro.EnvironmentGetVFSInterface, "frontend virtual filesystem"),
	env("GET_LED_INTERFACE", libretro.EnvironmentGetLEDInterface, "drive frontend LEDs"),
	env("GET_AUDIO_VIDEO_ENABLE", libretro.EnvironmentGetAudioVideoEnable, "which of audio/video is wanted this frame"),
	env("GET_MIDI_INTERFACE", libretro.EnvironmentGetMIDIInterface, "MIDI input and output"),
	env("GET_FASTFORWARDING", libretro.EnvironmentGetFastforwarding, "is the frontend fast-forwarding"),
	env("GET_TARGET_REFRESH_RATE", libretro.EnvironmentGetTargetRefreshRate, "refresh rate the frontend targets"),
	env("GET_INPUT_BITMASKS", libretro.EnvironmentGetInputBitmasks, "is bitmask input polling supported"),
	env("GET_CORE_OPTIONS_VERSION", libretro.EnvironmentGetCoreOptionsVersion, "core-options API version"),
	env("SET_CORE_OPTIONS", libretro.EnvironmentSetCoreOptions, "publish v1 core options"),
	env("SET_CORE_OPTIONS_INTL", libretro.EnvironmentSetCoreOptionsIntl, "publish v1 core options with localization"),
	env("SET_CORE_OPTIONS_DISPLAY", libretro.EnvironmentSetCoreOptionsDisplay, "toggle option visibility"),
	env("GET_PREFERRED_HW_RENDER", libretro.EnvironmentGetPreferredHWRender, "preferred hardware render context"),
	env("GET_DISK_CONTROL_INTERFACE_VERSION", libretro.EnvironmentGetDiskControlInterfaceVersion, "disk control API version"),
	env("SET_DISK_CONTROL_EXT_INTERFACE", libretro.EnvironmentSetDiskControlExtInterface, "register extended disk control"),
	env("GET_MESSAGE_INTERFACE_VERSION", libretro.EnvironmentGetMessageInterfaceVersion, "message API version"),
	env("SET_MESSAGE_EXT", libretro.EnvironmentSetMessageExt, "display message with priority and duration"),
	env("GET_INPUT_MAX_USERS", libretro.EnvironmentGetInputMaxUsers, "number of active input devices"),
	env("SET_AUDIO_BUFFER_STATUS_CALLBACK", libretro.EnvironmentSetAudioBufferStatusCallback, "report audio buffer occupancy"),
	env("SET_MINIMUM_AUDIO_LATENCY", libretro.EnvironmentSetMinimumAudioLatency, "request minimum audio latency"),
	env("SET_FASTFORWARDING_OVERRIDE", libretro.EnvironmentSetFastforwardingOverride, "core-controlled fast-forwarding"),
	env("SET_CONTENT_INFO_OVERRIDE", libretro.EnvironmentSetContentInfoOverride, "override content file handling"),
	env("GET_GAME_INFO_EXT", libretro.EnvironmentGetGameInfoExt, "extended loaded-content information"),
	env("SET_CORE_OPTIONS_V2", libretro.EnvironmentSetCoreOptionsV2, "publish v2 categorized core options"),
	env("SET_CORE_OPTIONS_V2_INTL", libretro.EnvironmentSetCoreOptionsV2Intl, "publish v2 core options with localization"),
	env("SET_CORE_OPTIONS_UPDATE_DISPLAY_CALLBACK", libretro.EnvironmentSetCoreOptionsUpdateDisplayCallback, "refresh option visibility on demand"),
	env("SET_VARIABLE", libretro.EnvironmentSetVariable, "write a core option value back"),
	env("GET_THROTTLE_STATE", libretro.EnvironmentGetThrottleState, "how the frontend throttles frame rate"),
	env("GET_SAVESTATE_CONTEXT", libretro.EnvironmentGetSavestateContext, "context a savestate is taken in"),
}

// namespaceOrder fixes the presentation order of namespaces.
var namespaceOrder = []Namespace{
	NamespaceAPI,
	NamespaceDevice,
	NamespaceJoypad,
	NamespaceAnalogIndex,
	NamespaceAnalogAxis,
	NamespaceMouse,
	NamespaceLightgun,
	NamespacePointer,
	NamespaceMemory,
	NamespaceRegion,
	NamespaceEnvironment,
}

var (
	byName      map[string]Constant
	byNamespace map[Namespace][]Constant
)

func init() {
	constants = append(constants, environmentConstants...)

	byName = make(map[string]Constant, len(constants))
	byNamespace = make(map[Namespace][]Constant, len(namespaceOrder))
	for _, c := range constants {
		byName[c.Name] = c
		byNamespace[c.Namespace] = append(byNamespace[c.Namespace], c)
	}
	for _, list := range byNamespace {
		sort.Slice(list, func(i, j int) bool {
			if list[i].Value != list[j].Value {
				return list[i].Value < list[j].Value
			}
			return list[i].Name < list[j].Name
		})
	}
}

// Namespaces returns all namespaces in presentation order.
func Namespaces() []Namespace {
	out := make([]Namespace, len(namespaceOrder))
	copy(out, namespaceOrder)
	return out
}

// All returns every published constant, grouped by namespace and
// ordered by value within each.
func All() []Constant {
	out := make([]Constant, 0, len(constants))
	for _, ns := range namespaceOrder {
		out = append(out, byNamespace[ns]...)
	}
	return out
}

// ByNamespace returns the constants of one namespace ordered by value,
// then name. The result is empty for an unknown namespace.
func ByNamespace(ns Namespace) []Constant {
	list := byNamespace[ns]
	out := make([]Constant, len(list))
	copy(out, list)
	return out
}

// ParseNamespace resolves a namespace from its string form.
func ParseNamespace(s string) (Namespace, error) {
	ns := Namespace(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := byNamespace[ns]; !ok {
		return "", fmt.Errorf("unknown namespace %q", s)
	}
	return ns, nil
}

// Find resolves a constant by its header name. Lookup is
// case-insensitive and tolerates a missing RETRO_ prefix, so both
// "RETRO_DEVICE_JOYPAD" and "device_joypad" resolve.
func Find(name string) (Constant, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if c, ok := byName[n]; ok {
		return c, nil
	}
	if c, ok := byName["RETRO_"+n]; ok {
		return c, nil
	}
	return Constant{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Lookup resolves a constant by namespace and name.
func Lookup(ns Namespace, name string) (Constant, error) {
	c, err := Find(name)
	if err != nil {
		return Constant{}, err
	}
	if c.Namespace != ns {
		return Constant{}, fmt.Errorf("%w: %q not in namespace %q", ErrNotFound, name, ns)
	}
	return c, nil
}

// FindValue returns every constant in a namespace bound to the given
// value. More than one result means the value carries documented
// deprecated aliases.
func FindValue(ns Namespace, value uint32) []Constant {
	var out []Constant
	for _, c := range byNamespace[ns] {
		if c.Value == value {
			out = append(out, c)
		}
	}
	return out
}
