package libretro

// EnvironmentCommand is the opcode a core passes to the frontend's
// environment callback to query or configure its host. The low 16 bits
// carry the command code; modifier bits above them mark a command as
// experimental or frontend-private.
//
// Codes 4, 5 and 20 are gaps: they were reserved or retired upstream
// and must never be reused for new commands.
type EnvironmentCommand uint32

// Modifier bits OR'd onto a base command code. They sit well above the
// highest command code so the code space can keep growing without
// colliding with them.
const (
	// EnvironmentExperimental marks commands that may be changed or
	// removed while still experimental. Frontends should not rely on
	// them being stable across releases.
	EnvironmentExperimental EnvironmentCommand = 0x10000

	// EnvironmentPrivate marks commands reserved for frontend-internal
	// use. They are never part of the public libretro API surface.
	EnvironmentPrivate EnvironmentCommand = 0x20000
)

const (
	// EnvironmentSetRotation sets screen rotation in 90 degree
	// counter-clockwise increments.
	EnvironmentSetRotation EnvironmentCommand = 1

	// EnvironmentGetOverscan asks whether overscan regions should be
	// cropped. Deprecated upstream, but the code stays reserved.
	EnvironmentGetOverscan EnvironmentCommand = 2

	// EnvironmentGetCanDupe asks whether the frontend accepts nil video
	// frames for frame duping.
	EnvironmentGetCanDupe EnvironmentCommand = 3

	// EnvironmentSetMessage displays a message for a number of frames.
	EnvironmentSetMessage EnvironmentCommand = 6

	// EnvironmentShutdown requests the frontend to shut down, e.g. when
	// a game triggers a hardware power-off.
	EnvironmentShutdown EnvironmentCommand = 7

	// EnvironmentSetPerformanceLevel hints the minimum hardware class
	// needed to run the content at playable speed.
	EnvironmentSetPerformanceLevel EnvironmentCommand = 8

	// EnvironmentGetSystemDirectory returns the directory for system
	// specific content such as BIOSes and configurations.
	EnvironmentGetSystemDirectory EnvironmentCommand = 9

	// EnvironmentSetPixelFormat sets the internal pixel format used by
	// the video frame callback.
	EnvironmentSetPixelFormat EnvironmentCommand = 10

	// EnvironmentSetInputDescriptors describes the core's internal
	// input binds so frontends can present friendly names.
	EnvironmentSetInputDescriptors EnvironmentCommand = 11

	// EnvironmentSetKeyboardCallback registers an event-based keyboard
	// callback for text-oriented input.
	EnvironmentSetKeyboardCallback EnvironmentCommand = 12

	// EnvironmentSetDiskControlInterface registers an interface for
	// ejecting and swapping disk images.
	EnvironmentSetDiskControlInterface EnvironmentCommand = 13

	// EnvironmentSetHWRender sets up a hardware rendering context.
	EnvironmentSetHWRender EnvironmentCommand = 14

	// EnvironmentGetVariable fetches a user-configurable core option.
	EnvironmentGetVariable EnvironmentCommand = 15

	// EnvironmentSetVariables publishes the core's configurable
	// options. Superseded by the versioned core-options commands.
	EnvironmentSetVariables EnvironmentCommand = 16

	// EnvironmentGetVariableUpdate asks whether any core option changed
	// since the last poll.
	EnvironmentGetVariableUpdate EnvironmentCommand = 17

	// EnvironmentSetSupportNoGame declares that the core can run
	// without loaded content.
	EnvironmentSetSupportNoGame EnvironmentCommand = 18

	// EnvironmentGetLibretroPath returns the absolute path of the
	// loaded core itself.
	EnvironmentGetLibretroPath EnvironmentCommand = 19

	// EnvironmentSetFrameTimeCallback lets the core be notified of how
	// much time passed since the last invocation of retro_run.
	EnvironmentSetFrameTimeCallback EnvironmentCommand = 21

	// EnvironmentSetAudioCallback registers an interface for
	// frontend-driven audio writes.
	EnvironmentSetAudioCallback EnvironmentCommand = 22

	// EnvironmentGetRumbleInterface returns an interface for driving
	// rumble motors on controllers.
	EnvironmentGetRumbleInterface EnvironmentCommand = 23

	// EnvironmentGetInputDeviceCapabilities returns a bitmask of the
	// device types the frontend can poll.
	EnvironmentGetInputDeviceCapabilities EnvironmentCommand = 24

	// EnvironmentGetSensorInterface returns an interface for polling
	// sensors such as accelerometers.
	EnvironmentGetSensorInterface EnvironmentCommand = 25 | EnvironmentExperimental

	// EnvironmentGetCameraInterface returns an interface for camera
	// driven frame capture.
	EnvironmentGetCameraInterface EnvironmentCommand = 26 | EnvironmentExperimental

	// EnvironmentGetLogInterface returns the frontend's logging
	// callback. Cores should fall back to stderr if unavailable.
	EnvironmentGetLogInterface EnvironmentCommand = 27

	// EnvironmentGetPerfInterface returns a performance counter and
	// feature-detection interface.
	EnvironmentGetPerfInterface EnvironmentCommand = 28

	// EnvironmentGetLocationInterface returns an interface for
	// geolocation queries.
	EnvironmentGetLocationInterface EnvironmentCommand = 29

	// EnvironmentGetCoreAssetsDirectory returns the directory for core
	// provided assets.
	EnvironmentGetCoreAssetsDirectory EnvironmentCommand = 30

	// EnvironmentGetContentDirectory is the old name for code 30, kept
	// as a backward-compatible alias of
	// EnvironmentGetCoreAssetsDirectory.
	EnvironmentGetContentDirectory EnvironmentCommand = 30

	// EnvironmentGetSaveDirectory returns the directory where the
	// frontend keeps save data.
	EnvironmentGetSaveDirectory EnvironmentCommand = 31

	// EnvironmentSetSystemAVInfo replaces the core's audio/video
	// parameters mid-session.
	EnvironmentSetSystemAVInfo EnvironmentCommand = 32

	// EnvironmentSetProcAddressCallback exposes symbols for
	// frontend-to-core extensions.
	EnvironmentSetProcAddressCallback EnvironmentCommand = 33

	// EnvironmentSetSubsystemInfo declares special content types the
	// core supports beyond plain ROM loading.
	EnvironmentSetSubsystemInfo EnvironmentCommand = 34

	// EnvironmentSetControllerInfo declares the controller subclasses
	// the core recognizes on each port.
	EnvironmentSetControllerInfo EnvironmentCommand = 35

	// EnvironmentSetMemoryMaps describes the memory layout of the
	// emulated system for cheats and achievements.
	EnvironmentSetMemoryMaps EnvironmentCommand = 36 | EnvironmentExperimental

	// EnvironmentSetGeometry changes video geometry without
	// reinitializing the AV pipeline.
	EnvironmentSetGeometry EnvironmentCommand = 37

	// EnvironmentGetUsername returns the frontend user's name, when
	// one is configured.
	EnvironmentGetUsername EnvironmentCommand = 38

	// EnvironmentGetLanguage returns the frontend's configured
	// language.
	EnvironmentGetLanguage EnvironmentCommand = 39

	// EnvironmentGetCurrentSoftwareFramebuffer returns a frontend-owned
	// buffer the core may render into directly.
	EnvironmentGetCurrentSoftwareFramebuffer EnvironmentCommand = 40 | EnvironmentExperimental

	// EnvironmentGetHWRenderInterface returns an API-specific hardware
	// rendering interface.
	EnvironmentGetHWRenderInterface EnvironmentCommand = 41 | EnvironmentExperimental

	// EnvironmentSetSupportAchievements declares that the core fully
	// supports achievement-oriented memory inspection.
	EnvironmentSetSupportAchievements EnvironmentCommand = 42 | EnvironmentExperimental

	// EnvironmentSetHWRenderContextNegotiationInterface negotiates
	// context creation for explicit graphics APIs such as Vulkan.
	EnvironmentSetHWRenderContextNegotiationInterface EnvironmentCommand = 43 | EnvironmentExperimental

	// EnvironmentSetSerializationQuirks flags deviations from ideal
	// savestate behavior.
	EnvironmentSetSerializationQuirks EnvironmentCommand = 44

	// EnvironmentSetHWSharedContext asks for a shared hardware context
	// on context-reset.
	EnvironmentSetHWSharedContext EnvironmentCommand = 45 | EnvironmentExperimental

	// EnvironmentGetVFSInterface returns the frontend's virtual
	// filesystem interface.
	EnvironmentGetVFSInterface EnvironmentCommand = 46 | EnvironmentExperimental

	// EnvironmentGetLEDInterface returns an interface for driving
	// frontend LEDs.
	EnvironmentGetLEDInterface EnvironmentCommand = 47 | EnvironmentExperimental

	// EnvironmentGetAudioVideoEnable reports which of audio and video
	// the frontend actually wants this frame.
	EnvironmentGetAudioVideoEnable EnvironmentCommand = 48 | EnvironmentExperimental

	// EnvironmentGetMIDIInterface returns an interface for MIDI input
	// and output.
	EnvironmentGetMIDIInterface EnvironmentCommand = 49 | EnvironmentExperimental

	// EnvironmentGetFastforwarding reports whether the frontend is
	// currently fast-forwarding.
	EnvironmentGetFastforwarding EnvironmentCommand = 50 | EnvironmentExperimental

	// EnvironmentGetTargetRefreshRate returns the refresh rate the
	// frontend is targeting.
	EnvironmentGetTargetRefreshRate EnvironmentCommand = 51 | EnvironmentExperimental

	// EnvironmentGetInputBitmasks reports whether input-state bitmask
	// polling via JoypadMask is supported.
	EnvironmentGetInputBitmasks EnvironmentCommand = 52 | EnvironmentExperimental

	// EnvironmentGetCoreOptionsVersion returns the core-options API
	// version the frontend speaks.
	EnvironmentGetCoreOptionsVersion EnvironmentCommand = 53

	// EnvironmentSetCoreOptions publishes core options using the v1
	// structured format.
	EnvironmentSetCoreOptions EnvironmentCommand = 54

	// EnvironmentSetCoreOptionsIntl publishes v1 core options with
	// localization.
	EnvironmentSetCoreOptionsIntl EnvironmentCommand = 55

	// EnvironmentSetCoreOptionsDisplay toggles visibility of individual
	// core options in the frontend menu.
	EnvironmentSetCoreOptionsDisplay EnvironmentCommand = 56

	// EnvironmentGetPreferredHWRender returns the hardware context the
	// frontend prefers the core to use.
	EnvironmentGetPreferredHWRender EnvironmentCommand = 57

	// EnvironmentGetDiskControlInterfaceVersion returns the disk
	// control API version the frontend speaks.
	EnvironmentGetDiskControlInterfaceVersion EnvironmentCommand = 58

	// EnvironmentSetDiskControlExtInterface registers the extended disk
	// control interface.
	EnvironmentSetDiskControlExtInterface EnvironmentCommand = 59

	// EnvironmentGetMessageInterfaceVersion returns the message API
	// version the frontend speaks.
	EnvironmentGetMessageInterfaceVersion EnvironmentCommand = 60

	// EnvironmentSetMessageExt displays a message with priority,
	// duration and logging semantics.
	EnvironmentSetMessageExt EnvironmentCommand = 61

	// EnvironmentGetInputMaxUsers returns the number of active input
	// devices the frontend provides.
	EnvironmentGetInputMaxUsers EnvironmentCommand = 62

	// EnvironmentSetAudioBufferStatusCallback registers a callback
	// reporting audio buffer occupancy.
	EnvironmentSetAudioBufferStatusCallback EnvironmentCommand = 63

	// EnvironmentSetMinimumAudioLatency requests a minimum frontend
	// audio latency in milliseconds.
	EnvironmentSetMinimumAudioLatency EnvironmentCommand = 64

	// EnvironmentSetFastforwardingOverride lets the core control the
	// frontend's fast-forwarding state.
	EnvironmentSetFastforwardingOverride EnvironmentCommand = 65

	// EnvironmentSetContentInfoOverride overrides how the frontend
	// treats particular content file types.
	EnvironmentSetContentInfoOverride EnvironmentCommand = 66

	// EnvironmentGetGameInfoExt returns extended information about the
	// loaded content.
	EnvironmentGetGameInfoExt EnvironmentCommand = 67

	// EnvironmentSetCoreOptionsV2 publishes core options using the v2
	// categorized format.
	EnvironmentSetCoreOptionsV2 EnvironmentCommand = 68

	// EnvironmentSetCoreOptionsV2Intl publishes v2 core options with
	// localization.
	EnvironmentSetCoreOptionsV2Intl EnvironmentCommand = 69

	// EnvironmentSetCoreOptionsUpdateDisplayCallback registers a
	// callback invoked when option visibility may need refreshing.
	EnvironmentSetCoreOptionsUpdateDisplayCallback EnvironmentCommand = 70 | EnvironmentExperimental

	// EnvironmentSetVariable writes a single core option value back to
	// the frontend.
	EnvironmentSetVariable EnvironmentCommand = 71

	// EnvironmentGetThrottleState reports how the frontend is currently
	// throttling frame rate.
	EnvironmentGetThrottleState EnvironmentCommand = 72 | EnvironmentExperimental

	// EnvironmentGetSavestateContext reports the context in which a
	// savestate is being taken.
	EnvironmentGetSavestateContext EnvironmentCommand = 73 | EnvironmentExperimental
)

// Base strips the modifier bits, leaving the bare command code.
func (c EnvironmentCommand) Base() uint32 {
	return uint32(c &^ (EnvironmentExperimental | EnvironmentPrivate))
}

// Experimental reports whether the command carries the experimental
// marker bit.
func (c EnvironmentCommand) Experimental() bool {
	return c&EnvironmentExperimental != 0
}

// Private reports whether the command carries the frontend-private
// marker bit.
func (c EnvironmentCommand) Private() bool {
	return c&EnvironmentPrivate != 0
}
