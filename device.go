package libretro

import "fmt"

// Device identifies one of libretro's fundamental input device
// abstractions. The functionality of these devices is fixed; individual
// cores map their own concept of a controller onto them, which lets
// frontends bind real hardware without knowing arbitrary controller
// layouts.
type Device uint32

const (
	// DeviceNone means input is disabled.
	DeviceNone Device = 0

	// DeviceJoypad is the RetroPad. It is essentially a Super Nintendo
	// controller, but with additional L2/R2/L3/R3 buttons, similar to a
	// PS1 DualShock.
	DeviceJoypad Device = 1

	// DeviceMouse is a simple mouse, similar to Super Nintendo's mouse.
	// X and Y coordinates are reported relative to the last poll. It is
	// up to the core to track where the pointer is supposed to be on
	// screen.
	DeviceMouse Device = 2

	// DeviceKeyboard lets one poll for raw key pressed state. For
	// event/text based keyboard input, see the keyboard callback
	// environment command instead.
	DeviceKeyboard Device = 3

	// DeviceLightgun is similar to a Guncon-2 for PlayStation 2. It
	// reports X/Y in screen space in the range [-0x8000, 0x7fff], with
	// zero being center, as well as on/off screen state, a trigger,
	// start/select, auxiliary action buttons and a directional pad.
	DeviceLightgun Device = 4

	// DeviceAnalog is an extension of the RetroPad. Similar to a
	// DualShock 2 it adds two analog sticks, and all buttons can be
	// analog. Axis values are in the range [-0x7fff, 0x7fff]; positive X
	// is right, positive Y is down. Only use the analog type when
	// polling for analog values.
	DeviceAnalog Device = 5

	// DevicePointer abstracts a pointing mechanism, e.g. touch. X and Y
	// are reported in absolute coordinates in [-0x7fff, 0x7fff], where
	// -0x7fff is the far left/top of the game image and 0x7fff the far
	// right/bottom.
	DevicePointer Device = 6
)

// DeviceTypeShift is the bit position at which a subclass index is
// packed above the base device type.
const DeviceTypeShift = 8

// DeviceMask extracts the base device type from a packed device value.
const DeviceMask uint32 = (1 << DeviceTypeShift) - 1

// Subclass derives a specialized device value from a base type, per the
// RETRO_DEVICE_SUBCLASS macro. Subclass IDs start at 0; the encoded
// index is offset by one so that a packed subclass never collides with
// the plain base type.
func Subclass(base Device, id uint32) uint32 {
	return ((id + 1) << DeviceTypeShift) | uint32(base)
}

// PackDevice packs a base device type with a raw index, the inverse of
// SplitDevice. Index 0 with no offset yields the plain base type.
func PackDevice(base Device, index uint32) uint32 {
	return (index << DeviceTypeShift) | uint32(base)
}

// SplitDevice splits a packed device value into its base type and the
// index packed above it.
func SplitDevice(v uint32) (Device, uint32) {
	return Device(v & DeviceMask), v >> DeviceTypeShift
}

func (d Device) String() string {
	switch d {
	case DeviceNone:
		return "none"
	case DeviceJoypad:
		return "joypad"
	case DeviceMouse:
		return "mouse"
	case DeviceKeyboard:
		return "keyboard"
	case DeviceLightgun:
		return "lightgun"
	case DeviceAnalog:
		return "analog"
	case DevicePointer:
		return "pointer"
	default:
		return fmt.Sprintf("device(%d)", uint32(d))
	}
}
