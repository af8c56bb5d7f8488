package libretro

// JoypadButton identifies a button on the RetroPad. The placement of
// these is equivalent to placements on the Super Nintendo controller;
// L2/R2/L3/R3 correspond to the PS1 DualShock. The same values are used
// as IDs for AnalogIndexButton when polling analog button pressure.
type JoypadButton uint32

const (
	JoypadB      JoypadButton = 0
	JoypadY      JoypadButton = 1
	JoypadSelect JoypadButton = 2
	JoypadStart  JoypadButton = 3
	JoypadUp     JoypadButton = 4
	JoypadDown   JoypadButton = 5
	JoypadLeft   JoypadButton = 6
	JoypadRight  JoypadButton = 7
	JoypadA      JoypadButton = 8
	JoypadX      JoypadButton = 9
	JoypadL      JoypadButton = 10
	JoypadR      JoypadButton = 11
	JoypadL2     JoypadButton = 12
	JoypadR2     JoypadButton = 13
	JoypadL3     JoypadButton = 14
	JoypadR3     JoypadButton = 15
)

// JoypadMask queries the state of all RetroPad buttons as a bitmask in a
// single input-state call, when the frontend reports bitmask support.
const JoypadMask JoypadButton = 256

// AnalogIndex selects which part of the analog device a poll targets.
type AnalogIndex uint32

const (
	AnalogIndexLeft   AnalogIndex = 0
	AnalogIndexRight  AnalogIndex = 1
	AnalogIndexButton AnalogIndex = 2
)

// AnalogAxis selects the axis of an analog stick.
type AnalogAxis uint32

const (
	AnalogX AnalogAxis = 0
	AnalogY AnalogAxis = 1
)

// MouseID identifies an axis or button of the mouse device.
type MouseID uint32

const (
	MouseX              MouseID = 0
	MouseY              MouseID = 1
	MouseLeft           MouseID = 2
	MouseRight          MouseID = 3
	MouseWheelUp        MouseID = 4
	MouseWheelDown      MouseID = 5
	MouseMiddle         MouseID = 6
	MouseHorizWheelUp   MouseID = 7
	MouseHorizWheelDown MouseID = 8
	MouseButton4        MouseID = 9
	MouseButton5        MouseID = 10
)

// LightgunID identifies an axis, button or status input of the lightgun
// device.
//
// The deprecated relative-position and button IDs below share values
// with current IDs. Cores compiled against the old names still work
// because the values never moved; do not renumber either set.
type LightgunID uint32

const (
	LightgunScreenX     LightgunID = 13 // absolute position
	LightgunScreenY     LightgunID = 14 // absolute position
	LightgunIsOffscreen LightgunID = 15 // status check
	LightgunTrigger     LightgunID = 2
	LightgunReload      LightgunID = 16 // forced off-screen shot
	LightgunAuxA        LightgunID = 3
	LightgunAuxB        LightgunID = 4
	LightgunStart       LightgunID = 6
	LightgunSelect      LightgunID = 7
	LightgunAuxC        LightgunID = 8
	LightgunDpadUp      LightgunID = 9
	LightgunDpadDown    LightgunID = 10
	LightgunDpadLeft    LightgunID = 11
	LightgunDpadRight   LightgunID = 12
)

// Deprecated lightgun IDs.
const (
	LightgunX      LightgunID = 0 // relative position; use LightgunScreenX
	LightgunY      LightgunID = 1 // relative position; use LightgunScreenY
	LightgunCursor LightgunID = 3 // use LightgunAuxA
	LightgunTurbo  LightgunID = 4 // use LightgunAuxB
	LightgunPause  LightgunID = 5 // use LightgunStart
)

// PointerID identifies an axis or status input of the pointer device.
// For multi-touch, successively higher port indices report further
// presses; PointerPressed returns 1 only while the pointer is inside
// the game screen.
type PointerID uint32

const (
	PointerX       PointerID = 0
	PointerY       PointerID = 1
	PointerPressed PointerID = 2
	PointerCount   PointerID = 3
)
