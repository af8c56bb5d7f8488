package libretro

// MemoryType tags a memory region a core can expose to the frontend,
// e.g. for save files, cheats or achievements.
type MemoryType uint32

const (
	// MemorySaveRAM is the regular save RAM. This RAM is usually found
	// on a game cartridge, backed up by a battery. If the memory is
	// split into chunks it must be exposed as one contiguous region.
	MemorySaveRAM MemoryType = 0

	// MemoryRTC is some kind of volatile memory tracking real time,
	// usually backed by a battery as well.
	MemoryRTC MemoryType = 1

	// MemorySystemRAM is the system's main work RAM.
	MemorySystemRAM MemoryType = 2

	// MemoryVideoRAM is the system's video RAM.
	MemoryVideoRAM MemoryType = 3
)

// MemoryMask extracts the base memory type from an ID that carries
// implementation-specific bits above it.
const MemoryMask uint32 = 0xff

// Region is the video standard a core reports for its content.
type Region uint32

const (
	RegionNTSC Region = 0
	RegionPAL  Region = 1
)

func (r Region) String() string {
	if r == RegionPAL {
		return "PAL"
	}
	return "NTSC"
}
