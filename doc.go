// Package libretro mirrors the constant surface of the libretro ABI.
//
// The libretro API is a C header shared between frontends (RetroArch and
// friends) and cores (emulators, game engines). Both sides are compiled
// independently and only agree on the numeric values the header defines:
// device type codes, input ID namespaces, memory region tags, region codes
// and environment command codes. This package transcribes those values for
// Go hosts and tooling.
//
// Every constant here must be bit-exact with the canonical libretro.h. A
// wrong value is not a design choice, it is a transcription bug that
// silently corrupts calls across the frontend/core boundary. Values bound
// to a published name never change between revisions; new revisions only
// add names.
//
// Several namespaces intentionally reuse values. The lightgun namespace
// keeps its deprecated relative-position and button IDs at values that
// collide with the current ones, because existing cores were compiled
// against them. Those collisions are part of the ABI and are preserved
// here exactly.
//
// The package is pure data plus a few bitwise helpers matching the
// header's macros. Nothing is mutated after initialization, so all of it
// is safe for concurrent use without synchronization.
package libretro

// APIVersion is used for checking API/ABI mismatches that can break
// libretro implementations. It is not incremented for compatible changes
// to the API.
const APIVersion uint32 = 1
