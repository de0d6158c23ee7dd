//go:build windows

package stablerand

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")
)

// clockSeed folds the current QueryPerformanceCounter reading into a 32-bit
// seed. The counter has the highest resolution available on Windows, so two
// constructions in quick succession still observe different counter values.
// The result is only seed material; it carries no timestamp semantics.
func clockSeed() uint32 {
	var qpc int64
	r1, _, err := procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	if r1 == 0 {
		panic(fmt.Sprintf("call failed: %v", err))
	}
	return uint32(qpc>>32) ^ uint32(qpc)
}
