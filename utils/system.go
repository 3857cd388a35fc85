package utils

import (
	"log"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// A headless Chromium session comfortably needs this much free memory.
const minBrowserMemoryBytes = 512 * 1024 * 1024

// CheckBrowserResources logs the host capacity before the first browser
// session is launched and warns when available memory looks too tight for
// headless Chromium. The pipeline is sequential, so one session at a time
// is all that is ever needed.
func CheckBrowserResources() {
	cores, err := cpu.Counts(true)
	if err != nil {
		log.Printf("WARN: Could not detect CPU cores: %v", err)
	} else {
		log.Printf("System has %d logical cores available for the browser session.", cores)
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("WARN: Could not read memory stats: %v", err)
		return
	}
	if vm.Available < minBrowserMemoryBytes {
		log.Printf("WARN: Only %d MB of memory available; headless browser sessions may be unstable.", vm.Available/(1024*1024))
	}
}
