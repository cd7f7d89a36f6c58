//go:build windows

package main

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var procSetProcessInformation = windows.NewLazySystemDLL("kernel32.dll").NewProc("SetProcessInformation")

// processPowerThrottlingState mirrors PROCESS_POWER_THROTTLING_STATE.
type processPowerThrottlingState struct {
	Version     uint32
	ControlMask uint32
	StateMask   uint32
}

const (
	processPowerThrottling               = 4
	processPowerThrottlingExecutionSpeed = 0x1
	processPowerThrottlingCurrentVersion = 1
)

// raisePriority moves the process to the high priority class (falling back
// to above normal) and opts out of power throttling.
func raisePriority() error {
	proc := windows.CurrentProcess()

	// REALTIME can starve the rest of the system.
	if err := windows.SetPriorityClass(proc, windows.HIGH_PRIORITY_CLASS); err != nil {
		if err := windows.SetPriorityClass(proc, windows.ABOVE_NORMAL_PRIORITY_CLASS); err != nil {
			return err
		}
	}
	return disablePowerThrottling(proc)
}

// disablePowerThrottling turns off Efficiency Mode (Windows 10 1709+).
func disablePowerThrottling(proc windows.Handle) error {
	if err := procSetProcessInformation.Find(); err != nil {
		return nil
	}
	state := processPowerThrottlingState{
		Version:     processPowerThrottlingCurrentVersion,
		ControlMask: processPowerThrottlingExecutionSpeed,
		StateMask:   0,
	}
	ret, _, err := procSetProcessInformation.Call(
		uintptr(proc),
		processPowerThrottling,
		uintptr(unsafe.Pointer(&state)),
		unsafe.Sizeof(state),
	)
	if ret == 0 {
		return err
	}
	return nil
}
