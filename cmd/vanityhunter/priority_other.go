//go:build !windows

package main

// raisePriority is a no-op outside Windows. Raising priority there needs
// privileges; run under `nice -n -20` instead.
func raisePriority() error {
	return nil
}
