package fsops

import "fmt"

// MountSource shells out to the platform FUSE helper to mount a file at
// mountpoint, rather than a hand-rolled mount syscall (spec.md §6's FUSE
// awareness is a pane-reload stub; the mount/unmount mechanics themselves
// are represented only as a ProcessRunner invocation, same as any other
// filetype program).
func MountSource(runner *ProcessRunner, program, source, mountpoint string) error {
	job, err := runner.Spawn(fmt.Sprintf("%s %q %q", program, source, mountpoint), SpawnOpts{})
	if err != nil {
		return err
	}
	return runner.Wait(job)
}

// Unmount shells out to fusermount -u (or the platform equivalent passed as
// program) to tear down a mount established by MountSource.
func Unmount(runner *ProcessRunner, program, mountpoint string) error {
	job, err := runner.Spawn(fmt.Sprintf("%s -u %q", program, mountpoint), SpawnOpts{})
	if err != nil {
		return err
	}
	return runner.Wait(job)
}
