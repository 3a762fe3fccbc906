// Package sysutil holds small OS-level helpers shared by diagnostics and
// maintenance commands.
package sysutil

import (
	"os"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/wakelog/internal/constants"
)

// OtherInstances lists running wakelog processes other than the current one.
// Used to refuse maintenance operations that need exclusive database access.
func OtherInstances() ([]ps.Process, error) {
	processes, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	pid := os.Getpid()
	var others []ps.Process
	for _, p := range processes {
		if p.Pid() == pid {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			others = append(others, p)
		}
	}
	return others, nil
}
