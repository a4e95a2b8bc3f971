package types

import "fmt"

// AnyVersion satisfies a requirement regardless of the host feature version
const AnyVersion = "*"

// Requirement names a host feature and the minimum version an element needs
type Requirement struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

func (r Requirement) String() string {
	return fmt.Sprintf("%s@%s", r.Name, r.Version)
}
