// Package config provides configuration management for taichicoach.
//
// It defines program defaults, the runtime Config populated from CLI flags,
// validation with sentinel errors, XDG directory resolution, and the YAML
// practitioner profile loader.
package config
