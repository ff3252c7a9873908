// Package config manages user-level settings stored at ~/.ywscaffold/config.yaml.
// Settings only steer ambient behaviour (target root, verbosity, colour); the
// scaffolded layout and its content are compiled into the binary.
package config
