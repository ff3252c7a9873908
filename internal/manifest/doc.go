// Package manifest defines the structured records the scaffolder writes
// (package.json and yw_manifest.json), encodes them the way npm tooling
// expects, and validates a package.json against an embedded JSON Schema
// plus semver checks on every dependency range.
package manifest
