//go:build !debug

package core

// DebugBuild enables validation diagnostics in builds tagged "debug".
const DebugBuild = false
