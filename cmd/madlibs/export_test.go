package main

// NewRootCmd exposes newRootCmd to the external test package.
var NewRootCmd = newRootCmd
