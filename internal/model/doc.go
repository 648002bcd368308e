// Package model defines the process-level contract of the ss7calc CLI: the
// exit codes it returns and the CLIError type that carries one.
//
// Point code values and their conversions live in package pointcode; this
// package only describes how failures surface to the operating system.
package model
