//go:build rp2040 && !debug

package main

func debugf(format string, args ...interface{}) {}
