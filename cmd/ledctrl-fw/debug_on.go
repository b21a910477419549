//go:build rp2040 && debug

package main

import "fmt"

func debugf(format string, args ...interface{}) {
	println(fmt.Sprintf(format, args...))
}
