//go:build !mabara_debug

package mabara

func debugFail(op, msg string) {}
