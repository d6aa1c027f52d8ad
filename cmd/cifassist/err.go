package main

import (
	"fmt"
	"os"
)

const (
	EINVAL = 22
)

const (
	GenericErrCode = 5000 + iota
	ApplyErrCode
)

// Error pairs a cause with a process exit code, the way the teacher CLI
// this command is modelled on reports failures.
type Error struct {
	Cause error
	Code  int
}

func (e *Error) Error() string { return e.Cause.Error() }

func Exit(e error) {
	if e == nil {
		return
	}
	fmt.Println(e)
	if e, ok := e.(*Error); ok {
		os.Exit(e.Code)
	} else {
		os.Exit(GenericErrCode)
	}
}

func badUsage(n string) error {
	return &Error{Cause: fmt.Errorf(n), Code: EINVAL}
}

func genericErr(n string) error {
	return &Error{Cause: fmt.Errorf(n), Code: GenericErrCode}
}
