package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"
)

const (
	EIO    = 5
	EINVAL = 22
)

const (
	GenericErrCode = 5000 + iota
	MissingColumnErrCode
	ColumnMismatchErrCode
	SameFileErrCode
	NoInputErrCode
)

type Error struct {
	Cause error
	Code  int
}

func (e *Error) Error() string {
	return e.Cause.Error()
}

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

func checkError(err, parent error) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *os.PathError:
		return checkError(e.Err, err)
	case syscall.Errno:
		if parent != nil {
			err = parent
		}
		return &Error{Cause: err, Code: int(e)}
	default:
		return err
	}
}

func badUsage(n string) error {
	e := Error{
		Cause: fmt.Errorf(n),
		Code:  EINVAL,
	}
	return &e
}

func genericErr(n string) error {
	e := Error{
		Cause: fmt.Errorf(n),
		Code:  GenericErrCode,
	}
	return &e
}

func missingColumn(file, col string) error {
	e := Error{
		Cause: fmt.Errorf("%s: missing dataset %s", file, col),
		Code:  MissingColumnErrCode,
	}
	return &e
}

func missingGroup(file, group string) error {
	e := Error{
		Cause: fmt.Errorf("%s: no %s group", file, group),
		Code:  MissingColumnErrCode,
	}
	return &e
}

func badRow(file string, row int, err error) error {
	code := GenericErrCode
	if e, ok := err.(*Error); ok {
		code = e.Code
	}
	e := Error{
		Cause: fmt.Errorf("%s: row %d: %v", file, row, err),
		Code:  code,
	}
	return &e
}

func badLength(file, col string, n, want int) error {
	e := Error{
		Cause: fmt.Errorf("%s: dataset %s has %d rows, want %d", file, col, n, want),
		Code:  MissingColumnErrCode,
	}
	return &e
}

func columnMismatch(file string, missing, extra []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: dataset layout differs from first input", file)
	if len(missing) > 0 {
		fmt.Fprintf(&b, " (missing: %s)", strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		fmt.Fprintf(&b, " (extra: %s)", strings.Join(extra, ", "))
	}
	e := Error{
		Cause: fmt.Errorf(b.String()),
		Code:  ColumnMismatchErrCode,
	}
	return &e
}

func sameFile(n string) error {
	e := Error{
		Cause: fmt.Errorf("%s: same file for input and output", n),
		Code:  SameFileErrCode,
	}
	return &e
}

func noInput() error {
	e := Error{
		Cause: fmt.Errorf("no input files given"),
		Code:  NoInputErrCode,
	}
	return &e
}
