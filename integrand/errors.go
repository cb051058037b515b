package integrand

import "errors"

// ErrBufferUndersize is returned when a caller-supplied output buffer is
// smaller than MinSize().
var ErrBufferUndersize = errors.New("integrand: buffer smaller than required minimum")
