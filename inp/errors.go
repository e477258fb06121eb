// Copyright 2024 The Supercapacitors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/io"

// UnknownParameterSetError indicates that a requested parameter set name is
// not registered in the database
type UnknownParameterSetError struct {
	Name string
}

// Error returns the error message
func (o *UnknownParameterSetError) Error() string {
	return io.Sf("parameter set %q is not available in database", o.Name)
}

// UnknownParameterError indicates that a parameter name is absent from the
// active parameter set
type UnknownParameterError struct {
	Set  string // active parameter set
	Name string // missing entry
}

// Error returns the error message
func (o *UnknownParameterError) Error() string {
	return io.Sf("parameter %q is not available in set %q", o.Name, o.Set)
}
