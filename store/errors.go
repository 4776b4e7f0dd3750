// SPDX-License-Identifier: MIT

package store

import "errors"

// ErrUnknownSession is returned when a session id has no row.
var ErrUnknownSession = errors.New("store: unknown session")
