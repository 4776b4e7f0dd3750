// SPDX-License-Identifier: MIT

package session

import "errors"

// ErrFinished is returned by Tick after the outcome became final.
var ErrFinished = errors.New("session: finished")
