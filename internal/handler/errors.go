// SPDX-License-Identifier: Apache-2.0

package handler

import "errors"

var (
	errNoHandlersAreCreated = errors.New("no handlers are created")
)
