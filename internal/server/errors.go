// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The learn-app Authors

package server

import "errors"

var (
	errNoHandlerProvided = errors.New("no http handler provided")
	errNoAddressProvided = errors.New("no http listen address provided")
)
