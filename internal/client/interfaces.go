// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

import "context"

// UI is the interactive front end started by [App.Run].
type UI interface {
	// Run shows the UI and blocks until the user leaves it.
	Run(ctx context.Context) error
}
