// Package app composes the long-running collector service.
package app

import "time"

const flushTimeout = 2 * time.Second
