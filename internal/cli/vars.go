// Copyright (c) 2025. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// root
	baseURL string
	// check, audit
	hashed bool
	// check
	interactive bool
	// audit
	inputFile string
	// audit
	outFile string
	// audit
	threads int
	// audit
	rateLimit int
	// audit
	overwrite bool
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string
	// serve
	port uint16
)
