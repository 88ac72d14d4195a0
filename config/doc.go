// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration shared by the resnet CLI and
// the resnetd service.
//
// A file looks like:
//
//	solver:
//	  epsilon: 1e-9
//	  pivoting: partial   # or none
//	  workers: 4
//	server:
//	  addr: ":8080"
//	  read_timeout: 10s
//	  write_timeout: 30s
//	  max_body_bytes: 1048576
//	log:
//	  level: info         # debug, info, warn, error
//	  format: text        # or json
//	output:
//	  nonverbose: false
//	  potentials: false
//
// Missing keys take the Default values and unknown keys are rejected.
// Loader keeps the latest valid configuration and, once Watch is called,
// reloads it whenever the file changes on disk. A reload that fails to
// parse or validate is logged and the previous configuration stays active.
package config
