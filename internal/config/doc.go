// Package config loads generator configuration files and presets.
//
// A config file is YAML (.yaml, .yml) or TOML (.toml):
//
//	package: net.johnglassmyer.uncheckers
//	class: IoUncheckers
//	checked: java.io.IOException
//	unchecked: java.io.UncheckedIOException
//	naming:
//	  checked_interface: "CheckedIo{{.}}"
//	  adapter: "uncheck{{.}}Io"
//	  direct_invoke: "callUnchecked{{.}}Io"
//	sam_types: [Runnable, Function]   # default: the standard SAM types
//	types: [extra-types.yaml]         # descriptor files, relative to this file
//
// A target may name a preset; its fields fill in whatever the target
// leaves empty. A batch file holds a list of targets under "targets".
package config
