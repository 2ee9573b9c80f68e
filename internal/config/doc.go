// Package config loads vedit's settings.
//
// Settings come from a single file, TOML or YAML depending on the
// extension, overlaid on built-in defaults and then on environment
// variables. A missing file is not an error.
//
// # File Format
//
//	theme = "base16-ocean.dark"
//	tab_width = 4
//	vcur = "on"
//	line_numbers = false
//	log_level = "info"
//	log_file = "log/vedit.log"
//
//	[syntax_map]
//	rs = "Rust"
//
//	[ai]
//	default_model = "local"
//
//	[[ai.models]]
//	id = "local"
//	provider = "anythingllm"
//	endpoint = "http://localhost:3001/api/v1/workspace/vedit/chat"
//	api_key_env = "ANYTHINGLLM_KEY"
//
// # Environment
//
//   - VEDIT_TAB_WIDTH: tab width
//   - VEDIT_VCUR: "on" or "off"
//   - VEDIT_LOG_LEVEL: debug, info, warn or error
//
// # Live Reload
//
// Watch reloads the file after it is written and hands the result to a
// callback:
//
//	err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
//	    ...
//	})
package config
