/*
Package config provides read-only access to dispatch settings held in a
map[string]any.

# Overview

config wraps a map[string]any with typed accessors that absorb missing
keys and type mismatches by returning the caller's default, so store
construction never fails on a malformed settings block. It exists to back
typedispatch.OptionsFromConfig and typedispatch.CreateStoreFromConfig.

# Basic Usage

Create a Config from any map and extract values with defaults:

	cfg := config.New(map[string]any{
	    "name":   "plugins",
	    "strict": true,
	})

	name := cfg.String("name", "")      // "plugins"
	strict := cfg.Bool("strict", false) // true
	if cfg.Has("tracing") {
	    // key present, whatever its type
	}

# File Loading

Load configuration from YAML or JSON files:

	cfg, err := config.FromFile("dispatch.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	store, err := typedispatch.CreateStoreFromConfig(cfg)

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation; callers that mutate the original map externally
are on their own.
*/
package config
