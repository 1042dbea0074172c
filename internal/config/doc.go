// Package config manages user-level settings stored at ~/.kitchensink/config.yaml:
// the Vite template, the generator package, the package manager and the env
// variable name the generated API client reads its base URL from. Values
// resolve flag > KITCHENSINK_* env var > config file > built-in default.
package config
