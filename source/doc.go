// Package source turns raw input into the key/value pairs consumed by
// kvshape.Assemble.
//
// Every reader keeps input order and passes duplicate keys through
// unchanged; resolving duplicates is up to the assembler.
//
//   - Text: "key: value, key: value" lists. Malformed segments are dropped.
//   - JSON: a flat JSON object (goccy/go-json token stream).
//   - YAML: a flat YAML mapping (gopkg.in/yaml.v3 node tree).
package source
