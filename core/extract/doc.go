// Package extract rebuilds catalog entries from combination code files.
//
// A catalog file is a flat sequence of pseudo-JSON entries without enclosing
// braces:
//
//	"200134 200143 200152": {"i":"...","r":1,"e":"..."},
//	"200134 200143 200160": {
//	"i":"...",
//	"r":2,
//	"e":"..."},
//
// The Extractor walks the file once, line by line, using a small state
// machine (idle, awaiting body, in body). An entry body ends on the first
// physical line that ends with "}" or "},"; brace depth is not counted, so a
// nested object whose own closing line ends that way terminates the entry
// early. The data files are generated to fit this rule.
//
// Entries whose body does not parse are logged and dropped. Duplicate keys
// keep the last value and are reported in Stats.
//
// # Usage
//
//	result, stats := extract.New(logger).Extract(content)
//	payload, ok := result["200134 200143 200152"]
package extract
