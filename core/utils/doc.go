// Package utils holds small helpers shared by the features and the CLI:
// rendering codes as indented JSON and splitting identifier lists.
package utils
