// Package factory builds pluggable modules, such as metrics sinks, from a type
// name and a raw configuration map.
package factory
