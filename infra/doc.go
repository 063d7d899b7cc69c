// Package infra contains technical adapters such as the MQTT plan
// publisher, metrics sinks, the Gemini insight generator and report
// builders. These packages should depend only on the interfaces defined
// in the core packages.
package infra
