// Package viewmodel turns API payloads into render-ready values. Every
// conditional dashboard section is resolved here into an Optional so views
// render a section or skip it without inspecting payload fields.
package viewmodel
