// Package csclient is the entry point for creating Container Security API
// clients. It validates a cs.Config, applies defaults and wires the HTTP
// transport into the resource clients.
package csclient
