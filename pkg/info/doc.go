// Package info exposes the identity of the running component: the name and
// version from the embedded component.yaml manifest and the id from config.
//
//	name, _ := info.Name()
//	version, _ := info.Version(true) // "0.1.0" for "v0.1.0"
//	id, err := info.ID(store)
package info
