// Package conn implements the buses LED strips are driven over.
//
// Every connection is an [io.WriteCloser] with a String method; a Write is one transaction on the
// bus. Framing and encoding are done by the caller.
package conn
