// Package video adapts the core's PPU framebuffer to a presentation
// backend. The core package itself never imports a rendering library;
// everything here is a thin boundary collaborator.
package video

import "github.com/arinoir/gbacore/core"

// FrameSink receives a finished framebuffer for presentation. Present is
// called once per frame by the host application, not by the core itself.
type FrameSink interface {
	Present(buf *core.Frame)
}
