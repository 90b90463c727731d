// Package pixel implements colors and pixel buffers for addressable LED strips.
//
// The central type is [RGBW], a 4-byte pixel laid out as green, red, blue, white. A buffer of
// RGBW pixels ([RGBWImage]) is sized with [SlotCount] so that its raw bytes can also be walked as
// 3-byte [Slot] values by a transmitter that only knows about RGB strips.
//
// All colors are compatible with Go's native [color.Color] and [image.Image] / [draw.Image]
// interfaces.
package pixel
