package ops

// unit normalizes a channel byte to [0, 1].
func unit(b byte) float32 {
	return float32(b) / 255
}

// quantize scales a normalized value back to a byte, clamping to [0, 255]
// and truncating toward zero.
func quantize(v float32) byte {
	s := v * 255
	if s <= 0 {
		return 0
	}
	if s >= 255 {
		return 255
	}
	return byte(s)
}

// clampInt clamps an integer channel value to [0, 255].
func clampInt(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// clampFloat clamps a scaled channel value to [0, 255] and truncates it.
func clampFloat(v float32) byte {
	if v <= 0 || v != v {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}
