// Package retina encodes values into the binary inputs of a WiSARD classifier.
// A retina is a byte slice in which every non-zero byte is a set bit.
package retina

// Bits encodes the lowest n bits of v, least significant bit first.
func Bits(v uint64, n int) (o []byte) {
	o = make([]byte, n)
	for i := range o {
		if i < 64 {
			o[i] = byte(v>>uint(i)) & 1
		}
	}
	return
}

// Thermometer encodes x into levels bits, setting the k lowest bits where k
// grows linearly from 0 at min to levels at max. Values outside the range are clamped.
func Thermometer(x, min, max float64, levels int) (o []byte) {
	o = make([]byte, levels)
	if levels == 0 || max <= min {
		return
	}
	k := int((x - min) / (max - min) * float64(levels))
	if k > levels {
		k = levels
	}
	for i := 0; i < k; i++ {
		o[i] = 1
	}
	return
}

// Binarize sets a bit for every pixel strictly above threshold.
func Binarize(pixels []byte, threshold byte) (o []byte) {
	o = make([]byte, len(pixels))
	for i, p := range pixels {
		if p > threshold {
			o[i] = 1
		}
	}
	return
}

// Concat joins retinas into one.
func Concat(parts ...[]byte) (o []byte) {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	o = make([]byte, 0, n)
	for _, p := range parts {
		o = append(o, p...)
	}
	return
}
