// Package squareroot provides a synthetic dataset for learning integer square roots
// from thermometer encoded numbers. Neighbouring numbers share most set bits,
// which lets a WiSARD generalize between samples of the same class.
package squareroot
