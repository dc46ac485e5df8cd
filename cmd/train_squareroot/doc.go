// Package main provides a demo program for learning integer square roots. Numbers
// are thermometer encoded, the even ones are trained and the odd ones are predicted,
// which shows how a WiSARD generalizes to unseen but similar retinas.
package main
