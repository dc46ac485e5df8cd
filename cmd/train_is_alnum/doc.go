// Package main provides a demo program for training an alphanumeric character classifier.
// Every byte is presented as an 8 bit retina and a WiSARD learns to tell ASCII letters
// and digits from everything else, then reports how well it memorized the table.
package main
