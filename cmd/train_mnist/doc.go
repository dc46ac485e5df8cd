// Package main provides a demo program for training a handwritten digit classifier on
// the MNIST dataset. Images are binarized into retinas, one discriminator is trained
// per digit and the test set accuracy is reported, optionally with bleaching.
package main
