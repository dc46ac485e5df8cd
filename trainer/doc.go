// Package trainer evaluates fitted WiSARD classifiers on labeled datasets.
// Evaluations can be restricted to a statistically sufficient sample and
// carry a fingerprint of the predictions, so two models can be compared
// without keeping their outputs around.
package trainer
