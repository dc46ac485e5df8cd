package mnist

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
)

func idxImages(images ...[]byte) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, [4]uint32{imagesMagic, uint32(len(images)), ImgSize, ImgSize})
	for _, img := range images {
		buf.Write(img)
	}
	return buf.Bytes()
}

func idxLabels(labels ...byte) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, [2]uint32{labelsMagic, uint32(len(labels))})
	buf.Write(labels)
	return buf.Bytes()
}

func TestReadAndBuild(t *testing.T) {
	a := make([]byte, ImgSize*ImgSize)
	b := make([]byte, ImgSize*ImgSize)
	a[ImgSize+1] = 200
	b[100] = 50

	images, err := ReadImages(bytes.NewReader(idxImages(a, b)))
	if err != nil {
		t.Fatal(err)
	}
	labels, err := ReadLabels(bytes.NewReader(idxLabels(3, 7)))
	if err != nil {
		t.Fatal(err)
	}

	d, err := Build(images, labels, Options{Threshold: 100})
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 2 || d.Labels[0] != "3" || d.Labels[1] != "7" {
		t.Fatalf("built %v", d.Labels)
	}
	if d.Inputs[0][ImgSize+1] != 1 || d.Inputs[1][100] != 0 {
		t.Errorf("binarization is wrong")
	}

	small, err := Build(images, labels, Options{Threshold: 100, Small: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(small.Inputs[0]) != (Options{Small: true}).RetinaLength() {
		t.Errorf("small retina has %d bits", len(small.Inputs[0]))
	}
	if small.Inputs[0][0] != 1 {
		t.Errorf("downscaled pixel was not pooled")
	}
}

func TestBadMagic(t *testing.T) {
	if _, err := ReadImages(bytes.NewReader(idxLabels(1))); !errors.Is(err, ErrFormat) {
		t.Errorf("images: %v", err)
	}
	if _, err := ReadLabels(bytes.NewReader(idxImages())); !errors.Is(err, ErrFormat) {
		t.Errorf("labels: %v", err)
	}
	if _, err := ReadImages(bytes.NewReader(idxImages()[:10])); !errors.Is(err, ErrFormat) {
		t.Errorf("short header: %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, _, err := Load(Options{}, t.TempDir()); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v", err)
	}
}
