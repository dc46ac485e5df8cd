// Package mnist loads the MNIST handwritten digits as binarized retinas
package mnist

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/neurlang/wisard/datasets"
	"github.com/neurlang/wisard/retina"
)

// ErrNotFound is returned when no search directory holds all four dataset files.
var ErrNotFound = errors.New("mnist dataset not found")

// ErrFormat is returned for files which are not IDX images or labels.
var ErrFormat = errors.New("bad idx file")

const (
	imagesMagic = 0x00000803
	labelsMagic = 0x00000801
)

const inferSetImg = "t10k-images-idx3-ubyte.gz"
const inferSetVal = "t10k-labels-idx1-ubyte.gz"
const trainSetImg = "train-images-idx3-ubyte.gz"
const trainSetVal = "train-labels-idx1-ubyte.gz"

// sha256 digests of the gzip files
var digests = map[string]string{
	inferSetImg: "8d422c7b0a1c1c79245a5bcf07fe86e33eeafee792b84584aec276f5a2dbc4e6",
	inferSetVal: "f7ae60f92e00ec6debd23a6088c31dbd2371eca3ffa0defaefb259924204aec6",
	trainSetImg: "440fcabf73cc546fa21475e81ea370265605f56be210a4024d2ca8f203523609",
	trainSetVal: "3552534a0a558bbed6aed32b30c495cca23d567ec52cac8be1a0730e8010255c",
}

// ImgSize is the side of an original image.
const ImgSize = 28

// SmallImgSize is the side of a downscaled image.
const SmallImgSize = 13

// SearchDirectories lists the default locations of the dataset files.
func SearchDirectories() []string {
	var dirs = []string{"/tmp/mnist/"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".cache", "mnist"))
	}
	return dirs
}

// Options selects how images are turned into retinas.
type Options struct {
	Threshold byte // pixels above it are set bits
	Small     bool // downscale to SmallImgSize before binarizing
}

// RetinaLength returns the number of bits of one retina.
func (o Options) RetinaLength() int {
	if o.Small {
		return SmallImgSize * SmallImgSize
	}
	return ImgSize * ImgSize
}

func max4(a, b, c, d byte) (o byte) {
	o = a
	if b > o {
		o = b
	}
	if c > o {
		o = c
	}
	if d > o {
		o = d
	}
	return o
}

// Downscale max pools a 28x28 image into 13x13, skipping the first row and column.
func Downscale(img []byte) []byte {
	var small = make([]byte, SmallImgSize*SmallImgSize)
	for y := 0; y < SmallImgSize; y++ {
		for x := 0; x < SmallImgSize; x++ {
			var base = 1 + ImgSize + 2*x + 2*y*ImgSize
			small[y*SmallImgSize+x] = max4(img[base], img[base+1], img[base+ImgSize], img[base+ImgSize+1])
		}
	}
	return small
}

// ReadImages parses an uncompressed IDX image file into one slice per image.
func ReadImages(r io.Reader) (images [][]byte, err error) {
	var header [4]uint32
	if err = binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, errors.Wrap(ErrFormat, err.Error())
	}
	if header[0] != imagesMagic {
		return nil, errors.Wrapf(ErrFormat, "images magic %#x", header[0])
	}
	if header[2] != ImgSize || header[3] != ImgSize {
		return nil, errors.Wrapf(ErrFormat, "images are %dx%d", header[2], header[3])
	}
	images = make([][]byte, header[1])
	for i := range images {
		images[i] = make([]byte, ImgSize*ImgSize)
		if _, err = io.ReadFull(r, images[i]); err != nil {
			return nil, errors.Wrapf(ErrFormat, "image %d: %s", i, err)
		}
	}
	return
}

// ReadLabels parses an uncompressed IDX label file.
func ReadLabels(r io.Reader) (labels []byte, err error) {
	var header [2]uint32
	if err = binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, errors.Wrap(ErrFormat, err.Error())
	}
	if header[0] != labelsMagic {
		return nil, errors.Wrapf(ErrFormat, "labels magic %#x", header[0])
	}
	labels = make([]byte, header[1])
	if _, err = io.ReadFull(r, labels); err != nil {
		return nil, errors.Wrap(ErrFormat, err.Error())
	}
	return
}

// Build pairs images with labels into a dataset of retinas.
func Build(images [][]byte, labels []byte, o Options) (d datasets.Dataset, err error) {
	if len(images) != len(labels) {
		return d, errors.Wrapf(datasets.ErrShape, "%d images, %d labels", len(images), len(labels))
	}
	d.Init(len(images))
	for i, img := range images {
		if o.Small {
			img = Downscale(img)
		}
		d.Add(retina.Binarize(img, o.Threshold), strconv.Itoa(int(labels[i])))
	}
	return
}

// readVerified reads a gzip file, checks its digest and returns the uncompressed data.
func readVerified(path, digest string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if sum := fmt.Sprintf("%x", sha256.Sum256(data)); sum != digest {
		return nil, errors.Errorf("file hash for file '%s' is incorrect", path)
	}
	gzipReader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "gzip file '%s'", path)
	}
	defer gzipReader.Close()
	return io.ReadAll(gzipReader)
}

func loadDir(dir string, o Options) (train, infer datasets.Dataset, err error) {
	var raw = make(map[string][]byte, len(digests))
	for name, digest := range digests {
		if raw[name], err = readVerified(filepath.Join(dir, name), digest); err != nil {
			return
		}
	}
	trainImages, err := ReadImages(bytes.NewReader(raw[trainSetImg]))
	if err != nil {
		return
	}
	trainLabels, err := ReadLabels(bytes.NewReader(raw[trainSetVal]))
	if err != nil {
		return
	}
	inferImages, err := ReadImages(bytes.NewReader(raw[inferSetImg]))
	if err != nil {
		return
	}
	inferLabels, err := ReadLabels(bytes.NewReader(raw[inferSetVal]))
	if err != nil {
		return
	}
	if train, err = Build(trainImages, trainLabels, o); err != nil {
		return
	}
	infer, err = Build(inferImages, inferLabels, o)
	return
}

// Load loads the train and infer sets from the first directory holding all four
// verified files. Without dirs, SearchDirectories is used.
func Load(o Options, dirs ...string) (train, infer datasets.Dataset, err error) {
	if len(dirs) == 0 {
		dirs = SearchDirectories()
	}
	var last error = ErrNotFound
	for _, dir := range dirs {
		train, infer, err = loadDir(dir, o)
		if err == nil {
			return
		}
		last = errors.Wrapf(ErrNotFound, "%s: %s", dir, err)
	}
	return train, infer, last
}
